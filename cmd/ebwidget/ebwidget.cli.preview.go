package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-ebwidget"
	"github.com/tidwall/jsonc"
)

// previewConfig holds parsed preview command configuration
type previewConfig struct {
	global     globalConfig
	blockPath  string
	outputPath string
}

func runPreview(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parsePreviewFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	data, err := readInput(cfg.blockPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine, _, code := setup(&cfg.global, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	html, err := previewBlock(engine, data)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgPreviewFailed, err)
		return ExitCodeInputError
	}

	if err := writeOutput(cfg.outputPath, []byte(html+FmtNewline), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// previewBlock renders the editor preview for block attributes given as JSON
// or JSONC (comments and trailing commas allowed)
func previewBlock(engine *ebwidget.Engine, data []byte) (string, error) {
	attrs, err := ebwidget.ParseBlockAttributes(jsonc.ToJSON(data))
	if err != nil {
		return "", err
	}
	editor := engine.NewEditor(attrs)
	editor.SetEventID(attrs.EventID)
	return editor.Preview()
}

func parsePreviewFlags(args []string) (*previewConfig, error) {
	cfg := &previewConfig{}
	fs := newFlagSet(CmdNamePreview, &cfg.global)

	fs.StringVarP(&cfg.blockPath, FlagBlock, FlagBlockShort, "", "")
	fs.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.blockPath == "" {
		return nil, errors.New(ErrMsgMissingBlock)
	}

	return cfg, nil
}
