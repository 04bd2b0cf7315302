package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-ebwidget"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	global      globalConfig
	contentPath string
	outputPath  string
	assets      bool
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	content, err := readInput(cfg.contentPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	engine, _, code := setup(&cfg.global, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	result, err := renderPage(context.Background(), engine, string(content), cfg.assets)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExpandFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

// renderPage expands content as one page and appends the asset tags when requested
func renderPage(ctx context.Context, engine *ebwidget.Engine, content string, assets bool) (string, error) {
	page := ebwidget.NewPage()
	result, err := engine.ExpandContent(ebwidget.WithPage(ctx, page), content)
	if err != nil {
		return "", err
	}
	if assets {
		result += engine.AssetTags(page)
	}
	return result, nil
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	cfg := &renderConfig{}
	fs := newFlagSet(CmdNameRender, &cfg.global)

	fs.StringVarP(&cfg.contentPath, FlagContent, FlagContentShort, "", "")
	fs.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.assets, FlagAssets, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validation
	if cfg.contentPath == "" {
		return nil, errors.New(ErrMsgMissingContent)
	}

	return cfg, nil
}
