package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-ebwidget"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	global  globalConfig
	eventID string
	format  string
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid   bool   `json:"valid"`
	EventID string `json:"event_id"`
	Reason  string `json:"reason,omitempty"`
}

func runValidate(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	result := validateEventID(cfg.eventID)

	if cfg.format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
	} else if result.Valid {
		fmt.Fprintf(stdout, ValidationTextValid+FmtNewline, result.EventID)
	} else {
		fmt.Fprintf(stdout, ValidationTextInvalid+FmtNewline, result.Reason, result.EventID)
	}

	if !result.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

// validateEventID applies the shared event id rule and reports the rejection reason
func validateEventID(raw string) validationOutput {
	cleaned, err := ebwidget.ValidateEventID(raw)
	out := validationOutput{Valid: err == nil, EventID: cleaned}
	if err != nil {
		out.Reason = ebwidget.ReasonEmpty
		var customErr *cuserr.CustomError
		if errors.As(err, &customErr) {
			if reason, ok := customErr.GetMetadata(ebwidget.MetaKeyReason); ok {
				out.Reason = reason
			}
		}
	}
	return out
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	cfg := &validateConfig{}
	fs := newFlagSet(CmdNameValidate, &cfg.global)

	fs.StringVarP(&cfg.eventID, FlagEventID, FlagEventIDShort, "", "")
	fs.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// A positional argument is accepted in place of --event-id
	if cfg.eventID == "" && fs.NArg() > 0 {
		cfg.eventID = fs.Arg(0)
	}
	if cfg.eventID == "" {
		return nil, errors.New(ErrMsgMissingEventID)
	}

	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}
