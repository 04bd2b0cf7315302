package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/itsatony/go-ebwidget"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// globalConfig holds the flags every command accepts
type globalConfig struct {
	configPath string
	logLevel   string
}

func newFlagSet(name string, g *globalConfig) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages
	fs.StringVar(&g.configPath, FlagConfig, "", "")
	fs.StringVar(&g.logLevel, FlagLogLevel, FlagDefaultLogLevel, "")
	return fs
}

// newLogger builds a console logger on stderr at the requested level
func newLogger(level string, stderr io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.New(ErrMsgInvalidLogLevel)
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		lvl,
	)
	return zap.New(core), nil
}

// newEngine loads the optional configuration file and builds the engine
func newEngine(g *globalConfig, logger *zap.Logger) (*ebwidget.Engine, error) {
	opts := []ebwidget.Option{ebwidget.WithLogger(logger)}
	if g.configPath != "" {
		cfg, err := ebwidget.LoadConfig(g.configPath)
		if err != nil {
			return nil, err
		}
		logger.Debug(ebwidget.LogMsgConfigLoaded, zap.String(ebwidget.LogFieldPath, g.configPath))
		opts = append(opts, cfg.Options()...)
	}
	return ebwidget.New(opts...)
}

// setup builds the logger and engine for a command, reporting failures on stderr.
// It returns a non-zero exit code when the command cannot continue.
func setup(g *globalConfig, stderr io.Writer) (*ebwidget.Engine, *zap.Logger, int) {
	logger, err := newLogger(g.logLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return nil, nil, ExitCodeUsageError
	}
	engine, err := newEngine(g, logger)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgConfigFailed, err)
		return nil, nil, ExitCodeInputError
	}
	return engine, logger, ExitCodeSuccess
}
