package internal

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// ExecutorConfig holds executor configuration options.
type ExecutorConfig struct {
	MaxDepth int // Maximum nested expansion depth (0 = unlimited)
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxDepth: DefaultMaxDepth,
	}
}

// Executor traverses an AST and produces output by dispatching shortcodes to handlers.
type Executor struct {
	registry *Registry
	config   ExecutorConfig
	logger   *zap.Logger
}

// NewExecutor creates a new executor with the given registry and configuration.
func NewExecutor(registry *Registry, config ExecutorConfig, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgExecutorCreated)
	return &Executor{
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

type depthKey struct{}

// WithDepth returns a context carrying the current expansion depth.
func WithDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, depthKey{}, depth)
}

// DepthFromContext returns the expansion depth stored in ctx (0 when absent).
func DepthFromContext(ctx context.Context) int {
	if depth, ok := ctx.Value(depthKey{}).(int); ok {
		return depth
	}
	return 0
}

// Execute processes the AST and returns the expanded content.
// Handlers receive a context whose depth is one deeper, so a handler that
// expands its own enclosed content is bounded by MaxDepth.
func (e *Executor) Execute(ctx context.Context, root *RootNode) (string, error) {
	e.logger.Debug(LogMsgExecutorStart)

	depth := DepthFromContext(ctx)
	if e.config.MaxDepth > 0 && depth >= e.config.MaxDepth {
		e.logger.Warn(LogMsgMaxDepthReached, zap.Int(LogFieldDepth, depth))
		return renderVerbatim(root.Children), nil
	}
	handlerCtx := WithDepth(ctx, depth+1)

	var sb strings.Builder
	for _, node := range root.Children {
		if err := ctx.Err(); err != nil {
			return StringValueEmpty, err
		}
		switch n := node.(type) {
		case *TextNode:
			sb.WriteString(n.Content)
		case *ShortcodeNode:
			sb.WriteString(e.executeShortcode(handlerCtx, n))
		}
	}

	e.logger.Debug(LogMsgExecutorEnd)
	return sb.String(), nil
}

// executeShortcode renders one shortcode. Unregistered shortcodes stay verbatim;
// a failing handler is logged and its output removed.
func (e *Executor) executeShortcode(ctx context.Context, node *ShortcodeNode) string {
	handler, ok := e.registry.Get(node.Name)
	if !ok {
		e.logger.Debug(LogMsgUnknownShortcode, zap.String(LogFieldTag, node.Name))
		return node.RawSource
	}

	e.logger.Debug(LogMsgHandlerInvoked, zap.String(LogFieldTag, node.Name))
	result, err := handler.Render(ctx, node.Attributes, node.Content)
	if err != nil {
		e.logger.Warn(LogMsgHandlerFailed,
			zap.String(LogFieldTag, node.Name),
			zap.Int(LogFieldLine, node.Pos().Line),
			zap.Int(LogFieldColumn, node.Pos().Column),
			zap.Error(err))
		return StringValueEmpty
	}

	e.logger.Debug(LogMsgHandlerComplete, zap.String(LogFieldTag, node.Name))
	return result
}

func renderVerbatim(nodes []Node) string {
	var sb strings.Builder
	for _, node := range nodes {
		switch n := node.(type) {
		case *TextNode:
			sb.WriteString(n.Content)
		case *ShortcodeNode:
			sb.WriteString(n.RawSource)
		}
	}
	return sb.String()
}

// Default configuration values
const (
	DefaultMaxDepth = 10
)
