package ebwidget

import (
	"context"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/itsatony/go-ebwidget/internal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// shortcodeTagPattern matches the names the shortcode lexer recognises
const shortcodeTagPattern = `^[A-Za-z_][A-Za-z0-9_-]*$`

// Configuration field names reported in validation errors
const (
	ConfigFieldShortcodeTag = "shortcode_tag"
	ConfigFieldMaxDepth     = "max_depth"
)

// Engine renders Eventbrite widgets from shortcodes, blocks and normalized options.
// It is immutable after construction apart from its handler registry and is safe
// for concurrent use.
type Engine struct {
	config    *engineConfig
	registry  *internal.Registry
	executor  *internal.Executor
	compiler  *compiler
	localizer *localizer
	logger    *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	if !govalidator.Matches(config.shortcodeTag, shortcodeTagPattern) {
		return nil, NewConfigValueError(ConfigFieldShortcodeTag, config.shortcodeTag)
	}
	if config.maxDepth < 0 {
		return nil, NewConfigValueError(ConfigFieldMaxDepth, strconv.Itoa(config.maxDepth))
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	loc := newLocalizer(config.language, config.messages)
	registry := internal.NewRegistry(logger)
	executor := internal.NewExecutor(registry, internal.ExecutorConfig{
		MaxDepth: config.maxDepth,
	}, logger)

	engine := &Engine{
		config:    config,
		registry:  registry,
		executor:  executor,
		compiler:  newCompiler(config, loc, logger),
		localizer: loc,
		logger:    logger,
	}
	registry.MustRegister(&handlerAdapter{handler: &widgetHandler{engine: engine}})

	logger.Debug(LogMsgEngineCreated,
		zap.String(LogFieldTag, config.shortcodeTag),
		zap.String(LogFieldLanguage, loc.Language().String()))
	return engine, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// ShortcodeTag returns the tag the Eventbrite handler is registered under.
func (e *Engine) ShortcodeTag() string {
	return e.config.shortcodeTag
}

// Language returns the language rendered messages use.
func (e *Engine) Language() language.Tag {
	return e.localizer.Language()
}

// Normalize applies defaults and sanitization to raw shortcode attributes,
// using the engine's default button class.
func (e *Engine) Normalize(raw Attributes) WidgetOptions {
	opts := normalizeWith(raw, e.config.defaultButtonClass)
	e.logger.Debug(LogMsgNormalized,
		zap.String(LogFieldEventID, opts.EventID),
		zap.String(LogFieldMode, opts.Mode.String()))
	return opts
}

// Compile returns the widget markup for opts, or the error fragment when opts
// has no event id. It has no side effects.
func (e *Engine) Compile(opts WidgetOptions) string {
	out, _ := e.compiler.compile(opts)
	return out
}

// RenderOptions compiles opts and, when a widget was produced, marks the page
// carried by ctx as needing the widget assets.
func (e *Engine) RenderOptions(ctx context.Context, opts WidgetOptions) string {
	out, ok := e.compiler.compile(opts)
	if ok {
		e.markPage(ctx, opts.EventID)
	}
	return out
}

// RenderShortcode normalizes raw shortcode attributes and renders the widget.
func (e *Engine) RenderShortcode(ctx context.Context, raw Attributes) string {
	return e.RenderOptions(ctx, e.Normalize(raw))
}

// RenderBlock renders a widget block. A block without an event id renders the
// block error message; otherwise the widget is wrapped in the block element.
func (e *Engine) RenderBlock(ctx context.Context, attrs BlockAttributes) string {
	if strings.TrimSpace(attrs.EventID) == "" {
		return e.blockError()
	}
	out := e.RenderShortcode(ctx, attrs.RenderAttributes())
	e.logger.Debug(LogMsgBlockRendered, zap.String(LogFieldEventID, attrs.EventID))
	return `<div class="` + ClassBlockWrapper + `">` + out + `</div>`
}

// ExpandContent expands serialized widget blocks and registered shortcodes in
// content. Malformed markup is kept verbatim; the only error is cancellation
// of ctx.
func (e *Engine) ExpandContent(ctx context.Context, content string) (string, error) {
	segments := internal.SplitBlocks(content, BlockName)

	var sb strings.Builder
	blocks := 0
	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if seg.Block == nil {
			out, err := e.ExpandShortcodes(ctx, seg.Text)
			if err != nil {
				return "", err
			}
			sb.WriteString(out)
			continue
		}

		blocks++
		attrs, err := ParseBlockAttributes([]byte(seg.Block.AttrsJSON))
		if err != nil {
			e.logger.Warn(LogMsgBlockParseFailed, zap.Error(err))
			sb.WriteString(e.blockError())
			continue
		}
		sb.WriteString(e.RenderBlock(ctx, attrs))
	}

	e.logger.Debug(LogMsgContentExpanded,
		zap.Int(LogFieldLength, len(content)),
		zap.Int(LogFieldBlocks, blocks))
	return sb.String(), nil
}

// ExpandShortcodes expands registered shortcodes in content. Unregistered and
// malformed shortcodes are kept verbatim.
func (e *Engine) ExpandShortcodes(ctx context.Context, content string) (string, error) {
	if !strings.Contains(content, internal.StrOpenDelim) {
		return content, nil
	}
	root, ok := parseContent(content, e.logger)
	if !ok {
		return content, nil
	}
	return e.executor.Execute(ctx, root)
}

// HasWidget reports whether content contains the Eventbrite shortcode or a
// serialized widget block.
func (e *Engine) HasWidget(content string) bool {
	if len(internal.ScanBlocks(content, BlockName)) > 0 {
		return true
	}
	return HasShortcode(content, e.config.shortcodeTag)
}

// AssetTags returns the stylesheet and widget script tags when a widget was
// rendered on page, or "" otherwise. The page is marked as emitted.
func (e *Engine) AssetTags(page *Page) string {
	if page == nil {
		return ""
	}
	page.MarkEmitted()
	if !page.Used() {
		return ""
	}
	tags, err := renderAssetTags(e.config.stylesheetURL, e.config.scriptURL)
	if err != nil {
		e.logger.Error(LogMsgCompileFailed, zap.Error(err))
		return ""
	}
	e.logger.Debug(LogMsgAssetsEmitted)
	return tags
}

// Register adds a custom shortcode handler.
// Returns an error if a handler for the same tag is already registered.
func (e *Engine) Register(h ShortcodeHandler) error {
	if h == nil {
		return NewNilHandlerError()
	}
	if err := e.registry.Register(&handlerAdapter{handler: h}); err != nil {
		return NewRegisterError(h.Tag(), err)
	}
	return nil
}

// MustRegister adds a custom shortcode handler and panics if registration fails.
func (e *Engine) MustRegister(h ShortcodeHandler) {
	if err := e.Register(h); err != nil {
		panic(err)
	}
}

// Unregister removes the handler for tag and reports whether one was removed.
func (e *Engine) Unregister(tag string) bool {
	return e.registry.Unregister(tag)
}

// Tags returns the registered shortcode tags in sorted order.
func (e *Engine) Tags() []string {
	return e.registry.List()
}

// NewEditor creates an editor for attrs that renders in the engine's language.
func (e *Engine) NewEditor(attrs BlockAttributes) *Editor {
	return NewEditor(attrs, WithEditorLanguage(e.localizer.Language()))
}

func (e *Engine) blockError() string {
	return e.compiler.errorFragment(e.localizer.Text(MsgBlockError))
}

// markPage flags the page in ctx as needing assets
func (e *Engine) markPage(ctx context.Context, eventID string) {
	page := PageFromContext(ctx)
	if page == nil {
		return
	}
	if late := page.MarkUsed(); late {
		e.logger.Warn(LogMsgLateRender, zap.String(LogFieldEventID, eventID))
	}
}

// parseContent tokenizes and parses content with the default delimiters
func parseContent(content string, logger *zap.Logger) (*internal.RootNode, bool) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tokens, err := internal.NewLexer(content, logger).Tokenize()
	if err != nil {
		logger.Debug(LogMsgContentParseError, zap.Error(err))
		return nil, false
	}
	root, err := internal.NewParser(tokens, content, logger).Parse()
	if err != nil {
		logger.Debug(LogMsgContentParseError, zap.Error(err))
		return nil, false
	}
	return root, true
}
