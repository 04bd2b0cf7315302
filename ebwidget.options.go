package ebwidget

import (
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	shortcodeTag       string
	scriptURL          string
	stylesheetURL      string
	defaultButtonClass string
	pollInterval       time.Duration
	pollTimeout        time.Duration
	maxDepth           int
	language           language.Tag
	messages           map[string]string
	logger             *zap.Logger
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		shortcodeTag:       DefaultShortcodeTag,
		scriptURL:          DefaultScriptURL,
		stylesheetURL:      DefaultStylesheetURL,
		defaultButtonClass: DefaultButtonClass,
		pollInterval:       DefaultPollInterval,
		pollTimeout:        DefaultPollTimeout,
		maxDepth:           DefaultMaxDepth,
		language:           language.English,
		messages:           make(map[string]string),
		logger:             nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithShortcodeTag sets the tag the Eventbrite handler is registered under.
// Default: "fs_eventbrite"
func WithShortcodeTag(tag string) Option {
	return func(c *engineConfig) {
		if tag != "" {
			c.shortcodeTag = tag
		}
	}
}

// WithScriptURL sets the Eventbrite widget script emitted by AssetTags.
func WithScriptURL(url string) Option {
	return func(c *engineConfig) {
		if url != "" {
			c.scriptURL = url
		}
	}
}

// WithStylesheetURL sets the companion stylesheet emitted by AssetTags.
// An empty url disables the stylesheet tag.
func WithStylesheetURL(url string) Option {
	return func(c *engineConfig) {
		c.stylesheetURL = url
	}
}

// WithDefaultButtonClass sets the button class used when a shortcode omits button_class.
// Default: "eventbrite-button"
func WithDefaultButtonClass(class string) Option {
	return func(c *engineConfig) {
		if class != "" {
			c.defaultButtonClass = class
		}
	}
}

// WithPollInterval sets how often the inline script checks for the widget runtime.
// Default: 100ms
func WithPollInterval(d time.Duration) Option {
	return func(c *engineConfig) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// WithPollTimeout sets how long the inline script waits for the widget runtime
// before showing the fallback message. Use 0 to poll without limit.
// Default: 15s
func WithPollTimeout(d time.Duration) Option {
	return func(c *engineConfig) {
		if d >= 0 {
			c.pollTimeout = d
		}
	}
}

// WithMaxDepth sets the maximum nesting depth for shortcode expansion.
// Use 0 for unlimited depth.
// Default: 10
func WithMaxDepth(depth int) Option {
	return func(c *engineConfig) {
		c.maxDepth = depth
	}
}

// WithLanguage selects the language for rendered messages.
// Unsupported languages fall back to the closest supported one.
// Default: English
func WithLanguage(tag language.Tag) Option {
	return func(c *engineConfig) {
		c.language = tag
	}
}

// WithMessage overrides a rendered message. key is one of the Msg* constants.
func WithMessage(key, text string) Option {
	return func(c *engineConfig) {
		if text != "" {
			c.messages[key] = text
		}
	}
}

// WithErrorMessage overrides the message shown when a shortcode has no valid event id.
func WithErrorMessage(text string) Option {
	return WithMessage(MsgShortcodeError, text)
}
