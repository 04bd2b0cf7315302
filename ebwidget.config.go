package ebwidget

import (
	"os"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Configuration field names reported in validation errors
const (
	ConfigFieldPollInterval = "poll_interval"
	ConfigFieldPollTimeout  = "poll_timeout"
	ConfigFieldLanguage     = "language"
)

// Config is the file form of the engine options.
// Durations use Go duration syntax ("100ms", "15s"). Empty fields keep the defaults.
type Config struct {
	ShortcodeTag       string            `yaml:"shortcode_tag"`
	ScriptURL          string            `yaml:"script_url"`
	StylesheetURL      *string           `yaml:"stylesheet_url"`
	DefaultButtonClass string            `yaml:"default_button_class"`
	PollInterval       string            `yaml:"poll_interval"`
	PollTimeout        string            `yaml:"poll_timeout"`
	MaxDepth           *int              `yaml:"max_depth"`
	Language           string            `yaml:"language"`
	ErrorMessage       string            `yaml:"error_message"`
	BlockErrorMessage  string            `yaml:"block_error_message"`
	Messages           map[string]string `yaml:"messages"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewConfigReadError(path, err)
	}
	return parseConfig(data, path)
}

// ParseConfig parses and validates YAML configuration data.
func ParseConfig(data []byte) (*Config, error) {
	return parseConfig(data, "")
}

func parseConfig(data []byte, path string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, NewConfigParseError(path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields that Options would otherwise have to ignore.
func (c *Config) Validate() error {
	if c.PollInterval != "" {
		d, err := time.ParseDuration(c.PollInterval)
		if err != nil || d <= 0 {
			return NewConfigValueError(ConfigFieldPollInterval, c.PollInterval)
		}
	}
	if c.PollTimeout != "" {
		d, err := time.ParseDuration(c.PollTimeout)
		if err != nil || d < 0 {
			return NewConfigValueError(ConfigFieldPollTimeout, c.PollTimeout)
		}
	}
	if c.MaxDepth != nil && *c.MaxDepth < 0 {
		return NewConfigValueError(ConfigFieldMaxDepth, strconv.Itoa(*c.MaxDepth))
	}
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return NewConfigValueError(ConfigFieldLanguage, c.Language)
		}
	}
	if c.ShortcodeTag != "" && !govalidator.Matches(c.ShortcodeTag, shortcodeTagPattern) {
		return NewConfigValueError(ConfigFieldShortcodeTag, c.ShortcodeTag)
	}
	return nil
}

// Options converts the configuration to engine options. Invalid values are
// skipped; call Validate first to report them.
func (c *Config) Options() []Option {
	var opts []Option
	if c.ShortcodeTag != "" {
		opts = append(opts, WithShortcodeTag(c.ShortcodeTag))
	}
	if c.ScriptURL != "" {
		opts = append(opts, WithScriptURL(c.ScriptURL))
	}
	if c.StylesheetURL != nil {
		opts = append(opts, WithStylesheetURL(*c.StylesheetURL))
	}
	if c.DefaultButtonClass != "" {
		opts = append(opts, WithDefaultButtonClass(c.DefaultButtonClass))
	}
	if d, err := time.ParseDuration(c.PollInterval); err == nil {
		opts = append(opts, WithPollInterval(d))
	}
	if d, err := time.ParseDuration(c.PollTimeout); err == nil {
		opts = append(opts, WithPollTimeout(d))
	}
	if c.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*c.MaxDepth))
	}
	if tag, err := language.Parse(c.Language); err == nil && c.Language != "" {
		opts = append(opts, WithLanguage(tag))
	}
	for key, text := range c.Messages {
		opts = append(opts, WithMessage(key, text))
	}
	if c.ErrorMessage != "" {
		opts = append(opts, WithErrorMessage(c.ErrorMessage))
	}
	if c.BlockErrorMessage != "" {
		opts = append(opts, WithMessage(MsgBlockError, c.BlockErrorMessage))
	}
	return opts
}
