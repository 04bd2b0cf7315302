package main

import "time"

// Command names
const (
	CmdNameRender   = "render"
	CmdNameValidate = "validate"
	CmdNamePreview  = "preview"
	CmdNameServe    = "serve"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagContent  = "content"
	FlagOutput   = "output"
	FlagAssets   = "assets"
	FlagEventID  = "event-id"
	FlagFormat   = "format"
	FlagBlock    = "block"
	FlagAddr     = "addr"
)

// Flag names - short form
const (
	FlagContentShort = "c"
	FlagOutputShort  = "o"
	FlagEventIDShort = "e"
	FlagFormatShort  = "F"
	FlagBlockShort   = "b"
)

// Flag default values
const (
	FlagDefaultOutput   = "-" // stdout
	FlagDefaultFormat   = "text"
	FlagDefaultLogLevel = "warn"
	FlagDefaultAddr     = ":8080"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand    = "unknown command"
	ErrMsgMissingContent    = "content source required"
	ErrMsgMissingEventID    = "event id required"
	ErrMsgMissingBlock      = "block attribute source required"
	ErrMsgInvalidFlags      = "invalid flags"
	ErrMsgInvalidFormat     = "invalid output format"
	ErrMsgInvalidLogLevel   = "invalid log level"
	ErrMsgReadFileFailed    = "failed to read file"
	ErrMsgWriteOutputFailed = "failed to write output"
	ErrMsgConfigFailed      = "failed to load configuration"
	ErrMsgEngineFailed      = "failed to create engine"
	ErrMsgExpandFailed      = "content expansion failed"
	ErrMsgBlockInvalid      = "invalid block attributes"
	ErrMsgPreviewFailed     = "preview rendering failed"
	ErrMsgServeFailed       = "server failed"
	ErrMsgReadBodyFailed    = "failed to read request body"
)

// Help text templates
const (
	HelpMainUsage = `go-ebwidget - Eventbrite ticket widget renderer

Usage:
    ebwidget <command> [options]

Commands:
    render      Expand widget shortcodes and blocks in content
    validate    Check an Eventbrite event id
    preview     Render the editor preview of a block
    serve       Start the preview HTTP server
    version     Show version information
    help        Show help for a command

Global options:
    --config <file>         YAML configuration file
    --log-level <level>     debug, info, warn, error (default: warn)

Use "ebwidget help <command>" for more information about a command.`

	HelpRenderUsage = `Expand widget shortcodes and blocks in content

Usage:
    ebwidget render [options]

Options:
    -c, --content <file>    Content file (use "-" for stdin)
    -o, --output <file>     Output file (default: stdout)
    --assets                Append the widget asset tags when a widget was rendered

Examples:
    ebwidget render -c post.html
    cat post.html | ebwidget render -c - --assets -o page.html`

	HelpValidateUsage = `Check an Eventbrite event id

Usage:
    ebwidget validate [options]

Options:
    -e, --event-id <id>     Event id to check
    -F, --format <format>   Output format: text, json (default: text)

Exit status is 3 when the id is invalid.`

	HelpPreviewUsage = `Render the editor preview of a block

Usage:
    ebwidget preview [options]

Options:
    -b, --block <file>      Block attribute JSON or JSONC file (use "-" for stdin)
    -o, --output <file>     Output file (default: stdout)`

	HelpServeUsage = `Start the preview HTTP server

Usage:
    ebwidget serve [options]

Options:
    --addr <address>        Listen address (default: :8080)

Routes:
    POST /render            Expand the request body (?assets=true appends asset tags)
    POST /preview           Editor preview of a block attribute body
    GET  /validate?id=...   Check an event id
    GET  /assets/eventbrite-widget.css
    GET  /healthz`

	HelpVersionUsage = `Show version information

Usage:
    ebwidget version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    ebwidget help [command]

Commands:
    render      Show help for render command
    validate    Show help for validate command
    preview     Show help for preview command
    serve       Show help for serve command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-ebwidget version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Validation output
const (
	ValidationTextValid   = "Event id %s is valid"
	ValidationTextInvalid = "Event id is invalid: %s (digits: %q)"
)

// HTTP routes and parameters
const (
	RouteRender     = "/render"
	RoutePreview    = "/preview"
	RouteValidate   = "/validate"
	RouteStylesheet = "/assets/eventbrite-widget.css"
	RouteHealth     = "/healthz"
	QueryAssets     = "assets"
	QueryEventID    = "id"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeCSS  = "text/css; charset=utf-8"
	HealthStatusOK  = "ok"
)

// Server timeouts
const (
	ServerReadHeaderTimeout = 5 * time.Second
	ServerShutdownTimeout   = 10 * time.Second
	MaxRequestBodyBytes     = 4 << 20
)

// Log messages
const (
	LogMsgServerStarting = "preview server starting"
	LogMsgServerStopping = "preview server stopping"
	LogMsgRequestFailed  = "request failed"
	LogFieldAddr         = "addr"
	LogFieldRoute        = "route"
)

// CLI metadata
const (
	CLIName        = "ebwidget"
	CLIDescription = "Eventbrite ticket widget renderer"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
