package ebwidget

import "time"

// Engine defaults
const (
	DefaultShortcodeTag  = "fs_eventbrite"
	DefaultScriptURL     = "https://www.eventbrite.com/static/widgets/eb_widgets.js"
	DefaultStylesheetURL = "/assets/eventbrite-widget.css"
	DefaultPollInterval  = 100 * time.Millisecond
	DefaultPollTimeout   = 15 * time.Second
	DefaultMaxDepth      = 10
)

// Widget option defaults
const (
	DefaultModal            = "true"
	DefaultWidth            = "100%"
	DefaultHeight           = 550
	DefaultHeightValue      = "550"
	DefaultButtonText       = "Get Tickets"
	DefaultButtonClass      = "eventbrite-button"
	DefaultBlockButtonClass = "fs-eventbrite-button"
)

// Event ID length bounds (digits)
const (
	EventIDMinLength = 10
	EventIDMaxLength = 19
)

// Shortcode attribute keys
const (
	AttrEventID        = "event_id"
	AttrModal          = "modal"
	AttrWidth          = "width"
	AttrHeight         = "height"
	AttrButtonText     = "button_text"
	AttrButtonClass    = "button_class"
	AttrButtonStyle    = "button_style"
	AttrContainerClass = "container_class"
	AttrContainerStyle = "container_style"
)

// Widget type names
const (
	ModeNameModal    = "modal"
	ModeNameEmbedded = "embedded"
)

// Values accepted as "true" for the modal attribute
var modalTrueValues = []string{"1", "true", "on", "yes", ModeNameModal}

// Markup class names and id prefixes
const (
	ClassWrapper         = "eventbrite-widget-wrapper"
	ClassError           = "eventbrite-widget-error"
	ClassBlockWrapper    = "wp-block-fluxstack-eventbrite-widget"
	ClassAlignPrefix     = "has-text-align-"
	ClassPreview         = "fs-eventbrite-widget-preview"
	ClassPlaceholder     = "fs-eventbrite-widget-placeholder"
	IDPrefixTrigger      = "eventbrite-widget-modal-trigger-"
	IDPrefixContainer    = "eventbrite-widget-container-"
	StylesheetElementID  = "fs-eventbrite-widget-css"
	ErrorFragmentStyle   = "background-color: #f8d7da; color: #721c24; padding: 12px; border: 1px solid #f1aeb5; border-radius: 4px; margin: 10px 0;"
	StateAttribute       = "data-eventbrite-state"
	StateUnavailable     = "unavailable"
	FallbackMessageClass = "eventbrite-widget-fallback"
	WidgetTypeCheckout   = "checkout"
)

// Block identity
const (
	BlockName          = "fluxstack/eventbrite-widget"
	BlockCategorySlug  = "fluxstack"
	BlockCategoryTitle = "Fluxstack"
)

// Block alignments
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
)

// Editor limits and presets
const (
	EditorMinHeight          = 300
	EditorMaxHeight          = 1000
	EditorMaxTransitionMS    = 1000
	EditorTransitionStepMS   = 50
	DefaultGradient          = "linear-gradient(135deg, #ff6600 0%, #e55a00 100%)"
	HoverTransformNone       = "none"
	HoverTransformScale      = "scale"
	HoverTransformLift       = "lift"
	HoverTransformScaleValue = "scale(1.05)"
	HoverTransformLiftValue  = "translateY(-2px)"
)

// Block variation names
const (
	VariationModalButton    = "modal-button"
	VariationEmbeddedWidget = "embedded-widget"
)

// Log message constants
const (
	LogMsgEngineCreated     = "ebwidget engine created"
	LogMsgNormalized        = "widget options normalized"
	LogMsgInvalidEventID    = "invalid event id - rendering error fragment"
	LogMsgCompiled          = "widget markup compiled"
	LogMsgCompileFailed     = "widget template execution failed"
	LogMsgLateRender        = "widget rendered after assets were emitted"
	LogMsgAssetsEmitted     = "widget assets emitted"
	LogMsgContentExpanded   = "content expanded"
	LogMsgContentParseError = "content parse failed - kept verbatim"
	LogMsgBlockParseFailed  = "block attributes invalid - rendering block error"
	LogMsgBlockRendered     = "block rendered"
	LogMsgConfigLoaded      = "configuration loaded"
)

// Log field names
const (
	LogFieldEventID  = "event_id"
	LogFieldMode     = "mode"
	LogFieldTag      = "tag"
	LogFieldLength   = "length"
	LogFieldBlocks   = "block_count"
	LogFieldLanguage = "language"
	LogFieldPath     = "path"
)

// Metadata keys for errors
const (
	MetaKeyEventID   = "event_id"
	MetaKeyReason    = "reason"
	MetaKeyTag       = "tag"
	MetaKeyPath      = "path"
	MetaKeyField     = "field"
	MetaKeyValue     = "value"
	MetaKeyVariation = "variation"
)

// Event ID rejection reasons
const (
	ReasonEmpty    = "empty"
	ReasonTooShort = "too_short"
	ReasonTooLong  = "too_long"
)
