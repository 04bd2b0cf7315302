package ebwidget

import (
	"github.com/itsatony/go-cuserr"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Event ID errors
	ErrMsgEventIDEmpty    = "event id is empty"
	ErrMsgEventIDTooShort = "event id has too few digits"
	ErrMsgEventIDTooLong  = "event id has too many digits"

	// Block errors
	ErrMsgBlockJSONInvalid = "invalid block attribute JSON"
	ErrMsgBlockNotObject   = "block attributes must be a JSON object"

	// Configuration errors
	ErrMsgConfigRead    = "failed to read configuration file"
	ErrMsgConfigParse   = "failed to parse configuration file"
	ErrMsgConfigInvalid = "invalid configuration value"

	// Registry errors
	ErrMsgNilHandler     = "shortcode handler cannot be nil"
	ErrMsgRegisterFailed = "shortcode handler registration failed"

	// Rendering errors
	ErrMsgRenderFailed = "widget rendering failed"
)

// Error code constants for categorization
const (
	ErrCodeValidation = "EBWIDGET_VALIDATION"
	ErrCodeBlock      = "EBWIDGET_BLOCK"
	ErrCodeConfig     = "EBWIDGET_CONFIG"
	ErrCodeRegistry   = "EBWIDGET_REGISTRY"
	ErrCodeRender     = "EBWIDGET_RENDER"
)

// NewInvalidEventIDError creates a validation error for a rejected event id.
// cleaned is the digits-only value that failed the length check.
func NewInvalidEventIDError(cleaned, reason string) error {
	msg := ErrMsgEventIDEmpty
	switch reason {
	case ReasonTooShort:
		msg = ErrMsgEventIDTooShort
	case ReasonTooLong:
		msg = ErrMsgEventIDTooLong
	}
	return cuserr.NewValidationError(ErrCodeValidation, msg).
		WithMetadata(MetaKeyEventID, cleaned).
		WithMetadata(MetaKeyReason, reason)
}

// NewBlockParseError creates an error for block attribute JSON that cannot be used
func NewBlockParseError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeBlock, msg)
	}
	return cuserr.NewValidationError(ErrCodeBlock, msg)
}

// NewConfigReadError creates an error for an unreadable configuration file
func NewConfigReadError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigRead).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigParseError creates an error for a malformed configuration file
func NewConfigParseError(path string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeConfig, ErrMsgConfigParse).
		WithMetadata(MetaKeyPath, path)
}

// NewConfigValueError creates an error for a configuration field with an unusable value
func NewConfigValueError(field, value string) error {
	return cuserr.NewValidationError(ErrCodeConfig, ErrMsgConfigInvalid).
		WithMetadata(MetaKeyField, field).
		WithMetadata(MetaKeyValue, value)
}

// NewNilHandlerError creates an error for registering a nil handler
func NewNilHandlerError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgNilHandler)
}

// NewRegisterError wraps a registry failure for tag
func NewRegisterError(tag string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgRegisterFailed).
		WithMetadata(MetaKeyTag, tag)
}

// NewRenderError wraps a template execution failure
func NewRenderError(eventID string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRender, ErrMsgRenderFailed).
		WithMetadata(MetaKeyEventID, eventID)
}
