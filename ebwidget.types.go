package ebwidget

import (
	"strings"

	"github.com/itsatony/go-ebwidget/internal"
)

// Mode selects how the widget is presented.
type Mode int

const (
	// ModeModal renders a trigger button that opens the hosted modal checkout.
	ModeModal Mode = iota
	// ModeEmbedded renders a container that hosts the checkout iframe.
	ModeEmbedded
)

// String returns the widget type name for the mode.
func (m Mode) String() string {
	if m == ModeEmbedded {
		return ModeNameEmbedded
	}
	return ModeNameModal
}

// WidgetOptions is the normalized, request-scoped configuration of one widget.
// An empty EventID means the raw identifier was missing or invalid.
type WidgetOptions struct {
	EventID        string
	Mode           Mode
	Width          string
	Height         int
	ButtonText     string
	ButtonClass    string
	ButtonStyle    string
	ContainerClass string
	ContainerStyle string
}

// Valid reports whether the options carry a usable event id.
func (o WidgetOptions) Valid() bool {
	return o.EventID != ""
}

// TriggerID returns the element id of the modal trigger button.
func (o WidgetOptions) TriggerID() string {
	return IDPrefixTrigger + o.EventID
}

// ContainerID returns the element id of the embedded iframe container.
func (o WidgetOptions) ContainerID() string {
	return IDPrefixContainer + o.EventID
}

// Attributes provides read-only access to shortcode attributes.
// All attribute values are strings; handlers must convert as needed.
type Attributes interface {
	// Get retrieves an attribute value.
	// Returns the value and true if found, or empty string and false if not.
	Get(key string) (string, bool)

	// GetDefault retrieves an attribute value with a fallback.
	GetDefault(key, defaultVal string) string

	// Has checks if an attribute exists.
	Has(key string) bool

	// Keys returns all attribute keys in sorted order.
	Keys() []string

	// Map returns a copy of all attributes as a map.
	Map() map[string]string
}

// AttributesFromMap builds Attributes from a plain map. Keys are lowercased,
// matching how the shortcode lexer reports attribute names.
func AttributesFromMap(m map[string]string) Attributes {
	attrs := make(internal.Attributes, len(m))
	for k, v := range m {
		attrs[strings.ToLower(k)] = v
	}
	return attrs
}
