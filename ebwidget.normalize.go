package ebwidget

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/asaskevich/govalidator"
)

// eventIDDigits is the govalidator whitelist for event ids
const eventIDDigits = "0-9"

// Normalize applies defaults to raw shortcode attributes and sanitizes every field.
// It never fails: an invalid event id yields options with an empty EventID.
func Normalize(raw Attributes) WidgetOptions {
	return normalizeWith(raw, DefaultButtonClass)
}

func normalizeWith(raw Attributes, defaultButtonClass string) WidgetOptions {
	attrs := lowerKeys(raw)
	get := func(key, def string) string {
		if v, ok := attrs[key]; ok {
			return v
		}
		return def
	}

	opts := WidgetOptions{
		EventID:        SanitizeEventID(get(AttrEventID, "")),
		Mode:           parseMode(get(AttrModal, DefaultModal)),
		Width:          sanitizeTextField(get(AttrWidth, DefaultWidth)),
		Height:         parseHeight(get(AttrHeight, DefaultHeightValue)),
		ButtonText:     sanitizeTextField(get(AttrButtonText, DefaultButtonText)),
		ButtonClass:    sanitizeTextField(get(AttrButtonClass, defaultButtonClass)),
		ButtonStyle:    stripAllTags(get(AttrButtonStyle, "")),
		ContainerClass: sanitizeTextField(get(AttrContainerClass, "")),
		ContainerStyle: stripAllTags(get(AttrContainerStyle, "")),
	}
	if opts.ButtonText == "" {
		opts.ButtonText = DefaultButtonText
	}
	return opts
}

// SanitizeEventID reduces raw to its ASCII digits and returns it when the
// length is within bounds, or "" otherwise.
func SanitizeEventID(raw string) string {
	cleaned, err := ValidateEventID(raw)
	if err != nil {
		return ""
	}
	return cleaned
}

// ValidateEventID is the event id rule shared by rendering and the editor.
// It always returns the digits-only value; the error reports why it was rejected.
func ValidateEventID(raw string) (string, error) {
	cleaned := govalidator.WhiteList(raw, eventIDDigits)
	switch {
	case cleaned == "":
		return cleaned, NewInvalidEventIDError(cleaned, ReasonEmpty)
	case len(cleaned) < EventIDMinLength:
		return cleaned, NewInvalidEventIDError(cleaned, ReasonTooShort)
	case len(cleaned) > EventIDMaxLength:
		return cleaned, NewInvalidEventIDError(cleaned, ReasonTooLong)
	}
	return cleaned, nil
}

// parseMode treats boolean-true spellings and "modal" as modal, anything else as embedded
func parseMode(v string) Mode {
	v = strings.ToLower(strings.TrimSpace(v))
	if govalidator.IsIn(v, modalTrueValues...) {
		return ModeModal
	}
	return ModeEmbedded
}

// parseHeight reads the leading integer of v; non-numeric or non-positive values use the default
func parseHeight(v string) int {
	if h := leadingInt(v); h > 0 {
		return h
	}
	return DefaultHeight
}

// leadingInt parses an optional sign and the digits that follow leading whitespace.
// It stops at the first non-digit and saturates instead of overflowing.
func leadingInt(v string) int {
	v = strings.TrimLeft(v, " \t\n\r\v\f")
	neg := false
	if v != "" && (v[0] == '+' || v[0] == '-') {
		neg = v[0] == '-'
		v = v[1:]
	}
	const limit = 1 << 30
	n := 0
	for i := 0; i < len(v) && v[i] >= '0' && v[i] <= '9'; i++ {
		n = n*10 + int(v[i]-'0')
		if n > limit {
			n = limit
			break
		}
	}
	if neg {
		return -n
	}
	return n
}

// sanitizeTextField strips markup, invalid UTF-8 and control characters and collapses whitespace
func sanitizeTextField(v string) string {
	v = stripAllTags(v)
	v = strings.Join(strings.Fields(v), " ")
	return strings.TrimSpace(govalidator.StripLow(v, false))
}

// maxStripPasses bounds how many layers of entity-encoded markup are unwrapped
const maxStripPasses = 8

// stripAllTags removes every element from v, dropping script and style
// contents entirely, and returns the trimmed text. Invalid UTF-8 is dropped.
// Entities decoded into new markup are stripped again until the text is stable;
// text that never settles yields "".
func stripAllTags(v string) string {
	v = strings.ToValidUTF8(v, "")
	for i := 0; i < maxStripPasses; i++ {
		if !strings.ContainsAny(v, "<&") {
			return strings.TrimSpace(v)
		}
		next, ok := stripTagsOnce(v)
		if !ok {
			return ""
		}
		if next == v {
			return next
		}
		v = next
	}
	return ""
}

func stripTagsOnce(v string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(v))
	if err != nil {
		return "", false
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text()), true
}

func lowerKeys(raw Attributes) map[string]string {
	if raw == nil {
		return map[string]string{}
	}
	m := raw.Map()
	lowered := make(map[string]string, len(m))
	for k, v := range m {
		lowered[strings.ToLower(k)] = v
	}
	return lowered
}
