package ebwidget

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeEventID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"valid twelve digits", "123456789012", "123456789012"},
		{"minimum length", "1234567890", "1234567890"},
		{"maximum length", "1234567890123456789", "1234567890123456789"},
		{"non digits stripped", "abc-1234-5678-90", "1234567890"},
		{"too short", "123456789", ""},
		{"too long", "12345678901234567890", ""},
		{"empty", "", ""},
		{"letters only", "event", ""},
		{"unicode digits ignored", "١٢٣٤٥٦٧٨٩٠", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeEventID(tt.raw))
		})
	}
}

func TestValidateEventID(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantCleaned string
		wantReason  string
	}{
		{"valid", "123456789012", "123456789012", ""},
		{"empty", "", "", ReasonEmpty},
		{"too short", "12-34", "1234", ReasonTooShort},
		{"too long", "12345678901234567890", "12345678901234567890", ReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := ValidateEventID(tt.raw)
			assert.Equal(t, tt.wantCleaned, cleaned)

			if tt.wantReason == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var customErr *cuserr.CustomError
			require.True(t, errors.As(err, &customErr))

			reason, ok := customErr.GetMetadata(MetaKeyReason)
			assert.True(t, ok)
			assert.Equal(t, tt.wantReason, reason)

			id, ok := customErr.GetMetadata(MetaKeyEventID)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCleaned, id)
		})
	}
}

func TestNormalize_Defaults(t *testing.T) {
	opts := Normalize(AttributesFromMap(map[string]string{AttrEventID: "123456789012"}))

	assert.Equal(t, WidgetOptions{
		EventID:     "123456789012",
		Mode:        ModeModal,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ButtonText:  DefaultButtonText,
		ButtonClass: DefaultButtonClass,
	}, opts)
}

func TestNormalize_NilAttributes(t *testing.T) {
	opts := Normalize(nil)
	assert.False(t, opts.Valid())
	assert.Equal(t, ModeModal, opts.Mode)
	assert.Equal(t, DefaultButtonText, opts.ButtonText)
}

func TestNormalize_Mode(t *testing.T) {
	tests := []struct {
		value string
		want  Mode
	}{
		{"true", ModeModal},
		{"TRUE", ModeModal},
		{" yes ", ModeModal},
		{"on", ModeModal},
		{"1", ModeModal},
		{"modal", ModeModal},
		{"false", ModeEmbedded},
		{"0", ModeEmbedded},
		{"", ModeEmbedded},
		{"embedded", ModeEmbedded},
		{"maybe", ModeEmbedded},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			opts := Normalize(AttributesFromMap(map[string]string{AttrModal: tt.value}))
			assert.Equal(t, tt.want, opts.Mode)
		})
	}
}

func TestNormalize_Height(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"600", 600},
		{"600px", 600},
		{"  42", 42},
		{"+7", 7},
		{"-5", DefaultHeight},
		{"0", DefaultHeight},
		{"tall", DefaultHeight},
		{"", DefaultHeight},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			opts := Normalize(AttributesFromMap(map[string]string{AttrHeight: tt.value}))
			assert.Equal(t, tt.want, opts.Height)
		})
	}
}

func TestNormalize_Sanitization(t *testing.T) {
	opts := Normalize(AttributesFromMap(map[string]string{
		AttrEventID:        "123456789012",
		AttrButtonText:     "  <b>Buy</b>\n\tnow  ",
		AttrButtonClass:    "btn <i>primary</i>",
		AttrWidth:          "50%<script>alert(1)</script>",
		AttrButtonStyle:    "color: red;<style>body{}</style>",
		AttrContainerStyle: "<em>margin: 0</em>",
		AttrContainerClass: "outer\x00 box",
		"unknown":          "ignored",
	}))

	assert.Equal(t, "Buy now", opts.ButtonText)
	assert.Equal(t, "btn primary", opts.ButtonClass)
	assert.Equal(t, "50%", opts.Width)
	assert.Equal(t, "color: red;", opts.ButtonStyle)
	assert.Equal(t, "margin: 0", opts.ContainerStyle)
	assert.Equal(t, "outer box", opts.ContainerClass)
}

func TestNormalize_EntityEncodedMarkup(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"encoded script in container style", AttrContainerStyle, "color:red;&lt;script&gt;alert(1)&lt;/script&gt;", "color:red;"},
		{"encoded image in button style", AttrButtonStyle, "&lt;img src=x onerror=alert(1)&gt;", ""},
		{"double encoded tag", AttrButtonStyle, "&amp;lt;b&amp;gt;bold: 1&amp;lt;/b&amp;gt;", "bold: 1"},
		{"encoded tag in button text", AttrButtonText, "&lt;b&gt;Buy&lt;/b&gt;", "Buy"},
		{"plain ampersand kept", AttrButtonText, "Rock &amp; Roll", "Rock & Roll"},
		{"lone less-than kept", AttrButtonText, "Under 5 &lt; 10", "Under 5 < 10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Normalize(AttributesFromMap(map[string]string{tt.key: tt.value}))
			got := map[string]string{
				AttrContainerStyle: opts.ContainerStyle,
				AttrButtonStyle:    opts.ButtonStyle,
				AttrButtonText:     opts.ButtonText,
			}[tt.key]
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<script")
			assert.NotContains(t, got, "<img")
		})
	}
}

func TestNormalize_InvalidUTF8Dropped(t *testing.T) {
	opts := Normalize(AttributesFromMap(map[string]string{
		AttrButtonText:  "\xff\xfe bad",
		AttrButtonClass: "btn\xc3",
		AttrButtonStyle: "color: red;\xff",
	}))
	assert.Equal(t, "bad", opts.ButtonText)
	assert.Equal(t, "btn", opts.ButtonClass)
	assert.Equal(t, "color: red;", opts.ButtonStyle)
}

func TestNormalize_EmptyButtonTextFallsBack(t *testing.T) {
	opts := Normalize(AttributesFromMap(map[string]string{AttrButtonText: "<b></b>"}))
	assert.Equal(t, DefaultButtonText, opts.ButtonText)
}

func TestNormalize_KeysAreCaseInsensitive(t *testing.T) {
	opts := Normalize(AttributesFromMap(map[string]string{"EVENT_ID": "123456789012", "Modal": "false"}))
	assert.Equal(t, "123456789012", opts.EventID)
	assert.Equal(t, ModeEmbedded, opts.Mode)
}

func TestLeadingInt_Saturates(t *testing.T) {
	assert.Equal(t, 1<<30, leadingInt("99999999999999999999999"))
	assert.Equal(t, -(1 << 30), leadingInt("-99999999999999999999999"))
}
