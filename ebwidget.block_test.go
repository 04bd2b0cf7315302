package ebwidget

import (
	"errors"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBlockAttributes(t *testing.T) {
	attrs := DefaultBlockAttributes()

	assert.Equal(t, ModeNameModal, attrs.WidgetType)
	assert.Equal(t, DefaultButtonText, attrs.ButtonText)
	assert.Equal(t, "16px", attrs.FontSize)
	assert.Equal(t, "#ff6600", attrs.BackgroundColor)
	assert.Equal(t, HoverTransformScale, attrs.HoverTransform)
	assert.Equal(t, "300ms", attrs.TransitionDuration)
	assert.Equal(t, DefaultWidth, attrs.Width)
	assert.Equal(t, DefaultHeight, attrs.Height)
	assert.Equal(t, AlignLeft, attrs.Alignment)
	assert.Empty(t, attrs.EventID)
}

func TestParseBlockAttributes(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		check   func(t *testing.T, a BlockAttributes)
		wantErr string
	}{
		{
			name: "empty input yields defaults",
			json: "  ",
			check: func(t *testing.T, a BlockAttributes) {
				assert.Equal(t, DefaultBlockAttributes(), a)
			},
		},
		{
			name: "overlay on defaults",
			json: `{"eventId":"123456789012","widgetType":"embedded","height":700,"useGradient":true}`,
			check: func(t *testing.T, a BlockAttributes) {
				assert.Equal(t, "123456789012", a.EventID)
				assert.Equal(t, ModeNameEmbedded, a.WidgetType)
				assert.Equal(t, 700, a.Height)
				assert.True(t, a.UseGradient)
				assert.Equal(t, DefaultButtonText, a.ButtonText)
			},
		},
		{
			name: "numeric event id and string height",
			json: `{"eventId":123456789012,"height":"640px"}`,
			check: func(t *testing.T, a BlockAttributes) {
				assert.Equal(t, "123456789012", a.EventID)
				assert.Equal(t, 640, a.Height)
			},
		},
		{
			name: "null keeps default",
			json: `{"buttonText":null,"height":null}`,
			check: func(t *testing.T, a BlockAttributes) {
				assert.Equal(t, DefaultButtonText, a.ButtonText)
				assert.Equal(t, DefaultHeight, a.Height)
			},
		},
		{
			name: "non positive height uses default",
			json: `{"height":0}`,
			check: func(t *testing.T, a BlockAttributes) {
				assert.Equal(t, DefaultHeight, a.Height)
			},
		},
		{
			name:    "invalid json",
			json:    `{"eventId":`,
			wantErr: ErrMsgBlockJSONInvalid,
		},
		{
			name:    "not an object",
			json:    `["123456789012"]`,
			wantErr: ErrMsgBlockNotObject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs, err := ParseBlockAttributes([]byte(tt.json))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				var customErr *cuserr.CustomError
				assert.True(t, errors.As(err, &customErr))
				return
			}
			require.NoError(t, err)
			tt.check(t, attrs)
		})
	}
}

func TestBlockAttributes_ToShortcodeAttributes(t *testing.T) {
	attrs := DefaultBlockAttributes()
	attrs.EventID = testEventID
	attrs.ContainerClass = "outer"

	sc := attrs.ToShortcodeAttributes()
	assert.Equal(t, testEventID, sc.GetDefault(AttrEventID, ""))
	assert.Equal(t, "true", sc.GetDefault(AttrModal, ""))
	assert.Equal(t, DefaultBlockButtonClass, sc.GetDefault(AttrButtonClass, ""))
	assert.Equal(t, "550", sc.GetDefault(AttrHeight, ""))
	assert.Equal(t, "outer", sc.GetDefault(AttrContainerClass, ""))

	attrs.WidgetType = ModeNameEmbedded
	attrs.ButtonClass = "custom <b>btn</b>"
	sc = attrs.ToShortcodeAttributes()
	assert.Equal(t, "false", sc.GetDefault(AttrModal, ""))
	assert.Equal(t, "custom btn", sc.GetDefault(AttrButtonClass, ""))
}

func TestBlockAttributes_RenderAttributes(t *testing.T) {
	attrs := DefaultBlockAttributes()
	attrs.EventID = testEventID
	attrs.Alignment = AlignCenter
	attrs.ContainerClass = "outer"

	ra := attrs.RenderAttributes()
	assert.Equal(t, "outer has-text-align-center", ra.GetDefault(AttrContainerClass, ""))
	assert.Equal(t, BuildButtonStyles(attrs), ra.GetDefault(AttrButtonStyle, ""))

	attrs.Alignment = AlignLeft
	attrs.ContainerClass = ""
	ra = attrs.RenderAttributes()
	assert.Empty(t, ra.GetDefault(AttrContainerClass, ""))
}

func TestBlockAttributes_AlignmentClass(t *testing.T) {
	tests := []struct {
		alignment string
		want      string
	}{
		{"", ""},
		{AlignLeft, ""},
		{AlignCenter, "has-text-align-center"},
		{AlignRight, "has-text-align-right"},
		{`right" x="`, "has-text-align-rightx"},
	}

	for _, tt := range tests {
		t.Run(tt.alignment, func(t *testing.T) {
			a := BlockAttributes{Alignment: tt.alignment}
			assert.Equal(t, tt.want, a.AlignmentClass())
		})
	}
}

func TestBlockCategories(t *testing.T) {
	existing := []BlockCategory{{Slug: "text", Title: "Text"}}

	got := BlockCategories(existing)
	require.Len(t, got, 2)
	assert.Equal(t, BlockCategory{Slug: BlockCategorySlug, Title: BlockCategoryTitle}, got[0])
	assert.Equal(t, existing[0], got[1])

	again := BlockCategories(got)
	assert.Len(t, again, 2)
}
