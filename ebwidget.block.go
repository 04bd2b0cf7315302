package ebwidget

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/itsatony/go-ebwidget/internal"
	"github.com/tidwall/gjson"
)

// Block attribute JSON keys
const (
	BlockKeyEventID              = "eventId"
	BlockKeyWidgetType           = "widgetType"
	BlockKeyButtonText           = "buttonText"
	BlockKeyFontSize             = "fontSize"
	BlockKeyFontWeight           = "fontWeight"
	BlockKeyTextColor            = "textColor"
	BlockKeyBackgroundColor      = "backgroundColor"
	BlockKeyUseGradient          = "useGradient"
	BlockKeyBackgroundGradient   = "backgroundGradient"
	BlockKeyBorderWidth          = "borderWidth"
	BlockKeyBorderStyle          = "borderStyle"
	BlockKeyBorderColor          = "borderColor"
	BlockKeyBorderRadius         = "borderRadius"
	BlockKeyPaddingTop           = "paddingTop"
	BlockKeyPaddingRight         = "paddingRight"
	BlockKeyPaddingBottom        = "paddingBottom"
	BlockKeyPaddingLeft          = "paddingLeft"
	BlockKeyHoverBackgroundColor = "hoverBackgroundColor"
	BlockKeyHoverTextColor       = "hoverTextColor"
	BlockKeyHoverBorderColor     = "hoverBorderColor"
	BlockKeyHoverTransform       = "hoverTransform"
	BlockKeyTransitionDuration   = "transitionDuration"
	BlockKeyButtonClass          = "buttonClass"
	BlockKeyButtonStyle          = "buttonStyle"
	BlockKeyWidth                = "width"
	BlockKeyHeight               = "height"
	BlockKeyContainerClass       = "containerClass"
	BlockKeyContainerStyle       = "containerStyle"
	BlockKeyAlignment            = "alignment"
)

// htmlClassChars is the govalidator whitelist for a single CSS class name
const htmlClassChars = "A-Za-z0-9_-"

// BlockAttributes is the attribute set stored in a serialized widget block.
type BlockAttributes struct {
	EventID              string `json:"eventId"`
	WidgetType           string `json:"widgetType"`
	ButtonText           string `json:"buttonText"`
	FontSize             string `json:"fontSize"`
	FontWeight           string `json:"fontWeight"`
	TextColor            string `json:"textColor"`
	BackgroundColor      string `json:"backgroundColor"`
	UseGradient          bool   `json:"useGradient"`
	BackgroundGradient   string `json:"backgroundGradient"`
	BorderWidth          string `json:"borderWidth"`
	BorderStyle          string `json:"borderStyle"`
	BorderColor          string `json:"borderColor"`
	BorderRadius         string `json:"borderRadius"`
	PaddingTop           string `json:"paddingTop"`
	PaddingRight         string `json:"paddingRight"`
	PaddingBottom        string `json:"paddingBottom"`
	PaddingLeft          string `json:"paddingLeft"`
	HoverBackgroundColor string `json:"hoverBackgroundColor"`
	HoverTextColor       string `json:"hoverTextColor"`
	HoverBorderColor     string `json:"hoverBorderColor"`
	HoverTransform       string `json:"hoverTransform"`
	TransitionDuration   string `json:"transitionDuration"`
	ButtonClass          string `json:"buttonClass"`
	ButtonStyle          string `json:"buttonStyle"`
	Width                string `json:"width"`
	Height               int    `json:"height"`
	ContainerClass       string `json:"containerClass"`
	ContainerStyle       string `json:"containerStyle"`
	Alignment            string `json:"alignment"`
}

// DefaultBlockAttributes returns the attribute defaults of a newly inserted block.
func DefaultBlockAttributes() BlockAttributes {
	attrs := BlockAttributes{
		WidgetType: ModeNameModal,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Alignment:  AlignLeft,
	}
	attrs.applyStylePreset()
	return attrs
}

// applyStylePreset restores the baseline button appearance
func (a *BlockAttributes) applyStylePreset() {
	a.ButtonText = DefaultButtonText
	a.FontSize = "16px"
	a.FontWeight = "bold"
	a.TextColor = "#ffffff"
	a.BackgroundColor = "#ff6600"
	a.UseGradient = false
	a.BackgroundGradient = ""
	a.BorderWidth = "2px"
	a.BorderStyle = "solid"
	a.BorderColor = "transparent"
	a.BorderRadius = "4px"
	a.PaddingTop = "12px"
	a.PaddingRight = "24px"
	a.PaddingBottom = "12px"
	a.PaddingLeft = "24px"
	a.HoverBackgroundColor = "#e55a00"
	a.HoverTextColor = "#ffffff"
	a.HoverBorderColor = ""
	a.HoverTransform = HoverTransformScale
	a.TransitionDuration = "300ms"
}

// ParseBlockAttributes reads a block attribute object on top of the block defaults.
// Absent and null keys keep their default. Numbers and strings are both accepted
// for text and height values. Empty input yields the defaults.
func ParseBlockAttributes(data []byte) (BlockAttributes, error) {
	attrs := DefaultBlockAttributes()
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return attrs, nil
	}
	if !gjson.ValidBytes(data) {
		return attrs, NewBlockParseError(ErrMsgBlockJSONInvalid, nil)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return attrs, NewBlockParseError(ErrMsgBlockNotObject, nil)
	}

	str := func(key string, dst *string) {
		if r := parsed.Get(key); r.Exists() && r.Type != gjson.Null {
			*dst = r.String()
		}
	}
	str(BlockKeyEventID, &attrs.EventID)
	str(BlockKeyWidgetType, &attrs.WidgetType)
	str(BlockKeyButtonText, &attrs.ButtonText)
	str(BlockKeyFontSize, &attrs.FontSize)
	str(BlockKeyFontWeight, &attrs.FontWeight)
	str(BlockKeyTextColor, &attrs.TextColor)
	str(BlockKeyBackgroundColor, &attrs.BackgroundColor)
	str(BlockKeyBackgroundGradient, &attrs.BackgroundGradient)
	str(BlockKeyBorderWidth, &attrs.BorderWidth)
	str(BlockKeyBorderStyle, &attrs.BorderStyle)
	str(BlockKeyBorderColor, &attrs.BorderColor)
	str(BlockKeyBorderRadius, &attrs.BorderRadius)
	str(BlockKeyPaddingTop, &attrs.PaddingTop)
	str(BlockKeyPaddingRight, &attrs.PaddingRight)
	str(BlockKeyPaddingBottom, &attrs.PaddingBottom)
	str(BlockKeyPaddingLeft, &attrs.PaddingLeft)
	str(BlockKeyHoverBackgroundColor, &attrs.HoverBackgroundColor)
	str(BlockKeyHoverTextColor, &attrs.HoverTextColor)
	str(BlockKeyHoverBorderColor, &attrs.HoverBorderColor)
	str(BlockKeyHoverTransform, &attrs.HoverTransform)
	str(BlockKeyTransitionDuration, &attrs.TransitionDuration)
	str(BlockKeyButtonClass, &attrs.ButtonClass)
	str(BlockKeyButtonStyle, &attrs.ButtonStyle)
	str(BlockKeyWidth, &attrs.Width)
	str(BlockKeyContainerClass, &attrs.ContainerClass)
	str(BlockKeyContainerStyle, &attrs.ContainerStyle)
	str(BlockKeyAlignment, &attrs.Alignment)

	if r := parsed.Get(BlockKeyUseGradient); r.Exists() && r.Type != gjson.Null {
		attrs.UseGradient = r.Bool()
	}
	if r := parsed.Get(BlockKeyHeight); r.Exists() && r.Type != gjson.Null {
		attrs.Height = parseHeight(r.String())
	}
	return attrs, nil
}

// ToShortcodeAttributes converts the block to the shortcode attribute shape.
// The block button class replaces the shortcode default when set.
func (a BlockAttributes) ToShortcodeAttributes() Attributes {
	return a.shortcodeAttributes()
}

func (a BlockAttributes) shortcodeAttributes() internal.Attributes {
	modal := "false"
	if a.WidgetType == ModeNameModal {
		modal = "true"
	}
	buttonClass := DefaultBlockButtonClass
	if a.ButtonClass != "" {
		buttonClass = sanitizeTextField(a.ButtonClass)
	}
	return internal.Attributes{
		AttrEventID:        a.EventID,
		AttrModal:          modal,
		AttrButtonText:     a.ButtonText,
		AttrWidth:          a.Width,
		AttrHeight:         strconv.Itoa(a.Height),
		AttrButtonClass:    buttonClass,
		AttrButtonStyle:    a.ButtonStyle,
		AttrContainerClass: a.ContainerClass,
		AttrContainerStyle: a.ContainerStyle,
	}
}

// RenderAttributes is ToShortcodeAttributes with the derived button styles and
// the alignment class applied, as used for server-side block rendering.
func (a BlockAttributes) RenderAttributes() Attributes {
	attrs := a.shortcodeAttributes()
	if style := BuildButtonStyles(a); style != "" {
		attrs[AttrButtonStyle] = style
	}
	if class := a.AlignmentClass(); class != "" {
		attrs[AttrContainerClass] = strings.TrimSpace(attrs[AttrContainerClass] + " " + class)
	}
	return attrs
}

// AlignmentClass returns the text-align class for a non-left alignment, or "".
func (a BlockAttributes) AlignmentClass() string {
	if a.Alignment == "" || a.Alignment == AlignLeft {
		return ""
	}
	class := govalidator.WhiteList(a.Alignment, htmlClassChars)
	if class == "" {
		return ""
	}
	return ClassAlignPrefix + class
}

// BlockCategory is an entry in the editor's block inserter categories.
type BlockCategory struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Icon  string `json:"icon,omitempty"`
}

// BlockCategories prepends the widget's category to existing unless a category
// with the same slug is already present.
func BlockCategories(existing []BlockCategory) []BlockCategory {
	for _, c := range existing {
		if c.Slug == BlockCategorySlug {
			return existing
		}
	}
	out := make([]BlockCategory, 0, len(existing)+1)
	out = append(out, BlockCategory{Slug: BlockCategorySlug, Title: BlockCategoryTitle})
	return append(out, existing...)
}
