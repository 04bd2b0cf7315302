package ebwidget

import (
	"strings"
)

// Hover custom properties read by the widget stylesheet
const (
	CSSVarHoverBackground = "--fs-eb-hover-bg"
	CSSVarHoverColor      = "--fs-eb-hover-color"
	CSSVarHoverBorder     = "--fs-eb-hover-border"
	CSSVarHoverTransform  = "--fs-eb-hover-transform"
)

const styleSeparator = "; "

// BuildButtonStyles derives the inline button style from block attributes.
// Embedded blocks have no button and yield "".
func BuildButtonStyles(a BlockAttributes) string {
	if a.WidgetType == ModeNameEmbedded {
		return ""
	}

	var styles []string
	add := func(prop, value string) {
		if value = cssValue(value); value != "" {
			styles = append(styles, prop+": "+value)
		}
	}

	add("font-size", a.FontSize)
	add("font-weight", a.FontWeight)
	add("color", a.TextColor)

	if a.UseGradient && a.BackgroundGradient != "" {
		add("background", a.BackgroundGradient)
	} else {
		add("background-color", a.BackgroundColor)
	}

	if width := cssValue(a.BorderWidth); width != "" {
		style := firstNonEmpty(cssValue(a.BorderStyle), "solid")
		color := firstNonEmpty(cssValue(a.BorderColor), "transparent")
		styles = append(styles, "border: "+width+" "+style+" "+color)
	}

	add("border-radius", a.BorderRadius)

	padding := []string{cssValue(a.PaddingTop), cssValue(a.PaddingRight), cssValue(a.PaddingBottom), cssValue(a.PaddingLeft)}
	if allNonEmpty(padding) {
		styles = append(styles, "padding: "+strings.Join(padding, " "))
	}

	if d := cssValue(a.TransitionDuration); d != "" {
		styles = append(styles, "transition: all "+d)
	}

	add(CSSVarHoverBackground, a.HoverBackgroundColor)
	add(CSSVarHoverColor, a.HoverTextColor)
	add(CSSVarHoverBorder, a.HoverBorderColor)
	add(CSSVarHoverTransform, hoverTransformValue(a.HoverTransform))

	if custom := stripAllTags(a.ButtonStyle); custom != "" {
		styles = append(styles, custom)
	}

	return strings.Join(styles, styleSeparator)
}

// hoverTransformValue maps the editor's transform choice to a CSS transform
func hoverTransformValue(choice string) string {
	switch choice {
	case HoverTransformScale:
		return HoverTransformScaleValue
	case HoverTransformLift:
		return HoverTransformLiftValue
	}
	return ""
}

func cssValue(v string) string {
	return stripAllTags(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func allNonEmpty(values []string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}
