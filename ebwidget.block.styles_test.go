package ebwidget

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildButtonStyles_Defaults(t *testing.T) {
	got := BuildButtonStyles(DefaultBlockAttributes())

	want := strings.Join([]string{
		"font-size: 16px",
		"font-weight: bold",
		"color: #ffffff",
		"background-color: #ff6600",
		"border: 2px solid transparent",
		"border-radius: 4px",
		"padding: 12px 24px 12px 24px",
		"transition: all 300ms",
		"--fs-eb-hover-bg: #e55a00",
		"--fs-eb-hover-color: #ffffff",
		"--fs-eb-hover-transform: scale(1.05)",
	}, "; ")
	assert.Equal(t, want, got)
}

func TestBuildButtonStyles(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *BlockAttributes)
		contains []string
		excludes []string
	}{
		{
			name:     "embedded has no button style",
			mutate:   func(a *BlockAttributes) { a.WidgetType = ModeNameEmbedded },
			excludes: []string{"font-size"},
		},
		{
			name: "gradient replaces background color",
			mutate: func(a *BlockAttributes) {
				a.UseGradient = true
				a.BackgroundGradient = DefaultGradient
			},
			contains: []string{"background: " + DefaultGradient},
			excludes: []string{"background-color"},
		},
		{
			name:     "gradient flag without gradient keeps color",
			mutate:   func(a *BlockAttributes) { a.UseGradient = true },
			contains: []string{"background-color: #ff6600"},
		},
		{
			name: "border style and color defaults",
			mutate: func(a *BlockAttributes) {
				a.BorderStyle = ""
				a.BorderColor = ""
				a.BorderWidth = "3px"
			},
			contains: []string{"border: 3px solid transparent"},
		},
		{
			name:     "no border without width",
			mutate:   func(a *BlockAttributes) { a.BorderWidth = "" },
			excludes: []string{"border: "},
		},
		{
			name:     "partial padding omitted",
			mutate:   func(a *BlockAttributes) { a.PaddingLeft = "" },
			excludes: []string{"padding"},
		},
		{
			name: "lift transform and hover border",
			mutate: func(a *BlockAttributes) {
				a.HoverTransform = HoverTransformLift
				a.HoverBorderColor = "#000"
			},
			contains: []string{"--fs-eb-hover-transform: translateY(-2px)", "--fs-eb-hover-border: #000"},
		},
		{
			name:     "no transform",
			mutate:   func(a *BlockAttributes) { a.HoverTransform = HoverTransformNone },
			excludes: []string{CSSVarHoverTransform},
		},
		{
			name:     "custom style appended without tags",
			mutate:   func(a *BlockAttributes) { a.ButtonStyle = "<b>letter-spacing: 1px</b>" },
			contains: []string{"; letter-spacing: 1px"},
			excludes: []string{"<b>"},
		},
		{
			name:     "entity encoded markup stripped from custom style",
			mutate:   func(a *BlockAttributes) { a.ButtonStyle = "&lt;img src=x onerror=alert(1)&gt;letter-spacing: 1px" },
			contains: []string{"; letter-spacing: 1px"},
			excludes: []string{"<img", "onerror"},
		},
		{
			name:     "markup stripped from values",
			mutate:   func(a *BlockAttributes) { a.TextColor = "<script>x</script>red" },
			contains: []string{"color: red"},
			excludes: []string{"script"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := DefaultBlockAttributes()
			tt.mutate(&attrs)
			got := BuildButtonStyles(attrs)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, got, s)
			}
		})
	}
}
