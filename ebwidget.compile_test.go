package ebwidget

import (
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventID = "123456789012"

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func modalOptions() WidgetOptions {
	return WidgetOptions{
		EventID:     testEventID,
		Mode:        ModeModal,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ButtonText:  DefaultButtonText,
		ButtonClass: DefaultButtonClass,
	}
}

func TestCompileOptions_InvalidEventID(t *testing.T) {
	out := CompileOptions(WidgetOptions{Mode: ModeModal})

	doc := parseHTML(t, out)
	alert := doc.Find("div." + ClassError)
	require.Equal(t, 1, alert.Length())
	assert.Equal(t, "alert", alert.AttrOr("role", ""))
	assert.Equal(t, "assertive", alert.AttrOr("aria-live", ""))
	assert.Equal(t, MsgShortcodeError, alert.Text())
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "<button")
}

func TestCompileOptions_Modal(t *testing.T) {
	opts := modalOptions()
	opts.ButtonStyle = "color: red"
	opts.ContainerClass = "outer"
	opts.ContainerStyle = "margin: 0;"

	out := CompileOptions(opts)
	doc := parseHTML(t, out)

	wrapper := doc.Find("div." + ClassWrapper)
	require.Equal(t, 1, wrapper.Length())
	assert.Equal(t, ClassWrapper+" outer", wrapper.AttrOr("class", ""))
	assert.Equal(t, "margin: 0;width: 100%;", wrapper.AttrOr("style", ""))

	button := wrapper.Find("button")
	require.Equal(t, 1, button.Length())
	assert.Equal(t, "button", button.AttrOr("type", ""))
	assert.Equal(t, IDPrefixTrigger+testEventID, button.AttrOr("id", ""))
	assert.Equal(t, DefaultButtonClass+" "+IDPrefixTrigger+testEventID, button.AttrOr("class", ""))
	assert.Equal(t, "dialog", button.AttrOr("aria-haspopup", ""))
	assert.Equal(t, "Get Tickets - opens ticket checkout", button.AttrOr("aria-label", ""))
	assert.Equal(t, "color: red", button.AttrOr("style", ""))
	assert.Equal(t, DefaultButtonText, button.Find("span").Text())

	assert.Equal(t, 0, doc.Find("div[role=region]").Length())
	script := wrapper.Find("script").Text()
	assert.Contains(t, script, `modalTriggerElementId: "`+IDPrefixTrigger+testEventID+`"`)
	assert.NotContains(t, script, "iframeContainerId")
}

func TestCompileOptions_ModalWithoutButtonStyle(t *testing.T) {
	out := CompileOptions(modalOptions())
	button := parseHTML(t, out).Find("button")
	_, hasStyle := button.Attr("style")
	assert.False(t, hasStyle)
}

func TestCompileOptions_Embedded(t *testing.T) {
	opts := modalOptions()
	opts.Mode = ModeEmbedded
	opts.Height = 700
	opts.Width = "80%"

	out := CompileOptions(opts)
	doc := parseHTML(t, out)

	container := doc.Find("div[role=region]")
	require.Equal(t, 1, container.Length())
	assert.Equal(t, IDPrefixContainer+testEventID, container.AttrOr("id", ""))
	assert.Equal(t, IDPrefixContainer+testEventID, container.AttrOr("class", ""))
	assert.Equal(t, "true", container.AttrOr("aria-busy", ""))
	assert.Equal(t, MsgCheckoutRegion, container.AttrOr("aria-label", ""))
	assert.Equal(t, "height: 700px;", container.AttrOr("style", ""))
	assert.Equal(t, "width: 80%;", doc.Find("div."+ClassWrapper).AttrOr("style", ""))
	assert.Equal(t, 0, doc.Find("button").Length())

	script := doc.Find("script").Text()
	assert.Contains(t, script, "iframeContainerHeight: 700,")
	assert.NotContains(t, script, "modalTriggerElementId")
}

func TestCompileOptions_EscapesAttributes(t *testing.T) {
	opts := modalOptions()
	opts.ButtonText = `Say "hi" & <go>`
	opts.ContainerClass = `x" onclick="alert(1)`

	out := CompileOptions(opts)
	assert.NotContains(t, out, `onclick="alert(1)"`)
	assert.NotContains(t, out, "<go>")

	doc := parseHTML(t, out)
	assert.Equal(t, `Say "hi" & <go>`, doc.Find("button span").Text())
	assert.Equal(t, ClassWrapper+` x" onclick="alert(1)`, doc.Find("div").First().AttrOr("class", ""))
}

func TestEngine_RenderShortcodeText(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains []string
		excludes []string
	}{
		{
			name:    "event id digits extracted",
			content: `[fs_eventbrite event_id="12345abc678901"]`,
			contains: []string{
				`eventId: "12345678901"`,
				"modal: true,",
				`id="` + IDPrefixTrigger + `12345678901"`,
			},
		},
		{
			name:     "modal ignores height",
			content:  `[fs_eventbrite event_id="123456789012" modal="true" height="777"]`,
			contains: []string{"<button"},
			excludes: []string{"777", "px;", "iframeContainerHeight"},
		},
		{
			name:    "embedded with height",
			content: `[fs_eventbrite event_id="123456789012" modal="false" height="400"]`,
			contains: []string{
				`style="height: 400px;"`,
				"iframeContainerHeight: 400,",
				`id="` + IDPrefixContainer + `123456789012"`,
			},
			excludes: []string{"<button", "modal: true"},
		},
		{
			name:     "entity encoded style markup",
			content:  `[fs_eventbrite event_id="123456789012" button_style="&lt;img src=x onerror=alert(1)&gt;" container_style="color:red;&lt;script&gt;alert(1)&lt;/script&gt;"]`,
			contains: []string{`style="color:red;width: 100%;"`},
			excludes: []string{"<img", "onerror", "alert(1)"},
		},
	}

	engine := MustNew()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.ExpandContent(context.Background(), tt.content)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestEngine_RenderFailureDoesNotMarkPage(t *testing.T) {
	engine := MustNew()
	engine.compiler.widgetTemplate = template.Must(template.New("broken").Parse(`{{.Missing}}`))

	page := NewPage()
	out := engine.RenderOptions(WithPage(context.Background(), page), modalOptions())

	assert.Equal(t, 1, parseHTML(t, out).Find("div."+ClassError).Length())
	assert.False(t, page.Used())
	assert.Empty(t, engine.AssetTags(page))
}

func TestCompileOptions_Deterministic(t *testing.T) {
	opts := modalOptions()
	assert.Equal(t, CompileOptions(opts), CompileOptions(opts))
}

func TestEngineCompile_LocalizedError(t *testing.T) {
	engine := MustNew(WithErrorMessage("Bitte Event-ID angeben"))
	out := engine.Compile(WidgetOptions{})
	assert.Equal(t, "Bitte Event-ID angeben", parseHTML(t, out).Find("div."+ClassError).Text())
}

func TestWrapperStyle(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{"no custom style", "", "width: 100%;"},
		{"trailing semicolon", "color: red;", "color: red;width: 100%;"},
		{"trailing separator", "color: red; ", "color: red;width: 100%;"},
		{"no semicolon", "color: red", "color: red;width: 100%;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := modalOptions()
			opts.ContainerStyle = tt.style
			assert.Equal(t, tt.want, wrapperStyle(opts))
		})
	}
}
