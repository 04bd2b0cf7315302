package ebwidget

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"sync"
)

// Stylesheet is the companion CSS for rendered widgets, served by the CLI preview server.
//
//go:embed assets/eventbrite-widget.css
var Stylesheet []byte

var assetTagsTmpl = template.Must(template.New("assetTags").Parse(
	`{{if .StylesheetURL}}<link rel="stylesheet" id="{{.StylesheetID}}" href="{{.StylesheetURL}}"/>` + "\n" + `{{end}}` +
		`<script src="{{.ScriptURL}}"></script>` + "\n",
))

type assetTagsData struct {
	StylesheetID  string
	StylesheetURL string
	ScriptURL     string
}

// Page records whether a widget was rendered while producing one page.
// It is safe for concurrent use.
type Page struct {
	mu      sync.Mutex
	used    bool
	emitted bool
}

// NewPage returns a Page with no widget rendered yet.
func NewPage() *Page {
	return &Page{}
}

// MarkUsed records that a widget was rendered. It reports whether the page
// assets had already been emitted, in which case they will not be loaded.
func (p *Page) MarkUsed() (late bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.used = true
	return p.emitted
}

// Used reports whether any widget was rendered on the page.
func (p *Page) Used() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.used
}

// MarkEmitted records that the page assets were written.
func (p *Page) MarkEmitted() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emitted = true
}

// Emitted reports whether the page assets were written.
func (p *Page) Emitted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.emitted
}

type pageKey struct{}

// WithPage returns a context carrying page.
func WithPage(ctx context.Context, page *Page) context.Context {
	return context.WithValue(ctx, pageKey{}, page)
}

// PageFromContext returns the Page stored in ctx, or nil.
func PageFromContext(ctx context.Context) *Page {
	page, _ := ctx.Value(pageKey{}).(*Page)
	return page
}

// renderAssetTags returns the stylesheet and script tags
func renderAssetTags(stylesheetURL, scriptURL string) (string, error) {
	var buf bytes.Buffer
	err := assetTagsTmpl.Execute(&buf, assetTagsData{
		StylesheetID:  StylesheetElementID,
		StylesheetURL: stylesheetURL,
		ScriptURL:     scriptURL,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
