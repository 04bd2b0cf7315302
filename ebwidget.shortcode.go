package ebwidget

import (
	"context"

	"github.com/itsatony/go-ebwidget/internal"
)

// ShortcodeHandler is the interface that shortcode handlers must implement.
// Each handler expands one shortcode tag into HTML.
type ShortcodeHandler interface {
	// Tag returns the shortcode name this handler expands (e.g., "fs_eventbrite").
	Tag() string

	// Render expands one occurrence of the shortcode.
	// attrs holds the shortcode attributes with lowercased names.
	// content is the raw text between the opening and closing tags ("" when self-closing).
	// A returned error removes the occurrence from the output and is logged.
	Render(ctx context.Context, attrs Attributes, content string) (string, error)
}

// ShortcodeFunc is a convenience type for creating simple handlers from functions.
type ShortcodeFunc struct {
	tag string
	fn  func(ctx context.Context, attrs Attributes, content string) (string, error)
}

// NewShortcodeFunc creates a new function-based handler.
func NewShortcodeFunc(
	tag string,
	fn func(ctx context.Context, attrs Attributes, content string) (string, error),
) *ShortcodeFunc {
	return &ShortcodeFunc{tag: tag, fn: fn}
}

// Tag returns the handler's shortcode name.
func (f *ShortcodeFunc) Tag() string {
	return f.tag
}

// Render executes the handler function.
func (f *ShortcodeFunc) Render(ctx context.Context, attrs Attributes, content string) (string, error) {
	return f.fn(ctx, attrs, content)
}

// handlerAdapter wraps a public ShortcodeHandler to implement internal.InternalHandler
type handlerAdapter struct {
	handler ShortcodeHandler
}

// Tag returns the handler's shortcode name.
func (a *handlerAdapter) Tag() string {
	return a.handler.Tag()
}

// Render passes the internal attribute map through the public interface.
func (a *handlerAdapter) Render(ctx context.Context, attrs internal.Attributes, content string) (string, error) {
	return a.handler.Render(ctx, attrs, content)
}

// widgetHandler expands the Eventbrite shortcode through its engine
type widgetHandler struct {
	engine *Engine
}

// Tag returns the configured Eventbrite shortcode name.
func (h *widgetHandler) Tag() string {
	return h.engine.config.shortcodeTag
}

// Render normalizes the attributes and compiles the widget. Enclosed content is ignored.
func (h *widgetHandler) Render(ctx context.Context, attrs Attributes, _ string) (string, error) {
	return h.engine.RenderShortcode(ctx, attrs), nil
}

// HasShortcode reports whether content contains the shortcode tag, including
// occurrences nested inside enclosing shortcodes. Escaped shortcodes do not count.
func HasShortcode(content, tag string) bool {
	if tag == "" {
		return false
	}
	root, ok := parseContent(content, nil)
	if !ok {
		return false
	}
	return containsShortcode(root.Children, tag)
}

func containsShortcode(nodes []internal.Node, tag string) bool {
	for _, node := range nodes {
		sc, ok := node.(*internal.ShortcodeNode)
		if !ok {
			continue
		}
		if sc.Name == tag {
			return true
		}
		if sc.Content != "" {
			if inner, ok := parseContent(sc.Content, nil); ok && containsShortcode(inner.Children, tag) {
				return true
			}
		}
	}
	return false
}
