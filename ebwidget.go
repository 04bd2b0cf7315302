// Package ebwidget renders Eventbrite ticket-purchase widgets from shortcodes and
// serialized content blocks.
//
// A widget is either a trigger button that opens Eventbrite's modal checkout or a
// container that hosts the embedded checkout iframe:
//
//	[fs_eventbrite event_id="1234567890123"]
//	[fs_eventbrite event_id="1234567890123" modal="false" height="600"]
//
// # Basic Usage
//
// Create an engine, attach a Page to the render context and expand content:
//
//	engine := ebwidget.MustNew()
//	page := ebwidget.NewPage()
//	ctx := ebwidget.WithPage(context.Background(), page)
//
//	html, err := engine.ExpandContent(ctx, postContent)
//	// ... emit html ...
//	footer := engine.AssetTags(page) // stylesheet and widget script, or ""
//
// # Blocks
//
// Serialized blocks are expanded alongside shortcodes:
//
//	<!-- wp:fluxstack/eventbrite-widget {"eventId":"1234567890123","widgetType":"modal"} /-->
//
// Block attributes can also be rendered directly:
//
//	attrs, _ := ebwidget.ParseBlockAttributes(data)
//	html := engine.RenderBlock(ctx, attrs)
//
// # Event IDs
//
// Event identifiers are reduced to their digits and must be 10 to 19 digits long.
// A missing or invalid identifier renders an accessible alert instead of the widget,
// and such a render never requests the widget assets.
//
// # Custom Shortcodes
//
// Additional shortcodes can share the expander:
//
//	engine.MustRegister(ebwidget.NewShortcodeFunc("year",
//	    func(ctx context.Context, attrs ebwidget.Attributes, content string) (string, error) {
//	        return strconv.Itoa(time.Now().Year()), nil
//	    }))
//
// # Configuration
//
// Customize the engine with functional options or a YAML file:
//
//	engine, _ := ebwidget.New(
//	    ebwidget.WithLogger(logger),
//	    ebwidget.WithPollTimeout(10*time.Second),
//	    ebwidget.WithLanguage(language.Spanish),
//	)
//
//	cfg, _ := ebwidget.LoadConfig("ebwidget.yaml")
//	engine, _ = ebwidget.New(cfg.Options()...)
package ebwidget
