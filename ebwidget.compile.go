package ebwidget

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var widgetTmpl = template.Must(template.New("widget").Parse(
	`{{define "error"}}<div class="{{.Class}}" role="alert" aria-live="assertive" style="{{.Style}}">{{.Message}}</div>{{end}}` +
		`<div class="{{.WrapperClass}}" style="{{.WrapperStyle}}">` +
		`{{if .Modal}}` +
		`<button type="button" id="{{.ElementID}}" class="{{.ElementClass}}" aria-haspopup="dialog" aria-label="{{.AriaLabel}}"{{if .ButtonStyle}} style="{{.ButtonStyle}}"{{end}}><span>{{.ButtonText}}</span></button>` +
		`{{else}}` +
		`<div id="{{.ElementID}}" class="{{.ElementClass}}" role="region" aria-label="{{.AriaLabel}}" aria-busy="true" style="{{.ContainerStyle}}"></div>` +
		`{{end}}` +
		`<script>{{.Script}}</script></div>`,
))

type errorFragmentData struct {
	Class   string
	Style   template.CSS
	Message string
}

type widgetData struct {
	WrapperClass   string
	WrapperStyle   template.CSS
	Modal          bool
	ElementID      string
	ElementClass   string
	AriaLabel      string
	ButtonText     string
	ButtonStyle    template.CSS
	ContainerStyle template.CSS
	Script         template.JS
}

// compiler turns normalized options into widget markup
type compiler struct {
	pollInterval   time.Duration
	pollTimeout    time.Duration
	localizer      *localizer
	logger         *zap.Logger
	widgetTemplate *template.Template
	errorTemplate  *template.Template
}

// CompileOptions renders opts with the package defaults and no logging.
func CompileOptions(opts WidgetOptions) string {
	c := newCompiler(defaultEngineConfig(), nil, zap.NewNop())
	out, _ := c.compile(opts)
	return out
}

func newCompiler(cfg *engineConfig, loc *localizer, logger *zap.Logger) *compiler {
	if loc == nil {
		loc = newLocalizer(cfg.language, cfg.messages)
	}
	return &compiler{
		pollInterval:   cfg.pollInterval,
		pollTimeout:    cfg.pollTimeout,
		localizer:      loc,
		logger:         logger,
		widgetTemplate: widgetTmpl,
		errorTemplate:  widgetTmpl.Lookup("error"),
	}
}

// compile returns the widget markup, or the error fragment when opts has no
// event id or rendering fails. ok reports whether a widget was produced.
func (c *compiler) compile(opts WidgetOptions) (string, bool) {
	if !opts.Valid() {
		c.logger.Debug(LogMsgInvalidEventID)
		return c.errorFragment(c.localizer.Text(MsgShortcodeError)), false
	}

	out, err := c.render(opts)
	if err != nil {
		c.logger.Error(LogMsgCompileFailed, zap.String(LogFieldEventID, opts.EventID), zap.Error(err))
		return c.errorFragment(c.localizer.Text(MsgShortcodeError)), false
	}

	c.logger.Debug(LogMsgCompiled,
		zap.String(LogFieldEventID, opts.EventID),
		zap.String(LogFieldMode, opts.Mode.String()))
	return out, true
}

func (c *compiler) render(opts WidgetOptions) (string, error) {
	script, err := buildInitScript(opts, c.pollInterval, c.pollTimeout,
		c.localizer.Text(MsgWidgetUnavailable))
	if err != nil {
		return "", NewRenderError(opts.EventID, err)
	}

	data := widgetData{
		WrapperClass: joinClasses(ClassWrapper, opts.ContainerClass),
		WrapperStyle: template.CSS(wrapperStyle(opts)),
		Modal:        opts.Mode == ModeModal,
		Script:       template.JS(script),
	}
	if data.Modal {
		data.ElementID = opts.TriggerID()
		data.ElementClass = joinClasses(opts.ButtonClass, data.ElementID)
		data.AriaLabel = c.localizer.Text(MsgOpensCheckout, opts.ButtonText)
		data.ButtonText = opts.ButtonText
		data.ButtonStyle = template.CSS(opts.ButtonStyle)
	} else {
		data.ElementID = opts.ContainerID()
		data.ElementClass = data.ElementID
		data.AriaLabel = c.localizer.Text(MsgCheckoutRegion)
		data.ContainerStyle = template.CSS("height: " + strconv.Itoa(opts.Height) + "px;")
	}

	var buf bytes.Buffer
	if err := c.widgetTemplate.Execute(&buf, data); err != nil {
		return "", NewRenderError(opts.EventID, err)
	}
	return buf.String(), nil
}

// errorFragment renders the accessible alert shown in place of a widget
func (c *compiler) errorFragment(message string) string {
	var buf bytes.Buffer
	err := c.errorTemplate.Execute(&buf, errorFragmentData{
		Class:   ClassError,
		Style:   template.CSS(ErrorFragmentStyle),
		Message: message,
	})
	if err != nil {
		c.logger.Error(LogMsgCompileFailed, zap.Error(err))
		return ""
	}
	return buf.String()
}

// wrapperStyle is the custom container style followed by the width
func wrapperStyle(opts WidgetOptions) string {
	var sb strings.Builder
	if style := strings.TrimRight(opts.ContainerStyle, "; "); style != "" {
		sb.WriteString(style)
		sb.WriteString(";")
	}
	sb.WriteString("width: ")
	sb.WriteString(opts.Width)
	sb.WriteString(";")
	return sb.String()
}

func joinClasses(classes ...string) string {
	return strings.Join(strings.Fields(strings.Join(classes, " ")), " ")
}
