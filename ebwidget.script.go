package ebwidget

import (
	"bytes"
	"text/template"
	"time"
)

// initScriptTmpl produces the inline widget bootstrap. Strings pass through the
// js escaper; numbers are raw integers.
var initScriptTmpl = template.Must(template.New("initScript").Parse(`(function() {
var el = document.getElementById("{{js .ElementID}}");
if (!el) { return; }
el.setAttribute("aria-busy", "true");
var started = Date.now();
function initEventbriteWidget() {
if (typeof window.EBWidgets !== "undefined") {
window.EBWidgets.createWidget({
widgetType: "{{js .WidgetType}}",
eventId: "{{js .EventID}}",
{{- if .Modal}}
modal: true,
modalTriggerElementId: "{{js .ElementID}}",
{{- else}}
iframeContainerId: "{{js .ElementID}}",
iframeContainerHeight: {{.Height}},
{{- end}}
onOrderComplete: function() { el.setAttribute("{{js .StateAttr}}", "complete");{{if .Modal}} el.focus();{{end}} }
});
el.removeAttribute("aria-busy");
return;
}
{{- if gt .TimeoutMS 0}}
if (Date.now() - started >= {{.TimeoutMS}}) {
el.removeAttribute("aria-busy");
el.setAttribute("{{js .StateAttr}}", "{{js .StateUnavailable}}");
{{- if .Modal}}
el.disabled = true;
{{- end}}
var note = document.createElement("p");
note.className = "{{js .FallbackClass}}";
note.setAttribute("role", "status");
note.textContent = "{{js .FallbackText}}";
el.parentNode.insertBefore(note, el.nextSibling);
return;
}
{{- end}}
setTimeout(initEventbriteWidget, {{.IntervalMS}});
}
{{- if .Modal}}
el.addEventListener("keydown", function(e) {
if (e.key === "Enter" || e.key === " ") { e.preventDefault(); el.click(); }
});
{{- end}}
initEventbriteWidget();
})();`))

type initScriptData struct {
	WidgetType       string
	EventID          string
	ElementID        string
	Modal            bool
	Height           int
	IntervalMS       int64
	TimeoutMS        int64
	StateAttr        string
	StateUnavailable string
	FallbackClass    string
	FallbackText     string
}

// buildInitScript renders the bootstrap script for opts.
// interval is at least one millisecond; a zero timeout polls without limit.
func buildInitScript(opts WidgetOptions, interval, timeout time.Duration, fallback string) (string, error) {
	data := initScriptData{
		WidgetType:       WidgetTypeCheckout,
		EventID:          opts.EventID,
		Modal:            opts.Mode == ModeModal,
		Height:           opts.Height,
		IntervalMS:       max(interval.Milliseconds(), 1),
		TimeoutMS:        timeout.Milliseconds(),
		StateAttr:        StateAttribute,
		StateUnavailable: StateUnavailable,
		FallbackClass:    FallbackMessageClass,
		FallbackText:     fallback,
	}
	if data.Modal {
		data.ElementID = opts.TriggerID()
	} else {
		data.ElementID = opts.ContainerID()
	}

	var buf bytes.Buffer
	if err := initScriptTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
