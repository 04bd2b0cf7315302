package ebwidget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildInitScript_Modal(t *testing.T) {
	script, err := buildInitScript(modalOptions(), DefaultPollInterval, DefaultPollTimeout, MsgWidgetUnavailable)
	require.NoError(t, err)

	assert.Contains(t, script, `document.getElementById("`+IDPrefixTrigger+testEventID+`")`)
	assert.Contains(t, script, `widgetType: "checkout",`)
	assert.Contains(t, script, `eventId: "`+testEventID+`",`)
	assert.Contains(t, script, "modal: true,")
	assert.Contains(t, script, `el.addEventListener("keydown"`)
	assert.Contains(t, script, "el.focus();")
	assert.Contains(t, script, "el.disabled = true;")
	assert.Contains(t, script, "setTimeout(initEventbriteWidget, 100);")
	assert.Contains(t, script, "Date.now() - started >= 15000")
	assert.NotContains(t, script, "iframeContainerHeight")
}

func TestBuildInitScript_Embedded(t *testing.T) {
	opts := modalOptions()
	opts.Mode = ModeEmbedded
	opts.Height = 640

	script, err := buildInitScript(opts, 250*time.Millisecond, time.Second, MsgWidgetUnavailable)
	require.NoError(t, err)

	assert.Contains(t, script, `iframeContainerId: "`+IDPrefixContainer+testEventID+`",`)
	assert.Contains(t, script, "iframeContainerHeight: 640,")
	assert.Contains(t, script, "setTimeout(initEventbriteWidget, 250);")
	assert.NotContains(t, script, "modal: true")
	assert.NotContains(t, script, "keydown")
	assert.NotContains(t, script, "el.disabled")
	assert.NotContains(t, script, "el.focus()")
}

func TestBuildInitScript_UnboundedPolling(t *testing.T) {
	script, err := buildInitScript(modalOptions(), DefaultPollInterval, 0, MsgWidgetUnavailable)
	require.NoError(t, err)

	assert.NotContains(t, script, "Date.now() - started >=")
	assert.NotContains(t, script, StateUnavailable)
	assert.Contains(t, script, "setTimeout(initEventbriteWidget, 100);")
}

func TestBuildInitScript_IntervalFloor(t *testing.T) {
	script, err := buildInitScript(modalOptions(), time.Microsecond, 0, "")
	require.NoError(t, err)
	assert.Contains(t, script, "setTimeout(initEventbriteWidget, 1);")
}

func TestBuildInitScript_EscapesFallbackText(t *testing.T) {
	script, err := buildInitScript(modalOptions(), DefaultPollInterval, time.Second, `</script><b>"x"</b>`)
	require.NoError(t, err)

	assert.NotContains(t, script, "</script>")
	assert.NotContains(t, script, `"x"`)
}

func TestEngine_PollOptionsReachScript(t *testing.T) {
	engine := MustNew(WithPollInterval(50*time.Millisecond), WithPollTimeout(3*time.Second))
	out := engine.Compile(modalOptions())

	assert.Contains(t, out, "setTimeout(initEventbriteWidget, 50);")
	assert.Contains(t, out, "Date.now() - started >= 3000")
}
