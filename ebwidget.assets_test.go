package ebwidget

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPage_Flags(t *testing.T) {
	page := NewPage()
	assert.False(t, page.Used())
	assert.False(t, page.Emitted())

	assert.False(t, page.MarkUsed())
	assert.True(t, page.Used())

	page.MarkEmitted()
	assert.True(t, page.Emitted())
	assert.True(t, page.MarkUsed(), "marking after emission reports a late render")
}

func TestPage_ConcurrentMarkUsed(t *testing.T) {
	page := NewPage()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			page.MarkUsed()
		}()
	}
	wg.Wait()
	assert.True(t, page.Used())
}

func TestPageFromContext(t *testing.T) {
	assert.Nil(t, PageFromContext(context.Background()))

	page := NewPage()
	assert.Same(t, page, PageFromContext(WithPage(context.Background(), page)))
}

func TestEngine_AssetTags(t *testing.T) {
	t.Run("nil page", func(t *testing.T) {
		assert.Empty(t, MustNew().AssetTags(nil))
	})

	t.Run("unused page", func(t *testing.T) {
		page := NewPage()
		assert.Empty(t, MustNew().AssetTags(page))
		assert.True(t, page.Emitted())
	})

	t.Run("used page", func(t *testing.T) {
		engine := MustNew()
		page := NewPage()
		ctx := WithPage(context.Background(), page)

		engine.RenderShortcode(ctx, AttributesFromMap(map[string]string{AttrEventID: testEventID}))
		tags := engine.AssetTags(page)

		assert.Contains(t, tags, `<link rel="stylesheet" id="`+StylesheetElementID+`" href="`+DefaultStylesheetURL+`"/>`)
		assert.Contains(t, tags, `<script src="`+DefaultScriptURL+`"></script>`)
	})

	t.Run("stylesheet disabled", func(t *testing.T) {
		engine := MustNew(WithStylesheetURL(""), WithScriptURL("https://cdn.example.com/eb.js"))
		page := NewPage()
		page.MarkUsed()

		tags := engine.AssetTags(page)
		assert.NotContains(t, tags, "<link")
		assert.Equal(t, `<script src="https://cdn.example.com/eb.js"></script>`+"\n", tags)
	})
}

func TestEngine_InvalidRenderDoesNotMarkPage(t *testing.T) {
	engine := MustNew()
	page := NewPage()
	ctx := WithPage(context.Background(), page)

	out := engine.RenderShortcode(ctx, AttributesFromMap(map[string]string{AttrEventID: "123"}))
	assert.Contains(t, out, ClassError)
	assert.False(t, page.Used())
	assert.Empty(t, engine.AssetTags(page))
}

func TestEngine_LateRenderWarns(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	engine := MustNew(WithLogger(zap.New(core)))

	page := NewPage()
	ctx := WithPage(context.Background(), page)
	engine.AssetTags(page)

	out := engine.RenderShortcode(ctx, AttributesFromMap(map[string]string{AttrEventID: testEventID}))
	assert.Contains(t, out, ClassWrapper, "late renders still produce markup")

	entries := logs.FilterMessage(LogMsgLateRender).All()
	require.Len(t, entries, 1)
	assert.Equal(t, testEventID, entries[0].ContextMap()[LogFieldEventID])
}

func TestStylesheetEmbedded(t *testing.T) {
	assert.Contains(t, string(Stylesheet), "."+ClassWrapper)
	assert.Contains(t, string(Stylesheet), CSSVarHoverBackground)
}
