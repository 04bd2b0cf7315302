package ebwidget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		in   language.Tag
		want language.Tag
	}{
		{language.English, language.English},
		{language.AmericanEnglish, language.English},
		{language.German, language.German},
		{language.MustParse("de-AT"), language.German},
		{language.LatinAmericanSpanish, language.Spanish},
		{language.Japanese, language.English},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, MatchLanguage(tt.in))
		})
	}
}

func TestLocalizer_Text(t *testing.T) {
	en := newLocalizer(language.English, nil)
	assert.Equal(t, MsgShortcodeError, en.Text(MsgShortcodeError))
	assert.Equal(t, "Buy - opens ticket checkout", en.Text(MsgOpensCheckout, "Buy"))

	es := newLocalizer(language.Spanish, nil)
	assert.Equal(t, "Buy - abre el pago de entradas", es.Text(MsgOpensCheckout, "Buy"))
	assert.Equal(t, language.Spanish, es.Language())
}

func TestLocalizer_Overrides(t *testing.T) {
	loc := newLocalizer(language.German, map[string]string{
		MsgShortcodeError: "Custom",
		MsgOpensCheckout:  "%s (checkout)",
	})
	assert.Equal(t, "Custom", loc.Text(MsgShortcodeError))
	assert.Equal(t, "Buy (checkout)", loc.Text(MsgOpensCheckout, "Buy"))
	assert.Equal(t, translations[language.German][MsgBlockError], loc.Text(MsgBlockError))
}

func TestLocalizer_OverrideWithoutVerb(t *testing.T) {
	loc := newLocalizer(language.English, map[string]string{MsgOpensCheckout: "Open checkout"})
	assert.Equal(t, "Open checkout", loc.Text(MsgOpensCheckout, "Buy"))

	engine := MustNew(WithMessage(MsgOpensCheckout, "Open checkout"))
	out := engine.RenderShortcode(context.Background(), AttributesFromMap(map[string]string{AttrEventID: testEventID}))
	button := parseHTML(t, out).Find("button")
	assert.Equal(t, "Open checkout", button.AttrOr("aria-label", ""))
	assert.NotContains(t, out, "%!")
}

func TestTranslationsComplete(t *testing.T) {
	keys := []string{
		MsgShortcodeError, MsgBlockError, MsgEventIDInvalid, MsgOpensCheckout,
		MsgCheckoutRegion, MsgWidgetUnavailable, MsgEmbeddedPlaceholder,
		MsgPlaceholderLabel, MsgPlaceholderInstructions, MsgVariationModalTitle,
		MsgVariationModalDesc, MsgVariationEmbeddedTitle, MsgVariationEmbeddedDesc,
	}
	for tag, msgs := range translations {
		for _, key := range keys {
			assert.NotEmpty(t, msgs[key], "%s missing %q", tag, key)
		}
	}
}
