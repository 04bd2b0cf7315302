package ebwidget

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Each key is also the English text of the message.
const (
	MsgShortcodeError          = "Error: event_id parameter is required and must be a valid Eventbrite event ID."
	MsgBlockError              = "Error: Event ID is required for the Eventbrite Widget block."
	MsgEventIDInvalid          = "Event ID must be 10-19 digits"
	MsgOpensCheckout           = "%s - opens ticket checkout"
	MsgCheckoutRegion          = "Eventbrite ticket checkout"
	MsgWidgetUnavailable       = "The ticket widget could not be loaded. Please refresh the page to try again."
	MsgEmbeddedPlaceholder     = "Embedded widget will appear here"
	MsgPlaceholderLabel        = "Eventbrite Widget"
	MsgPlaceholderInstructions = "Enter your Eventbrite event ID in the block settings to get started."
	MsgVariationModalTitle     = "Eventbrite Modal Button"
	MsgVariationModalDesc      = "Show a button that opens a modal checkout"
	MsgVariationEmbeddedTitle  = "Eventbrite Embedded Widget"
	MsgVariationEmbeddedDesc   = "Embed the checkout directly on the page"
)

// SupportedLanguages lists the languages with a full message translation.
// The first entry is the fallback.
var SupportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.German,
}

var translations = map[language.Tag]map[string]string{
	language.Spanish: {
		MsgShortcodeError:          "Error: el parámetro event_id es obligatorio y debe ser un ID de evento de Eventbrite válido.",
		MsgBlockError:              "Error: el ID del evento es obligatorio para el bloque Eventbrite Widget.",
		MsgEventIDInvalid:          "El ID del evento debe tener entre 10 y 19 dígitos",
		MsgOpensCheckout:           "%s - abre el pago de entradas",
		MsgCheckoutRegion:          "Pago de entradas de Eventbrite",
		MsgWidgetUnavailable:       "No se pudo cargar el widget de entradas. Actualiza la página para intentarlo de nuevo.",
		MsgEmbeddedPlaceholder:     "El widget integrado aparecerá aquí",
		MsgPlaceholderLabel:        "Widget de Eventbrite",
		MsgPlaceholderInstructions: "Introduce el ID de tu evento de Eventbrite en los ajustes del bloque para empezar.",
		MsgVariationModalTitle:     "Botón modal de Eventbrite",
		MsgVariationModalDesc:      "Muestra un botón que abre el pago en una ventana modal",
		MsgVariationEmbeddedTitle:  "Widget integrado de Eventbrite",
		MsgVariationEmbeddedDesc:   "Integra el pago directamente en la página",
	},
	language.German: {
		MsgShortcodeError:          "Fehler: Der Parameter event_id ist erforderlich und muss eine gültige Eventbrite-Veranstaltungs-ID sein.",
		MsgBlockError:              "Fehler: Für den Eventbrite-Widget-Block ist eine Veranstaltungs-ID erforderlich.",
		MsgEventIDInvalid:          "Die Veranstaltungs-ID muss 10-19 Ziffern haben",
		MsgOpensCheckout:           "%s - öffnet den Ticketkauf",
		MsgCheckoutRegion:          "Eventbrite-Ticketkauf",
		MsgWidgetUnavailable:       "Das Ticket-Widget konnte nicht geladen werden. Bitte laden Sie die Seite neu.",
		MsgEmbeddedPlaceholder:     "Das eingebettete Widget erscheint hier",
		MsgPlaceholderLabel:        "Eventbrite-Widget",
		MsgPlaceholderInstructions: "Geben Sie in den Blockeinstellungen Ihre Eventbrite-Veranstaltungs-ID ein, um zu beginnen.",
		MsgVariationModalTitle:     "Eventbrite-Modal-Button",
		MsgVariationModalDesc:      "Zeigt einen Button, der den Ticketkauf in einem Dialog öffnet",
		MsgVariationEmbeddedTitle:  "Eingebettetes Eventbrite-Widget",
		MsgVariationEmbeddedDesc:   "Bettet den Ticketkauf direkt in die Seite ein",
	},
}

var (
	messageCatalog  = buildCatalog()
	languageMatcher = language.NewMatcher(SupportedLanguages)
)

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, text := range msgs {
			// SetString only fails for malformed tags, which cannot happen here
			_ = b.SetString(tag, key, text)
		}
	}
	return b
}

// MatchLanguage returns the supported language closest to tag.
func MatchLanguage(tag language.Tag) language.Tag {
	_, idx, _ := languageMatcher.Match(tag)
	return SupportedLanguages[idx]
}

// localizer renders message keys in one language, honouring caller overrides.
type localizer struct {
	tag       language.Tag
	printer   *message.Printer
	overrides map[string]string
}

func newLocalizer(tag language.Tag, overrides map[string]string) *localizer {
	matched := MatchLanguage(tag)
	return &localizer{
		tag:       matched,
		printer:   message.NewPrinter(matched, message.Catalog(messageCatalog)),
		overrides: overrides,
	}
}

// Text returns the localized message for key, formatted with args.
// An override without a formatting verb is returned as is.
func (l *localizer) Text(key string, args ...any) string {
	if override, ok := l.overrides[key]; ok {
		if len(args) > 0 && strings.Contains(override, "%") {
			return fmt.Sprintf(override, args...)
		}
		return override
	}
	return l.printer.Sprintf(key, args...)
}

// Language returns the language messages are rendered in.
func (l *localizer) Language() language.Tag {
	return l.tag
}
