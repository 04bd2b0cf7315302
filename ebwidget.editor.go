package ebwidget

import (
	"bytes"
	"html/template"
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/itsatony/go-cuserr"
	"golang.org/x/text/language"
)

// Editor error messages
const (
	ErrMsgInvalidWidgetType = "unsupported widget type"
	ErrMsgInvalidAlignment  = "unsupported alignment"
	ErrMsgUnknownVariation  = "unknown block variation"
)

// Editor preview styles
const (
	previewEmbeddedStyle = "border: 2px dashed #ccc; padding: 20px; text-align: center; height: %dpx; display: flex; align-items: center; justify-content: center; background-color: #f5f5f5; border-radius: 4px;"
	previewNoteStyle     = "margin: 0; color: #666;"
)

var previewTmpl = template.Must(template.New("preview").Parse(
	`<div class="{{.BlockClass}}">` +
		`{{if not .HasEventID}}` +
		`<div class="{{.PlaceholderClass}}"><p><strong>{{.Label}}</strong></p><p>{{.Instructions}}</p></div>` +
		`{{else}}<div class="{{.PreviewClass}}">` +
		`{{if .Modal}}<button type="button" style="{{.ButtonStyle}}" disabled>{{.ButtonText}}</button>` +
		`{{else}}<div style="{{.BoxStyle}}"><p style="{{.NoteStyle}}">{{.Note}}</p></div>{{end}}` +
		`</div>{{end}}` +
		`</div>`,
))

type previewData struct {
	BlockClass       string
	HasEventID       bool
	PlaceholderClass string
	Label            string
	Instructions     string
	PreviewClass     string
	Modal            bool
	ButtonStyle      template.CSS
	ButtonText       string
	BoxStyle         template.CSS
	NoteStyle        template.CSS
	Note             string
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithEditorLanguage selects the language of editor notices and previews.
func WithEditorLanguage(tag language.Tag) EditorOption {
	return func(e *Editor) {
		e.localizer = newLocalizer(tag, nil)
	}
}

// Editor models the block inspector: it edits a block's attributes with the
// same constraints as the visual editor and renders a script-free preview.
// An Editor is not safe for concurrent use.
type Editor struct {
	attrs          BlockAttributes
	eventIDInvalid bool
	localizer      *localizer
}

// NewEditor creates an editor for attrs.
func NewEditor(attrs BlockAttributes, opts ...EditorOption) *Editor {
	e := &Editor{attrs: attrs}
	for _, opt := range opts {
		opt(e)
	}
	if e.localizer == nil {
		e.localizer = newLocalizer(language.English, nil)
	}
	return e
}

// Attributes returns the current attribute set.
func (e *Editor) Attributes() BlockAttributes {
	return e.attrs
}

// Update applies fn to the attributes for fields without a dedicated setter.
func (e *Editor) Update(fn func(*BlockAttributes)) {
	fn(&e.attrs)
}

// SetEventID stores the digits of raw and reports whether the inline
// "invalid event id" notice should be shown. An empty id shows no notice.
// Saving is never blocked.
func (e *Editor) SetEventID(raw string) bool {
	cleaned, err := ValidateEventID(raw)
	e.attrs.EventID = cleaned
	e.eventIDInvalid = err != nil && cleaned != ""
	return e.eventIDInvalid
}

// EventIDError returns the localized inline notice, or "" when none is shown.
func (e *Editor) EventIDError() string {
	if !e.eventIDInvalid || e.attrs.EventID == "" {
		return ""
	}
	return e.localizer.Text(MsgEventIDInvalid)
}

// SetWidgetType switches between the modal and embedded presentation.
func (e *Editor) SetWidgetType(widgetType string) error {
	if !govalidator.IsIn(widgetType, ModeNameModal, ModeNameEmbedded) {
		return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidWidgetType).
			WithMetadata(MetaKeyValue, widgetType)
	}
	e.attrs.WidgetType = widgetType
	return nil
}

// ResetToDefaults restores the baseline button appearance. Event id, widget
// type, layout and class settings are kept.
func (e *Editor) ResetToDefaults() {
	e.attrs.applyStylePreset()
}

// SetUseGradient toggles the gradient background. Enabling it without a
// gradient installs the default one.
func (e *Editor) SetUseGradient(on bool) {
	e.attrs.UseGradient = on
	if on && e.attrs.BackgroundGradient == "" {
		e.attrs.BackgroundGradient = DefaultGradient
	}
}

// SetHeight stores the embedded height clamped to the editor range and returns it.
func (e *Editor) SetHeight(px int) int {
	e.attrs.Height = min(max(px, EditorMinHeight), EditorMaxHeight)
	return e.attrs.Height
}

// SetTransitionDuration stores the hover transition clamped to [0,1000] ms and
// rounded to the nearest 50 ms step. It returns the stored milliseconds.
func (e *Editor) SetTransitionDuration(ms int) int {
	ms = min(max(ms, 0), EditorMaxTransitionMS)
	ms = (ms + EditorTransitionStepMS/2) / EditorTransitionStepMS * EditorTransitionStepMS
	ms = min(ms, EditorMaxTransitionMS)
	e.attrs.TransitionDuration = strconv.Itoa(ms) + "ms"
	return ms
}

// SetAlignment sets the block alignment. An empty value means left.
func (e *Editor) SetAlignment(alignment string) error {
	if alignment == "" {
		alignment = AlignLeft
	}
	if !govalidator.IsIn(alignment, AlignLeft, AlignCenter, AlignRight) {
		return cuserr.NewValidationError(ErrCodeValidation, ErrMsgInvalidAlignment).
			WithMetadata(MetaKeyValue, alignment)
	}
	e.attrs.Alignment = alignment
	return nil
}

// ButtonPreviewStyle returns the inline style of the preview button.
func (e *Editor) ButtonPreviewStyle() string {
	a := e.attrs
	background := a.BackgroundColor
	if a.UseGradient && a.BackgroundGradient != "" {
		background = a.BackgroundGradient
	}

	decls := []struct{ prop, value string }{
		{"display", "inline-block"},
		{"font-size", a.FontSize},
		{"font-weight", a.FontWeight},
		{"color", a.TextColor},
		{"background", background},
		{"border", spaceJoin(a.BorderWidth, a.BorderStyle, a.BorderColor)},
		{"border-radius", a.BorderRadius},
		{"padding", spaceJoin(a.PaddingTop, a.PaddingRight, a.PaddingBottom, a.PaddingLeft)},
		{"transition", prefixed("all ", a.TransitionDuration)},
		{"cursor", "pointer"},
		{"text-decoration", "none"},
	}

	var styles []string
	for _, d := range decls {
		if v := cssValue(d.value); v != "" {
			styles = append(styles, d.prop+": "+v)
		}
	}
	return strings.Join(styles, styleSeparator)
}

// Preview renders the editor canvas: a placeholder without an event id, a
// disabled button for modal blocks, or a dashed box for embedded blocks.
// The preview never contains the widget script.
func (e *Editor) Preview() (string, error) {
	align := e.attrs.Alignment
	if align == "" {
		align = AlignLeft
	}
	data := previewData{
		BlockClass:       joinClasses(ClassBlockWrapper, ClassAlignPrefix+govalidator.WhiteList(align, htmlClassChars)),
		HasEventID:       e.attrs.EventID != "",
		PlaceholderClass: ClassPlaceholder,
		Label:            e.localizer.Text(MsgPlaceholderLabel),
		Instructions:     e.localizer.Text(MsgPlaceholderInstructions),
		PreviewClass:     ClassPreview,
		Modal:            e.attrs.WidgetType != ModeNameEmbedded,
		ButtonText:       e.attrs.ButtonText,
		ButtonStyle:      template.CSS(e.ButtonPreviewStyle()),
		NoteStyle:        template.CSS(previewNoteStyle),
		Note:             e.localizer.Text(MsgEmbeddedPlaceholder),
	}
	height := e.attrs.Height
	if height <= 0 {
		height = DefaultHeight
	}
	data.BoxStyle = template.CSS(strings.Replace(previewEmbeddedStyle, "%d", strconv.Itoa(height), 1))

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return "", NewRenderError(e.attrs.EventID, err)
	}
	return buf.String(), nil
}

// BlockVariation is a preset offered by the block inserter.
type BlockVariation struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	IsDefault   bool   `json:"isDefault"`
	WidgetType  string `json:"widgetType"`
}

// Variations returns the modal button (default) and embedded widget presets.
func (e *Editor) Variations() []BlockVariation {
	return []BlockVariation{
		{
			Name:        VariationModalButton,
			Title:       e.localizer.Text(MsgVariationModalTitle),
			Description: e.localizer.Text(MsgVariationModalDesc),
			Icon:        "tickets-alt",
			IsDefault:   true,
			WidgetType:  ModeNameModal,
		},
		{
			Name:        VariationEmbeddedWidget,
			Title:       e.localizer.Text(MsgVariationEmbeddedTitle),
			Description: e.localizer.Text(MsgVariationEmbeddedDesc),
			Icon:        "embed-generic",
			WidgetType:  ModeNameEmbedded,
		},
	}
}

// ApplyVariation switches the widget type to the named variation's.
func (e *Editor) ApplyVariation(name string) error {
	for _, v := range e.Variations() {
		if v.Name == name {
			e.attrs.WidgetType = v.WidgetType
			return nil
		}
	}
	return cuserr.NewNotFoundError(MetaKeyVariation, ErrMsgUnknownVariation).
		WithMetadata(MetaKeyValue, name)
}

func spaceJoin(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func prefixed(prefix, v string) string {
	if v == "" {
		return ""
	}
	return prefix + v
}
