package document

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/gorewood/docket/internal/settings"
)

// Document is a generated file: a suggested name and its markdown content.
type Document struct {
	Kind     Kind   `json:"kind"`
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// Renderer fills templates from settings and a date.
// The zero value renders the built-ins with DefaultLocale.
type Renderer struct {
	Locale  language.Tag
	Library *Library
}

// Render returns the content for kind. It is pure for a fixed library,
// locale, settings and date.
func (r Renderer) Render(kind Kind, s settings.Settings, today time.Time) (string, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return "", err
	}
	tmpl, err := r.Library.Load(kind)
	if err != nil {
		return "", err
	}
	return fill(tmpl, s, HumanDate(today, r.locale())), nil
}

// Generate renders kind and pairs it with its file name.
func (r Renderer) Generate(kind Kind, s settings.Settings, today time.Time) (Document, error) {
	content, err := r.Render(kind, s, today)
	if err != nil {
		return Document{}, err
	}
	return Document{Kind: kind, Filename: Filename(kind, today), Content: content}, nil
}

func (r Renderer) locale() language.Tag {
	if r.Locale == language.Und {
		return DefaultLocale
	}
	return r.Locale
}

// RenderContract renders the built-in contract template.
func RenderContract(s settings.Settings, today time.Time) string {
	return fill(mustBuiltin(KindContract), s, HumanDate(today, DefaultLocale))
}

// RenderMemo renders the built-in legal memorandum template.
func RenderMemo(s settings.Settings, today time.Time) string {
	return fill(mustBuiltin(KindMemo), s, HumanDate(today, DefaultLocale))
}

// RenderIntake renders the built-in client intake form.
func RenderIntake(s settings.Settings, today time.Time) string {
	return fill(mustBuiltin(KindIntake), s, HumanDate(today, DefaultLocale))
}

// fill substitutes placeholders in a single pass, so a settings value that
// itself contains "{{date}}" is left as typed.
func fill(tmpl *Template, s settings.Settings, date string) string {
	replacer := strings.NewReplacer(
		"{{firm_name}}", s.FirmName,
		"{{attorney_name}}", s.AttorneyName,
		"{{bar_number}}", s.BarNumber,
		"{{jurisdiction}}", s.DefaultJurisdiction,
		"{{date}}", date,
	)
	return replacer.Replace(tmpl.Content)
}
