package document

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured or it cannot be parsed.
var DefaultLocale = language.AmericanEnglish

const sortableLayout = "2006-01-02"

// Short numeric date layouts, one per supported locale. The first entry is
// the fallback for locales the matcher cannot place.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.MustParse("en-CA"), "2006-01-02"},
	{language.German, "2.1.2006"},
	{language.French, "02/01/2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Russian, "02.01.2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = newDateMatcher()

func newDateMatcher() language.Matcher {
	tags := make([]language.Tag, len(dateLayouts))
	for i, entry := range dateLayouts {
		tags[i] = entry.tag
	}
	return language.NewMatcher(tags)
}

// HumanDate formats the calendar date of t as a short numeric date for the
// given locale, e.g. 3/5/2024 (en-US), 05/03/2024 (en-GB), 5.3.2024 (de).
func HumanDate(t time.Time, locale language.Tag) string {
	_, idx, conf := dateMatcher.Match(locale)
	if conf == language.No || idx < 0 || idx >= len(dateLayouts) {
		idx = 0
	}
	return t.Format(dateLayouts[idx].layout)
}

// SortableDate formats the calendar date of t, in t's own location, as
// YYYY-MM-DD. The time of day does not matter.
func SortableDate(t time.Time) string {
	return t.Format(sortableLayout)
}

// Filename returns the suggested file name <Prefix>-<YYYY-MM-DD>.md.
func Filename(kind Kind, today time.Time) string {
	return kind.Prefix() + "-" + SortableDate(today) + ".md"
}

// ParseLocale turns a BCP 47 tag ("en-GB") or a POSIX locale
// ("en_GB.UTF-8", "de_DE@euro") into a language tag. Empty, "C", "POSIX"
// and unparseable values yield DefaultLocale.
func ParseLocale(raw string) language.Tag {
	value := strings.TrimSpace(raw)
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return DefaultLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return DefaultLocale
	}
	return tag
}
