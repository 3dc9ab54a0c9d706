package i18n

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Lang selects the display language of a request. It is never used to
// partition data, only to resolve names and localize messages.
type Lang string

const (
	English   Lang = "en"
	Hungarian Lang = "hu"

	Default = English
)

var supportedTags = []language.Tag{
	language.English,
	language.Hungarian,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the supported languages, default first.
func Supported() []Lang {
	return []Lang{English, Hungarian}
}

// Tag returns the BCP 47 tag for the language.
func (l Lang) Tag() language.Tag {
	if l == Hungarian {
		return language.Hungarian
	}
	return language.English
}

// Valid reports whether l is one of the supported languages.
func (l Lang) Valid() bool {
	return l == English || l == Hungarian
}

func (l Lang) String() string {
	return string(l)
}

// ParseLang accepts supported language codes with or without a region,
// case-insensitive ("hu", "HU", "hu-HU", "en-US").
func ParseLang(value string) (Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	switch Lang(base.String()) {
	case English:
		return English, true
	case Hungarian:
		return Hungarian, true
	}
	return "", false
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value, falling back to Default.
func MatchAcceptLanguage(header string) Lang {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, index, confidence := tagMatcher.Match(tags...)
	if confidence == language.No {
		return Default
	}
	return Supported()[index]
}

// Printer returns a message printer for the language.
func Printer(l Lang) *message.Printer {
	return message.NewPrinter(l.Tag())
}

// Sprintf formats the message registered under key for the language.
func Sprintf(l Lang, key Key, args ...any) string {
	return Printer(l).Sprintf(string(key), args...)
}

func register(tables map[Lang]map[Key]string) error {
	langs := make([]string, 0, len(tables))
	for l := range tables {
		langs = append(langs, string(l))
	}
	sort.Strings(langs)

	for _, l := range langs {
		lang := Lang(l)
		if !lang.Valid() {
			return fmt.Errorf("register messages: unsupported language %q", l)
		}
		for key, value := range tables[lang] {
			if err := message.SetString(lang.Tag(), string(key), value); err != nil {
				return fmt.Errorf("register message %q for %s: %w", key, lang, err)
			}
		}
	}
	return nil
}

func init() {
	if err := register(messages); err != nil {
		panic(err)
	}
}
