package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Option configures camel-casing behavior.
type Option func(*config)

type config struct {
	lang          language.Tag
	upperFirst    bool
	customReplace map[string]string
}

func defaultConfig() *config {
	return &config{
		lang: language.Und,
	}
}

// UpperFirst title-cases the first word too, producing PascalCase.
func UpperFirst(enabled bool) Option {
	return func(c *config) {
		c.upperFirst = enabled
	}
}

// Language sets the language used for case mapping.
// Default is language.Und.
func Language(tag language.Tag) Option {
	return func(c *config) {
		c.lang = tag
	}
}

// CustomReplace sets string replacements applied before splitting into words.
// For example: {"&": "and"}
func CustomReplace(replacements map[string]string) Option {
	return func(c *config) {
		c.customReplace = replacements
	}
}

// CamelCase converts s into a camelCase identifier.
// Returns an empty string when s contains no letters or digits.
func CamelCase(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	for old, repl := range cfg.customReplace {
		s = strings.ReplaceAll(s, old, repl)
	}

	words := Words(s)
	if len(words) == 0 {
		return ""
	}

	lower := cases.Lower(cfg.lang)
	title := cases.Title(cfg.lang)

	var b strings.Builder
	b.Grow(len(s))
	for i, w := range words {
		if i == 0 && !cfg.upperFirst {
			b.WriteString(lower.String(w))
			continue
		}
		b.WriteString(title.String(w))
	}
	return b.String()
}

// NamespacedCamelCase camel-cases every sep-delimited segment of s and joins
// them back with sep. An empty sep behaves like CamelCase.
func NamespacedCamelCase(s, sep string, opts ...Option) string {
	if sep == "" {
		return CamelCase(s, opts...)
	}
	parts := strings.Split(s, sep)
	for i, p := range parts {
		parts[i] = CamelCase(p, opts...)
	}
	return strings.Join(parts, sep)
}

// Words splits s into words on non-alphanumeric runes and case boundaries.
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 4)
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if isBoundary(runes, i) {
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// isBoundary reports whether a new word starts at runes[i].
// The caller guarantees runes[i-1] belongs to the current word.
func isBoundary(runes []rune, i int) bool {
	prev, cur := runes[i-1], runes[i]
	if !unicode.IsUpper(cur) {
		return false
	}
	// "fooBar", "v2Beta"
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}
	// "XMLHttp": the last upper rune of an acronym starts the next word
	if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return true
	}
	return false
}
