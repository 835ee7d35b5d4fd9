package template

import (
	"strings"
	"text/template"
	"time"
	"unicode"
)

// FuncMap returns the template functions available to project templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"snakeCase": snakeCase,
		"kebabCase": kebabCase,
		"appID":     appID,
		"quote":     quote,
		"year":      year,
		"default":   defaultVal,
	}
}

// snakeCase converts a string to snake_case.
func snakeCase(s string) string {
	return toDelimited(s, '_')
}

// kebabCase converts a string to kebab-case.
func kebabCase(s string) string {
	return toDelimited(s, '-')
}

// appID turns a project name into an app id segment: snake_case limited to
// ASCII letters, digits, '.', '_' and '-', starting with a letter or digit.
func appID(s string) string {
	var b strings.Builder

	for _, r := range snakeCase(s) {
		if r > unicode.MaxASCII {
			continue
		}

		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case (r == '.' || r == '_' || r == '-') && b.Len() > 0:
			b.WriteRune(r)
		}
	}

	id := strings.TrimRight(b.String(), "._-")
	if id == "" {
		return "app"
	}

	return id
}

// quote renders s as a double-quoted YAML/HCL string.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)

	return `"` + r.Replace(s) + `"`
}

// year returns the current year, for copyright lines.
func year() string {
	return time.Now().Format("2006")
}

// defaultVal returns val if it's non-empty, otherwise returns def.
func defaultVal(def, val string) string {
	if val != "" {
		return val
	}

	return def
}

// splitWords splits a string into words by separators and casing transitions.
func splitWords(s string) []string {
	var words []string
	var current []rune

	for i, r := range s {
		switch {
		case r == '_' || r == '-' || r == ' ' || r == '.':
			if len(current) > 0 {
				words = append(words, string(current))
				current = nil
			}
		case unicode.IsUpper(r) && i > 0 && len(current) > 0:
			words = append(words, string(current))
			current = []rune{r}
		default:
			current = append(current, r)
		}
	}

	if len(current) > 0 {
		words = append(words, string(current))
	}

	return words
}

func toDelimited(s string, delim rune) string {
	words := splitWords(s)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, string(delim))
}
