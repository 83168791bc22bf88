package ontology

import (
	"encoding/json"
	"strings"
	"unicode"

	"github.com/matzehuels/ontograph/pkg/document"
)

// FormatLabel turns a snake_case key into a display label: underscores
// become spaces and every word is title-cased ("hydraulic_PUMP_01" →
// "Hydraulic Pump 01"). A letter starts a word when the rune before it is
// not a cased letter, so "zone2b" becomes "Zone2B".
func FormatLabel(key string) string {
	return titleCase(strings.ReplaceAll(key, "_", " "))
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevCased := false
	for _, r := range s {
		cased := unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
		switch {
		case cased && prevCased:
			b.WriteRune(unicode.ToLower(r))
		case cased:
			b.WriteRune(unicode.ToTitle(r))
		default:
			b.WriteRune(r)
		}
		prevCased = cased
	}
	return b.String()
}

var nameReplacer = strings.NewReplacer("_", "", " ", "", "-", "")

// normalizeName strips separators and lower-cases s for fuzzy comparison.
func normalizeName(s string) string {
	return strings.ToLower(nameReplacer.Replace(s))
}

// scalarString renders a scalar document value as text. Objects, arrays and
// null render as "".
func scalarString(v document.Value) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}
