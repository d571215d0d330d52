package feed

import (
	"regexp"
	"strings"
)

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`[\s\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)
	angleBrackets     = strings.NewReplacer("<", "", ">", "")
)

// entities are decoded in this order; &amp; must come after the entities
// that would otherwise be produced from it.
var entities = [][2]string{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&amp;", "&"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
}

// Clean strips HTML tags, decodes a fixed set of entities and collapses
// whitespace. Decoding can produce new markup (&lt;b&gt;), so the steps run
// until the text stops changing; the result never contains angle brackets
// and Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	if text == "" {
		return ""
	}

	for {
		next := cleanStep(text)
		if next == text {
			return next
		}
		text = next
	}
}

func cleanStep(text string) string {
	text = htmlTagPattern.ReplaceAllString(text, "")
	for _, e := range entities {
		text = strings.ReplaceAll(text, e[0], e[1])
	}
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = angleBrackets.Replace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
