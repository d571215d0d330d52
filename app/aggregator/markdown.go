package aggregator

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

const unknownDate = "Ukjent dato"

type markdown struct {
	buf bytes.Buffer
}

func (m *markdown) writeLine(format string, args ...any) {
	fmt.Fprintf(&m.buf, format, args...)
	m.buf.WriteString("\n")
}

// writeParagraph writes a line followed by a blank line.
func (m *markdown) writeParagraph(format string, args ...any) {
	m.writeLine(format, args...)
	m.buf.WriteString("\n")
}

func (m *markdown) writeEntry(title, link, source, pubDate, description string, snippetLen int) {
	if pubDate == "" {
		pubDate = unknownDate
	}

	m.writeLine("### [%s](%s)", title, link)
	m.writeParagraph("*%s* - %s", source, pubDate)

	if description != "" {
		m.writeParagraph("%s", snippet(description, snippetLen))
	}
}

func (m *markdown) String() string {
	return m.buf.String()
}

// snippet truncates s to n runes, marking the cut with "...".
func snippet(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	runes := []rune(s)
	return string(runes[:n]) + "..."
}
