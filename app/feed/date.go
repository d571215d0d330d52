package feed

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate parses the many date formats found in real feeds. Strings
// without a zone are read as UTC.
func ParseDate(raw string) *Timestamp {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	t, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return nil
	}
	return NewTimestamp(t.UTC())
}
