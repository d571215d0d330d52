package aggregator

import "fmt"

// UnknownSourceError is returned for a source id missing from the registry.
type UnknownSourceError struct {
	SourceID  string
	Available []string
}

func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("unknown source %q", e.SourceID)
}

// UnknownFeedTypeError is returned when a source has no feed of the
// requested type.
type UnknownFeedTypeError struct {
	SourceID  string
	FeedType  string
	Available []string
}

func (e *UnknownFeedTypeError) Error() string {
	return fmt.Sprintf("unknown feed type %q for source %q", e.FeedType, e.SourceID)
}
