package dataset

import (
	"fmt"
	"strings"
)

// SourceError describes one dataset that could not be read: missing file,
// permission problem, or unparsable structure.
type SourceError struct {
	Key  string
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Key, e.Path, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// LoadError aggregates every failing source from one load attempt. Any
// unreadable source is fatal to the whole load: downstream consumers cannot
// safely render a dashboard from an incomplete dataset set, so no partial
// tables are ever returned alongside this error.
type LoadError struct {
	Sources []*SourceError
}

func (e *LoadError) Error() string {
	parts := make([]string, len(e.Sources))
	for i, s := range e.Sources {
		parts[i] = s.Error()
	}
	return "load datasets: " + strings.Join(parts, "; ")
}
