package textsearch

import (
	"errors"
	"iter"
)

var (
	// ErrEmptyQuery is returned when the search term is empty.
	ErrEmptyQuery = errors.New("empty search term")
	// ErrInvalidPattern is returned when a regular expression fails to compile.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNegativeContext is returned when the context line count is below zero.
	ErrNegativeContext = errors.New("negative context")
)

// Document is a single body of text handed to the engine. Path is only a display
// label and WorkboxID is passed through untouched to the matching sink.
type Document struct {
	Text      string
	Path      string
	WorkboxID string
}

// Segment is one item produced by Matcher.IndicateLine. The first segment of every
// line has Margin set and carries no text; Match then reports whether the line
// matched at all.
type Segment struct {
	Text   string
	Match  bool
	Margin bool
}

// Matcher decides whether a line matches and where the matching runs are.
// Matches must be called for a line before IndicateLine is called for it.
type Matcher interface {
	Matches(line string) bool
	IndicateLine(line string) iter.Seq[Segment]
	ClearCache()
	TitleFlags() string
	MatchCount() int
}

type matchSpan struct {
	start int
	end   int
}

// segmentsFor yields the margin sentinel followed by alternating plain and matched
// runs of line. Zero-length runs are skipped.
func segmentsFor(line string, matched bool, spans []matchSpan) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if !yield(Segment{Margin: true, Match: matched}) {
			return
		}
		pos := 0
		for _, sp := range spans {
			if sp.start > pos {
				if !yield(Segment{Text: line[pos:sp.start]}) {
					return
				}
			}
			if sp.end > sp.start {
				if !yield(Segment{Text: line[sp.start:sp.end], Match: true}) {
					return
				}
			}
			if sp.end > pos {
				pos = sp.end
			}
		}
		if pos < len(line) {
			yield(Segment{Text: line[pos:]})
		}
	}
}
