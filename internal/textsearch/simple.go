package textsearch

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// SimpleMatcher finds literal occurrences of a term.
type SimpleMatcher struct {
	term          string
	caseSensitive bool
	count         int
}

// NewSimpleMatcher returns a literal matcher; the term is lowercased once here
// when caseSensitive is false.
func NewSimpleMatcher(findText string, caseSensitive bool) (*SimpleMatcher, error) {
	if findText == "" {
		return nil, ErrEmptyQuery
	}
	term := findText
	if !caseSensitive {
		term = strings.ToLower(findText)
	}
	return &SimpleMatcher{term: term, caseSensitive: caseSensitive}, nil
}

func (m *SimpleMatcher) Matches(line string) bool {
	spans := m.spans(line)
	m.count += len(spans)
	return len(spans) > 0
}

func (m *SimpleMatcher) IndicateLine(line string) iter.Seq[Segment] {
	spans := m.spans(line)
	return segmentsFor(line, len(spans) > 0, spans)
}

func (m *SimpleMatcher) ClearCache() {}

func (m *SimpleMatcher) TitleFlags() string {
	if m.caseSensitive {
		return " (case sensitive)"
	}
	return ""
}

func (m *SimpleMatcher) MatchCount() int {
	return m.count
}

// spans returns the non-overlapping occurrences of the term as byte offsets into line.
func (m *SimpleMatcher) spans(line string) []matchSpan {
	if line == "" {
		return nil
	}
	if m.caseSensitive {
		return literalSpans(line, m.term)
	}
	if lowerKeepsOffsets(line) {
		return literalSpans(strings.ToLower(line), m.term)
	}
	return foldedSpans(line, m.term)
}

// lowerKeepsOffsets reports whether every rune of line lowercases to the same
// number of bytes, so offsets into the lowered text are offsets into line.
func lowerKeepsOffsets(line string) bool {
	for i := 0; i < len(line); {
		b := line[i]
		if b < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == utf8.RuneError || utf8.RuneLen(unicode.ToLower(r)) != size {
			return false
		}
		i += size
	}
	return true
}

func literalSpans(haystack, needle string) []matchSpan {
	var spans []matchSpan
	searchFrom := 0
	for searchFrom <= len(haystack) {
		idx := strings.Index(haystack[searchFrom:], needle)
		if idx == -1 {
			break
		}
		start := searchFrom + idx
		end := start + len(needle)
		spans = append(spans, matchSpan{start: start, end: end})
		searchFrom = end
	}
	return spans
}

// foldedSpans walks the original line rune by rune so offsets stay valid when
// lowercasing changes the byte length of the text.
func foldedSpans(line, needleLower string) []matchSpan {
	var spans []matchSpan
	for i := 0; i < len(line); {
		if end, ok := matchFoldedAt(line, i, needleLower); ok {
			spans = append(spans, matchSpan{start: i, end: end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		if size <= 0 {
			size = 1
		}
		i += size
	}
	return spans
}

func matchFoldedAt(haystack string, start int, needleLower string) (int, bool) {
	hIndex := start
	for _, nr := range needleLower {
		if hIndex >= len(haystack) {
			return 0, false
		}
		hr, size := utf8.DecodeRuneInString(haystack[hIndex:])
		if size <= 0 {
			return 0, false
		}
		if unicode.ToLower(hr) != nr {
			return 0, false
		}
		hIndex += size
	}
	return hIndex, true
}
