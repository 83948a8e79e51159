package textsearch

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// RegexMatcher finds matches of an RE2 pattern. Spans found by Matches are kept
// per line until IndicateLine consumes them or ClearCache drops them.
//
// Lines keep their terminator, so $ has to match before a trailing \n as well
// as at the very end. The pattern runs in multi-line mode for that; the
// single-line form only decides whether an empty match after the final \n is
// real, since multi-line ^ would also match there.
type RegexMatcher struct {
	re            *regexp.Regexp
	single        *regexp.Regexp
	caseSensitive bool
	cache         map[string][]matchSpan
	count         int
}

// NewRegexMatcher compiles pattern up front so a bad pattern is reported before
// any document is scanned.
func NewRegexMatcher(pattern string, caseSensitive bool) (*RegexMatcher, error) {
	if pattern == "" {
		return nil, ErrEmptyQuery
	}
	prefix := ""
	if !caseSensitive {
		prefix = "(?i)"
	}
	re, err := regexp.Compile("(?m)" + prefix + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	single := regexp.MustCompile(prefix + pattern)
	return &RegexMatcher{
		re:            re,
		single:        single,
		caseSensitive: caseSensitive,
		cache:         make(map[string][]matchSpan),
	}, nil
}

func (m *RegexMatcher) Matches(line string) bool {
	locs := m.find(line)
	spans := make([]matchSpan, 0, len(locs))
	for _, loc := range locs {
		spans = append(spans, matchSpan{start: loc[0], end: loc[1]})
	}
	m.cache[line] = spans
	m.count += len(spans)
	return len(spans) > 0
}

func (m *RegexMatcher) find(line string) [][]int {
	locs := m.re.FindAllStringIndex(line, -1)
	n := len(locs)
	if n == 0 || !strings.HasSuffix(line, "\n") {
		return locs
	}
	end := len(line)
	if last := locs[n-1]; last[0] != end || last[1] != end {
		return locs
	}
	if single := m.single.FindAllStringIndex(line, -1); len(single) > 0 {
		if last := single[len(single)-1]; last[0] == end && last[1] == end {
			return locs
		}
	}
	return locs[:n-1]
}

func (m *RegexMatcher) IndicateLine(line string) iter.Seq[Segment] {
	spans, ok := m.cache[line]
	if !ok {
		return segmentsFor(line, false, nil)
	}
	delete(m.cache, line)
	return segmentsFor(line, len(spans) > 0, spans)
}

func (m *RegexMatcher) ClearCache() {
	clear(m.cache)
}

func (m *RegexMatcher) TitleFlags() string {
	if m.caseSensitive {
		return " (regex, case sensitive)"
	}
	return " (regex)"
}

func (m *RegexMatcher) MatchCount() int {
	return m.count
}
