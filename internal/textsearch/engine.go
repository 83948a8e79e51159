package textsearch

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// DefaultContext is the number of lines shown before and after each match.
const DefaultContext = 3

// Config holds the engine options fixed for the lifetime of an Engine.
type Config struct {
	CaseSensitive bool
	Regex         bool
	Context       int
	Sinks         Sinks
}

// DefaultConfig shows three lines of context and prints Markdown to standard output.
func DefaultConfig() Config {
	return Config{
		Context: DefaultContext,
		Sinks:   StdoutSinks(),
	}
}

// Engine scans documents for a term and writes matching lines with their
// surrounding context to its sinks. An Engine is not safe for concurrent use;
// give each goroutine its own.
type Engine struct {
	findText string
	matcher  Matcher
	context  int
	sinks    Sinks
	padding  int
}

// New builds an engine using a SimpleMatcher, or a RegexMatcher when cfg.Regex is set.
func New(findText string, cfg Config) (*Engine, error) {
	var (
		m   Matcher
		err error
	)
	if cfg.Regex {
		m, err = NewRegexMatcher(findText, cfg.CaseSensitive)
	} else {
		m, err = NewSimpleMatcher(findText, cfg.CaseSensitive)
	}
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", findText, err)
	}
	return NewWithMatcher(m, findText, cfg)
}

// NewWithMatcher builds an engine around an existing matcher. findText is only
// used for the title.
func NewWithMatcher(m Matcher, findText string, cfg Config) (*Engine, error) {
	if cfg.Context < 0 {
		return nil, fmt.Errorf("context %d: %w", cfg.Context, ErrNegativeContext)
	}
	return &Engine{
		findText: findText,
		matcher:  m,
		context:  cfg.Context,
		sinks:    cfg.Sinks.withDefaults(),
		padding:  1,
	}, nil
}

// Title is the heading printed once before the results of a search run.
func (e *Engine) Title() string {
	return "\nFind in workboxs: \"" + e.findText + "\"" + e.matcher.TitleFlags() + "\n\n"
}

// Matches reports whether line contains the term and counts its matches.
func (e *Engine) Matches(line string) bool {
	return e.matcher.Matches(line)
}

// IndicateLine splits line into plain and matched runs; call Matches for it first.
func (e *Engine) IndicateLine(line string) iter.Seq[Segment] {
	return e.matcher.IndicateLine(line)
}

// MatchCount is the running number of matches over every document searched so far.
func (e *Engine) MatchCount() int {
	return e.matcher.MatchCount()
}

// Margin renders the line number gutter for lineNum using the padding of the
// document currently (or last) searched.
func (e *Engine) Margin(lineNum int, matchFound bool) string {
	return e.marginLabel(strconv.Itoa(lineNum), matchFound)
}

func (e *Engine) marginLabel(label string, matchFound bool) string {
	indicator := " "
	if matchFound {
		indicator = ":"
	}
	return fmt.Sprintf("  %*s%s ", e.padding, label, indicator)
}

// Search is SearchText for a Document.
func (e *Engine) Search(doc Document) (bool, error) {
	return e.SearchText(doc.Text, doc.Path, doc.WorkboxID)
}

// SearchAll writes the title and then searches every document in order. It
// returns how many documents had at least one match.
func (e *Engine) SearchAll(docs []Document) (int, error) {
	if err := e.sinks.NonMatching(e.Title()); err != nil {
		return 0, err
	}
	matched := 0
	for _, doc := range docs {
		found, err := e.Search(doc)
		if err != nil {
			return matched, err
		}
		if found {
			matched++
		}
	}
	return matched, nil
}

// SearchText writes every matching line of text, with up to the configured
// number of context lines around it, and a gap row wherever lines were skipped
// between two printed blocks. Nothing is written when text has no match. The
// first sink error stops the search and is returned.
func (e *Engine) SearchText(text, path, workboxID string) (bool, error) {
	lines := SplitLines(text)
	e.padding = len(strconv.Itoa(len(lines)))
	info := Document{Text: text, Path: path, WorkboxID: workboxID}

	history := newLineHistory(e.context)
	remaining := 0
	lastInsert := 0
	found := false

	for i, line := range lines {
		if e.matcher.Matches(line) {
			if !found {
				if err := e.writeHeader(info); err != nil {
					return found, err
				}
				found = true
			} else if i-lastInsert-1-history.len() > 0 {
				// The dot run follows the width of the current index, not the number of skipped lines.
				gap := e.marginLabel(strings.Repeat(".", len(strconv.Itoa(i))), false) + "\n"
				if err := e.sinks.NonMatching(gap); err != nil {
					return found, err
				}
			}
			block := append(history.drain(), line)
			last, err := e.InsertLines(i-len(block)+1, info, block...)
			if err != nil {
				return found, err
			}
			lastInsert = last
			remaining = e.context
			continue
		}

		if remaining > 0 {
			last, err := e.InsertLines(i, info, line)
			if err != nil {
				return found, err
			}
			lastInsert = last
			remaining--
			continue
		}

		history.push(line)
		e.matcher.ClearCache()
	}

	debugf("search path=%q lines=%d found=%v total_matches=%d", path, len(lines), found, e.matcher.MatchCount())
	return found, nil
}

func (e *Engine) writeHeader(info Document) error {
	if err := e.sinks.NonMatching("# File: "); err != nil {
		return err
	}
	if err := e.sinks.Matching(info.Path, info.WorkboxID, 0, "Open "+info.Path); err != nil {
		return err
	}
	return e.sinks.NonMatching("\n")
}

// InsertLines writes lines numbered from start+1, where start is the zero-based
// index of the first one, and returns the zero-based index of the last.
func (e *Engine) InsertLines(start int, info Document, lines ...string) (int, error) {
	for offset, line := range lines {
		if err := e.indicateResults(line, start+offset+1, info); err != nil {
			return start + offset - 1, err
		}
	}
	return start + len(lines) - 1, nil
}

func (e *Engine) indicateResults(line string, lineNum int, info Document) error {
	toolTip := fmt.Sprintf("Open %s at line number %d", info.Path, lineNum)
	for seg := range e.matcher.IndicateLine(line) {
		var err error
		switch {
		case seg.Margin:
			err = e.sinks.NonMatching(e.Margin(lineNum, seg.Match))
		case seg.Match:
			err = e.sinks.Matching(seg.Text, info.WorkboxID, lineNum, toolTip)
		default:
			err = e.sinks.NonMatching(seg.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
