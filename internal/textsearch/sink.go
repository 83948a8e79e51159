package textsearch

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/ctxfind/internal/textutil"
)

// PlainSink receives text that is not part of a match: margins, gap rows,
// unmatched runs and header decoration.
type PlainSink func(text string) error

// MatchSink receives a matched run together with what a consumer needs to jump
// to it.
type MatchSink func(text, workboxID string, lineNum int, toolTip string) error

// Sinks is the pair of outputs the engine writes to. Neither sink adds a newline.
type Sinks struct {
	NonMatching PlainSink
	Matching    MatchSink
}

func (s Sinks) withDefaults() Sinks {
	if s.NonMatching == nil || s.Matching == nil {
		def := StdoutSinks()
		if s.NonMatching == nil {
			s.NonMatching = def.NonMatching
		}
		if s.Matching == nil {
			s.Matching = def.Matching
		}
	}
	return s
}

// StdoutSinks writes Markdown-style output to standard output.
func StdoutSinks() Sinks {
	return MarkdownSinks(os.Stdout)
}

// MarkdownSinks writes plain text verbatim and each match as
// [text](, workboxID, lineNum "toolTip"). No escaping is applied.
func MarkdownSinks(w io.Writer) Sinks {
	return Sinks{
		NonMatching: func(text string) error {
			_, err := io.WriteString(w, text)
			return err
		},
		Matching: func(text, workboxID string, lineNum int, toolTip string) error {
			_, err := fmt.Fprintf(w, "[%s](, %s, %d \"%s\")", text, workboxID, lineNum, toolTip)
			return err
		},
	}
}

// TerminalOptions controls TerminalSinks output.
type TerminalOptions struct {
	// MatchColor is a color name known to tcell ("red", "dark-magenta") or #rrggbb.
	// Empty disables coloring.
	MatchColor string
	// Hyperlinks wraps matches in OSC 8 links of the form ctxfind://<workbox>#<line>.
	Hyperlinks bool
	// TabWidth expands tabs to this many columns; zero leaves tabs alone.
	TabWidth int
}

type terminalWriter struct {
	w      io.Writer
	opts   TerminalOptions
	color  string
	column int
}

// TerminalSinks renders for an interactive terminal. Control characters in the
// document are neutralised so file content cannot inject escape sequences.
func TerminalSinks(w io.Writer, opts TerminalOptions) (Sinks, error) {
	color, err := colorEscape(opts.MatchColor)
	if err != nil {
		return Sinks{}, err
	}
	tw := &terminalWriter{w: w, opts: opts, color: color}
	return Sinks{NonMatching: tw.plain, Matching: tw.match}, nil
}

func colorEscape(name string) (string, error) {
	if name == "" || name == "none" {
		return "", nil
	}
	key := strings.ReplaceAll(strings.ToLower(name), "-", "")
	c := tcell.GetColor(key)
	if c == tcell.ColorDefault || !c.Valid() {
		return "", fmt.Errorf("unsupported color: %s", name)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return "", fmt.Errorf("unsupported color: %s", name)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b), nil
}

func (tw *terminalWriter) plain(text string) error {
	_, err := io.WriteString(tw.w, tw.prepare(text))
	return err
}

func (tw *terminalWriter) match(text, workboxID string, lineNum int, _ string) error {
	body, term := textutil.CutLineTerminator(text)
	var b strings.Builder
	if tw.opts.Hyperlinks {
		b.WriteString("\x1b]8;;ctxfind://")
		b.WriteString(url.PathEscape(workboxID))
		b.WriteByte('#')
		b.WriteString(strconv.Itoa(lineNum))
		b.WriteString("\x1b\\")
	}
	if tw.color != "" {
		b.WriteString(tw.color)
	}
	b.WriteString(tw.prepare(body))
	if tw.color != "" {
		b.WriteString("\x1b[0m")
	}
	if tw.opts.Hyperlinks {
		b.WriteString("\x1b]8;;\x1b\\")
	}
	b.WriteString(tw.prepare(term))
	_, err := io.WriteString(tw.w, b.String())
	return err
}

// prepare sanitizes text and expands tabs relative to the current output column.
func (tw *terminalWriter) prepare(text string) string {
	if text == "" {
		return ""
	}
	var safe strings.Builder
	for _, line := range SplitLines(text) {
		safe.WriteString(textutil.SanitizeLine(line))
	}
	out, col := textutil.ExpandTabsFrom(safe.String(), tw.opts.TabWidth, tw.column)
	tw.column = col
	return out
}
