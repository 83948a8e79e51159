package textsearch

import (
	"errors"
	"strings"
)

type sinkCall struct {
	Match   bool
	Text    string
	Workbox string
	Line    int
	Tip     string
}

type recorder struct {
	calls []sinkCall
}

func (r *recorder) sinks() Sinks {
	return Sinks{
		NonMatching: func(text string) error {
			r.calls = append(r.calls, sinkCall{Text: text})
			return nil
		},
		Matching: func(text, workboxID string, lineNum int, toolTip string) error {
			r.calls = append(r.calls, sinkCall{Match: true, Text: text, Workbox: workboxID, Line: lineNum, Tip: toolTip})
			return nil
		},
	}
}

func (r *recorder) matchingCalls() int {
	n := 0
	for _, c := range r.calls {
		if c.Match {
			n++
		}
	}
	return n
}

func newTestEngine(findText string, cfg Config) (*Engine, *recorder, *strings.Builder) {
	rec := &recorder{}
	var out strings.Builder
	cfg.Sinks = teeSinks(rec.sinks(), MarkdownSinks(&out))
	e, err := New(findText, cfg)
	if err != nil {
		panic(err)
	}
	return e, rec, &out
}

func teeSinks(a, b Sinks) Sinks {
	return Sinks{
		NonMatching: func(text string) error {
			if err := a.NonMatching(text); err != nil {
				return err
			}
			return b.NonMatching(text)
		},
		Matching: func(text, workboxID string, lineNum int, toolTip string) error {
			if err := a.Matching(text, workboxID, lineNum, toolTip); err != nil {
				return err
			}
			return b.Matching(text, workboxID, lineNum, toolTip)
		},
	}
}

var errSinkFailed = errors.New("sink failed")
