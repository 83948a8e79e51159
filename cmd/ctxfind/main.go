package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	fsutil "github.com/kk-code-lab/ctxfind/internal/fs"
	"github.com/kk-code-lab/ctxfind/internal/textsearch"
	"golang.org/x/term"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

const stdinLabel = "<stdin>"

func printHelp(w io.Writer) {
	fmt.Fprint(w, `ctxfind - search text files and print matches with surrounding context

USAGE:
    ctxfind [OPTIONS] PATTERN [FILE...]

With no FILE, or when FILE is -, standard input is searched.

OPTIONS:
    -h, --help              Show this help message and exit
    -s, --case-sensitive    Match case exactly
    -r, --regex             Treat PATTERN as a regular expression (RE2 syntax)
    -C, --context N         Show N lines before and after each match (default 3)
        --format FORMAT     Output format: markdown or terminal
                            (default: terminal on a tty, otherwise markdown; $CTXFIND_FORMAT)
        --color NAME        Match color name or #rrggbb (default red; $CTXFIND_COLOR_MATCH)
        --no-color          Disable colored matches in terminal output
        --tab-width N       Expand tabs in terminal output (default 4, 0 keeps tabs)

EXIT STATUS:
    0 if something matched, 1 if nothing matched, 2 if an error occurred
`)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, os.Getenv)
	if err != nil {
		fmt.Fprintf(stderr, "ctxfind: %v\n", err)
		fmt.Fprintln(stderr, "Try 'ctxfind --help' for more information.")
		return exitError
	}
	if opts.help {
		printHelp(stdout)
		return exitMatched
	}

	out := bufio.NewWriter(stdout)
	sinks, err := buildSinks(out, opts, isTerminal(stdout))
	if err != nil {
		fmt.Fprintf(stderr, "ctxfind: %v\n", err)
		return exitError
	}

	engine, err := textsearch.New(opts.pattern, textsearch.Config{
		CaseSensitive: opts.caseSensitive,
		Regex:         opts.regex,
		Context:       opts.context,
		Sinks:         sinks,
	})
	if err != nil {
		fmt.Fprintf(stderr, "ctxfind: %v\n", err)
		return exitError
	}

	docs, readFailed := loadDocuments(opts.files, stdin, stderr)

	matched, err := engine.SearchAll(docs)
	if flushErr := out.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		fmt.Fprintf(stderr, "ctxfind: write output: %v\n", err)
		return exitError
	}

	switch {
	case readFailed:
		return exitError
	case matched == 0:
		return exitNotMatched
	default:
		return exitMatched
	}
}

func buildSinks(w io.Writer, opts options, tty bool) (textsearch.Sinks, error) {
	format := opts.format
	if format == "" {
		format = formatMarkdown
		if tty {
			format = formatTerminal
		}
	}
	switch format {
	case formatMarkdown:
		return textsearch.MarkdownSinks(w), nil
	case formatTerminal:
		color := opts.color
		if opts.noColor {
			color = ""
		}
		return textsearch.TerminalSinks(w, textsearch.TerminalOptions{
			MatchColor: color,
			Hyperlinks: tty,
			TabWidth:   opts.tabWidth,
		})
	default:
		return textsearch.Sinks{}, fmt.Errorf("format: unexpected value %q", format)
	}
}

// loadDocuments reads every input in order. Inputs that cannot be read are
// reported and skipped.
func loadDocuments(files []string, stdin io.Reader, stderr io.Writer) ([]textsearch.Document, bool) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	docs := make([]textsearch.Document, 0, len(files))
	failed := false
	for i, name := range files {
		var (
			text  string
			label string
			err   error
		)
		if name == "-" {
			label = stdinLabel
			text, err = fsutil.ReadText(stdin, label)
		} else {
			label = fsutil.DisplayLabel(name)
			text, err = fsutil.ReadTextFile(name)
		}
		if err != nil {
			failed = true
			if errors.Is(err, fsutil.ErrBinaryFile) {
				fmt.Fprintf(stderr, "ctxfind: %s: skipping binary file\n", label)
			} else {
				fmt.Fprintf(stderr, "ctxfind: %v\n", err)
			}
			continue
		}
		docs = append(docs, textsearch.Document{
			Text:      text,
			Path:      label,
			WorkboxID: strconv.Itoa(i + 1),
		})
	}
	return docs, failed
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
