package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-code-lab/ctxfind/internal/textsearch"
	textutil "github.com/kk-code-lab/ctxfind/internal/textutil"
)

const (
	formatMarkdown = "markdown"
	formatTerminal = "terminal"
)

type options struct {
	help          bool
	caseSensitive bool
	regex         bool
	context       int
	format        string
	color         string
	noColor       bool
	tabWidth      int

	pattern string
	files   []string
}

func parseArgs(args []string, getenv func(string) string) (options, error) {
	opts := options{
		context:  textsearch.DefaultContext,
		format:   getenv("CTXFIND_FORMAT"),
		color:    envVarOrDefault(getenv, "CTXFIND_COLOR_MATCH", "red"),
		tabWidth: textutil.DefaultTabWidth,
	}

	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]

		// value returns the argument of an option given either as "--opt=v" or "--opt v".
		value := func(name string) (string, error) {
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v, nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("option %s requires an argument", name)
			}
			i++
			return args[i], nil
		}

		switch {
		case arg == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case arg == "-h" || arg == "--help":
			opts.help = true
			return opts, nil
		case arg == "-s" || arg == "--case-sensitive":
			opts.caseSensitive = true
		case arg == "-r" || arg == "--regex":
			opts.regex = true
		case arg == "--no-color":
			opts.noColor = true
		case arg == "-C" || arg == "--context" || strings.HasPrefix(arg, "--context="):
			name := "--context"
			if arg == "-C" {
				name = "-C"
			}
			v, err := value(name)
			if err != nil {
				return opts, err
			}
			n, err := parseCount(name, v)
			if err != nil {
				return opts, err
			}
			opts.context = n
		case arg == "--tab-width" || strings.HasPrefix(arg, "--tab-width="):
			v, err := value("--tab-width")
			if err != nil {
				return opts, err
			}
			n, err := parseCount("--tab-width", v)
			if err != nil {
				return opts, err
			}
			opts.tabWidth = n
		case arg == "--format" || strings.HasPrefix(arg, "--format="):
			v, err := value("--format")
			if err != nil {
				return opts, err
			}
			opts.format = v
		case arg == "--color" || strings.HasPrefix(arg, "--color="):
			v, err := value("--color")
			if err != nil {
				return opts, err
			}
			opts.color = v
		case arg != "-" && strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option %s", arg)
		default:
			positional = append(positional, arg)
		}
	}

	switch opts.format {
	case "", formatMarkdown, formatTerminal:
		// OK.
	default:
		return opts, fmt.Errorf("format: unexpected value %q", opts.format)
	}

	if len(positional) == 0 {
		return opts, fmt.Errorf("pattern can't be empty")
	}
	opts.pattern = positional[0]
	if opts.pattern == "" {
		return opts, fmt.Errorf("pattern can't be empty")
	}
	opts.files = positional[1:]
	return opts, nil
}

func parseCount(name, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("option %s expects a non-negative number, got %q", name, v)
	}
	return n, nil
}

func envVarOrDefault(getenv func(string) string, key, defaultValue string) string {
	if v := getenv(key); v != "" {
		return v
	}
	return defaultValue
}
