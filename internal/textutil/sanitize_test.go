package textutil

import (
	"strings"
	"testing"
)

func TestSanitizeTerminalTextLeavesSafeInput(t *testing.T) {
	input := "safe-file.txt"
	if got := SanitizeTerminalText(input); got != input {
		t.Fatalf("expected %q to remain untouched, got %q", input, got)
	}
}

func TestSanitizeTerminalTextReplacesControlSequences(t *testing.T) {
	input := "bad\x1b[31m\npath"
	got := SanitizeTerminalText(input)
	if got != "bad?[31m path" {
		t.Fatalf("expected sanitized string \"bad?[31m path\", got %q", got)
	}
	if containsControl(got) {
		t.Fatalf("sanitized text should not contain control characters: %q", got)
	}
}

func TestSanitizeTerminalTextReplacesFormattingRunes(t *testing.T) {
	input := "a" + string(rune(0x202E)) + "b" + string(rune(0x200B)) + "c" + string(rune(0x00AD))
	got := SanitizeTerminalText(input)
	if containsRune(got, 0x202E) || containsRune(got, 0x200B) {
		t.Fatalf("sanitize left formatting runes in output: %q", got)
	}
	if !strings.Contains(got, "⟪RLO⟫") || !strings.Contains(got, "⟪ZWSP⟫") || !strings.Contains(got, "⟪SHY⟫") {
		t.Fatalf("expected formatting runes to be labeled, got %q", got)
	}
}

func TestSanitizeTerminalTextKeepsTabs(t *testing.T) {
	input := "a\tb\x1b[0m"
	want := "a\tb?[0m"
	if got := SanitizeTerminalText(input); got != want {
		t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", input, got, want)
	}
}

func containsControl(s string) bool {
	for _, r := range s {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}

func containsRune(s string, target rune) bool {
	for _, r := range s {
		if r == target {
			return true
		}
	}
	return false
}

func TestSanitizeTerminalTextReplacesC1Controls(t *testing.T) {
	input := "a\u009b31mb"
	if got := SanitizeTerminalText(input); got != "a?31mb" {
		t.Fatalf("SanitizeTerminalText(%q) = %q, want %q", input, got, "a?31mb")
	}
}

func TestSanitizeLineKeepsTerminator(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain\n", "plain\n"},
		{"crlf\r\n", "crlf\r\n"},
		{"bad\x1b[0m\n", "bad?[0m\n"},
		{"mid\nline\n", "mid line\n"},
		{"sep\u2028", "sep\n"},
		{"no terminator", "no terminator"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeLine(tt.in); got != tt.want {
			t.Fatalf("SanitizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCutLineTerminator(t *testing.T) {
	tests := []struct {
		in, body, term string
	}{
		{"a\n", "a", "\n"},
		{"a\r\n", "a", "\r\n"},
		{"a\r", "a", "\r"},
		{"a\f", "a", "\f"},
		{"a\u2029", "a", "\u2029"},
		{"a", "a", ""},
	}
	for _, tt := range tests {
		body, term := CutLineTerminator(tt.in)
		if body != tt.body || term != tt.term {
			t.Fatalf("CutLineTerminator(%q) = (%q,%q), want (%q,%q)", tt.in, body, term, tt.body, tt.term)
		}
	}
}
