package textsearch

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no terminator", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a\n", "b\n"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
		{"crlf", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
		{"lone cr", "a\rb", []string{"a\r", "b"}},
		{"cr before lf pair", "a\r\r\nb", []string{"a\r", "\r\n", "b"}},
		{"form feed and vertical tab", "a\fb\vc", []string{"a\f", "b\v", "c"}},
		{"unicode separators", "a\u2028b\u2029c\u0085d", []string{"a\u2028", "b\u2029", "c\u0085", "d"}},
		{"record separator", "a\x1eb", []string{"a\x1e", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitLines(tt.text)); diff != "" {
				t.Fatalf("SplitLines(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}
