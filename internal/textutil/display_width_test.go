package textutil

import "testing"

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"ascii", "abc", 3},
		{"cjk", "你好", 4},
		{"mixed", "a你b", 4},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayWidth(tt.text); got != tt.want {
				t.Fatalf("DisplayWidth(%q)=%d want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestExpandTabsFromWidths(t *testing.T) {
	if got, _ := ExpandTabsFrom("a\tb", 4, 0); got != "a   b" {
		t.Fatalf("ExpandTabsFrom = %q, want %q", got, "a   b")
	}
	if got, _ := ExpandTabsFrom("no tabs", 4, 0); got != "no tabs" {
		t.Fatalf("ExpandTabsFrom changed text without tabs: %q", got)
	}
	if got, _ := ExpandTabsFrom("a\tb", 0, 0); got != "a\tb" {
		t.Fatalf("ExpandTabsFrom with zero width = %q, want tabs untouched", got)
	}
}

func TestExpandTabsFromCarriesColumn(t *testing.T) {
	out, col := ExpandTabsFrom("ab", 4, 0)
	if out != "ab" || col != 2 {
		t.Fatalf("ExpandTabsFrom(ab) = (%q,%d), want (\"ab\",2)", out, col)
	}
	out, col = ExpandTabsFrom("\tx", 4, col)
	if out != "  x" || col != 5 {
		t.Fatalf("ExpandTabsFrom(\\tx) = (%q,%d), want (\"  x\",5)", out, col)
	}
	out, col = ExpandTabsFrom("y\n\tz", 4, col)
	if out != "y\n    z" || col != 5 {
		t.Fatalf("ExpandTabsFrom after newline = (%q,%d), want (\"y\\n    z\",5)", out, col)
	}
	_, col = ExpandTabsFrom("tail\n", 4, 7)
	if col != 0 {
		t.Fatalf("column after trailing newline = %d, want 0", col)
	}
	_, col = ExpandTabsFrom("你", 0, 3)
	if col != 5 {
		t.Fatalf("column after wide rune = %d, want 5", col)
	}
}
