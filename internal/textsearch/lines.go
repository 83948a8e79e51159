package textsearch

import "unicode/utf8"

// SplitLines splits text into lines, keeping each line's terminator. A terminator
// at the very end does not produce an empty final line. Besides \n, \r\n and \r,
// the vertical tab, form feed, file/group/record separators, NEL and the Unicode
// line and paragraph separators also end a line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		end := i + size
		if r == '\r' && end < len(text) && text[end] == '\n' {
			end++
		}
		lines = append(lines, text[start:end])
		start = end
		i = end
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
