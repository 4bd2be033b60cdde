package slicer

import "errors"

// ErrBlockUnterminated is returned when a block's closing brace is never
// found before end of input. The caller discards the unit and continues.
var ErrBlockUnterminated = errors.New("block has no matching closing brace")

// ExtractBlock returns the substring of source from start through the
// matching closing brace of the first block opened at or after start,
// along with the end offset (exclusive). Braces inside string and
// character literals are ignored; literal spans honor backslash escapes,
// so an escaped quote does not terminate the span.
func ExtractBlock(source string, start int) (string, int, error) {
	if start < 0 || start >= len(source) {
		return "", 0, ErrBlockUnterminated
	}

	bracePos := -1
	for i := start; i < len(source); i++ {
		if source[i] == '{' {
			bracePos = i
			break
		}
	}
	if bracePos == -1 {
		return "", 0, ErrBlockUnterminated
	}

	depth := 0
	inString := false
	inChar := false
	escape := false

	for i := bracePos; i < len(source); i++ {
		ch := source[i]

		if escape {
			escape = false
			continue
		}
		if ch == '\\' {
			escape = true
			continue
		}

		if ch == '"' && !inChar {
			inString = !inString
		} else if ch == '\'' && !inString {
			inChar = !inChar
		}

		if inString || inChar {
			continue
		}

		switch ch {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return source[start : i+1], i + 1, nil
			}
		}
	}

	return "", 0, ErrBlockUnterminated
}
