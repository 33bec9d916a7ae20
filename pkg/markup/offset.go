package markup

import (
	"unicode/utf8"
)

// Offsets into a buffer are counted in UTF-16 code units, the unit editor
// selections are reported in. A character outside the basic multilingual
// plane (most emoji) therefore has length 2.

// Len returns the length of s in UTF-16 code units.
func Len(s string) int {
	n := 0
	for _, r := range s {
		n += RuneLen(r)
	}
	return n
}

// RuneLen is the UTF-16 length of a single rune.
func RuneLen(r rune) int {
	if r >= 0x10000 && r <= utf8.MaxRune {
		return 2
	}
	return 1
}

// ByteIndex converts a UTF-16 offset into a byte index into s. ok is false
// when the offset lies past the end of s or splits a surrogate pair.
func ByteIndex(s string, offset int) (idx int, ok bool) {
	if offset < 0 {
		return 0, false
	}
	units := 0
	for i, r := range s {
		if units == offset {
			return i, true
		}
		units += RuneLen(r)
		if units > offset {
			return 0, false
		}
	}
	if units == offset {
		return len(s), true
	}
	return 0, false
}

// Slice returns s[start:end] with both bounds in UTF-16 units.
func Slice(s string, start, end int) (string, bool) {
	if start > end {
		return "", false
	}
	i, ok := ByteIndex(s, start)
	if !ok {
		return "", false
	}
	j, ok := ByteIndex(s, end)
	if !ok {
		return "", false
	}
	return s[i:j], true
}

// RuneBefore returns the UTF-16 width of the character ending at offset, or 0
// at the start of the buffer.
func RuneBefore(s string, offset int) int {
	idx, ok := ByteIndex(s, offset)
	if !ok || idx == 0 {
		return 0
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return RuneLen(r)
}

// RuneAfter returns the UTF-16 width of the character starting at offset, or
// 0 at the end of the buffer.
func RuneAfter(s string, offset int) int {
	idx, ok := ByteIndex(s, offset)
	if !ok || idx >= len(s) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s[idx:])
	return RuneLen(r)
}

