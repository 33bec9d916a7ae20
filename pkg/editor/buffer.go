package editor

import (
	"strings"

	"github.com/byxorna/stackit/pkg/markup"
	"github.com/mattn/go-runewidth"
)

// splice replaces [start,end) of buf with s and returns the new buffer and
// the offset just past s. Offsets are UTF-16 units and must be valid.
func splice(buf string, start, end int, s string) (string, int) {
	i, ok := markup.ByteIndex(buf, start)
	if !ok {
		return buf, clamp(start, 0, markup.Len(buf))
	}
	j, ok := markup.ByteIndex(buf, end)
	if !ok {
		return buf, clamp(start, 0, markup.Len(buf))
	}
	return buf[:i] + s + buf[j:], start + markup.Len(s)
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// lineStart is the offset of the first character on the line holding off.
func lineStart(buf string, off int) int {
	i, ok := markup.ByteIndex(buf, off)
	if !ok {
		return 0
	}
	nl := strings.LastIndexByte(buf[:i], '\n')
	if nl < 0 {
		return 0
	}
	return markup.Len(buf[:nl+1])
}

// lineEnd is the offset of the newline ending the line holding off, or the
// end of the buffer on the last line.
func lineEnd(buf string, off int) int {
	i, ok := markup.ByteIndex(buf, off)
	if !ok {
		return markup.Len(buf)
	}
	nl := strings.IndexByte(buf[i:], '\n')
	if nl < 0 {
		return markup.Len(buf)
	}
	return markup.Len(buf[:i+nl])
}

// position reports the 1-based line and the 1-based screen column of off.
// Columns count terminal cells, so a wide character takes two.
func position(buf string, off int) (line, col int) {
	i, ok := markup.ByteIndex(buf, off)
	if !ok {
		i = len(buf)
	}
	before := buf[:i]
	line = strings.Count(before, "\n") + 1
	if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
		before = before[nl+1:]
	}
	return line, runewidth.StringWidth(before) + 1
}

// verticalMove returns the offset one line up (delta -1) or down (delta 1)
// from off, keeping the column where the target line is long enough.
func verticalMove(buf string, off, delta int) int {
	start := lineStart(buf, off)
	col := off - start

	var target int
	if delta < 0 {
		if start == 0 {
			return 0
		}
		target = lineStart(buf, start-1)
	} else {
		end := lineEnd(buf, off)
		if end >= markup.Len(buf) {
			return markup.Len(buf)
		}
		target = end + 1
	}

	// never land inside a surrogate pair
	dest := clamp(target+col, target, lineEnd(buf, target))
	for dest > target {
		if _, ok := markup.ByteIndex(buf, dest); ok {
			break
		}
		dest--
	}
	return dest
}
