// Package textstats computes the document statistics shown in the status line.
package textstats

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bethropolis/tidepad/internal/types"
	"github.com/rivo/uniseg"
)

// Stats holds aggregate counts for a document.
type Stats struct {
	Lines int
	Chars int // user-perceived characters (grapheme clusters)
	Words int
}

func (s Stats) String() string {
	return fmt.Sprintf("Lines: %d | Characters: %d | Words: %d", s.Lines, s.Chars, s.Words)
}

// Compute counts lines, characters and words in content.
// An empty document has one line; a trailing newline opens a new line.
func Compute(content string) Stats {
	return Stats{
		Lines: strings.Count(content, "\n") + 1,
		Chars: uniseg.GraphemeClusterCount(content),
		Words: countWords(content),
	}
}

// countWords counts maximal runs of non-whitespace runes.
func countWords(content string) int {
	count := 0
	inWord := false
	for _, r := range content {
		if !unicode.IsSpace(r) {
			if !inWord {
				count++
				inWord = true
			}
		} else {
			inWord = false
		}
	}
	return count
}

// PositionAt converts a byte offset into a 0-based line and rune column.
func PositionAt(content string, offset int) types.Position {
	if offset > len(content) {
		offset = len(content)
	}
	if offset < 0 {
		offset = 0
	}
	prefix := content[:offset]
	line := strings.Count(prefix, "\n")
	lineStart := strings.LastIndexByte(prefix, '\n') + 1
	return types.Position{Line: line, Col: len([]rune(prefix[lineStart:]))}
}

// OffsetAt converts a 0-based line and rune column back into a byte offset,
// clamping to the line's end and the document's bounds.
func OffsetAt(content string, pos types.Position) int {
	if pos.Line < 0 {
		return 0
	}
	start := 0
	for i := 0; i < pos.Line; i++ {
		next := strings.IndexByte(content[start:], '\n')
		if next < 0 {
			return len(content)
		}
		start += next + 1
	}
	end := strings.IndexByte(content[start:], '\n')
	if end < 0 {
		end = len(content)
	} else {
		end += start
	}
	col := 0
	for i := range content[start:end] {
		if col == pos.Col {
			return start + i
		}
		col++
	}
	return end
}
