package find

import (
	"strings"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
)

// ReplaceResult is the outcome of ReplaceOne.
type ReplaceResult struct {
	Content  string
	Replaced bool
	Edit     types.Edit // valid when Replaced
	Next     Result     // next match after the replacement point
}

// ReplaceOne replaces the selection when its text matches term, then looks
// for the following match. Without a replacement the search starts at caret,
// as FindNext does.
func ReplaceOne(content string, selection types.Span, hasSelection bool, caret int, term, replacement string, caseSensitive bool) ReplaceResult {
	if term == "" {
		return ReplaceResult{Content: content, Next: Result{Status: StatusNoTerm}}
	}
	selection = selection.Normalize()

	if hasSelection && !selection.IsEmpty() && Matches(selection.Text(content), term, caseSensitive) {
		edit := types.Edit{
			Offset:   selection.Start,
			Removed:  selection.Text(content),
			Inserted: replacement,
		}
		updated := content[:selection.Start] + replacement + content[selection.End:]
		return ReplaceResult{
			Content:  updated,
			Replaced: true,
			Edit:     edit,
			Next:     FindNext(updated, term, caseSensitive, edit.End()),
		}
	}

	return ReplaceResult{
		Content: content,
		Next:    FindNext(content, term, caseSensitive, caret),
	}
}

// ReplaceAll substitutes every non-overlapping match left to right and
// returns the new content with the number of matches replaced.
func ReplaceAll(content, term, replacement string, caseSensitive bool) (string, int, Status) {
	if term == "" {
		return content, 0, StatusNoTerm
	}
	spans := FindAll(content, term, caseSensitive)
	if len(spans) == 0 {
		return content, 0, StatusNotFound
	}

	var b strings.Builder
	b.Grow(len(content))
	last := 0
	for _, span := range spans {
		b.WriteString(content[last:span.Start])
		b.WriteString(replacement)
		last = span.End
	}
	b.WriteString(content[last:])

	logger.DebugTagf("find", "replaced %d occurrence(s) of %q", len(spans), term)
	return b.String(), len(spans), StatusFound
}

// LegacyReplaceCount reproduces the old length-delta occurrence estimate.
// It is only accurate when term and replacement differ in length.
func LegacyReplaceCount(before, after, term, replacement string) int {
	divisor := len(term) - len(replacement)
	if divisor < 1 {
		divisor = 1
	}
	return (len(before) - len(after)) / divisor
}
