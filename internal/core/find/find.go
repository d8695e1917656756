// Package find implements literal, optionally case-insensitive search and
// replace over document text. All offsets are byte offsets into the content.
package find

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tidepad/internal/logger"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/bethropolis/tidepad/internal/utils"
)

// Status is the outcome of a search.
type Status int

const (
	StatusFound           Status = iota
	StatusNotFound               // term absent from the whole content
	StatusNoTerm                 // empty search term
	StatusNothingToSearch        // no text surface to search
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not found"
	case StatusNoTerm:
		return "no term"
	case StatusNothingToSearch:
		return "nothing to search"
	default:
		return "unknown"
	}
}

// Result is a search outcome. Span is only meaningful when Status is StatusFound.
type Result struct {
	Status Status
	Span   types.Span
}

// Found reports whether the result carries a match.
func (r Result) Found() bool { return r.Status == StatusFound }

// Surface is the text a search runs against.
type Surface interface {
	Content() string
	Caret() int
}

// FindNext returns the first match of term at or after from. When nothing
// matches from there and from > 0, the search wraps once to the start.
func FindNext(content, term string, caseSensitive bool, from int) Result {
	if term == "" {
		return Result{Status: StatusNoTerm}
	}
	from = utils.ClampOffset(content, from)

	if span, ok := indexFrom(content, term, caseSensitive, from); ok {
		return Result{Status: StatusFound, Span: span}
	}
	if from > 0 {
		if span, ok := indexFrom(content, term, caseSensitive, 0); ok {
			logger.DebugTagf("find", "wrapped search for %q to %d", term, span.Start)
			return Result{Status: StatusFound, Span: span}
		}
	}
	return Result{Status: StatusNotFound}
}

// FindNextIn searches surface from its caret. A nil surface yields
// StatusNothingToSearch.
func FindNextIn(surface Surface, term string, caseSensitive bool) Result {
	if surface == nil {
		return Result{Status: StatusNothingToSearch}
	}
	return FindNext(surface.Content(), term, caseSensitive, surface.Caret())
}

// FindAll returns every non-overlapping match, left to right.
func FindAll(content, term string, caseSensitive bool) []types.Span {
	if term == "" {
		return nil
	}
	var spans []types.Span
	for from := 0; from <= len(content); {
		span, ok := indexFrom(content, term, caseSensitive, from)
		if !ok {
			break
		}
		spans = append(spans, span)
		from = span.End
	}
	return spans
}

// Matches reports whether text equals term under the given case rule.
func Matches(text, term string, caseSensitive bool) bool {
	if caseSensitive {
		return text == term
	}
	return strings.EqualFold(text, term)
}

// indexFrom finds the first match starting at or after from.
func indexFrom(content, term string, caseSensitive bool, from int) (types.Span, bool) {
	if caseSensitive {
		i := strings.Index(content[from:], term)
		if i < 0 {
			return types.Span{}, false
		}
		start := from + i
		return types.Span{Start: start, End: start + len(term)}, true
	}

	for start := from; start < len(content); {
		if end, ok := foldPrefix(content[start:], term); ok {
			return types.Span{Start: start, End: start + end}, true
		}
		_, size := utf8.DecodeRuneInString(content[start:])
		start += size
	}
	return types.Span{}, false
}

// foldPrefix reports whether s begins with term under simple case folding,
// returning the byte length of the matched prefix of s.
func foldPrefix(s, term string) (int, bool) {
	i := 0
	for _, tr := range term {
		if i >= len(s) {
			return 0, false
		}
		sr, size := utf8.DecodeRuneInString(s[i:])
		if !equalFoldRune(sr, tr) {
			return 0, false
		}
		i += size
	}
	return i, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return unicode.ToLower(a) == unicode.ToLower(b)
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
