package find

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/document"
	"github.com/bethropolis/tidepad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFindNextScenario(t *testing.T) {
	d := document.New("")
	d.SetContent("hello world")

	r := FindNextIn(d, "world", false)
	require.Equal(t, StatusFound, r.Status)
	assert.Equal(t, types.Span{Start: 6, End: 11}, r.Span)

	r = FindNextIn(d, "xyz", false)
	assert.Equal(t, StatusNotFound, r.Status)
}

func TestFindNextEdgeStatuses(t *testing.T) {
	assert.Equal(t, StatusNoTerm, FindNext("abc", "", true, 0).Status)
	assert.Equal(t, StatusNothingToSearch, FindNextIn(nil, "abc", true).Status)
	assert.Equal(t, StatusNotFound, FindNext("", "a", true, 0).Status)
}

func TestFindNextWrapsOnce(t *testing.T) {
	r := FindNext("foo bar", "foo", true, 4)
	require.True(t, r.Found())
	assert.Equal(t, types.Span{Start: 0, End: 3}, r.Span)
}

func TestFindNextFromPastEndClamps(t *testing.T) {
	r := FindNext("abc", "b", true, 99)
	require.True(t, r.Found())
	assert.Equal(t, 1, r.Span.Start)
}

func TestFindNextCaseInsensitive(t *testing.T) {
	content := "Straße ÉCOLE école"

	r := FindNext(content, "école", false, 0)
	require.True(t, r.Found())
	assert.Equal(t, "ÉCOLE", r.Span.Text(content))

	r = FindNext(content, "école", false, r.Span.End)
	require.True(t, r.Found())
	assert.Equal(t, "école", r.Span.Text(content))

	r = FindNext(content, "école", true, 0)
	require.True(t, r.Found())
	assert.Equal(t, "école", r.Span.Text(content))
}

func TestFindAllNonOverlapping(t *testing.T) {
	spans := FindAll("aaaa", "aa", true)
	assert.Equal(t, []types.Span{{Start: 0, End: 2}, {Start: 2, End: 4}}, spans)
	assert.Nil(t, FindAll("aaaa", "", true))
}

var alphabet = []rune("abAB é\n")

func occursAnywhere(content, term string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(content, term)
	}
	for i := range content {
		for j := i; j <= len(content); j++ {
			if strings.EqualFold(content[i:j], term) {
				return true
			}
		}
	}
	return false
}

// Property: a result is either a real match or none, and none only when the
// term occurs nowhere. Wraparound means the start offset never hides a match.
func TestFindNextProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringOfN(rapid.RuneFrom(alphabet), 0, 24, -1).Draw(t, "content")
		term := rapid.StringOfN(rapid.RuneFrom(alphabet), 1, 3, -1).Draw(t, "term")
		cs := rapid.Bool().Draw(t, "caseSensitive")
		from := rapid.IntRange(0, len(content)).Draw(t, "from")

		r := FindNext(content, term, cs, from)
		switch r.Status {
		case StatusFound:
			if !Matches(r.Span.Text(content), term, cs) {
				t.Fatalf("span %v text %q does not match %q", r.Span, r.Span.Text(content), term)
			}
		case StatusNotFound:
			if occursAnywhere(content, term, cs) {
				t.Fatalf("%q occurs in %q but was not found from %d", term, content, from)
			}
		default:
			t.Fatalf("unexpected status %v", r.Status)
		}
	})
}
