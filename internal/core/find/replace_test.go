package find

import (
	"strings"
	"testing"

	"github.com/bethropolis/tidepad/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestReplaceAllCountsMatches(t *testing.T) {
	out, n, status := ReplaceAll("aXaXa", "a", "bb", true)
	assert.Equal(t, "bbXbbXbb", out)
	assert.Equal(t, 3, n)
	assert.Equal(t, StatusFound, status)
}

func TestReplaceAllEqualLengthCount(t *testing.T) {
	out, n, _ := ReplaceAll("cat cat cat", "cat", "dog", true)
	assert.Equal(t, "dog dog dog", out)
	assert.Equal(t, 3, n)
	assert.Equal(t, 0, LegacyReplaceCount("cat cat cat", out, "cat", "dog"))
}

func TestLegacyReplaceCount(t *testing.T) {
	assert.Equal(t, 3, LegacyReplaceCount("abcXabcXabc", "aXaXa", "abc", "a"))
	assert.Equal(t, -3, LegacyReplaceCount("aXaXa", "bbXbbXbb", "a", "bb"))
}

func TestReplaceAllCaseInsensitive(t *testing.T) {
	out, n, _ := ReplaceAll("Go go GO", "go", "run", false)
	assert.Equal(t, "run run run", out)
	assert.Equal(t, 3, n)

	out, n, _ = ReplaceAll("Go go GO", "go", "run", true)
	assert.Equal(t, "Go run GO", out)
	assert.Equal(t, 1, n)
}

func TestReplaceAllEdgeStatuses(t *testing.T) {
	out, n, status := ReplaceAll("abc", "", "x", true)
	assert.Equal(t, "abc", out)
	assert.Zero(t, n)
	assert.Equal(t, StatusNoTerm, status)

	out, n, status = ReplaceAll("abc", "z", "x", true)
	assert.Equal(t, "abc", out)
	assert.Zero(t, n)
	assert.Equal(t, StatusNotFound, status)
}

func TestReplaceOneReplacesSelectionAndAdvances(t *testing.T) {
	content := "one two one two"
	sel := types.Span{Start: 4, End: 7}

	res := ReplaceOne(content, sel, true, sel.End, "two", "2", true)
	require.True(t, res.Replaced)
	assert.Equal(t, "one 2 one two", res.Content)
	assert.Equal(t, types.Edit{Offset: 4, Removed: "two", Inserted: "2"}, res.Edit)
	require.True(t, res.Next.Found())
	assert.Equal(t, types.Span{Start: 10, End: 13}, res.Next.Span)
}

func TestReplaceOneWithoutMatchingSelectionOnlyFinds(t *testing.T) {
	content := "one two one two"

	res := ReplaceOne(content, types.Span{Start: 0, End: 3}, true, 3, "two", "2", true)
	assert.False(t, res.Replaced)
	assert.Equal(t, content, res.Content)
	assert.Equal(t, types.Span{Start: 4, End: 7}, res.Next.Span)

	res = ReplaceOne(content, types.Span{Start: 8, End: 8}, false, 8, "two", "2", true)
	assert.False(t, res.Replaced)
	assert.Equal(t, types.Span{Start: 12, End: 15}, res.Next.Span)
}

func TestReplaceOneSearchesFromCaret(t *testing.T) {
	// The selection contains a match, but the search continues after it.
	res := ReplaceOne("xfoo foo", types.Span{Start: 0, End: 4}, true, 4, "foo", "bar", true)
	assert.False(t, res.Replaced)
	require.Equal(t, StatusFound, res.Next.Status)
	assert.Equal(t, types.Span{Start: 5, End: 8}, res.Next.Span)

	// A backward selection has its caret at the start.
	res = ReplaceOne("xfoo foo", types.Span{Start: 0, End: 4}, true, 0, "foo", "bar", true)
	assert.Equal(t, types.Span{Start: 1, End: 4}, res.Next.Span)
}

func TestReplaceOneCaseInsensitiveSelection(t *testing.T) {
	res := ReplaceOne("Hello hello", types.Span{Start: 0, End: 5}, true, 5, "HELLO", "bye", false)
	require.True(t, res.Replaced)
	assert.Equal(t, "bye hello", res.Content)
	assert.Equal(t, types.Span{Start: 4, End: 9}, res.Next.Span)
}

func TestReplaceOneNoTerm(t *testing.T) {
	res := ReplaceOne("abc", types.Span{Start: 0, End: 1}, true, 1, "", "x", true)
	assert.False(t, res.Replaced)
	assert.Equal(t, StatusNoTerm, res.Next.Status)
}

// Property: the direct count equals the number of non-overlapping matches and
// no match survives when the replacement cannot recreate the term.
func TestReplaceAllCountProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		content := rapid.StringOfN(rapid.RuneFrom([]rune("aXb")), 0, 30, -1).Draw(t, "content")
		term := rapid.StringOfN(rapid.RuneFrom([]rune("aXb")), 1, 2, -1).Draw(t, "term")

		out, n, _ := ReplaceAll(content, term, "_", true)
		if n != strings.Count(content, term) {
			t.Fatalf("count %d, want %d", n, strings.Count(content, term))
		}
		if strings.Contains(out, term) {
			t.Fatalf("%q still contains %q", out, term)
		}
	})
}
