package session

import (
	"github.com/bethropolis/tidepad/internal/core/find"
	"github.com/bethropolis/tidepad/internal/document"
	"github.com/bethropolis/tidepad/internal/tabs"
	"github.com/bethropolis/tidepad/internal/types"
)

// FindNext selects the next match of term after the caret, wrapping once.
func (c *Controller) FindNext(term string, caseSensitive bool) (find.Result, error) {
	tab := c.tabs.Current()
	res := find.FindNextIn(tab.Doc, term, caseSensitive)
	return res, c.reportMatch(tab, res, term)
}

// reportMatch selects a found match and posts the matching status line.
func (c *Controller) reportMatch(tab *tabs.Tab, res find.Result, term string) error {
	switch res.Status {
	case find.StatusFound:
		tab.Doc.Select(res.Span.Start, res.Span.End)
		c.caretMoved(tab)
		c.status("Found: %s", term)
	case find.StatusNotFound:
		c.status("Text not found: %s", term)
	case find.StatusNoTerm:
		c.status("No search text provided")
		return ErrInvalidSearchInput
	case find.StatusNothingToSearch:
		c.status("Nothing to search")
	}
	return nil
}

// Replace replaces the selection when it matches term, then selects the
// next match.
func (c *Controller) Replace(term, replacement string, caseSensitive bool) (find.ReplaceResult, error) {
	tab := c.tabs.Current()
	doc := tab.Doc

	sel, hasSel := doc.Selection()
	if !hasSel {
		sel = types.Span{Start: doc.Caret(), End: doc.Caret()}
	}
	res := find.ReplaceOne(doc.Content(), sel, hasSel, doc.Caret(), term, replacement, caseSensitive)

	if res.Replaced {
		err := c.edit(func(d *document.Document) (types.Edit, document.Change, error) {
			return d.ReplaceRange(sel, replacement)
		})
		if err != nil {
			c.status("Replace failed: %v", err)
			return res, err
		}
		c.status("Replaced: %s with: %s", term, replacement)
	}
	return res, c.reportMatch(tab, res.Next, term)
}

// ReplaceAll replaces every match of term as a single undoable edit.
func (c *Controller) ReplaceAll(term, replacement string, caseSensitive bool) (int, error) {
	if term == "" {
		c.status("No search text provided")
		return 0, ErrInvalidSearchInput
	}
	tab := c.tabs.Current()
	doc := tab.Doc
	content := doc.Content()

	updated, count, _ := find.ReplaceAll(content, term, replacement, caseSensitive)
	if updated != content {
		caret := doc.Caret()
		err := c.edit(func(d *document.Document) (types.Edit, document.Change, error) {
			return d.ReplaceRange(types.Span{Start: 0, End: len(content)}, updated)
		})
		if err != nil {
			c.status("Replace failed: %v", err)
			return 0, err
		}
		doc.SetCaret(caret)
		c.caretMoved(tab)
	}
	c.status("Replaced %d occurrences", count)
	return count, nil
}
