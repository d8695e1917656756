package modehandler

import (
	"github.com/bethropolis/tidepad/internal/core/find"
	"github.com/bethropolis/tidepad/internal/types"
)

type searchState struct {
	term          string
	replacement   string
	caseSensitive bool
	highlight     bool // show every match of term
}

func (mh *ModeHandler) findLabel(label string) string {
	if mh.search.caseSensitive {
		return label + " (Aa): "
	}
	return label + ": "
}

func (mh *ModeHandler) startFind() {
	mh.BeginPrompt(mh.findLabel("Find"), mh.search.term, func(term string, ok bool) {
		if !ok {
			return
		}
		mh.search.term = term
		mh.search.highlight = term != ""
		_, err := mh.controller.FindNext(term, mh.search.caseSensitive)
		mh.logErr("find", err)
	})
}

// findNext repeats the last search, or asks for a term if there is none.
func (mh *ModeHandler) findNext() {
	if mh.search.term == "" {
		mh.startFind()
		return
	}
	mh.search.highlight = true
	_, err := mh.controller.FindNext(mh.search.term, mh.search.caseSensitive)
	mh.logErr("find next", err)
}

// startReplace asks for the term and then the replacement.
func (mh *ModeHandler) startReplace(all bool) {
	label := "Replace"
	if all {
		label = "Replace all"
	}
	mh.BeginPrompt(mh.findLabel(label), mh.search.term, func(term string, ok bool) {
		if !ok {
			return
		}
		mh.search.term = term
		mh.BeginPrompt("With: ", mh.search.replacement, func(replacement string, ok bool) {
			if !ok {
				return
			}
			mh.search.replacement = replacement
			mh.search.highlight = term != ""
			if all {
				_, err := mh.controller.ReplaceAll(term, replacement, mh.search.caseSensitive)
				mh.logErr("replace all", err)
				return
			}
			_, err := mh.controller.Replace(term, replacement, mh.search.caseSensitive)
			mh.logErr("replace", err)
		})
	})
}

func (mh *ModeHandler) toggleCase() {
	mh.search.caseSensitive = !mh.search.caseSensitive
	if mh.search.caseSensitive {
		mh.statusBar.Status("Match case: on")
	} else {
		mh.statusBar.Status("Match case: off")
	}
}

// CaseSensitive reports the match-case setting.
func (mh *ModeHandler) CaseSensitive() bool { return mh.search.caseSensitive }

// SearchTerm returns the last search term.
func (mh *ModeHandler) SearchTerm() string { return mh.search.term }

// Highlights returns the spans of every match of the last search term in
// content, or nil when highlighting is off.
func (mh *ModeHandler) Highlights(content string) []types.Span {
	if !mh.search.highlight {
		return nil
	}
	return find.FindAll(content, mh.search.term, mh.search.caseSensitive)
}
