package modehandler

// LineEditor is the single-line buffer behind a prompt.
type LineEditor struct {
	runes  []rune
	cursor int // rune index
}

// NewLineEditor returns an editor holding text with the cursor at its end.
func NewLineEditor(text string) *LineEditor {
	r := []rune(text)
	return &LineEditor{runes: r, cursor: len(r)}
}

// Text returns the current contents.
func (e *LineEditor) Text() string { return string(e.runes) }

// Cursor returns the cursor's rune index.
func (e *LineEditor) Cursor() int { return e.cursor }

// Insert adds r at the cursor.
func (e *LineEditor) Insert(r rune) {
	e.runes = append(e.runes, 0)
	copy(e.runes[e.cursor+1:], e.runes[e.cursor:])
	e.runes[e.cursor] = r
	e.cursor++
}

// Backspace deletes the rune before the cursor.
func (e *LineEditor) Backspace() bool {
	if e.cursor == 0 {
		return false
	}
	e.runes = append(e.runes[:e.cursor-1], e.runes[e.cursor:]...)
	e.cursor--
	return true
}

// Delete deletes the rune under the cursor.
func (e *LineEditor) Delete() bool {
	if e.cursor >= len(e.runes) {
		return false
	}
	e.runes = append(e.runes[:e.cursor], e.runes[e.cursor+1:]...)
	return true
}

// Move shifts the cursor by delta, clamped to the text.
func (e *LineEditor) Move(delta int) {
	e.cursor += delta
	if e.cursor < 0 {
		e.cursor = 0
	}
	if e.cursor > len(e.runes) {
		e.cursor = len(e.runes)
	}
}

// Home moves the cursor to the start.
func (e *LineEditor) Home() { e.cursor = 0 }

// End moves the cursor past the last rune.
func (e *LineEditor) End() { e.cursor = len(e.runes) }
