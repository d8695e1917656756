package utils

import (
	"unicode/utf8"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in a string.
// Returns -1 if runeIndex is out of bounds.
func RuneIndexToByteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(s) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRuneInString(s[byteOffset:])
		byteOffset += size
		currentRune++
	}
	if currentRune == runeIndex {
		return len(s)
	} // Allow index at the very end
	return -1
}

// ByteOffsetToRuneIndex converts a byte offset to a rune index in a string.
func ByteOffsetToRuneIndex(s string, byteOffset int) int {
	if byteOffset <= 0 {
		return 0
	}
	if byteOffset > len(s) {
		byteOffset = len(s)
	}
	return utf8.RuneCountInString(s[:byteOffset])
}

// ClampOffset bounds a byte offset to [0, len(s)] and moves it back onto the
// start of the rune it falls inside.
func ClampOffset(s string, offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= len(s) {
		return len(s)
	}
	for offset > 0 && !utf8.RuneStart(s[offset]) {
		offset--
	}
	return offset
}

// AdvanceRunes moves a byte offset by delta runes (negative moves backwards),
// stopping at either end of s.
func AdvanceRunes(s string, offset, delta int) int {
	offset = ClampOffset(s, offset)
	for ; delta > 0 && offset < len(s); delta-- {
		_, size := utf8.DecodeRuneInString(s[offset:])
		offset += size
	}
	for ; delta < 0 && offset > 0; delta++ {
		_, size := utf8.DecodeLastRuneInString(s[:offset])
		offset -= size
	}
	return offset
}
