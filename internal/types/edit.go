package types

// Edit is a single reversible splice of a document's content:
// Removed is replaced by Inserted at byte Offset.
type Edit struct {
	Offset   int
	Removed  string
	Inserted string
}

// Inverse returns the edit that undoes e.
func (e Edit) Inverse() Edit {
	return Edit{Offset: e.Offset, Removed: e.Inserted, Inserted: e.Removed}
}

// End returns the offset just past the inserted text, where the caret lands after applying e.
func (e Edit) End() int {
	return e.Offset + len(e.Inserted)
}

// IsNoop reports whether applying the edit leaves content unchanged.
func (e Edit) IsNoop() bool {
	return e.Removed == e.Inserted
}
