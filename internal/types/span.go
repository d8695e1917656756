package types

// Span is a half-open byte range [Start, End) into a document's content.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.End <= s.Start
}

// Normalize returns the span with Start <= End.
func (s Span) Normalize() Span {
	if s.Start > s.End {
		return Span{Start: s.End, End: s.Start}
	}
	return s
}

// Text returns the slice of content covered by the span.
// The span must lie within content.
func (s Span) Text(content string) string {
	return content[s.Start:s.End]
}
