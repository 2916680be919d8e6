package wallclock

// Span is a half-open [Start, End) interval in minutes since midnight.
type Span struct {
	Start int
	End   int
}

// NewSpan parses two clock strings into a Span.
func NewSpan(start, end string) (Span, error) {
	s, err := ParseExtended(start)
	if err != nil {
		return Span{}, err
	}
	e, err := ParseExtended(end)
	if err != nil {
		return Span{}, err
	}
	return Span{Start: s, End: e}, nil
}

// Duration returns End - Start.
func (s Span) Duration() int {
	return s.End - s.Start
}

// Overlaps reports whether the two spans share at least one minute.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether minute m falls inside the span.
func (s Span) Contains(m int) bool {
	return m >= s.Start && m < s.End
}
