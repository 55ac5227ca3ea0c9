package buffer

import "fmt"

// InvalidIndex is the sentinel bound of an invalid Range.
const InvalidIndex = -1

// Range describes a contiguous run of storage indices, inclusive on both
// ends, that a session is entitled to access. It is a plain value: it holds
// no reference to the buffer and carries no ownership.
//
// A Range is either valid, with End >= Start, or invalid, with both bounds
// set to InvalidIndex. A begin call returns an invalid range when the buffer
// has no space (writing) or no data (reading) to offer - that is the normal
// "try again later" outcome, not an error. Callers must test IsValid, not
// Length, to tell the two apart.
type Range struct {
	Start int
	End   int
}

// invalidRange is what begin calls hand out when there is nothing to offer.
// The zero Range would read as the valid single-byte run [0,0], so it is
// never used as a "no entitlement" marker.
func invalidRange() Range {
	return Range{Start: InvalidIndex, End: InvalidIndex}
}

// IsValid reports whether the range describes accessible storage. An empty
// buffer window and an invalid range are different things; a valid range
// always has Length() >= 1.
func (r Range) IsValid() bool {
	return r.Start != InvalidIndex && r.End != InvalidIndex
}

// Length returns the number of bytes the range covers, or 0 if the range is
// invalid.
func (r Range) Length() int {
	if !r.IsValid() {
		return 0
	}
	return r.End - r.Start + 1
}

// Clear resets both bounds to InvalidIndex.
func (r *Range) Clear() {
	r.Start = InvalidIndex
	r.End = InvalidIndex
}

func (r Range) String() string {
	return fmt.Sprintf("[%d..%d]", r.Start, r.End)
}
