package fastparser

import "strconv"

// Status is the outcome of a scan that found nothing illegal. It is either
// Incomplete, or Complete together with the length of the preamble.
type Status struct {
	n        int
	complete bool
}

// Incomplete means the input is a valid prefix: retry from offset 0 with more bytes.
var Incomplete = Status{}

// Complete reports a full preamble of n bytes, blank line included.
func Complete(n int) Status {
	return Status{n: n, complete: true}
}

func (s Status) IsComplete() bool   { return s.complete }
func (s Status) IsIncomplete() bool { return !s.complete }

// Len returns the preamble length, which is also the offset of the body.
// It is 0 for Incomplete.
func (s Status) Len() int { return s.n }

func (s Status) String() string {
	if !s.complete {
		return "Incomplete"
	}
	return "Complete(" + strconv.Itoa(s.n) + ")"
}
