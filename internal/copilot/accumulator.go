package copilot

import "strings"

// accumulator collects text fragments in arrival order. By default every
// text-bearing event is appended, partial or not — so a finalized event
// echoing already-streamed deltas is appended twice. Dedupe mode skips the
// non-partial echo once partial text has been seen.
type accumulator struct {
	dedupe     bool
	sawPartial bool
	frags      []string
}

func newAccumulator(dedupe bool) *accumulator {
	return &accumulator{dedupe: dedupe}
}

// add records a fragment and reports whether it was kept.
func (a *accumulator) add(text string, partial bool) bool {
	if a.dedupe && !partial && a.sawPartial {
		return false
	}
	if partial {
		a.sawPartial = true
	}
	a.frags = append(a.frags, text)
	return true
}

func (a *accumulator) String() string {
	return strings.TrimSpace(strings.Join(a.frags, ""))
}
