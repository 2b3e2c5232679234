package matching

import "sync/atomic"

// Sequence hands out process-wide monotonically increasing numbers used for
// order sequence assignment and time-priority tie-breaks. It is injected into
// the engine instead of being ambient global state so tests can supply
// deterministic generators.
type Sequence interface {
	Next() uint64
}

type atomicSequence struct {
	n atomic.Uint64
}

// NewSequence creates a Sequence starting from 1, safe for concurrent use.
// It is never reset during the process lifetime.
func NewSequence() Sequence {
	return &atomicSequence{}
}

func (s *atomicSequence) Next() uint64 {
	return s.n.Add(1)
}
