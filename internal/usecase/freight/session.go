package freight

import "sync/atomic"

// SearchSession guards a search-as-you-type flow against stale responses.
// Each outgoing query takes a sequence number; a response is applied only if
// its sequence is still the latest, so a slow response for an older filter
// can never overwrite results for the current one.
type SearchSession struct {
	seq    atomic.Uint64
	latest atomic.Uint64
}

func NewSearchSession() *SearchSession {
	return &SearchSession{}
}

// Begin registers a new in-flight query and returns its sequence number.
func (s *SearchSession) Begin() uint64 {
	seq := s.seq.Add(1)
	s.latest.Store(seq)
	return seq
}

// Current reports whether seq is still the most recent query.
func (s *SearchSession) Current(seq uint64) bool {
	return s.latest.Load() == seq
}

// Resolve invokes apply only when seq is still current; it reports whether
// the result was applied or discarded as stale.
func (s *SearchSession) Resolve(seq uint64, apply func()) bool {
	if !s.Current(seq) {
		return false
	}
	apply()
	return true
}
