package freight

import (
	"sync"
	"testing"
)

func TestSearchSessionSuppressesStaleResponse(t *testing.T) {
	session := NewSearchSession()

	first := session.Begin()
	second := session.Begin()

	var applied string
	// The newer query's response lands first.
	if !session.Resolve(second, func() { applied = "second" }) {
		t.Fatal("latest response must be applied")
	}
	// The older one arrives late and must be discarded.
	if session.Resolve(first, func() { applied = "first" }) {
		t.Fatal("stale response must be discarded")
	}

	if applied != "second" {
		t.Errorf("expected results from the latest query, got %q", applied)
	}
}

func TestSearchSessionCurrent(t *testing.T) {
	session := NewSearchSession()

	seq := session.Begin()
	if !session.Current(seq) {
		t.Error("just-begun query should be current")
	}

	session.Begin()
	if session.Current(seq) {
		t.Error("superseded query should no longer be current")
	}
}

func TestSearchSessionConcurrentBegin(t *testing.T) {
	session := NewSearchSession()

	var wg sync.WaitGroup
	seqs := make([]uint64, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			seqs[i] = session.Begin()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, len(seqs))
	var current int
	for _, seq := range seqs {
		if seen[seq] {
			t.Fatalf("duplicate sequence %d", seq)
		}
		seen[seq] = true
		if session.Current(seq) {
			current++
		}
	}
	if current != 1 {
		t.Errorf("exactly one query should remain current, got %d", current)
	}
}
