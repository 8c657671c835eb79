package refdata

import (
	"context"
	"errors"
	"testing"
)

// blockingSource lets a test hold a city load open while another selection
// happens, simulating a slow response arriving after the state changed.
type blockingSource struct {
	inner   Source
	started chan struct{}
	release chan struct{}
	block   map[string]bool
}

func (s *blockingSource) Cities(ctx context.Context, uf string) ([]string, error) {
	if s.block[uf] {
		close(s.started)
		<-s.release
	}
	return s.inner.Cities(ctx, uf)
}

func TestCascadeSelectStateLoadsCities(t *testing.T) {
	cascade := NewCascadeSelection(NewProvider(NewStaticSource()))

	cities, err := cascade.SelectState(context.Background(), "SP")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cities) == 0 {
		t.Fatal("expected cities for SP")
	}

	state, city := cascade.Selection()
	if state != "SP" || city != "" {
		t.Errorf("expected (SP, \"\"), got (%s, %s)", state, city)
	}
}

func TestCascadeSelectCity(t *testing.T) {
	cascade := NewCascadeSelection(NewProvider(NewStaticSource()))

	if err := cascade.SelectCity("Campinas"); !errors.Is(err, ErrNoStateSelected) {
		t.Errorf("expected ErrNoStateSelected, got %v", err)
	}

	if _, err := cascade.SelectState(context.Background(), "SP"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := cascade.SelectCity("Campinas"); err != nil {
		t.Errorf("Campinas is in the SP list: %v", err)
	}
	if err := cascade.SelectCity("Niterói"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("expected ErrUnknownCity for a city from another state, got %v", err)
	}

	_, city := cascade.Selection()
	if city != "Campinas" {
		t.Errorf("rejected selection must not overwrite the city, got %q", city)
	}
}

func TestCascadeStateChangeClearsCity(t *testing.T) {
	cascade := NewCascadeSelection(NewProvider(NewStaticSource()))

	if _, err := cascade.SelectState(context.Background(), "SP"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cascade.SelectCity("Santos"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := cascade.SelectState(context.Background(), "RJ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, city := cascade.Selection()
	if state != "RJ" {
		t.Errorf("expected RJ, got %s", state)
	}
	if city != "" {
		t.Errorf("city must be cleared on state change, got %q", city)
	}

	if err := cascade.SelectCity("Santos"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("old state's city must not be selectable, got %v", err)
	}
}

func TestCascadeDiscardsStaleLoad(t *testing.T) {
	source := &blockingSource{
		inner:   NewStaticSource(),
		started: make(chan struct{}),
		release: make(chan struct{}),
		block:   map[string]bool{"SP": true},
	}
	cascade := NewCascadeSelection(NewProvider(source))

	done := make(chan error, 1)
	go func() {
		_, err := cascade.SelectState(context.Background(), "SP")
		done <- err
	}()
	<-source.started

	// The user changes their mind while SP is still loading.
	if _, err := cascade.SelectState(context.Background(), "RJ"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	close(source.release)
	<-done

	state, _ := cascade.Selection()
	if state != "RJ" {
		t.Errorf("expected RJ to win, got %s", state)
	}
	if err := cascade.SelectCity("Campinas"); !errors.Is(err, ErrUnknownCity) {
		t.Errorf("stale SP list must not be applied, got %v", err)
	}
	if err := cascade.SelectCity("Niterói"); err != nil {
		t.Errorf("current RJ list should be selectable: %v", err)
	}
}

func TestCascadeRejectsUnknownState(t *testing.T) {
	cascade := NewCascadeSelection(NewProvider(NewStaticSource()))

	if _, err := cascade.SelectState(context.Background(), "XX"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("expected ErrUnknownState, got %v", err)
	}
}
