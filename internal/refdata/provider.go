package refdata

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"freightconnect/internal/domain/freight"
)

var ErrUnknownState = errors.New("unknown state")

// State is one administrative region (Brazilian UF).
type State struct {
	UF   string `json:"uf"`
	Name string `json:"name"`
}

// TypeGroup is a named group of vehicle or body types offered as a block in
// the filter and wizard UIs.
type TypeGroup struct {
	Group string   `json:"group"`
	Types []string `json:"types"`
}

// Source supplies municipality lists per state. The static seed implements
// it; an external geographic API could replace it without touching callers.
type Source interface {
	Cities(ctx context.Context, uf string) ([]string, error)
}

// Provider serves lookup data to the filter and wizard flows. City lists are
// loaded lazily per state and cached.
type Provider struct {
	source Source

	mu     sync.RWMutex
	cities map[string][]string
}

func NewProvider(source Source) *Provider {
	return &Provider{
		source: source,
		cities: make(map[string][]string),
	}
}

func (p *Provider) States() []State {
	states := make([]State, len(brazilStates))
	copy(states, brazilStates)
	return states
}

func (p *Provider) ValidState(uf string) bool {
	for _, s := range brazilStates {
		if s.UF == uf {
			return true
		}
	}
	return false
}

// Cities returns the municipality list for a state, loading and caching it
// on first use.
func (p *Provider) Cities(ctx context.Context, uf string) ([]string, error) {
	if !p.ValidState(uf) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, uf)
	}

	p.mu.RLock()
	cached, ok := p.cities[uf]
	p.mu.RUnlock()
	if ok {
		return cached, nil
	}

	loaded, err := p.source.Cities(ctx, uf)
	if err != nil {
		return nil, fmt.Errorf("failed to load cities for %s: %w", uf, err)
	}
	sort.Strings(loaded)

	p.mu.Lock()
	p.cities[uf] = loaded
	p.mu.Unlock()

	return loaded, nil
}

func (p *Provider) VehicleTypeGroups() []TypeGroup {
	return copyGroups(vehicleTypeGroups)
}

func (p *Provider) BodyTypeGroups() []TypeGroup {
	return copyGroups(bodyTypeGroups)
}

func (p *Provider) FreightTypes() []freight.FreightType {
	return []freight.FreightType{
		freight.TypeAggregation,
		freight.TypeFullLoad,
		freight.TypeReturnLoad,
		freight.TypeCommon,
	}
}

// KnownVehicleType reports whether a tag appears in any vehicle type group.
func (p *Provider) KnownVehicleType(tag string) bool {
	return groupsContain(vehicleTypeGroups, tag)
}

func (p *Provider) KnownBodyType(tag string) bool {
	return groupsContain(bodyTypeGroups, tag)
}

func copyGroups(groups []TypeGroup) []TypeGroup {
	out := make([]TypeGroup, len(groups))
	for i, g := range groups {
		types := make([]string, len(g.Types))
		copy(types, g.Types)
		out[i] = TypeGroup{Group: g.Group, Types: types}
	}
	return out
}

func groupsContain(groups []TypeGroup, tag string) bool {
	for _, g := range groups {
		for _, t := range g.Types {
			if t == tag {
				return true
			}
		}
	}
	return false
}
