package refdata

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNoStateSelected = errors.New("no state selected")
	ErrUnknownCity     = errors.New("city not in loaded list")
)

// CascadeSelection is the two-level dependent selection used for state/city
// pickers. Selecting a state clears the selected city, invalidates the
// previous city list and loads the new one; a load that resolves after the
// state has changed again is discarded instead of overwriting the current
// list.
type CascadeSelection struct {
	provider *Provider

	mu         sync.Mutex
	generation uint64
	state      string
	city       string
	cities     []string
}

func NewCascadeSelection(provider *Provider) *CascadeSelection {
	return &CascadeSelection{provider: provider}
}

// SelectState switches the first level. The dependent city selection and
// list are cleared before the load starts, so a failed load leaves a clean
// slate rather than the previous state's cities.
func (c *CascadeSelection) SelectState(ctx context.Context, uf string) ([]string, error) {
	if !c.provider.ValidState(uf) {
		return nil, ErrUnknownState
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.state = uf
	c.city = ""
	c.cities = nil
	c.mu.Unlock()

	loaded, err := c.provider.Cities(ctx, uf)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		// A newer selection superseded this load.
		return nil, ctx.Err()
	}
	c.cities = loaded
	return loaded, nil
}

// SelectCity sets the second level; only cities from the loaded list of the
// currently selected state are accepted.
func (c *CascadeSelection) SelectCity(city string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == "" {
		return ErrNoStateSelected
	}
	for _, known := range c.cities {
		if known == city {
			c.city = city
			return nil
		}
	}
	return ErrUnknownCity
}

// Selection returns the current (state, city) pair; city is empty until a
// valid SelectCity call.
func (c *CascadeSelection) Selection() (string, string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.city
}
