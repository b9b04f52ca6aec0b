package domain

import "fmt"

// Distributor is implemented once per vendor. Match is a pure function of
// the specification and the distributor's static catalog: no I/O, no
// randomness, deterministic ordering. The same specification always yields
// an identical list, including any duplicate entries.
type Distributor interface {
	ID() string
	Info() DistributorInfo
	Match(spec *DoorSpecification) []RecommendationEntry
}

// Registry is an ordered mapping of distributor id to implementation.
// It is built once at startup and read-only afterwards, so it can be shared
// across concurrent requests without synchronization.
type Registry struct {
	order []string
	byID  map[string]Distributor
}

// NewRegistry builds a registry preserving the given insertion order.
// Duplicate ids indicate a wiring mistake and panic at startup.
func NewRegistry(distributors ...Distributor) *Registry {
	r := &Registry{byID: make(map[string]Distributor, len(distributors))}
	for _, d := range distributors {
		id := d.ID()
		if _, dup := r.byID[id]; dup {
			panic(fmt.Sprintf("domain: duplicate distributor id %q", id))
		}
		r.order = append(r.order, id)
		r.byID[id] = d
	}
	return r
}

// Get returns the distributor registered under id.
func (r *Registry) Get(id string) (Distributor, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// IDs returns the registered ids in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Len returns the number of registered distributors.
func (r *Registry) Len() int {
	return len(r.order)
}
