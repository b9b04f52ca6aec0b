package domain

// MatchConstraints are optional, declaratively encoded selection limits on
// a catalog entry. Some distributors express matching criteria directly on
// the product record (door-type allow-lists, width bounds); others encode
// selection purely in their rule flow and leave this nil. Matchers must not
// assume constraints are present.
type MatchConstraints struct {
	DoorTypes     []string
	FireRated     bool
	MinWidth      float64
	MaxWidth      float64
	MinThickness  string
	RequiresGlass bool
}

// CatalogEntry is one reference product record in a distributor's static
// catalog. Catalogs are built once at startup and never mutated, so entries
// are safe to share across concurrent matches.
type CatalogEntry struct {
	Name         string
	Description  string
	URL          string
	ModelNumbers []string
	Features     []string
	PriceRange   string
	Manufacturer string
	Constraints  *MatchConstraints
}

// MinWidthOr returns the entry's minimum door width, or def when the entry
// carries no such constraint.
func (e CatalogEntry) MinWidthOr(def float64) float64 {
	if e.Constraints != nil && e.Constraints.MinWidth > 0 {
		return e.Constraints.MinWidth
	}
	return def
}

// MaxWidthOr returns the entry's maximum door width, or def when the entry
// carries no such constraint.
func (e CatalogEntry) MaxWidthOr(def float64) float64 {
	if e.Constraints != nil && e.Constraints.MaxWidth > 0 {
		return e.Constraints.MaxWidth
	}
	return def
}
