// Package distributor contains the per-vendor product catalogs and the
// rule-based matchers that map a normalized door specification to product
// recommendations. Each matcher is an ordered list of rules evaluated
// unconditionally; every satisfied rule appends its entries to the output
// and entries from separately satisfied rules are never deduplicated.
package distributor

import "github.com/TimSpecFlow/door-builder-app/internal/domain"

// Rule is one unit of a distributor's matching logic: a predicate over the
// specification, a selector for candidate catalog entries, and the category
// label stamped on everything the rule emits.
type Rule struct {
	// Category is assigned to emitted entries at match time.
	Category string

	// When gates the rule on the normalized specification.
	When func(spec *domain.DoorSpecification) bool

	// Select returns the candidate entries, already narrowed by any
	// per-entry constraints such as width bounds.
	Select func(spec *domain.DoorSpecification) []domain.CatalogEntry

	// Limit caps how many of the selected entries are surfaced. Zero means
	// no cap. A non-zero limit is deliberate curation of a product family,
	// not a filter derived from the specification.
	Limit int
}

// evalRules runs an ordered rule list against a specification. The label
// function turns a catalog entry into the source label carried on the
// emitted recommendation (some distributors compose their name with the
// entry's manufacturer).
func evalRules(rules []Rule, spec *domain.DoorSpecification, label func(domain.CatalogEntry) string) []domain.RecommendationEntry {
	out := []domain.RecommendationEntry{}
	for _, r := range rules {
		if !r.When(spec) {
			continue
		}
		entries := r.Select(spec)
		if r.Limit > 0 && len(entries) > r.Limit {
			entries = entries[:r.Limit]
		}
		for _, e := range entries {
			out = append(out, toRecommendation(e, r.Category, label(e)))
		}
	}
	return out
}

// selectAll returns a selector emitting an entry list as-is.
func selectAll(entries []domain.CatalogEntry) func(*domain.DoorSpecification) []domain.CatalogEntry {
	return func(*domain.DoorSpecification) []domain.CatalogEntry { return entries }
}

// hasHardware returns a predicate testing for one canonical hardware token.
func hasHardware(token string) func(*domain.DoorSpecification) bool {
	return func(s *domain.DoorSpecification) bool { return s.HasHardware(token) }
}

// toRecommendation builds the ephemeral output record for one matched
// entry. ModelNumbers and Features are forced non-nil so every consumer can
// slice them.
func toRecommendation(e domain.CatalogEntry, category, label string) domain.RecommendationEntry {
	models := e.ModelNumbers
	if models == nil {
		models = []string{}
	}
	features := e.Features
	if features == nil {
		features = []string{}
	}
	return domain.RecommendationEntry{
		Name:         e.Name,
		Category:     category,
		Description:  e.Description,
		URL:          e.URL,
		ModelNumbers: models,
		Features:     features,
		PriceRange:   e.PriceRange,
		Distributor:  label,
	}
}
