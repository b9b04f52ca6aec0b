package distributor

import "github.com/TimSpecFlow/door-builder-app/internal/domain"

// DefaultRegistry builds the registry of all known distributors in their
// canonical order. The registry is read-only after construction.
func DefaultRegistry() *domain.Registry {
	return domain.NewRegistry(
		NewDormakaba(),
		NewSecLock(),
		NewAssaAbloyDSS(),
	)
}
