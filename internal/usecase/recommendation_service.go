package usecase

import (
	"fmt"

	"github.com/TimSpecFlow/door-builder-app/internal/domain"
)

// RecommendationService aggregates product recommendations across the
// distributor registry. Matching is pure computation over static catalogs,
// so the service is safe for concurrent use.
type RecommendationService struct {
	registry *domain.Registry
}

// NewRecommendationService creates an aggregator over the given registry.
func NewRecommendationService(registry *domain.Registry) *RecommendationService {
	return &RecommendationService{registry: registry}
}

// Aggregate fans the specification out to the selected distributors and
// merges their results. When distributorIDs is empty the full registry is
// used; unknown ids are silently dropped. Distributor blocks always follow
// registry insertion order. A fault in any single matcher aborts the whole
// call with ErrMatcherFailure: no partial aggregate is returned, and since
// matching is deterministic a retry with the same inputs cannot succeed.
func (s *RecommendationService) Aggregate(spec *domain.DoorSpecification, distributorIDs []string) (*domain.AggregateResult, error) {
	if spec == nil {
		return nil, domain.ErrInvalidRequest
	}

	selected := s.registry.IDs()
	if len(distributorIDs) > 0 {
		want := make(map[string]bool, len(distributorIDs))
		for _, id := range distributorIDs {
			want[id] = true
		}
		filtered := selected[:0:0]
		for _, id := range selected {
			if want[id] {
				filtered = append(filtered, id)
			}
		}
		selected = filtered
	}

	result := &domain.AggregateResult{
		Distributors: make([]domain.DistributorResult, 0, len(selected)),
	}
	for _, id := range selected {
		d, _ := s.registry.Get(id)
		recs, err := safeMatch(d, spec)
		if err != nil {
			return nil, err
		}
		result.Distributors = append(result.Distributors, domain.DistributorResult{
			DistributorInfo:     d.Info(),
			Recommendations:     recs,
			RecommendationCount: len(recs),
		})
		result.TotalRecommendations += len(recs)
	}
	return result, nil
}

// ListDistributors returns the static metadata of every registered
// distributor in registry order, independent of any specification.
func (s *RecommendationService) ListDistributors() []domain.DistributorInfo {
	ids := s.registry.IDs()
	infos := make([]domain.DistributorInfo, 0, len(ids))
	for _, id := range ids {
		d, _ := s.registry.Get(id)
		infos = append(infos, d.Info())
	}
	return infos
}

// safeMatch converts a panic inside a single matcher into ErrMatcherFailure
// so one faulty rule set fails the request instead of the process.
func safeMatch(d domain.Distributor, spec *domain.DoorSpecification) (recs []domain.RecommendationEntry, err error) {
	defer func() {
		if r := recover(); r != nil {
			recs = nil
			err = fmt.Errorf("%w: %s: %v", domain.ErrMatcherFailure, d.ID(), r)
		}
	}()
	recs = d.Match(spec)
	if recs == nil {
		recs = []domain.RecommendationEntry{}
	}
	return recs, nil
}
