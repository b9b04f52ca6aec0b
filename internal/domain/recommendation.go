package domain

// RecommendationEntry describes one recommended product under a specific
// category label. The category is assigned at match time, not stored on the
// catalog entry: the same product can surface under different categories
// depending on which rule emitted it. ModelNumbers and Features are always
// non-nil so downstream consumers (quote rendering reads the first few of
// each) can slice them without checking.
type RecommendationEntry struct {
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	ModelNumbers []string `json:"modelNumbers"`
	Features     []string `json:"features"`
	PriceRange   string   `json:"priceRange"`
	Distributor  string   `json:"distributor"`
}

// DistributorInfo is the static metadata of a distributor, independent of
// its matching algorithm.
type DistributorInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Website string `json:"website"`
	LogoURL string `json:"logoUrl"`
}

// DistributorResult is one distributor's block in an aggregate result.
type DistributorResult struct {
	DistributorInfo
	Recommendations     []RecommendationEntry `json:"recommendations"`
	RecommendationCount int                   `json:"recommendationCount"`
}

// AggregateResult is the merged, per-distributor-grouped output of one
// recommendation request. Distributor blocks follow registry insertion
// order, not catalog order.
type AggregateResult struct {
	Distributors         []DistributorResult `json:"distributors"`
	TotalRecommendations int                 `json:"totalRecommendations"`
}
