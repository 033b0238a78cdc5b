package service

import (
	"fmt"
	"math"
	"sort"

	"smart-advisor/internal/domain"
)

// DefaultTopK is the display size when none is configured.
const DefaultTopK = 5

// Ranker scores a profile vector against every catalog item and orders
// the results. It holds no state beyond the display size and mutates
// neither the catalog nor the input vector.
type Ranker struct {
	topK int
}

func NewRanker(topK int) *Ranker {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &Ranker{topK: topK}
}

// Rank returns every catalog item ordered by descending display score.
// Equal scores keep catalog insertion order, so identical vectors always
// rank in load order no matter how often they are scored. An empty
// catalog yields an empty list, not an error.
func (r *Ranker) Rank(profile domain.Vector, catalog *domain.Catalog) []domain.MatchResult {
	items := catalog.Items()
	results := make([]domain.MatchResult, 0, len(items))

	var userDominant []string
	if !profile.IsZero() {
		userDominant = domain.DominantTraits(catalog.Space(), profile)
	}

	for _, item := range items {
		results = append(results, domain.MatchResult{
			ItemID:  item.ID,
			Name:    item.Name,
			Faculty: item.Faculty,
			Score:   displayScore(domain.Cosine(profile, item.Vector)),
			Reasons: matchReasons(catalog.Space(), userDominant, item),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results
}

// TopK slices a ranked list down to the configured display size.
func (r *Ranker) TopK(results []domain.MatchResult) []domain.MatchResult {
	if len(results) <= r.topK {
		return results
	}
	return results[:r.topK]
}

// displayScore maps a cosine similarity to the 0-100 display scale.
// Negative similarity means opposite-direction preference, which is not
// meaningful to show a user, so it clamps to 0 instead of rescaling.
func displayScore(cos float64) int {
	if cos < 0 {
		cos = 0
	}
	return int(math.Round(cos * 100))
}

// matchReasons names the dominant user traits that are also dominant in
// the item's curated vector, in trait-space order.
func matchReasons(space *domain.TraitSpace, userDominant []string, item domain.CatalogItem) []string {
	if len(userDominant) == 0 || item.Vector.IsZero() {
		return nil
	}
	shared := make(map[string]struct{}, len(userDominant))
	for _, trait := range userDominant {
		shared[trait] = struct{}{}
	}
	var reasons []string
	for _, trait := range domain.DominantTraits(space, item.Vector) {
		if _, ok := shared[trait]; ok {
			reasons = append(reasons, fmt.Sprintf("Your %s side is central to %s.", trait, item.Name))
		}
	}
	return reasons
}
