package service

import (
	"fmt"

	"smart-advisor/internal/domain"
)

// NarrativeGenerator renders the identity summary for a profile vector.
// It is a pure mapping from the dominant trait set to text: no
// randomness, identical profiles always produce identical summaries.
type NarrativeGenerator struct {
	space     *domain.TraitSpace
	templates domain.NarrativeTemplates
}

// NewNarrativeGenerator validates that the template set covers every
// dimension of the space before accepting it.
func NewNarrativeGenerator(space *domain.TraitSpace, templates domain.NarrativeTemplates) (*NarrativeGenerator, error) {
	for _, dim := range space.Dimensions() {
		if templates.Descriptions[dim] == "" {
			return nil, fmt.Errorf("%w: narrative is missing a description for trait %q",
				domain.ErrQuestionnaireInvalid, dim)
		}
	}
	if templates.BalancedFallback == "" {
		return nil, fmt.Errorf("%w: narrative has no balanced fallback sentence",
			domain.ErrQuestionnaireInvalid)
	}
	return &NarrativeGenerator{space: space, templates: templates}, nil
}

// Summary returns the explanation text keyed by the dominant trait(s).
// One strict maximum selects that trait's template, a two-way tie the
// blended template naming both. Ties across three or more dimensions,
// including the all-zero profile, fall back to the configured sentence.
func (g *NarrativeGenerator) Summary(profile domain.Vector) string {
	dominant := domain.DominantTraits(g.space, profile)
	switch len(dominant) {
	case 1:
		return fmt.Sprintf("Your strongest trait is %s. %s",
			dominant[0], g.templates.Descriptions[dominant[0]])
	case 2:
		return fmt.Sprintf("Your profile blends %s and %s in equal measure. %s %s",
			dominant[0], dominant[1],
			g.templates.Descriptions[dominant[0]],
			g.templates.Descriptions[dominant[1]])
	default:
		return g.templates.BalancedFallback
	}
}

// Dominant returns the trait names tied for the profile's maximum, in
// trait-space order, for callers that show the breakdown alongside the
// summary.
func (g *NarrativeGenerator) Dominant(profile domain.Vector) []string {
	return domain.DominantTraits(g.space, profile)
}
