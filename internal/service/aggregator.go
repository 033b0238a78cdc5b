package service

import (
	"fmt"
	"sort"
	"strings"

	"smart-advisor/internal/domain"
)

// Aggregator folds a complete answer set into a single user profile
// vector. It is pure: the same answer set always yields the same vector.
type Aggregator struct {
	space         *domain.TraitSpace
	questionnaire *domain.Questionnaire
}

func NewAggregator(space *domain.TraitSpace, questionnaire *domain.Questionnaire) *Aggregator {
	return &Aggregator{space: space, questionnaire: questionnaire}
}

// Aggregate maps question id -> selected option id to a profile vector.
// Every question must be answered exactly once; missing answers, unknown
// question ids and unknown option ids all reject the request with
// domain.ErrIncompleteResponse. No normalization is applied: raw option
// weights accumulate, so traits reinforced by several questions weigh
// more.
func (a *Aggregator) Aggregate(answers map[string]string) (domain.Vector, error) {
	var missing []string
	for _, q := range a.questionnaire.Questions() {
		if _, ok := answers[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing answers for %s",
			domain.ErrIncompleteResponse, strings.Join(missing, ", "))
	}

	var unknown []string
	for questionID := range answers {
		if !a.questionnaire.HasQuestion(questionID) {
			unknown = append(unknown, questionID)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: unknown questions %s",
			domain.ErrIncompleteResponse, strings.Join(unknown, ", "))
	}

	profile := a.space.NewVector()
	for _, q := range a.questionnaire.Questions() {
		optionID := answers[q.ID]
		opt, ok := a.questionnaire.Option(q.ID, optionID)
		if !ok {
			return nil, fmt.Errorf("%w: question %s has no option %q",
				domain.ErrIncompleteResponse, q.ID, optionID)
		}
		profile = profile.Add(opt.Weights)
	}
	return profile, nil
}
