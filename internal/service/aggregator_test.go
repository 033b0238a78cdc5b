package service

import (
	"errors"
	"strings"
	"testing"

	"smart-advisor/internal/domain"
)

func newTestSpace(t *testing.T) *domain.TraitSpace {
	t.Helper()
	space, err := domain.NewTraitSpace([]string{"builder", "analyst", "creative"})
	if err != nil {
		t.Fatalf("NewTraitSpace: %v", err)
	}
	return space
}

func newTestQuestionnaire(t *testing.T, space *domain.TraitSpace) *domain.Questionnaire {
	t.Helper()
	questionnaire, err := domain.NewQuestionnaire(space, []domain.Question{
		{
			ID:   "q1",
			Text: "First",
			Options: []domain.Option{
				{ID: "a", Text: "Builder", Weights: domain.Vector{2, 0, 0}},
				{ID: "b", Text: "Analyst", Weights: domain.Vector{0, 2, 0}},
			},
		},
		{
			ID:   "q2",
			Text: "Second",
			Options: []domain.Option{
				{ID: "a", Text: "More builder", Weights: domain.Vector{1, 0, 0}},
				{ID: "b", Text: "Creative", Weights: domain.Vector{0, 0, 2}},
			},
		},
	})
	if err != nil {
		t.Fatalf("NewQuestionnaire: %v", err)
	}
	return questionnaire
}

func TestAggregateSumsSelectedWeights(t *testing.T) {
	space := newTestSpace(t)
	agg := NewAggregator(space, newTestQuestionnaire(t, space))

	profile, err := agg.Aggregate(map[string]string{"q1": "a", "q2": "a"})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	// builder reinforced by both questions, no normalization
	want := domain.Vector{3, 0, 0}
	for i := range want {
		if profile[i] != want[i] {
			t.Fatalf("profile = %v, want %v", profile, want)
		}
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	space := newTestSpace(t)
	agg := NewAggregator(space, newTestQuestionnaire(t, space))
	answers := map[string]string{"q1": "b", "q2": "b"}

	first, err := agg.Aggregate(answers)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	second, err := agg.Aggregate(answers)
	if err != nil {
		t.Fatalf("Aggregate (repeat): %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same answers produced different vectors: %v vs %v", first, second)
		}
	}
}

func TestAggregateRejectsIncompleteResponses(t *testing.T) {
	space := newTestSpace(t)
	agg := NewAggregator(space, newTestQuestionnaire(t, space))

	tests := []struct {
		name    string
		answers map[string]string
		detail  string
	}{
		{name: "empty answer set", answers: map[string]string{}, detail: "q1, q2"},
		{name: "nil answer set", answers: nil, detail: "q1, q2"},
		{name: "one answer missing", answers: map[string]string{"q1": "a"}, detail: "q2"},
		{name: "unknown question", answers: map[string]string{"q1": "a", "q2": "a", "q9": "a"}, detail: "q9"},
		{name: "unknown option", answers: map[string]string{"q1": "z", "q2": "a"}, detail: `option "z"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := agg.Aggregate(tt.answers)
			if !errors.Is(err, domain.ErrIncompleteResponse) {
				t.Fatalf("error = %v, want ErrIncompleteResponse", err)
			}
			if !strings.Contains(err.Error(), tt.detail) {
				t.Fatalf("error %q does not mention %q", err.Error(), tt.detail)
			}
			if profile != nil {
				t.Fatalf("got a profile alongside the error: %v", profile)
			}
		})
	}
}
