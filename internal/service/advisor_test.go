package service

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"smart-advisor/internal/domain"
)

func newTestAdvisor(t *testing.T, items []domain.CatalogItem) *AdvisorService {
	t.Helper()
	space := newTestSpace(t)
	catalog := newTestCatalog(t, space, items)
	questionnaire := newTestQuestionnaire(t, space)
	return NewAdvisorService(
		catalog,
		questionnaire,
		NewAggregator(space, questionnaire),
		NewRanker(2),
		newTestNarrative(t, space),
		zap.NewNop(),
	)
}

func TestScoreEndToEnd(t *testing.T) {
	advisor := newTestAdvisor(t, []domain.CatalogItem{
		{ID: "builder-prog", Name: "Builder Programme", Faculty: "Eng", Vector: domain.Vector{3, 0, 0}},
		{ID: "analyst-prog", Name: "Analyst Programme", Faculty: "Sci", Vector: domain.Vector{0, 3, 0}},
		{ID: "mixed-prog", Name: "Mixed Programme", Faculty: "Arts", Vector: domain.Vector{1, 1, 1}},
	})

	// q1=a (2,0,0) + q2=a (1,0,0) => (3,0,0)
	rec, err := advisor.Score(map[string]string{"q1": "a", "q2": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if rec.SessionID == "" {
		t.Fatalf("missing session id")
	}
	if rec.Profile["builder"] != 3 || rec.Profile["analyst"] != 0 {
		t.Fatalf("profile = %v", rec.Profile)
	}
	if len(rec.Dominant) != 1 || rec.Dominant[0] != "builder" {
		t.Fatalf("dominant = %v, want [builder]", rec.Dominant)
	}
	if !strings.Contains(rec.Summary, "builder") {
		t.Fatalf("summary = %q", rec.Summary)
	}
	if len(rec.Matches) != 2 {
		t.Fatalf("got %d matches, want top-2", len(rec.Matches))
	}
	if rec.Matches[0].ItemID != "builder-prog" || rec.Matches[0].Score != 100 {
		t.Fatalf("top match = %+v", rec.Matches[0])
	}
}

func TestScoreRejectsIncompleteAnswers(t *testing.T) {
	advisor := newTestAdvisor(t, []domain.CatalogItem{
		{ID: "a", Name: "A", Vector: domain.Vector{1, 0, 0}},
	})

	rec, err := advisor.Score(map[string]string{})
	if !errors.Is(err, domain.ErrIncompleteResponse) {
		t.Fatalf("error = %v, want ErrIncompleteResponse", err)
	}
	if len(rec.Matches) != 0 || rec.Summary != "" {
		t.Fatalf("rejected request still produced results: %+v", rec)
	}
}

func TestScoreWithEmptyCatalog(t *testing.T) {
	advisor := newTestAdvisor(t, nil)

	rec, err := advisor.Score(map[string]string{"q1": "a", "q2": "b"})
	if err != nil {
		t.Fatalf("Score with empty catalog: %v", err)
	}
	if len(rec.Matches) != 0 {
		t.Fatalf("matches = %v, want empty list", rec.Matches)
	}
	if rec.Summary == "" {
		t.Fatalf("summary should still be produced for an empty catalog")
	}
}

func TestFormatReport(t *testing.T) {
	advisor := newTestAdvisor(t, []domain.CatalogItem{
		{ID: "builder-prog", Name: "Builder Programme", Faculty: "Eng", Vector: domain.Vector{3, 0, 0}},
		{ID: "analyst-prog", Name: "Analyst Programme", Faculty: "Sci", Vector: domain.Vector{0, 3, 0}},
	})

	rec, err := advisor.Score(map[string]string{"q1": "a", "q2": "a"})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	report := advisor.FormatReport(rec)
	for _, want := range []string{
		"YOUR PROFILE:",
		"builder",
		"Builder Programme (Eng) - match 100/100",
		rec.Summary,
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
