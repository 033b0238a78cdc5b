package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"smart-advisor/internal/domain"
)

// AdvisorService runs the full scoring pipeline for one request:
// aggregate answers, rank the catalog, generate the identity summary.
// It shares the read-only catalog and questionnaire across concurrent
// requests without locking.
type AdvisorService struct {
	catalog       *domain.Catalog
	questionnaire *domain.Questionnaire
	aggregator    *Aggregator
	ranker        *Ranker
	narrative     *NarrativeGenerator
	logger        *zap.Logger
}

func NewAdvisorService(
	catalog *domain.Catalog,
	questionnaire *domain.Questionnaire,
	aggregator *Aggregator,
	ranker *Ranker,
	narrative *NarrativeGenerator,
	logger *zap.Logger,
) *AdvisorService {
	return &AdvisorService{
		catalog:       catalog,
		questionnaire: questionnaire,
		aggregator:    aggregator,
		ranker:        ranker,
		narrative:     narrative,
		logger:        logger,
	}
}

// Questionnaire exposes the loaded question set for presentation.
func (s *AdvisorService) Questionnaire() *domain.Questionnaire { return s.questionnaire }

// Catalog exposes the loaded catalog for presentation.
func (s *AdvisorService) Catalog() *domain.Catalog { return s.catalog }

// Score validates the answer set and produces the ranked matches plus
// the identity summary. The session id is generated per request and
// never persisted; it only correlates logs with responses.
func (s *AdvisorService) Score(answers map[string]string) (domain.Recommendation, error) {
	profile, err := s.aggregator.Aggregate(answers)
	if err != nil {
		return domain.Recommendation{}, err
	}

	ranked := s.ranker.Rank(profile, s.catalog)
	top := s.ranker.TopK(ranked)

	profileByTrait := make(map[string]float64, s.catalog.Space().Dim())
	for i, dim := range s.catalog.Space().Dimensions() {
		profileByTrait[dim] = profile[i]
	}

	rec := domain.Recommendation{
		SessionID: uuid.NewString(),
		Profile:   profileByTrait,
		Dominant:  s.narrative.Dominant(profile),
		Summary:   s.narrative.Summary(profile),
		Matches:   top,
	}

	if s.logger != nil {
		s.logger.Info("scored questionnaire",
			zap.String("session_id", rec.SessionID),
			zap.Strings("dominant", rec.Dominant),
			zap.Int("matches", len(rec.Matches)),
		)
	}
	return rec, nil
}

// FormatReport renders a recommendation as a plain-text result sheet
// the caller can save or print.
func (s *AdvisorService) FormatReport(rec domain.Recommendation) string {
	var b strings.Builder
	b.WriteString("SMART ADVISOR - YOUR RESULTS\n\n")

	b.WriteString("YOUR PROFILE:\n")
	for _, dim := range s.catalog.Space().Dimensions() {
		fmt.Fprintf(&b, "  %-16s %.1f\n", dim, rec.Profile[dim])
	}

	b.WriteString("\n")
	b.WriteString(rec.Summary)
	b.WriteString("\n\nYOUR TOP PROGRAMME MATCHES:\n")
	if len(rec.Matches) == 0 {
		b.WriteString("  (the catalog is empty)\n")
	}
	for _, m := range rec.Matches {
		fmt.Fprintf(&b, "%d. %s (%s) - match %d/100\n", m.Rank, m.Name, m.Faculty, m.Score)
		for _, reason := range m.Reasons {
			fmt.Fprintf(&b, "   - %s\n", reason)
		}
	}
	return b.String()
}
