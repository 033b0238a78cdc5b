package domain

// MatchResult pairs a catalog item with its similarity score on the
// 0-100 display scale and its position in the ranked list.
type MatchResult struct {
	ItemID  string   `json:"id"`
	Name    string   `json:"name"`
	Faculty string   `json:"faculty"`
	Score   int      `json:"score"`
	Rank    int      `json:"rank"`
	Reasons []string `json:"reasons,omitempty"`
}

// Recommendation is the full scoring response for one request. It is
// recomputed per request and never persisted; the session id only lets
// the caller correlate logs.
type Recommendation struct {
	SessionID string             `json:"session_id"`
	Profile   map[string]float64 `json:"profile"`
	Dominant  []string           `json:"dominant"`
	Summary   string             `json:"summary"`
	Matches   []MatchResult      `json:"matches"`
}

// NarrativeTemplates is the closed template set for identity summaries:
// one description per trait space dimension plus the fallback sentence
// used when three or more dimensions tie for dominance.
type NarrativeTemplates struct {
	Descriptions     map[string]string
	BalancedFallback string
}
