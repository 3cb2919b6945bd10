package models

// ToxicLevelUnknown marks a match result synthesized after a failed
// request. The matcher view has no error phase; a failed check surfaces as
// a zero-score result carrying the error text as its verdict.
const ToxicLevelUnknown = "Unknown"

// MatchResult is the compatibility reading between two signs.
type MatchResult struct {
	OverallScore     int       `json:"overall_score"`
	ToxicLevel       string    `json:"toxic_level"`
	Verdict          string    `json:"verdict"`
	ElementDynamics  string    `json:"element_dynamics"`
	Breakdown        Breakdown `json:"breakdown"`
	Advice           string    `json:"advice"`
	ShareableSummary string    `json:"shareable_summary"`
}

// Breakdown scores the four compatibility dimensions, each 0-100.
type Breakdown struct {
	Emotional    int `json:"emotional"`
	Physical     int `json:"physical"`
	Intellectual int `json:"intellectual"`
	Spiritual    int `json:"spiritual"`
}
