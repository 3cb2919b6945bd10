package models

// ReceiptVerdict is the analysis of one uploaded screenshot.
type ReceiptVerdict struct {
	ToxicScore        int       `json:"toxic_score"`
	RedFlags          []RedFlag `json:"red_flags"`
	Verdict           string    `json:"verdict"`
	PlanetaryContext  string    `json:"planetary_context"`
	Advice            string    `json:"advice"`
	TimestampAnalysis string    `json:"timestamp_analysis"`
	ShareableSummary  string    `json:"shareable_summary"`
}

// RedFlag is one flagged finding in a screenshot.
type RedFlag struct {
	Flag           string `json:"flag"`
	Severity       int    `json:"severity"`
	PlanetaryCause string `json:"planetary_cause"`
}
