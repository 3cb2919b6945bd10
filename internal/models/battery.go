package models

// BatteryStatus is the daily energy reading for the dashboard.
type BatteryStatus struct {
	Percentage     int       `json:"percentage"`
	Level          string    `json:"level"`
	Message        string    `json:"message"`
	DetailedReason string    `json:"detailed_reason"`
	ActiveTransits []Transit `json:"active_transits"`
	Remedy         string    `json:"remedy"`
}

// Transit describes one planet's current influence.
type Transit struct {
	Planet string `json:"planet"`
	Status string `json:"status"`
	Sign   string `json:"sign"`
	House  int    `json:"house"`
	Effect string `json:"effect"`
}

// RoastResult is the daily roast line for the dashboard.
type RoastResult struct {
	Roast            string `json:"roast"`
	PlanetaryContext string `json:"planetary_context"`
}

// RemedyResult is a suggested remedy for a concern.
type RemedyResult struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	ForConcern     string `json:"for_concern"`
	PlanetaryBasis string `json:"planetary_basis"`
	Timing         string `json:"timing"`
}
