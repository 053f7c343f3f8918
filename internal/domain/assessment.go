package domain

import "time"

// MarkerRadiusMeters is the radius of the risk circle drawn around the
// assessed location, sized by the future-scenario classification.
const MarkerRadiusMeters = 80

// Marker is the map payload for an assessed location: a point with a
// risk-colored radius. The color and level come from the RCP8.5 scenario.
type Marker struct {
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters float64   `json:"radius_m"`
	RiskLevel    RiskLevel `json:"risk_level"`
	RiskColor    string    `json:"risk_color"`
}

// RiskAssessment is the full result of one query: the resolved record, both
// classified scenarios in display order, the record's persistent risk flags,
// and the derived map marker. Owned transiently by the caller and discarded
// after rendering.
type RiskAssessment struct {
	ID             string           `json:"id"`
	Record         AddressRecord    `json:"record"`
	Scenarios      []ScenarioResult `json:"scenarios"`
	IsFloodProne   bool             `json:"is_flood_prone"`
	IsFloodHotspot bool             `json:"is_flood_hotspot"`
	Marker         Marker           `json:"marker"`
	AssessedAt     time.Time        `json:"assessed_at"`
}

// Baseline returns the baseline scenario row.
func (a RiskAssessment) Baseline() ScenarioResult { return a.Scenarios[0] }

// Future returns the RCP8.5 scenario row.
func (a RiskAssessment) Future() ScenarioResult { return a.Scenarios[1] }
