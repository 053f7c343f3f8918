package domain

import (
	"fmt"
	"strconv"
)

// RiskLevel is a three-band flood-risk classification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Display colors bound one-to-one to risk levels.
const (
	ColorLow    = "#50d890"
	ColorMedium = "#ffc26f"
	ColorHigh   = "#ff595e"
)

// Scenario names, in display order.
const (
	ScenarioBaseline = "Baseline"
	ScenarioRCP85    = "RCP8.5"
)

// ScenarioResult is one classified flood-depth estimate. Created fresh on
// every query and never persisted.
type ScenarioResult struct {
	ScenarioName     string    `json:"scenario"`
	FloodDepthMeters float64   `json:"flood_depth_m"`
	DepthDisplay     string    `json:"flood_depth_display"`
	RiskLevel        RiskLevel `json:"risk_level"`
	RiskColor        string    `json:"risk_color"`
}

// Classify maps a flood depth in meters to its risk level and display color.
// Both band boundaries (0.5 and 1.0) classify as Medium. Negative depths are
// clamped into the Low band; the generator never produces them, but a real
// model substituted later should not be able to crash classification.
func Classify(depth float64) (RiskLevel, string) {
	switch {
	case depth < 0.5:
		return RiskLow, ColorLow
	case depth <= 1.0:
		return RiskMedium, ColorMedium
	default:
		return RiskHigh, ColorHigh
	}
}

// BuildScenarioRows classifies both depths and returns exactly two rows in
// display order: Baseline first, then RCP8.5. Depths are formatted to two
// decimal places.
func BuildScenarioRows(baselineDepth, futureDepth float64) []ScenarioResult {
	rows := make([]ScenarioResult, 0, 2)
	for _, s := range []struct {
		name  string
		depth float64
	}{
		{ScenarioBaseline, baselineDepth},
		{ScenarioRCP85, futureDepth},
	} {
		level, color := Classify(s.depth)
		rows = append(rows, ScenarioResult{
			ScenarioName:     s.name,
			FloodDepthMeters: s.depth,
			DepthDisplay:     fmt.Sprintf("%.2f", s.depth),
			RiskLevel:        level,
			RiskColor:        color,
		})
	}
	return rows
}

// LegendEntry describes one risk band for presentation.
type LegendEntry struct {
	Level      RiskLevel `json:"level"`
	Color      string    `json:"color"`
	DepthRange string    `json:"depth_range"`
}

// Legend returns the three risk bands with their colors and depth ranges,
// lowest band first.
func Legend() []LegendEntry {
	return []LegendEntry{
		{Level: RiskLow, Color: ColorLow, DepthRange: "< 0.5m"},
		{Level: RiskMedium, Color: ColorMedium, DepthRange: "0.5–1.0m"},
		{Level: RiskHigh, Color: ColorHigh, DepthRange: "> 1.0m"},
	}
}

// TextColorFor picks "black" or "white" text for a "#rrggbb" background using
// relative luminance L = (0.299·R + 0.587·G + 0.114·B)/255 over the 0–255
// channel values; L > 0.5 selects black. Malformed colors default to white.
func TextColorFor(bgColor string) string {
	if len(bgColor) != 7 || bgColor[0] != '#' {
		return "white"
	}
	r, errR := strconv.ParseUint(bgColor[1:3], 16, 8)
	g, errG := strconv.ParseUint(bgColor[3:5], 16, 8)
	b, errB := strconv.ParseUint(bgColor[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return "white"
	}

	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255
	if luminance > 0.5 {
		return "black"
	}
	return "white"
}
