// Package assess orchestrates the query pipeline: validate the postal code,
// resolve the record, generate scenario depths, and classify them into a
// complete risk assessment.
package assess

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/observability"
)

// Lookup outcome labels for metrics.
const (
	outcomeFound         = "found"
	outcomeNotFound      = "not_found"
	outcomeInvalidFormat = "invalid_format"
)

// RecordSource resolves postal codes against the loaded record store.
type RecordSource interface {
	Lookup(postalCode string) (domain.AddressRecord, error)
	Loaded() bool
}

// Assessor runs the lookup and risk-classification pipeline. It carries no
// per-query state; concurrent sessions share one instance against the same
// read-only store.
type Assessor struct {
	records   RecordSource
	generator domain.ScenarioGenerator
	logger    *slog.Logger
	metrics   *observability.Metrics
	clock     clockwork.Clock
}

// New creates an Assessor over the given record source and scenario
// generator. A nil clock defaults to real time.
func New(records RecordSource, generator domain.ScenarioGenerator, logger *slog.Logger, metrics *observability.Metrics, clock clockwork.Clock) *Assessor {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Assessor{
		records:   records,
		generator: generator,
		logger:    logger,
		metrics:   metrics,
		clock:     clock,
	}
}

// CheckReadiness returns nil once the record store is loaded.
func (a *Assessor) CheckReadiness(_ context.Context) error {
	if !a.records.Loaded() {
		return errors.New("record store not loaded")
	}
	return nil
}

// Lookup validates the postal code format and resolves it to a record.
// Format violations surface as domain.ErrInvalidFormat before the store is
// consulted; a well-formed but absent code surfaces as domain.ErrNotFound.
func (a *Assessor) Lookup(postalCode string) (domain.AddressRecord, error) {
	if err := domain.ValidatePostalCode(postalCode); err != nil {
		a.metrics.LookupsTotal.WithLabelValues(outcomeInvalidFormat).Inc()
		return domain.AddressRecord{}, err
	}

	rec, err := a.records.Lookup(postalCode)
	if err != nil {
		a.metrics.LookupsTotal.WithLabelValues(outcomeNotFound).Inc()
		a.logger.Debug("postal code not found", "postal_code", postalCode)
		return domain.AddressRecord{}, err
	}

	a.metrics.LookupsTotal.WithLabelValues(outcomeFound).Inc()
	return rec, nil
}

// Assess runs the full pipeline for one postal code. Scenario depths are
// regenerated on every call; only the record's risk flags are stable.
func (a *Assessor) Assess(postalCode string) (domain.RiskAssessment, error) {
	start := time.Now()

	rec, err := a.Lookup(postalCode)
	if err != nil {
		return domain.RiskAssessment{}, err
	}

	assessment := a.AssessRecord(rec)

	a.metrics.AssessmentsTotal.Inc()
	a.metrics.AssessmentDuration.Observe(time.Since(start).Seconds())
	a.logger.Info("risk assessed",
		"postal_code", rec.PostalCode,
		"baseline_risk", assessment.Baseline().RiskLevel,
		"future_risk", assessment.Future().RiskLevel,
		"flood_prone", rec.IsFloodProne,
		"flood_hotspot", rec.IsFloodHotspot,
	)
	return assessment, nil
}

// AssessRecord builds the assessment for an already-resolved record. The map
// marker styles by the future scenario regardless of which band is worse.
func (a *Assessor) AssessRecord(rec domain.AddressRecord) domain.RiskAssessment {
	baseline, future := a.generator.Estimate(rec.PostalCode, rec.Latitude, rec.Longitude)
	rows := domain.BuildScenarioRows(baseline, future)
	futureRow := rows[1]

	return domain.RiskAssessment{
		ID:             uuid.NewString(),
		Record:         rec,
		Scenarios:      rows,
		IsFloodProne:   rec.IsFloodProne,
		IsFloodHotspot: rec.IsFloodHotspot,
		Marker: domain.Marker{
			Latitude:     rec.Latitude,
			Longitude:    rec.Longitude,
			RadiusMeters: domain.MarkerRadiusMeters,
			RiskLevel:    futureRow.RiskLevel,
			RiskColor:    futureRow.RiskColor,
		},
		AssessedAt: a.clock.Now(),
	}
}
