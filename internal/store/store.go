// Package store owns the postal-code record collection: a one-time load of a
// gzip-compressed JSON export into an in-memory map, the load-time sampling
// of the per-record risk flags, and O(1) lookups against the result.
package store

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
	"github.com/digitalsri/singapore-flood-risk-tool/internal/observability"
)

// Default sampling probabilities for the per-record risk flags.
const (
	DefaultFloodProneProbability   = 0.15
	DefaultFloodHotspotProbability = 0.10
)

// Store maps postal codes to address records. The mapping is built once by
// Load and is read-only afterwards; lookups never mutate it. A lookup can
// never trigger a reload or flag resampling — that requires an explicit
// Invalidate followed by Load.
type Store struct {
	path        string
	logger      *slog.Logger
	metrics     *observability.Metrics
	rng         *rand.Rand
	clock       clockwork.Clock
	proneProb   float64
	hotspotProb float64

	mu       sync.Mutex
	records  map[string]domain.AddressRecord
	loadedAt time.Time
}

// New creates an unloaded store reading from the gzip JSON file at path.
func New(path string, logger *slog.Logger, metrics *observability.Metrics, opts ...Option) *Store {
	s := &Store{
		path:        path,
		logger:      logger,
		metrics:     metrics,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		clock:       clockwork.NewRealClock(),
		proneProb:   DefaultFloodProneProbability,
		hotspotProb: DefaultFloodHotspotProbability,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads and indexes the source file, sampling both risk flags for every
// record. It is idempotent: calling Load on an already-loaded store returns
// immediately without touching the existing records or their flags.
//
// Any defect in the source — unreadable file, bad gzip, malformed JSON, a
// record without key or coordinates, duplicate postal codes, or an empty
// export — is a fatal load error; the store refuses to serve partial data.
func (s *Store) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records != nil {
		s.logger.Debug("store already loaded, skipping", "records", len(s.records))
		return nil
	}

	records, err := s.loadFromFile()
	if err != nil {
		return err
	}

	s.records = records
	s.loadedAt = s.clock.Now()
	s.metrics.StoreLoads.Inc()
	s.metrics.StoreRecords.Set(float64(len(records)))
	s.metrics.StoreReady.Set(1)
	s.logger.Info("record store loaded",
		"path", s.path,
		"records", len(records),
	)
	return nil
}

func (s *Store) loadFromFile() (map[string]domain.AddressRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	defer gz.Close()

	var raws []domain.RawRecord
	if err := json.NewDecoder(gz).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decode database: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("database %s contains no records", s.path)
	}

	records := make(map[string]domain.AddressRecord, len(raws))
	for i, raw := range raws {
		rec, err := domain.ParseRawRecord(raw)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if _, exists := records[rec.PostalCode]; exists {
			return nil, fmt.Errorf("duplicate postal code %s", rec.PostalCode)
		}

		// Independent Bernoulli trials, per record and per flag.
		rec.IsFloodProne = s.rng.Float64() < s.proneProb
		rec.IsFloodHotspot = s.rng.Float64() < s.hotspotProb

		records[rec.PostalCode] = rec
	}

	return records, nil
}

// Lookup resolves a postal code to its record, or domain.ErrNotFound. The
// code is assumed already format-validated by the caller.
func (s *Store) Lookup(postalCode string) (domain.AddressRecord, error) {
	s.mu.Lock()
	rec, ok := s.records[postalCode]
	s.mu.Unlock()

	if !ok {
		return domain.AddressRecord{}, domain.ErrNotFound
	}
	return rec, nil
}

// Invalidate drops the loaded mapping so the next Load rereads the source
// and resamples all flags. It is the only way flags can change.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
	s.loadedAt = time.Time{}
	s.metrics.StoreReady.Set(0)
	s.metrics.StoreRecords.Set(0)
	s.logger.Info("record store invalidated")
}

// Loaded reports whether the store holds a usable mapping.
func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records != nil
}

// Len returns the number of loaded records.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// LoadedAt returns the time of the last successful Load, or the zero time.
func (s *Store) LoadedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadedAt
}
