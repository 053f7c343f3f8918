// Command validatedb performs integrity checks on a postal-code database
// file before it is shipped to the service: decompression, JSON structure,
// required fields, key format and uniqueness, and coordinate plausibility.
//
// Usage:
//
//	go run ./cmd/validatedb -db database.json.gz
package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
)

// Plausible bounds for Singapore coordinates, with margin for offshore
// islands.
const (
	minLat = 1.1
	maxLat = 1.6
	minLon = 103.5
	maxLon = 104.2
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	dbPath := flag.String("db", "", "path to the gzipped JSON database")
	flag.Parse()

	if *dbPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*dbPath); code != 0 {
		os.Exit(code)
	}
}

func run(dbPath string) int {
	fmt.Println("=== Postal Database Integrity Validation ===")
	fmt.Println()

	raws, err := loadDatabase(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load database: %v\n", err)
		return 1
	}
	fmt.Printf("loaded %d records from %s\n\n", len(raws), dbPath)

	phases := []*phase{
		checkFields(raws),
		checkKeys(raws),
		checkCoordinates(raws),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Println("all phases passed")
	return 0
}

func loadDatabase(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer gz.Close()

	var raws []domain.RawRecord
	if err := json.NewDecoder(gz).Decode(&raws); err != nil {
		return nil, fmt.Errorf("json: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("database is empty")
	}
	return raws, nil
}

// checkFields runs every record through the domain parser.
func checkFields(raws []domain.RawRecord) *phase {
	p := &phase{name: "required fields"}
	for i, raw := range raws {
		if _, err := domain.ParseRawRecord(raw); err != nil {
			p.errorf("record %d: %v", i, err)
		}
	}
	return p
}

// checkKeys verifies postal codes are well-formed and unique.
func checkKeys(raws []domain.RawRecord) *phase {
	p := &phase{name: "postal code keys"}
	seen := make(map[string]int, len(raws))
	for i, raw := range raws {
		if err := domain.ValidatePostalCode(raw.Postal); err != nil {
			p.errorf("record %d: postal %q: %v", i, raw.Postal, err)
			continue
		}
		if prev, dup := seen[raw.Postal]; dup {
			p.errorf("records %d and %d share postal code %s", prev, i, raw.Postal)
			continue
		}
		seen[raw.Postal] = i
	}
	return p
}

// checkCoordinates flags records outside the Singapore bounding box.
func checkCoordinates(raws []domain.RawRecord) *phase {
	p := &phase{name: "coordinate bounds"}
	for i, raw := range raws {
		if raw.Latitude == nil || raw.Longitude == nil {
			continue // absent coordinates already fail the fields phase
		}
		lat, lon := float64(*raw.Latitude), float64(*raw.Longitude)
		if lat < minLat || lat > maxLat || lon < minLon || lon > maxLon {
			p.errorf("record %d (%s): coordinates (%.5f, %.5f) outside Singapore bounds",
				i, raw.Postal, lat, lon)
		}
	}
	return p
}
