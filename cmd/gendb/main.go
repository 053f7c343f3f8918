// Command gendb produces a gzip-compressed postal-code database in the format
// the service loads at startup. It either converts a CSV export or generates
// a synthetic sample, using the actual domain parsing to guarantee the output
// is loadable.
//
// Usage:
//
//	go run ./cmd/gendb -out database.json.gz -n 500 -seed 42
//	go run ./cmd/gendb -out database.json.gz -csv onemap_export.csv
package main

import (
	"compress/gzip"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/digitalsri/singapore-flood-risk-tool/internal/domain"
)

// Singapore bounding box for synthetic coordinates.
const (
	minLat = 1.23
	maxLat = 1.47
	minLon = 103.60
	maxLon = 104.04
)

var roadNames = []string{
	"MARINA BOULEVARD", "ORCHARD ROAD", "SERANGOON AVENUE 2", "BEDOK NORTH STREET 1",
	"JURONG WEST AVENUE 5", "ANG MO KIO AVENUE 3", "TAMPINES STREET 81",
	"CLEMENTI ROAD", "PUNGGOL FIELD", "YISHUN RING ROAD", "BUKIT TIMAH ROAD",
	"PASIR RIS DRIVE 6", "TOA PAYOH LORONG 4", "HOUGANG AVENUE 8",
}

var buildingNames = []string{
	"NIL", "NIL", "NIL", "THE SAIL @ MARINA BAY", "GOLDEN LANDMARK",
	"NIL", "CITY SQUARE MALL", "NIL", "KALLANG TRIVISTA", "NIL",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	out := flag.String("out", "", "output path for the gzipped database")
	csvPath := flag.String("csv", "", "optional CSV export to convert (POSTAL,ADDRESS,ROAD_NAME,BUILDING,LATITUDE,LONGITUDE)")
	count := flag.Int("n", 500, "number of synthetic records when no CSV is given")
	seed := flag.Int64("seed", 1, "random seed for synthetic generation")
	flag.Parse()

	if *out == "" {
		flag.Usage()
		return fmt.Errorf("missing required flag: -out")
	}

	var raws []domain.RawRecord
	var err error
	if *csvPath != "" {
		raws, err = fromCSV(*csvPath)
	} else {
		raws, err = synthetic(*count, *seed)
	}
	if err != nil {
		return err
	}

	// Run every record through the real parser so a generated database can
	// never fail the service's load validation.
	seen := make(map[string]bool, len(raws))
	for i, raw := range raws {
		rec, err := domain.ParseRawRecord(raw)
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if seen[rec.PostalCode] {
			return fmt.Errorf("duplicate postal code %s", rec.PostalCode)
		}
		seen[rec.PostalCode] = true
	}

	if err := writeGzipJSON(*out, raws); err != nil {
		return fmt.Errorf("writing database: %w", err)
	}
	log.Printf("wrote %d records: %s", len(raws), *out)
	return nil
}

func fromCSV(path string) ([]domain.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("csv has no data rows")
	}

	colIdx := map[string]int{}
	for i, h := range rows[0] {
		colIdx[h] = i
	}
	for _, col := range []string{"POSTAL", "ADDRESS", "ROAD_NAME", "BUILDING", "LATITUDE", "LONGITUDE"} {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("csv missing column %s", col)
		}
	}

	raws := make([]domain.RawRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		lat, err := strconv.ParseFloat(row[colIdx["LATITUDE"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: latitude: %w", i+1, err)
		}
		lon, err := strconv.ParseFloat(row[colIdx["LONGITUDE"]], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: longitude: %w", i+1, err)
		}
		raws = append(raws, domain.RawRecord{
			Postal:    row[colIdx["POSTAL"]],
			Address:   row[colIdx["ADDRESS"]],
			RoadName:  row[colIdx["ROAD_NAME"]],
			Building:  row[colIdx["BUILDING"]],
			Latitude:  domain.NewCoordinate(lat),
			Longitude: domain.NewCoordinate(lon),
		})
	}
	return raws, nil
}

func synthetic(count int, seed int64) ([]domain.RawRecord, error) {
	if count <= 0 {
		return nil, fmt.Errorf("record count must be positive")
	}
	rng := rand.New(rand.NewSource(seed))

	raws := make([]domain.RawRecord, 0, count)
	used := make(map[string]bool, count)
	for len(raws) < count {
		postal := fmt.Sprintf("%06d", rng.Intn(1_000_000))
		if used[postal] {
			continue
		}
		used[postal] = true

		road := roadNames[rng.Intn(len(roadNames))]
		building := buildingNames[rng.Intn(len(buildingNames))]
		blk := rng.Intn(900) + 1

		raws = append(raws, domain.RawRecord{
			Postal:    postal,
			Address:   fmt.Sprintf("%d %s SINGAPORE %s", blk, road, postal),
			RoadName:  road,
			Building:  building,
			Latitude:  domain.NewCoordinate(minLat + rng.Float64()*(maxLat-minLat)),
			Longitude: domain.NewCoordinate(minLon + rng.Float64()*(maxLon-minLon)),
		})
	}
	return raws, nil
}

func writeGzipJSON(path string, raws []domain.RawRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	if err := enc.Encode(raws); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}
	return f.Close()
}
