package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// buildingAbsent is the sentinel the source export uses for records without
// a named building.
const buildingAbsent = "NIL"

// RawRecord mirrors one object of the source JSON array. Coordinate fields
// are encoded inconsistently across export versions, sometimes as numbers and
// sometimes as numeric strings, so they use the tolerant [Coordinate] type;
// they are pointers so an absent field is distinguishable from a zero value.
type RawRecord struct {
	Postal    string      `json:"POSTAL"`
	Address   string      `json:"ADDRESS"`
	RoadName  string      `json:"ROAD_NAME"`
	Building  string      `json:"BUILDING"`
	Latitude  *Coordinate `json:"LATITUDE"`
	Longitude *Coordinate `json:"LONGITUDE"`
}

// Coordinate is a float64 that unmarshals from either a JSON number or a
// numeric string.
type Coordinate float64

// NewCoordinate returns a Coordinate pointer for building RawRecords.
func NewCoordinate(v float64) *Coordinate {
	c := Coordinate(v)
	return &c
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("empty coordinate")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse coordinate %q: %w", s, err)
	}
	*c = Coordinate(v)
	return nil
}

// AddressRecord is the domain representation of one geocoded postal code.
// The two risk flags are assigned by the store at load time and are immutable
// afterwards.
type AddressRecord struct {
	PostalCode string  `json:"postal_code"`
	Address    string  `json:"address"`
	RoadName   string  `json:"road_name"`
	Building   string  `json:"building"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	IsFloodProne   bool `json:"is_flood_prone"`
	IsFloodHotspot bool `json:"is_flood_hotspot"`
}

// ParseRawRecord validates a raw source object and converts it to an
// AddressRecord. Every field is required: a record that omits one is a data
// defect the store cannot serve around, so parsing fails. A record without a
// named building spells that out as "NIL"; an empty BUILDING means the field
// itself was missing.
func ParseRawRecord(raw RawRecord) (AddressRecord, error) {
	if raw.Postal == "" {
		return AddressRecord{}, fmt.Errorf("record missing POSTAL field")
	}
	if raw.Address == "" {
		return AddressRecord{}, fmt.Errorf("record %s missing ADDRESS field", raw.Postal)
	}
	if raw.RoadName == "" {
		return AddressRecord{}, fmt.Errorf("record %s missing ROAD_NAME field", raw.Postal)
	}
	if raw.Building == "" {
		return AddressRecord{}, fmt.Errorf("record %s missing BUILDING field", raw.Postal)
	}
	if raw.Latitude == nil {
		return AddressRecord{}, fmt.Errorf("record %s missing LATITUDE field", raw.Postal)
	}
	if raw.Longitude == nil {
		return AddressRecord{}, fmt.Errorf("record %s missing LONGITUDE field", raw.Postal)
	}

	return AddressRecord{
		PostalCode: raw.Postal,
		Address:    raw.Address,
		RoadName:   raw.RoadName,
		Building:   raw.Building,
		Latitude:   float64(*raw.Latitude),
		Longitude:  float64(*raw.Longitude),
	}, nil
}

// DisplayBuilding returns the building name with the "NIL" sentinel mapped
// to "N/A" for presentation.
func (r AddressRecord) DisplayBuilding() string {
	if r.Building == "" || r.Building == buildingAbsent {
		return "N/A"
	}
	return r.Building
}

// HasBuilding reports whether the record names an actual building.
func (r AddressRecord) HasBuilding() bool {
	return r.Building != "" && r.Building != buildingAbsent
}
