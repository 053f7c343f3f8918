package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRawRecordUnmarshal(t *testing.T) {
	t.Run("numeric coordinates", func(t *testing.T) {
		data := []byte(`{"POSTAL":"018989","ADDRESS":"12 MARINA BOULEVARD SINGAPORE 018989","ROAD_NAME":"MARINA BOULEVARD","BUILDING":"MARINA BAY FINANCIAL CENTRE","LATITUDE":1.2793,"LONGITUDE":103.8544}`)

		var raw RawRecord
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Equal(t, "018989", raw.Postal)
		require.NotNil(t, raw.Latitude)
		require.NotNil(t, raw.Longitude)
		assert.InDelta(t, 1.2793, float64(*raw.Latitude), 1e-9)
		assert.InDelta(t, 103.8544, float64(*raw.Longitude), 1e-9)
	})

	t.Run("string coordinates", func(t *testing.T) {
		data := []byte(`{"POSTAL":"018989","ADDRESS":"A","ROAD_NAME":"R","BUILDING":"NIL","LATITUDE":"1.2793","LONGITUDE":"103.8544"}`)

		var raw RawRecord
		require.NoError(t, json.Unmarshal(data, &raw))

		require.NotNil(t, raw.Latitude)
		require.NotNil(t, raw.Longitude)
		assert.InDelta(t, 1.2793, float64(*raw.Latitude), 1e-9)
		assert.InDelta(t, 103.8544, float64(*raw.Longitude), 1e-9)
	})

	t.Run("absent coordinate stays nil", func(t *testing.T) {
		data := []byte(`{"POSTAL":"018989","ADDRESS":"A","ROAD_NAME":"R","BUILDING":"NIL","LONGITUDE":103.8544}`)

		var raw RawRecord
		require.NoError(t, json.Unmarshal(data, &raw))

		assert.Nil(t, raw.Latitude)
		require.NotNil(t, raw.Longitude)
	})

	t.Run("non-numeric coordinate", func(t *testing.T) {
		data := []byte(`{"POSTAL":"018989","LATITUDE":"north","LONGITUDE":"103.8"}`)

		var raw RawRecord
		require.Error(t, json.Unmarshal(data, &raw))
	})
}

func TestParseRawRecord(t *testing.T) {
	valid := RawRecord{
		Postal:    "018989",
		Address:   "12 MARINA BOULEVARD SINGAPORE 018989",
		RoadName:  "MARINA BOULEVARD",
		Building:  "NIL",
		Latitude:  NewCoordinate(1.2793),
		Longitude: NewCoordinate(103.8544),
	}

	t.Run("valid record", func(t *testing.T) {
		rec, err := ParseRawRecord(valid)
		require.NoError(t, err)

		assert.Equal(t, "018989", rec.PostalCode)
		assert.Equal(t, "MARINA BOULEVARD", rec.RoadName)
		assert.Equal(t, 1.2793, rec.Latitude)
		assert.Equal(t, 103.8544, rec.Longitude)
		assert.False(t, rec.IsFloodProne)
		assert.False(t, rec.IsFloodHotspot)
	})

	// Every source field is required; any omission is a fatal parse error.
	tests := []struct {
		name    string
		mutate  func(*RawRecord)
		wantMsg string
	}{
		{"missing postal", func(r *RawRecord) { r.Postal = "" }, "POSTAL"},
		{"missing address", func(r *RawRecord) { r.Address = "" }, "ADDRESS"},
		{"missing road name", func(r *RawRecord) { r.RoadName = "" }, "ROAD_NAME"},
		{"missing building", func(r *RawRecord) { r.Building = "" }, "BUILDING"},
		{"missing latitude", func(r *RawRecord) { r.Latitude = nil }, "LATITUDE"},
		{"missing longitude", func(r *RawRecord) { r.Longitude = nil }, "LONGITUDE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := valid
			tt.mutate(&raw)
			_, err := ParseRawRecord(raw)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDisplayBuilding(t *testing.T) {
	tests := []struct {
		name     string
		building string
		want     string
		has      bool
	}{
		{"named building", "MARINA BAY FINANCIAL CENTRE", "MARINA BAY FINANCIAL CENTRE", true},
		{"NIL sentinel", "NIL", "N/A", false},
		{"empty", "", "N/A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := AddressRecord{Building: tt.building}
			assert.Equal(t, tt.want, rec.DisplayBuilding())
			assert.Equal(t, tt.has, rec.HasBuilding())
		})
	}
}
