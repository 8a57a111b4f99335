// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/county-health-api/cliparse"
)

// SetupTestDB creates a fresh sqlite database in the test's temp
// directory with the two loader-shaped tables (all columns TEXT, no
// primary keys), mirroring what cmd/csvload produces from the standard
// datasets.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE zip_county (
			zip TEXT, default_state TEXT, county TEXT, county_state TEXT,
			state_abbreviation TEXT, county_code TEXT, zip_pop TEXT,
			zip_pop_in_county TEXT, n_counties TEXT, default_city TEXT
		);

		CREATE TABLE county_health_rankings (
			state TEXT, county TEXT, state_code TEXT, county_code TEXT,
			year_span TEXT, measure_name TEXT, measure_id TEXT,
			numerator TEXT, denominator TEXT, raw_value TEXT,
			confidence_interval_lower_bound TEXT, confidence_interval_upper_bound TEXT,
			data_release_year TEXT, fipscode TEXT
		);
	`)
	if err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseURL:  "data.db",
		DatabaseType: "sqlite",
	}
}

// InsertZipCounty seeds one ZIP-to-county mapping row
func InsertZipCounty(t *testing.T, db *sql.DB, zip, county, countyCode, stateAbbr string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO zip_county (zip, default_state, county, county_state,
			state_abbreviation, county_code, zip_pop, zip_pop_in_county,
			n_counties, default_city)
		VALUES ($1, $2, $3, $4, $5, $6, '0', '0', '1', '')
	`, zip, stateAbbr, county, stateAbbr, stateAbbr, countyCode)
	if err != nil {
		t.Fatalf("Failed to insert zip_county row: %v", err)
	}
}

// HealthRow holds the seed values for one county_health_rankings row.
// Zero-value fields insert as empty text, which matches how the loader
// pads short CSV rows.
type HealthRow struct {
	State           string
	County          string
	StateCode       string
	CountyCode      string
	YearSpan        string
	MeasureName     string
	MeasureID       string
	Numerator       string
	Denominator     string
	RawValue        string
	CILowerBound    string
	CIUpperBound    string
	DataReleaseYear string
	FIPSCode        string
}

// InsertHealthRanking seeds one health ranking row
func InsertHealthRanking(t *testing.T, db *sql.DB, row HealthRow) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO county_health_rankings (state, county, state_code,
			county_code, year_span, measure_name, measure_id, numerator,
			denominator, raw_value, confidence_interval_lower_bound,
			confidence_interval_upper_bound, data_release_year, fipscode)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, row.State, row.County, row.StateCode, row.CountyCode, row.YearSpan,
		row.MeasureName, row.MeasureID, row.Numerator, row.Denominator,
		row.RawValue, row.CILowerBound, row.CIUpperBound, row.DataReleaseYear,
		row.FIPSCode)
	if err != nil {
		t.Fatalf("Failed to insert county_health_rankings row: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
