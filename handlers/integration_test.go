// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers_test

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/county-health-api/csvload"
	"github.com/danielhkuo/county-health-api/models"
	"github.com/danielhkuo/county-health-api/router"
	"github.com/danielhkuo/county-health-api/testutil"
)

const zipCountyCSV = `zip,default_state,county,county_state,state_abbreviation,county_code,zip_pop,zip_pop_in_county,n_counties,default_city
02138,MA,Middlesex County,MA,MA,017,29000,29000,1,Cambridge
02139,MA,Middlesex County,MA,MA,017,15000,15000,1,Cambridge
10001,NY,New York County,NY,NY,061,21000,21000,1,New York
`

const healthRankingsCSV = `state,county,state_code,county_code,year_span,measure_name,measure_id,numerator,denominator,raw_value,confidence_interval_lower_bound,confidence_interval_upper_bound,data_release_year,fipscode
MA,Middlesex County,25,017,2020-2022,Adult obesity,11,60771.02,263078,0.23,0.22,0.24,2023,25017
MA,Middlesex County,25,017,2020-2022,Violent crime rate,43,850,263078,3.2,3.0,3.4,2023,25017
NY,New York County,36,061,2020-2022,Adult obesity,11,45000,180000,0.25,0.24,0.26,2023,36061
`

// loadFixtureStore runs both CSV datasets through the real loader so
// the lookup path is exercised against loader-created tables, not
// hand-built ones.
func loadFixtureStore(t *testing.T) *sql.DB {
	t.Helper()

	dir := t.TempDir()
	db, err := sql.Open("sqlite", filepath.Join(dir, "data.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	fixtures := map[string]string{
		"zip_county.csv":             zipCountyCSV,
		"county_health_rankings.csv": healthRankingsCSV,
	}
	for name, content := range fixtures {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
		if _, err := csvload.Load(db, csvload.TableName(path), path); err != nil {
			t.Fatalf("Failed to load fixture %s: %v", name, err)
		}
	}

	return db
}

func TestIntegration_LoadThenLookup(t *testing.T) {
	db := loadFixtureStore(t)
	mux := router.NewRouter(db, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/county_data", map[string]string{
		"zip":          "02138",
		"measure_name": "Adult obesity",
	}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.HealthRecord
	testutil.AssertJSON(t, w, &records)
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	if *records[0].RawValue != "0.23" {
		t.Errorf("Expected raw_value '0.23', got %q", *records[0].RawValue)
	}
	if *records[0].FIPSCode != "25017" {
		t.Errorf("Expected fipscode '25017', got %q", *records[0].FIPSCode)
	}
}

func TestIntegration_ReloadReplacesData(t *testing.T) {
	db := loadFixtureStore(t)
	mux := router.NewRouter(db, testutil.GetTestConfig())

	// Reload the rankings dataset; the table is replaced, not appended
	dir := t.TempDir()
	path := filepath.Join(dir, "county_health_rankings.csv")
	if err := os.WriteFile(path, []byte(healthRankingsCSV), 0o644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	if _, err := csvload.Load(db, "county_health_rankings", path); err != nil {
		t.Fatalf("Failed to reload fixture: %v", err)
	}

	req := testutil.MakeRequest("POST", "/county_data", map[string]string{
		"zip":          "02138",
		"measure_name": "Violent crime rate",
	}, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var records []models.HealthRecord
	testutil.AssertJSON(t, w, &records)
	if len(records) != 1 {
		t.Errorf("Expected 1 record after reload, got %d", len(records))
	}
}

func TestIntegration_NotFoundPaths(t *testing.T) {
	db := loadFixtureStore(t)
	mux := router.NewRouter(db, testutil.GetTestConfig())

	tests := []struct {
		name     string
		body     map[string]string
		expected string
	}{
		{
			name:     "unknown zip",
			body:     map[string]string{"zip": "99999", "measure_name": "Adult obesity"},
			expected: "ZIP code 99999 not found",
		},
		{
			name:     "no rows for combination",
			body:     map[string]string{"zip": "10001", "measure_name": "Unemployment"},
			expected: "No health data found for ZIP 10001 and measure 'Unemployment'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/county_data", tt.body, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Detail != tt.expected {
				t.Errorf("Expected detail %q, got %q", tt.expected, resp.Detail)
			}
		})
	}
}
