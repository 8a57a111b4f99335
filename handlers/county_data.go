// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/danielhkuo/county-health-api/cliparse"
	"github.com/danielhkuo/county-health-api/measures"
	"github.com/danielhkuo/county-health-api/middleware"
	"github.com/danielhkuo/county-health-api/models"
)

// zipPattern accepts exactly five ASCII digits, nothing else.
var zipPattern = regexp.MustCompile(`^[0-9]{5}$`)

type CountyDataHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCountyDataHandler(db *sql.DB, cfg cliparse.Config) *CountyDataHandler {
	return &CountyDataHandler{db: db, cfg: cfg}
}

// GetCountyData handles POST /county_data
//
// Checks run in a fixed order, each one terminal: teapot sentinel,
// required fields, ZIP format, measure whitelist, ZIP resolution,
// record matching, empty-result. Nothing touches the store until the
// request has passed format and whitelist validation.
func (h *CountyDataHandler) GetCountyData(w http.ResponseWriter, r *http.Request) {
	var req models.CountyDataRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil && !errors.Is(err, io.EOF) {
		// An empty body reads as "no fields supplied" below; anything
		// else unparseable is rejected outright.
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	// The coffee sentinel wins over every other check, including
	// required-field presence.
	if req.Coffee == models.CoffeeTeapot {
		middleware.JSONResponse(w, http.StatusTeapot, models.TeapotResponse{Error: "I'm a teapot"})
		return
	}

	var missing []string
	if req.Zip == nil {
		missing = append(missing, "zip")
	}
	if req.MeasureName == nil {
		missing = append(missing, "measure_name")
	}
	if len(missing) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	zip, measure := *req.Zip, *req.MeasureName

	if !zipPattern.MatchString(zip) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ZIP code must be exactly 5 digits")
		return
	}

	if !measures.IsValid(measure) {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Measure '%s' not found", measure))
		return
	}

	counties, err := h.resolveCounties(zip)
	if err != nil {
		slog.Error("failed to resolve ZIP", "zip", zip, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error occurred")
		return
	}
	if len(counties) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("ZIP code %s not found", zip))
		return
	}

	// Aggregate in county-resolution order; row order within a county
	// is store iteration order.
	records := []models.HealthRecord{}
	for _, county := range counties {
		matched, err := h.matchHealthRecords(measure, county.Name)
		if err != nil {
			slog.Error("failed to match health records",
				"measure", measure,
				"county", county.Name,
				"error", err,
			)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error occurred")
			return
		}
		records = append(records, matched...)
	}

	if len(records) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound,
			fmt.Sprintf("No health data found for ZIP %s and measure '%s'", zip, measure))
		return
	}

	slog.Info("county data served", "zip", zip, "measure", measure, "records", len(records))

	middleware.JSONResponse(w, http.StatusOK, records)
}

// resolveCounties returns every county the ZIP maps to. A ZIP that
// straddles county lines yields several rows; an unknown ZIP yields an
// empty slice, not an error.
func (h *CountyDataHandler) resolveCounties(zip string) ([]models.County, error) {
	rows, err := h.db.Query(`
		SELECT county, county_code, state_abbreviation
		FROM zip_county
		WHERE zip = $1
	`, zip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counties []models.County
	for rows.Next() {
		var c models.County
		if err := rows.Scan(&c.Name, &c.Code, &c.StateAbbreviation); err != nil {
			return nil, err
		}
		counties = append(counties, c)
	}
	return counties, rows.Err()
}

// matchHealthRecords returns all ranking rows for the measure in the
// named county, across every year span. The match is by county display
// name only, so same-named counties in different states are merged
// into one result set.
func (h *CountyDataHandler) matchHealthRecords(measure, countyName string) ([]models.HealthRecord, error) {
	rows, err := h.db.Query(`
		SELECT state, county, state_code, county_code, year_span,
		       measure_name, measure_id, numerator, denominator,
		       raw_value, confidence_interval_lower_bound,
		       confidence_interval_upper_bound, data_release_year, fipscode
		FROM county_health_rankings
		WHERE measure_name = $1 AND county = $2
	`, measure, countyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.HealthRecord
	for rows.Next() {
		var (
			rec  models.HealthRecord
			cols [14]sql.NullString
		)
		scanArgs := make([]interface{}, len(cols))
		for i := range cols {
			scanArgs[i] = &cols[i]
		}
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, err
		}

		rec.State = nullableString(cols[0])
		rec.County = nullableString(cols[1])
		rec.StateCode = nullableString(cols[2])
		rec.CountyCode = nullableString(cols[3])
		rec.YearSpan = nullableString(cols[4])
		rec.MeasureName = nullableString(cols[5])
		rec.MeasureID = nullableString(cols[6])
		rec.Numerator = nullableString(cols[7])
		rec.Denominator = nullableString(cols[8])
		rec.RawValue = nullableString(cols[9])
		rec.ConfidenceIntervalLowerBound = nullableString(cols[10])
		rec.ConfidenceIntervalUpperBound = nullableString(cols[11])
		rec.DataReleaseYear = nullableString(cols[12])
		rec.FIPSCode = nullableString(cols[13])

		records = append(records, rec)
	}
	return records, rows.Err()
}

// nullableString converts a scanned column to the *string the response
// schema uses: nil for NULL, otherwise the text verbatim.
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
