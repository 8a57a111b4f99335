// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// CoffeeTeapot is the sentinel value of the diagnostic coffee field.
// A request carrying it is answered with 418 before any other validation.
const CoffeeTeapot = "teapot"

// Request types

// CountyDataRequest is the body of POST /county_data.
// Zip and MeasureName are pointers so the handler can tell "absent"
// apart from "empty string" when reporting missing fields.
type CountyDataRequest struct {
	Zip         *string `json:"zip"`
	MeasureName *string `json:"measure_name"`
	Coffee      string  `json:"coffee"`
}

// Response types

// HealthRecord is one county health ranking row as returned to clients.
// The field order here fixes the JSON key order of the external contract.
// Every value is text carried verbatim from the source dataset; nil means
// the source column was NULL.
type HealthRecord struct {
	State                        *string `json:"state"`
	County                       *string `json:"county"`
	StateCode                    *string `json:"state_code"`
	CountyCode                   *string `json:"county_code"`
	YearSpan                     *string `json:"year_span"`
	MeasureName                  *string `json:"measure_name"`
	MeasureID                    *string `json:"measure_id"`
	Numerator                    *string `json:"numerator"`
	Denominator                  *string `json:"denominator"`
	RawValue                     *string `json:"raw_value"`
	ConfidenceIntervalLowerBound *string `json:"confidence_interval_lower_bound"`
	ConfidenceIntervalUpperBound *string `json:"confidence_interval_upper_bound"`
	DataReleaseYear              *string `json:"data_release_year"`
	FIPSCode                     *string `json:"fipscode"`
}

type StatusResponse struct {
	Message string `json:"message"`
}

type TeapotResponse struct {
	Error string `json:"error"`
}

// Domain types

// County is one zip_county row projection. A ZIP can resolve to several
// of these when it straddles county lines.
type County struct {
	Name              string
	Code              string
	StateAbbreviation string
}

// Error response

// ErrorResponse is the body of every non-2xx response except the teapot.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
