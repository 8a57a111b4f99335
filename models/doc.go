// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the
County Health Data API.

# Request Types

  - CountyDataRequest: body of POST /county_data (zip, measure_name,
    optional coffee diagnostic field)

Required fields are pointers so handlers can distinguish a missing key
from an empty value when building the "Missing required fields" message.

# Response Types

  - HealthRecord: one health ranking row; struct field order fixes the
    JSON key order promised to clients
  - StatusResponse: liveness message
  - TeapotResponse: body of the 418 diagnostic response
  - ErrorResponse: {"detail": "..."} body of all other error responses

# Domain Types

  - County: (name, code, state abbreviation) tuple a ZIP resolves to
*/
package models
