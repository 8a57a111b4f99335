// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and response helpers.

# Request Logging

WithLogging wraps a handler function and emits structured started and
completed log lines, tagged with a per-request UUID:

	mux.HandleFunc("POST /county_data", middleware.WithLogging(h.GetCountyData))

# JSON Helpers

  - JSONResponse: write any value as a JSON body with a status code
  - ErrorResponse: write the {"detail": "..."} error body
  - ParseJSONBody: decode a request body into a struct

ErrorResponse carries only the message handed to it; store-level error
detail must be logged at the call site and never passed through.

# CORS

CORS wraps the whole router and answers OPTIONS preflights. The lookup
API is public and read-only, so every origin is allowed.
*/
package middleware
