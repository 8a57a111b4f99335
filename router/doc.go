// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the County Health Data API.

# Routes

Using Go 1.22+ method and pattern routing:

	GET  /            → liveness message
	GET  /health      → liveness message
	POST /county_data → county health data lookup

NewRouter wires the handlers to a ServeMux and wraps the whole mux in
the CORS middleware; the lookup route additionally carries request
logging.
*/
package router
