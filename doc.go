// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the County Health Data API
server.

The service answers one question: given a ZIP code and a public-health
measure name, return every county health ranking row that matches. The
data lives in a SQLite database built offline by the cmd/csvload tool
from two flat CSV datasets (a ZIP-to-county mapping and the county
health rankings table).

# Starting the Server

The server runs against data.db in the working directory by default:

	go run .

Or with flags:

	go run . -p 8000 -d /var/data/health.db

# Configuration

Optional settings (flags fall back to env vars, and a .env file is
loaded first if present):

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: data.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Building the Database

	go run ./cmd/csvload data.db zip_county.csv
	go run ./cmd/csvload data.db county_health_rankings.csv

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: the county_data lookup (validation, ZIP resolution,
    record matching)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, request logging, JSON helpers
  - models: request/response types
  - measures: the fixed measure-name whitelist
  - db: store opening per configured driver
  - csvload: CSV-to-table bulk import library
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
