// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the health-data store for the configured driver.

# Drivers

Two backends are supported, selected by Config.DatabaseType:

  - sqlite (default): modernc.org/sqlite, a pure-Go driver, pointed at
    the file the csvload CLI produced
  - postgres: github.com/lib/pq with a standard connection string

All queries in this codebase use $N placeholders, which both drivers
accept, so the handlers are backend-agnostic.

# Schema

The service itself never creates tables. The store layout is owned by
the csvload CLI: one all-TEXT table per imported CSV file (zip_county
and county_health_rankings in a standard deployment), no primary keys,
dropped and recreated on every import.
*/
package db
