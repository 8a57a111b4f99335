// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the County Health
Data API.

# Handler Types

The single handler is a struct with database and config dependencies:

	countyData := handlers.NewCountyDataHandler(db, cfg)

# Lookup Flow

POST /county_data validates and answers in a fixed, short-circuiting
order:

 1. coffee == "teapot"        → 418 {"error": "I'm a teapot"}
 2. zip/measure_name missing  → 400 "Missing required fields: ..."
 3. zip not 5 ASCII digits    → 400 "ZIP code must be exactly 5 digits"
 4. measure not whitelisted   → 404 "Measure '<name>' not found"
 5. ZIP resolves to nothing   → 404 "ZIP code <zip> not found"
 6. no rows for any county    → 404 "No health data found for ..."
 7. otherwise                 → 200 JSON array of health records

The store is untouched until step 5, so malformed or non-whitelisted
input never reaches SQL even as a bind parameter.

# County Matching

Health rows are joined to a ZIP's counties by county display name, not
by a compound county+state or FIPS key. Same-named counties in
different states ("Middlesex County" exists in several) therefore merge
into one response. That is the documented behavior of the dataset
contract, kept intentionally.

Store-level failures at any step are logged and collapsed to a generic
500 body; driver detail never reaches the client.
*/
package handlers
