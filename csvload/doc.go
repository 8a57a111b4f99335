// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package csvload imports delimited text files into all-TEXT store tables.

This is the offline data-preparation path that builds the database the
lookup service reads. Each CSV file becomes one table named after the
file (base name, no extension), with one TEXT column per header field.
No type coercion is attempted: numbers, codes, and confidence intervals
are stored exactly as they appear in the source, avoiding precision or
formatting loss.

# Behavior

  - The delimiter is sniffed from the header line (comma, semicolon,
    tab, or pipe); ambiguity is an error rather than a guess
  - An existing table of the same name is dropped first, so re-running
    a load replaces the data instead of accumulating it
  - Short rows are padded with empty strings, long rows truncated, so
    every stored row has exactly the header's column count
  - The file is fully parsed before the store is touched, and the
    drop/create/insert sequence runs in one transaction committed once

# Usage

	n, err := csvload.Load(db, csvload.TableName(path), path)

The cmd/csvload CLI wraps this with the external argument and exit-code
contract.
*/
package csvload
