// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package measures holds the whitelist of permitted measure names.

Exactly twelve names are accepted, verbatim and case-sensitively. The
whitelist doubles as an abuse control: because measure_name is checked
against this set before any SQL runs, arbitrary strings never reach the
store even as bind parameters.

	if !measures.IsValid(req.MeasureName) {
		// 404 Measure '<name>' not found
	}

There is no dynamic update path; the set is fixed at compile time.
*/
package measures
