// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package measures

// valid is the fixed set of measure names the lookup endpoint accepts.
// The strings are part of the external contract and are matched
// case-sensitively; anything else is rejected before any query runs.
var valid = map[string]struct{}{
	"Violent crime rate":              {},
	"Unemployment":                    {},
	"Children in poverty":             {},
	"Diabetic screening":              {},
	"Mammography screening":           {},
	"Preventable hospital stays":      {},
	"Uninsured":                       {},
	"Sexually transmitted infections": {},
	"Physical inactivity":             {},
	"Adult obesity":                   {},
	"Premature Death":                 {},
	"Daily fine particulate matter":   {},
}

// IsValid reports whether name is a permitted measure.
func IsValid(name string) bool {
	_, ok := valid[name]
	return ok
}

// Count returns the number of permitted measures.
func Count() int {
	return len(valid)
}
