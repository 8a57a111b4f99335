// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package csvload

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Loader errors. The CLI maps all of these to exit code 1.
var (
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoHeaders          = errors.New("no headers found")
	ErrAmbiguousDelimiter = errors.New("could not detect delimiter")
)

// Delimiter candidates, in preference order. Detection counts
// occurrences on the header line; ties between the top candidates are
// ambiguous rather than silently resolved.
var delimiters = []rune{',', ';', '\t', '|'}

// sampleSize is how much of the file DetectDelimiter inspects.
const sampleSize = 1024

// TableName derives the target table name from a CSV path: the base
// filename without directory or extension.
func TableName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DetectDelimiter picks the field delimiter from a leading sample of
// the file. Only the first line is inspected, since data rows may
// legitimately contain other candidate characters inside quoted fields.
func DetectDelimiter(sample string) (rune, error) {
	if strings.TrimSpace(sample) == "" {
		return 0, ErrEmptyFile
	}

	line, _, _ := strings.Cut(sample, "\n")
	line = strings.TrimSuffix(line, "\r")

	best, bestCount, tied := rune(0), 0, false
	for _, d := range delimiters {
		count := strings.Count(line, string(d))
		switch {
		case count > bestCount:
			best, bestCount, tied = d, count, false
		case count == bestCount && count > 0:
			tied = true
		}
	}

	if bestCount == 0 || tied {
		return 0, ErrAmbiguousDelimiter
	}
	return best, nil
}

// Load imports a delimited text file into a same-named table with every
// column typed TEXT. An existing table of that name is dropped first, so
// re-running a load is idempotent in row count, not additive.
//
// The whole file is parsed before the store is touched; the drop, the
// create, and every insert then run in a single transaction committed
// once. Rows shorter than the header are padded with empty strings,
// longer rows are truncated. Returns the number of data rows inserted.
func Load(db *sql.DB, table, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := f.Read(sample)
	if err != nil && n == 0 {
		return 0, ErrEmptyFile
	}

	// An empty first line means no headers, which is distinct from an
	// empty or undetectable file.
	firstLine, _, _ := strings.Cut(string(sample[:n]), "\n")
	if strings.TrimSpace(firstLine) == "" && strings.TrimSpace(string(sample[:n])) != "" {
		return 0, ErrNoHeaders
	}

	delimiter, err := DetectDelimiter(string(sample[:n]))
	if err != nil {
		return 0, err
	}

	if _, err := f.Seek(0, 0); err != nil {
		return 0, err
	}

	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1 // rows are padded/truncated below

	records, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("CSV parse error: %w", err)
	}
	if len(records) == 0 {
		return 0, ErrEmptyFile
	}

	headers := records[0]
	if len(headers) == 0 || (len(headers) == 1 && strings.TrimSpace(headers[0]) == "") {
		return 0, ErrNoHeaders
	}

	rows := normalizeRows(records[1:], len(headers))

	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	// Reloading a dataset replaces the table wholesale.
	if _, err := tx.Exec("DROP TABLE IF EXISTS " + quoteIdent(table)); err != nil {
		return 0, err
	}

	columns := make([]string, len(headers))
	for i, h := range headers {
		columns[i] = quoteIdent(h) + " TEXT"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(columns, ", "))
	if _, err := tx.Exec(createSQL); err != nil {
		return 0, err
	}

	placeholders := make([]string, len(headers))
	for i := range headers {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(table), strings.Join(placeholders, ", "))

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(row))
		for i, v := range row {
			args[i] = v
		}
		if _, err := stmt.Exec(args...); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return len(rows), nil
}

// normalizeRows pads short rows with empty strings and truncates long
// rows so every row matches the header's column count.
func normalizeRows(records [][]string, width int) [][]string {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		row := make([]string, width)
		copy(row, record)
		rows = append(rows, row)
	}
	return rows
}

// quoteIdent double-quotes an identifier so arbitrary CSV header names
// (spaces, mixed case, reserved words) survive as column names. Both
// sqlite and postgres accept this form.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
