// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command csvload imports a CSV file into a same-named all-TEXT table
// of a SQLite database, creating the database file if needed. It is
// the offline data-preparation step for the County Health Data API.
package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/county-health-api/csvload"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: csvload <database.db> <input.csv>")
		os.Exit(1)
	}

	databasePath := os.Args[1]
	csvPath := os.Args[2]

	// Validate the CSV exists before touching the store
	if _, err := os.Stat(csvPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: CSV file '%s' not found\n", csvPath)
		os.Exit(1)
	}

	store, err := sql.Open("sqlite", databasePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Database error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	tableName := csvload.TableName(csvPath)

	n, err := csvload.Load(store, tableName, csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d rows into table '%s'\n", n, tableName)
	fmt.Printf("Database: %s\n", databasePath)
}
