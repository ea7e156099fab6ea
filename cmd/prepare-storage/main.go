// SPDX-License-Identifier: BSD-3-Clause

// Prepare the solver's storage for use: bring the database schema
// up to date, creating it if needed.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/selliott512/sudoku-solvers/dbprep"
)

func main() {
	_ = godotenv.Load()
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		log.Fatalf("DATABASE_URL is not set; nothing to prepare")
	}
	log.Printf("Preparing solve archive...")
	if err := dbprep.EnsureData(url); err != nil {
		log.Fatalf("Couldn't prepare storage: %v", err)
	}
	version, err := dbprep.SchemaVersion(url)
	if err != nil {
		log.Fatalf("Couldn't get data schema version: %v", err)
	}
	log.Printf("Database ready at schema version %d.", version)
}
