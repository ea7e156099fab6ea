// SPDX-License-Identifier: BSD-3-Clause

// Clear and re-initialize the solver's storage: flush the
// solution cache and rebuild the database schema from scratch.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/selliott512/sudoku-solvers/dbprep"
)

func main() {
	_ = godotenv.Load()
	cacheURL := os.Getenv("REDIS_URL")
	databaseURL := os.Getenv("DATABASE_URL")
	if cacheURL == "" && databaseURL == "" {
		log.Fatalf("Neither REDIS_URL nor DATABASE_URL is set; nothing to clear")
	}
	log.Printf("Removing existing data storage and cache...")
	if err := dbprep.ReinitializeAll(cacheURL, databaseURL); err != nil {
		log.Fatalf("Couldn't clear storage: %v", err)
	}
	log.Printf("Storage re-initialized.")
}
