// SPDX-License-Identifier: BSD-3-Clause

// Package dbprep prepares the solver's backing services: it
// installs (or removes) the Postgres schema for the solve
// archive, and can clear the Redis solution cache.  It is used
// by the storage package on connect and by the prepare-storage
// and clear-storage commands.
package dbprep

import (
	"fmt"
)

// EnsureData makes sure the database has the current schema.
// Safe to call against an already-prepared database.
func EnsureData(databaseURL string) error {
	if err := SchemaUp(databaseURL); err != nil {
		return fmt.Errorf("couldn't install data schema: %w", err)
	}
	version, err := SchemaVersion(databaseURL)
	if err != nil {
		return fmt.Errorf("couldn't get final data schema version: %w", err)
	}
	if version == 0 {
		return fmt.Errorf("database schema still at version 0, shouldn't be")
	}
	return nil
}

// RemoveData tears down the database schema, if any is
// installed.
func RemoveData(databaseURL string) error {
	version, err := SchemaVersion(databaseURL)
	if err != nil {
		return fmt.Errorf("couldn't get data schema version: %w", err)
	}
	if version > 0 {
		if err := SchemaDown(databaseURL); err != nil {
			return fmt.Errorf("couldn't remove tables: %w", err)
		}
	}
	return nil
}

// ReinitializeAll clears the cache and rebuilds the database
// from nothing.  An empty URL skips that service.
func ReinitializeAll(cacheURL, databaseURL string) error {
	// clear cache
	if cacheURL != "" {
		if err := ClearCache(cacheURL); err != nil {
			return fmt.Errorf("couldn't clear cache: %w", err)
		}
	}
	if databaseURL == "" {
		return nil
	}
	// clear database
	if err := RemoveData(databaseURL); err != nil {
		return fmt.Errorf("couldn't clear database: %w", err)
	}
	// reload database
	if err := EnsureData(databaseURL); err != nil {
		return fmt.Errorf("couldn't load database: %w", err)
	}
	return nil
}
