// Package dbprep prepares the stores the solver service relies
// on: it installs the database schema, seeds the puzzle library,
// and can flush the cache for a clean start.
package dbprep

import (
	"fmt"
)

// EnsureData brings the database schema up to date, loading the
// sample data if the schema changed.
func EnsureData() error {
	inVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial data schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("couldn't install data schema: %v", err)
	}
	outVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get final data schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("database schema still at version 0, shouldn't be")
	}
	if inVersion != outVersion {
		if err := DataUp(); err != nil {
			return fmt.Errorf("couldn't load data: %v", err)
		}
	}
	return nil
}

// RemoveData tears the database down.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial data schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll flushes the cache and rebuilds the database
// from nothing.
func ReinitializeAll() error {
	// clear cache
	if err := ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}
	// clear database
	if err := RemoveData(); err != nil {
		return fmt.Errorf("couldn't clear database: %v", err)
	}
	// reload database
	if err := EnsureData(); err != nil {
		return fmt.Errorf("couldn't load database: %v", err)
	}
	return nil
}
