package dbprep

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// The schema travels with the binary, so preparation never
// depends on the working directory.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// databaseUrl returns the migration URL for the configured
// database.  The migration driver for pgx registers its own URL
// scheme, so the configured scheme is swapped out.
func databaseUrl() string {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = "postgres://localhost/sudoku?sslmode=disable"
	}
	if i := strings.Index(url, "://"); i >= 0 {
		url = "pgx5" + url[i:]
	}
	return url
}

// newMigrator assembles a migrator over the embedded schema
// files.  Callers own closing it.
func newMigrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return nil, fmt.Errorf("couldn't read embedded migrations: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, databaseUrl())
	if err != nil {
		return nil, fmt.Errorf("couldn't open migrator: %v", err)
	}
	return m, nil
}

// SchemaUp creates the database with the right schema
func SchemaUp() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown tears down the database
func SchemaDown() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the version of the database, 0 when no
// schema is installed.
func SchemaVersion() (uint64, error) {
	m, err := newMigrator()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return uint64(version), nil
}
