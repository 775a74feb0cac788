// Command migrate applies the embedded SQL schema migrations.
//
// Usage:
//
//	migrate up            apply all pending migrations
//	migrate down [n]      roll back n migrations (default 1)
//	migrate version       print the current schema version
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/crimsng/crims-api/migrations"
	"github.com/crimsng/crims-api/pkg/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cmd := "up"
	if len(args) > 0 {
		cmd = args[0]
	}

	m, err := newMigrate()
	if err != nil {
		return err
	}
	defer func() { _, _ = m.Close() }()

	switch cmd {
	case "up":
		if err := m.Up(); err != nil {
			if err == migrate.ErrNoChange {
				fmt.Println("database is up to date")
				return nil
			}
			return err
		}
		version, _, _ := m.Version()
		fmt.Printf("migrated to version %d\n", version)
		return nil
	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
				return fmt.Errorf("invalid step count %q", args[1])
			}
		}
		if err := m.Steps(-steps); err != nil {
			return err
		}
		version, _, _ := m.Version()
		fmt.Printf("rolled back to version %d\n", version)
		return nil
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			if err == migrate.ErrNilVersion {
				fmt.Println("no migrations applied yet")
				return nil
			}
			return err
		}
		fmt.Printf("version %d (dirty: %v)\n", version, dirty)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func newMigrate() (*migrate.Migrate, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	src, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("embedded migrations: %w", err)
	}

	// The pgx/v5 migrate driver registers the pgx5 URL scheme.
	dbURL := cfg.DB.ConnectionString()
	dbURL = strings.Replace(dbURL, "postgresql://", "pgx5://", 1)
	dbURL = strings.Replace(dbURL, "postgres://", "pgx5://", 1)

	return migrate.NewWithSourceInstance("iofs", src, dbURL)
}
