package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"stayledger/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

var ErrUnknownAction = errors.New("unknown migration action")

type action func(mig *migrate.Migrate, args []string) error

var actions = map[string]action{
	"up":      func(mig *migrate.Migrate, _ []string) error { return mig.Up() },
	"down":    func(mig *migrate.Migrate, _ []string) error { return mig.Steps(-1) },
	"step-up": func(mig *migrate.Migrate, _ []string) error { return mig.Steps(1) },
	"drop":    func(mig *migrate.Migrate, _ []string) error { return mig.Down() },
	"version": func(mig *migrate.Migrate, _ []string) error {
		version, dirty, err := mig.Version()
		if err != nil {
			return err
		}

		log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current schema version")

		return nil
	},
	// force clears the dirty flag after a failed migration was repaired by hand.
	"force": func(mig *migrate.Migrate, args []string) error {
		if len(args) == 0 {
			return errors.New("force needs a target version")
		}

		version, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}

		return mig.Force(version)
	},
}

// DSN builds the golang-migrate connection url for the write pool.
func DSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	name := pg.Write.Name
	if pg.Prefix != "" {
		name = pg.Prefix + name
	}

	query := url.Values{}
	query.Set("sslmode", pg.Write.SSLMode)
	query.Set("x-migrations-table", pg.MigrationTable)

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(pg.Write.Username, pg.Write.Password),
		Host:     net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		Path:     "/" + name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// Run executes one migration action (up, down, step-up, drop, version, force N).
func Run(cfg *config.Config, name string, args ...string) error {
	act, ok := actions[name]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownAction, name)
	}

	mig, err := migrate.New("file://"+cfg.DB.Postgres.MigrationPath, DSN(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := act(mig, args); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", name, err)
	}

	log.Info().Str("action", name).Msg("Database migration finished")

	return nil
}
