package helper

import (
	"testing"

	"stayledger/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "ledger"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "stayledger"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://ledger:p%40ss%2Fword@db:5432/test_stayledger?sslmode=disable&x-migrations-table=schema_migrations",
		DSN(cfg))
}

func TestRunUnknownAction(t *testing.T) {
	err := Run(&config.Config{}, "sideways")

	assert.ErrorIs(t, err, ErrUnknownAction)
}
