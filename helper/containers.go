package helper

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDBName     = "regnet_test"
	testDBUser     = "postgres"
	testDBPassword = "postgres"
)

// MustStartPostgresContainer starts a throwaway Postgres container for
// tests and returns its terminate function and mapped port.
func MustStartPostgresContainer() (func(ctx context.Context) error, string, error) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, "", err
	}

	mappedPort, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return pgContainer.Terminate, "", err
	}

	return pgContainer.Terminate, mappedPort.Port(), nil
}

// SetTestDatabaseConfigEnvs points the database configuration at the
// test container for the duration of one test.
func SetTestDatabaseConfigEnvs(t *testing.T, port string) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", port)
	t.Setenv("DB_USER", testDBUser)
	t.Setenv("DB_PASSWORD", testDBPassword)
	t.Setenv("DB_NAME", testDBName)
	t.Setenv("DB_SCHEMA", "public")
}
