package helper

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// DatabaseConfiguration holds the Postgres connection parameters for
// the snapshot cache.
type DatabaseConfiguration struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	Schema   string
}

// NewDatabaseConfiguration reads the connection parameters from the
// environment, loading a .env file first if one exists.
func NewDatabaseConfiguration() (*DatabaseConfiguration, error) {
	// a missing .env file is fine, the variables may already be set
	_ = godotenv.Load()

	config := &DatabaseConfiguration{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Schema:   os.Getenv("DB_SCHEMA"),
	}
	if config.Schema == "" {
		config.Schema = "public"
	}

	for key, value := range map[string]string{
		"DB_HOST":     config.Host,
		"DB_PORT":     config.Port,
		"DB_USER":     config.User,
		"DB_PASSWORD": config.Password,
		"DB_NAME":     config.Name,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", key)
		}
	}

	return config, nil
}

// Database wraps a named sql.DB instance together with its logger.
type Database struct {
	Name     string
	Instance *sql.DB
	Logger   *slog.Logger
}

// NewDatabase opens and pings a Postgres connection. Connection
// failures are fatal because nothing in the cache layer can run
// without one.
func NewDatabase(name string, config *DatabaseConfiguration, logger *slog.Logger) *Database {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		config.User, config.Password, config.Host, config.Port, config.Name, config.Schema,
	)

	instance, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("error opening database connection: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := instance.PingContext(ctx); err != nil {
		log.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Connected to database", slog.String("name", name), slog.String("host", config.Host))

	return &Database{
		Name:     name,
		Instance: instance,
		Logger:   logger,
	}
}

// NewTestDatabase opens a database connection with a stdout logger.
func NewTestDatabase(config *DatabaseConfiguration) *Database {
	logger := slog.New(NewPrettyHandler(os.Stdout, PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{Level: slog.LevelWarn},
	}))
	return NewDatabase("test", config, logger)
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	if d.Instance != nil {
		return d.Instance.Close()
	}
	return nil
}
