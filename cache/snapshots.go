// Package cache persists raw downloaded table payloads in Postgres so
// the knowledge-base client can serve repeat queries without touching
// the network.
package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/regnetkit/regnet/helper"
	"github.com/regnetkit/regnet/model"
	loadSql "github.com/regnetkit/regnet/sql"
)

// SnapshotsDBHandlerFunctions defines the interface for snapshot
// database operations.
type SnapshotsDBHandlerFunctions interface {
	InsertSnapshot(snapshot *model.Snapshot) error
	SelectSnapshot(queryKind, resource string, organism int) (*model.Snapshot, error)
	DeleteSnapshot(id uuid.UUID) error
	PurgeOlderThan(age time.Duration) (int, error)
}

// SnapshotsDBHandler handles snapshot-related database operations
type SnapshotsDBHandler struct {
	db *helper.Database
}

// NewSnapshotsDBHandler creates a new snapshots database handler.
// It initializes the database connection and loads snapshot-related SQL
// functions. If force is true, it will reload the SQL functions even if
// they already exist.
func NewSnapshotsDBHandler(db *helper.Database, force bool) (*SnapshotsDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	snapshotsDbHandler := &SnapshotsDBHandler{
		db: db,
	}

	err := loadSql.LoadSnapshotsSql(snapshotsDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load snapshots sql", err)
	}

	err = snapshotsDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized SnapshotsDBHandler")

	return snapshotsDbHandler, nil
}

// CreateTable creates the 'snapshots' table in the database.
// If the table already exists, it does not create it again.
func (h *SnapshotsDBHandler) CreateTable() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := h.db.Instance.ExecContext(ctx, `SELECT init_snapshots();`)
	if err != nil {
		log.Panicf("error initializing snapshots table: %#v", err)
	}

	h.db.Logger.Info("Checked/created table snapshots")

	return nil
}

// InsertSnapshot inserts a snapshot, replacing any previous payload for
// the same (query kind, resource, organism) key.
func (h *SnapshotsDBHandler) InsertSnapshot(snapshot *model.Snapshot) error {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM insert_snapshot($1, $2, $3, $4)`,
		snapshot.QueryKind,
		snapshot.Resource,
		snapshot.Organism,
		snapshot.Payload,
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.QueryKind,
		&snapshot.Resource,
		&snapshot.Organism,
		&snapshot.Payload,
		&snapshot.FetchedAt,
	)
	if err != nil {
		return helper.NewError("scan", err)
	}

	return nil
}

// SelectSnapshot retrieves a snapshot by its key. A missing snapshot is
// reported as sql.ErrNoRows.
func (h *SnapshotsDBHandler) SelectSnapshot(queryKind, resource string, organism int) (*model.Snapshot, error) {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_snapshot($1, $2, $3)`,
		queryKind,
		resource,
		organism,
	)

	snapshot := &model.Snapshot{}

	err := row.Scan(
		&snapshot.ID,
		&snapshot.QueryKind,
		&snapshot.Resource,
		&snapshot.Organism,
		&snapshot.Payload,
		&snapshot.FetchedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return snapshot, nil
}

// DeleteSnapshot removes a snapshot by ID
func (h *SnapshotsDBHandler) DeleteSnapshot(id uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_snapshot($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("delete", err)
	}

	return nil
}

// PurgeOlderThan removes all snapshots fetched before now minus age and
// returns how many were removed.
func (h *SnapshotsDBHandler) PurgeOlderThan(age time.Duration) (int, error) {
	var purged int
	err := h.db.Instance.QueryRow(
		`SELECT purge_snapshots_older_than($1::interval)`,
		fmt.Sprintf("%f seconds", age.Seconds()),
	).Scan(&purged)
	if err != nil {
		return 0, helper.NewError("purge", err)
	}

	return purged, nil
}

// IsNotFound reports whether err means the snapshot does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
