package cache

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/regnetkit/regnet/core/organism"
	"github.com/regnetkit/regnet/model"
	"github.com/regnetkit/regnet/omnipath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotsDBHandler(t *testing.T) {
	database := initDB(t)

	t.Run("Valid call NewSnapshotsDBHandler", func(t *testing.T) {
		handler, err := NewSnapshotsDBHandler(database, true)
		assert.NoError(t, err, "Expected NewSnapshotsDBHandler to not return an error")
		require.NotNil(t, handler, "Expected NewSnapshotsDBHandler to return a non-nil instance")
		require.NotNil(t, handler.db, "Expected NewSnapshotsDBHandler to have a non-nil database instance")
	})

	t.Run("Invalid call NewSnapshotsDBHandler with nil database", func(t *testing.T) {
		_, err := NewSnapshotsDBHandler(nil, false)
		assert.Error(t, err, "Expected error when creating SnapshotsDBHandler with nil database")
		assert.Contains(t, err.Error(), "database connection is nil", "Expected specific error message for nil database connection")
	})
}

func TestSnapshotInsertSelect(t *testing.T) {
	database := initDB(t)

	handler, err := NewSnapshotsDBHandler(database, true)
	require.NoError(t, err)

	t.Run("Insert snapshot", func(t *testing.T) {
		snapshot := &model.Snapshot{
			QueryKind: "interactions",
			Resource:  "dorothea",
			Organism:  9606,
			Payload:   []byte("source\ttarget\n"),
		}

		err := handler.InsertSnapshot(snapshot)
		assert.NoError(t, err, "Expected Insert to not return an error")
		assert.NotEqual(t, snapshot.ID.String(), "00000000-0000-0000-0000-000000000000", "Expected a generated snapshot ID")
		assert.WithinDuration(t, time.Now(), snapshot.FetchedAt, time.Minute)
	})

	t.Run("Select snapshot by key", func(t *testing.T) {
		snapshot, err := handler.SelectSnapshot("interactions", "dorothea", 9606)
		require.NoError(t, err)
		assert.Equal(t, []byte("source\ttarget\n"), snapshot.Payload)
	})

	t.Run("Insert replaces the payload for an existing key", func(t *testing.T) {
		snapshot := &model.Snapshot{
			QueryKind: "interactions",
			Resource:  "dorothea",
			Organism:  9606,
			Payload:   []byte("updated"),
		}

		err := handler.InsertSnapshot(snapshot)
		require.NoError(t, err)

		stored, err := handler.SelectSnapshot("interactions", "dorothea", 9606)
		require.NoError(t, err)
		assert.Equal(t, []byte("updated"), stored.Payload)
	})

	t.Run("Select missing snapshot returns not found", func(t *testing.T) {
		_, err := handler.SelectSnapshot("interactions", "nonexistent", 9606)
		require.Error(t, err)
		assert.True(t, IsNotFound(err), "Expected a missing snapshot to report as not found")
	})
}

func TestSnapshotDeletePurge(t *testing.T) {
	database := initDB(t)

	handler, err := NewSnapshotsDBHandler(database, true)
	require.NoError(t, err)

	snapshot := &model.Snapshot{
		QueryKind: "annotations",
		Resource:  "progeny",
		Organism:  10090,
		Payload:   []byte("pathway\tgenesymbol\n"),
	}
	require.NoError(t, handler.InsertSnapshot(snapshot))

	t.Run("Delete snapshot", func(t *testing.T) {
		err := handler.DeleteSnapshot(snapshot.ID)
		assert.NoError(t, err)

		_, err = handler.SelectSnapshot("annotations", "progeny", 10090)
		assert.True(t, IsNotFound(err))
	})

	t.Run("Purge removes only old snapshots", func(t *testing.T) {
		fresh := &model.Snapshot{
			QueryKind: "enzsub",
			Resource:  "enzsub",
			Organism:  9606,
			Payload:   []byte("enzyme\tsubstrate\n"),
		}
		require.NoError(t, handler.InsertSnapshot(fresh))

		purged, err := handler.PurgeOlderThan(time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0, purged, "Expected fresh snapshots to survive the purge")

		purged, err = handler.PurgeOlderThan(0)
		require.NoError(t, err)
		assert.Equal(t, 1, purged, "Expected a zero age to purge everything")
	})
}

func TestStoreAdapter(t *testing.T) {
	database := initDB(t)

	handler, err := NewSnapshotsDBHandler(database, true)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	store := NewStore(handler, logger)

	t.Run("Miss on an empty store", func(t *testing.T) {
		_, ok := store.Get(omnipath.QueryInteractions, "collectri", organism.Human)
		assert.False(t, ok)
	})

	t.Run("Put then Get round-trips the payload", func(t *testing.T) {
		err := store.Put(omnipath.QueryInteractions, "collectri", organism.Human, []byte("payload"))
		require.NoError(t, err)

		payload, ok := store.Get(omnipath.QueryInteractions, "collectri", organism.Human)
		require.True(t, ok)
		assert.Equal(t, []byte("payload"), payload)
	})
}
