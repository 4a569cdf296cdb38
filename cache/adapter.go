package cache

import (
	"log/slog"

	"github.com/regnetkit/regnet/core/organism"
	"github.com/regnetkit/regnet/model"
	"github.com/regnetkit/regnet/omnipath"
)

// Store adapts the snapshots handler to the knowledge-base client's
// SnapshotCache interface. Read errors degrade to a cache miss.
type Store struct {
	handler SnapshotsDBHandlerFunctions
	log     *slog.Logger
}

// NewStore wraps a snapshots handler for use as an omnipath.SnapshotCache.
func NewStore(handler SnapshotsDBHandlerFunctions, log *slog.Logger) *Store {
	return &Store{handler: handler, log: log}
}

// Get returns the cached payload for a key, false on miss.
func (s *Store) Get(kind omnipath.QueryKind, resource string, org organism.ID) ([]byte, bool) {
	snapshot, err := s.handler.SelectSnapshot(kind.String(), resource, int(org))
	if err != nil {
		if !IsNotFound(err) {
			s.log.Warn("Snapshot cache read failed",
				slog.String("kind", kind.String()),
				slog.String("resource", resource),
				slog.String("error", err.Error()))
		}
		return nil, false
	}
	return snapshot.Payload, true
}

// Put stores the payload for a key, replacing any previous one.
func (s *Store) Put(kind omnipath.QueryKind, resource string, org organism.ID, payload []byte) error {
	snapshot := &model.Snapshot{
		QueryKind: kind.String(),
		Resource:  resource,
		Organism:  int(org),
		Payload:   payload,
	}
	return s.handler.InsertSnapshot(snapshot)
}
