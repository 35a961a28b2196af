package snapshot

import (
	"context"
	"errors"
	"time"

	"addressregistry/internal/domain/address"

	"github.com/google/uuid"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

type Repository interface {
	Save(ctx context.Context, s *Snapshot) error
	Latest(ctx context.Context) (*Snapshot, error)
}

// Snapshot is a point-in-time export of the registry contents
type Snapshot struct {
	ID        string
	Entries   []address.Address
	CreatedAt time.Time
}

func NewSnapshot(id string, entries []address.Address) *Snapshot {
	if id == "" {
		id = uuid.New().String()
	}

	copied := make([]address.Address, len(entries))
	copy(copied, entries)

	return &Snapshot{
		ID:        id,
		Entries:   copied,
		CreatedAt: time.Now().UTC(),
	}
}
