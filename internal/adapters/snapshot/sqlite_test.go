package snapshot

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"

	"addressregistry/internal/domain/address"
	"addressregistry/internal/domain/snapshot"
)

// setupTestDB creates a temporary file-based SQLite database with schema for testing
func setupTestDB(t *testing.T) (*SQLiteRepository, func()) {
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")

	repo, err := NewSQLiteRepository(dbPath)
	if err != nil {
		t.Fatalf("Failed to create repository: %v", err)
	}

	if err := repo.InitSchema(context.Background()); err != nil {
		repo.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	cleanup := func() {
		repo.Close()
	}

	return repo, cleanup
}

var testEntries = []address.Address{
	{Symbol: "USDC", Value: "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48", Kind: address.KindToken},
	{Symbol: "UNISWAP_V2_ROUTER", Value: "0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D", Kind: address.KindRouter},
	{Symbol: "DAI", Value: "0x6B175474E89094C44Da98b954EedeAC495271d0F", Kind: address.KindToken},
}

func TestSQLiteRepository_Latest_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Latest(context.Background())
	if !errors.Is(err, snapshot.ErrSnapshotNotFound) {
		t.Errorf("Latest() error = %v, want ErrSnapshotNotFound", err)
	}
}

func TestSQLiteRepository_SaveAndLatest(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("round trip keeps order", func(t *testing.T) {
		s := snapshot.NewSnapshot("snap-1", testEntries)
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("Latest() error = %v", err)
		}
		if got.ID != "snap-1" {
			t.Errorf("Latest() ID = %v, want snap-1", got.ID)
		}
		if !reflect.DeepEqual(got.Entries, testEntries) {
			t.Errorf("Latest() Entries = %s, want %s", spew.Sdump(got.Entries), spew.Sdump(testEntries))
		}
		if !got.CreatedAt.Equal(s.CreatedAt) {
			t.Errorf("Latest() CreatedAt = %v, want %v", got.CreatedAt, s.CreatedAt)
		}
	})

	t.Run("newer snapshot wins", func(t *testing.T) {
		s := snapshot.NewSnapshot("", testEntries[:1])
		s.CreatedAt = time.Now().Add(time.Hour).UTC()
		if err := repo.Save(ctx, s); err != nil {
			t.Fatalf("Save() error = %v", err)
		}

		got, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("Latest() error = %v", err)
		}
		if got.ID != s.ID {
			t.Errorf("Latest() ID = %v, want %v", got.ID, s.ID)
		}
		if len(got.Entries) != 1 {
			t.Errorf("Latest() returned %d entries, want 1", len(got.Entries))
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		if err := repo.Save(ctx, snapshot.NewSnapshot("snap-1", testEntries)); err == nil {
			t.Error("Save() with duplicate id should fail")
		}
	})
}
