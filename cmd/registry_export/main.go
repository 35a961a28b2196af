package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"addressregistry/config"
	"addressregistry/internal/adapters/registry"
	snapshotadapter "addressregistry/internal/adapters/snapshot"
	"addressregistry/internal/domain/address"
	"addressregistry/internal/domain/snapshot"
)

// Entry is the JSON form of one registry entry
type Entry struct {
	Symbol string `json:"Symbol"`
	Value  string `json:"Value"`
	Kind   string `json:"Kind"`
}

// Export is the JSON document written next to the SQLite snapshot
type Export struct {
	SnapshotID string    `json:"SnapshotID"`
	CreatedAt  time.Time `json:"CreatedAt"`
	Entries    []Entry   `json:"Entries"`
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.Load()

	dbPath := flag.String("db", cfg.Snapshot.DBPath, "SQLite snapshot database path")
	jsonPath := flag.String("json", cfg.Snapshot.JSONPath, "JSON export path, empty to skip")
	flag.Parse()

	ctx := context.Background()

	if err := run(ctx, *dbPath, *jsonPath); err != nil {
		log.Fatalf("Export failed: %v", err)
	}
}

func run(ctx context.Context, dbPath, jsonPath string) error {
	reg, err := registry.NewMainnet()
	if err != nil {
		return fmt.Errorf("failed to build registry: %w", err)
	}

	for value, symbols := range reg.Duplicates() {
		log.Printf("Warning: symbols %v share address %s", symbols, value)
	}

	entries, err := reg.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list registry: %w", err)
	}

	snap := snapshot.NewSnapshot("", entries)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	repo, err := snapshotadapter.NewSQLiteRepository(dbPath)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.InitSchema(ctx); err != nil {
		return err
	}
	if err := repo.Save(ctx, snap); err != nil {
		return err
	}
	log.Printf("Saved snapshot %s with %d entries to %s", snap.ID, len(snap.Entries), dbPath)

	if jsonPath == "" {
		return nil
	}

	if err := writeJSON(jsonPath, snap); err != nil {
		return err
	}
	log.Printf("Successfully wrote %d entries to %s", len(snap.Entries), jsonPath)

	return nil
}

func writeJSON(path string, snap *snapshot.Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(toExport(snap)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

func toExport(snap *snapshot.Snapshot) Export {
	out := Export{
		SnapshotID: snap.ID,
		CreatedAt:  snap.CreatedAt,
		Entries:    make([]Entry, 0, len(snap.Entries)),
	}
	for _, e := range snap.Entries {
		out.Entries = append(out.Entries, toEntry(e))
	}
	return out
}

func toEntry(a address.Address) Entry {
	return Entry{Symbol: a.Symbol, Value: a.Value, Kind: string(a.Kind)}
}
