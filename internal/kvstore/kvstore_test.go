package kvstore

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/hammamikhairi/chefiq/internal/domain"
	"github.com/hammamikhairi/chefiq/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.LevelOff, io.Discard)
}

func runKVContract(t *testing.T, kv domain.KV) {
	t.Helper()
	ctx := context.Background()

	// Missing key.
	_, ok, err := kv.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatalf("missing key reported present")
	}

	// Round trip.
	if err := kv.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || got != "v1" {
		t.Fatalf("get = %q, ok=%v, err=%v", got, ok, err)
	}

	// Overwrite.
	if err := kv.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = kv.Get(ctx, "k")
	if got != "v2" {
		t.Fatalf("overwrite lost: %q", got)
	}

	// Delete, twice (second is a no-op).
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("deleted key still present")
	}
	if err := kv.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestMemoryContract(t *testing.T) {
	runKVContract(t, NewMemory(testLogger()))
}

func TestSQLiteContract(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"), testLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	runKVContract(t, db)
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	db, err := OpenSQLite(path, testLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Set(ctx, "name", "Chef"); err != nil {
		t.Fatalf("set: %v", err)
	}
	db.Close()

	db, err = OpenSQLite(path, testLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer db.Close()
	got, ok, err := db.Get(ctx, "name")
	if err != nil || !ok || got != "Chef" {
		t.Fatalf("value lost across opens: %q, ok=%v, err=%v", got, ok, err)
	}
}

func TestReadJSON(t *testing.T) {
	kv := NewMemory(testLogger())
	ctx := context.Background()

	type payload struct {
		N int `json:"n"`
	}

	// Missing key leaves the default untouched.
	v := payload{N: 7}
	found, err := ReadJSON(ctx, kv, "k", &v)
	if err != nil || found {
		t.Fatalf("missing key: found=%v err=%v", found, err)
	}
	if v.N != 7 {
		t.Fatalf("default clobbered: %+v", v)
	}

	// Corrupt payload reads as absent, not as an error.
	kv.Set(ctx, "k", "{{{")
	found, err = ReadJSON(ctx, kv, "k", &v)
	if err != nil {
		t.Fatalf("corrupt payload surfaced error: %v", err)
	}
	if found || v.N != 7 {
		t.Fatalf("corrupt payload should leave default: found=%v %+v", found, v)
	}

	// Valid payload round trip.
	if err := WriteJSON(ctx, kv, "k", payload{N: 42}); err != nil {
		t.Fatalf("write: %v", err)
	}
	found, err = ReadJSON(ctx, kv, "k", &v)
	if err != nil || !found || v.N != 42 {
		t.Fatalf("round trip: found=%v err=%v %+v", found, err, v)
	}
}
