package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T, path string) *GormStore {
	t.Helper()
	store, err := Open("", path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return store
}

func TestGormStore_SchemaCreationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop_test.db")
	newTestStore(t, path)
	newTestStore(t, path)
}

func TestGormStore_AppendAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop_test.db")
	store := newTestStore(t, path)
	ctx := context.Background()
	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	first, err := store.Append(ctx, sampleFeatures(90), "rice", at)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	second, err := store.Append(ctx, sampleFeatures(40), "chickpea", at.Add(time.Minute))
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if second <= first {
		t.Fatalf("ids not increasing: %d then %d", first, second)
	}

	rows, err := store.Recent(ctx, 50)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].ID != second || rows[1].ID != first {
		t.Errorf("expected newest first, got ids [%d %d]", rows[0].ID, rows[1].ID)
	}
	if rows[0].PredictedCrop != "chickpea" {
		t.Errorf("crop mismatch: got %q", rows[0].PredictedCrop)
	}
	if rows[0].N != 40 || rows[0].Rainfall != 202.9 {
		t.Errorf("feature roundtrip mismatch: %+v", rows[0])
	}
	if rows[0].CreatedAt.Unix() != at.Add(time.Minute).Unix() {
		t.Errorf("timestamp mismatch: got %v", rows[0].CreatedAt)
	}
}

func TestGormStore_RowsSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crop_test.db")
	ctx := context.Background()

	store := newTestStore(t, path)
	if _, err := store.Append(ctx, sampleFeatures(90), "rice", time.Now()); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	reopened := newTestStore(t, path)
	rows, err := reopened.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(rows) != 1 || rows[0].PredictedCrop != "rice" {
		t.Fatalf("expected persisted row after reopen, got %v", rows)
	}
}
