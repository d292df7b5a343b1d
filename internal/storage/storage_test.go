package storage

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/desertthunder/mvx/internal/shared"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

// exercise runs the contract tests every Store implementation must satisfy.
func exercise(t *testing.T, store Store) {
	t.Run("Get Missing Key", func(t *testing.T) {
		_, err := store.Get("absent")
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})

	t.Run("Set Then Get", func(t *testing.T) {
		if err := store.Set("TMDb-Key", "secret"); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		value, err := store.Get("TMDb-Key")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != "secret" {
			t.Errorf("expected %q, got %q", "secret", value)
		}
	})

	t.Run("Set Overwrites", func(t *testing.T) {
		store.Set("userEmail", "first@example.com")
		store.Set("userEmail", "second@example.com")

		value, err := store.Get("userEmail")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != "second@example.com" {
			t.Errorf("expected latest value, got %q", value)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		store.Set("kakaoToken", "token")
		if err := store.Remove("kakaoToken"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		if _, err := store.Get("kakaoToken"); !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound after remove, got %v", err)
		}
	})

	t.Run("Remove Missing Key Is A No-Op", func(t *testing.T) {
		if err := store.Remove("never-set"); err != nil {
			t.Errorf("expected nil error, got %v", err)
		}
	})
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	db := setupTestDB(t)
	exercise(t, NewSQLiteStore(db))

	t.Run("Persists Across Connections To The Same Table", func(t *testing.T) {
		first := NewSQLiteStore(db)
		first.Set("movieWishlist", "[]")

		second := NewSQLiteStore(db)
		value, err := second.Get("movieWishlist")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if value != "[]" {
			t.Errorf("expected %q, got %q", "[]", value)
		}
	})
}
