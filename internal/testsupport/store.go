package testsupport

import (
	"context"
	"testing"

	"booki/internal/catalog"
	"booki/internal/config"
)

// MustOpenStore opens a catalog.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("catalog.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// InsertBook adds a catalog record for tests using the provided store.
func InsertBook(t testing.TB, store *catalog.Store, fields catalog.BookFields) *catalog.Book {
	t.Helper()

	book, err := store.InsertBook(context.Background(), fields)
	if err != nil {
		t.Fatalf("store.InsertBook: %v", err)
	}
	return book
}

// CreateShelf adds a shelf for tests using the provided store.
func CreateShelf(t testing.TB, store *catalog.Store, name string) {
	t.Helper()

	if err := store.CreateShelf(context.Background(), name); err != nil {
		t.Fatalf("store.CreateShelf: %v", err)
	}
}

// Shelve places a book on a shelf for tests and returns the membership.
func Shelve(t testing.TB, store *catalog.Store, shelf, bookPrefix string) *catalog.Membership {
	t.Helper()

	member, err := store.AddToShelf(context.Background(), shelf, bookPrefix)
	if err != nil {
		t.Fatalf("store.AddToShelf: %v", err)
	}
	return member
}
