package catalog_test

import (
	"context"
	"errors"
	"testing"

	"booki/internal/catalog"
	"booki/internal/testsupport"
)

func TestCreateShelfRejectsDuplicates(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	if err := store.CreateShelf(ctx, "read"); err != nil {
		t.Fatalf("CreateShelf: %v", err)
	}
	if err := store.CreateShelf(ctx, "read"); !errors.Is(err, catalog.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	// Shelf names are case-sensitive, so a different casing is a new shelf.
	if err := store.CreateShelf(ctx, "Read"); err != nil {
		t.Fatalf("CreateShelf with different case: %v", err)
	}
}

func TestAddToShelfUnknownTargets(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})

	if _, err := store.AddToShelf(ctx, "nope", book.Hash); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown shelf, got %v", err)
	}

	testsupport.CreateShelf(t, store, "read")
	missing := flipLastHexDigit(book.Hash)
	if _, err := store.AddToShelf(ctx, "read", missing); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown book, got %v", err)
	}
}

func TestAddToShelfAllowsDuplicateMemberships(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
	testsupport.CreateShelf(t, store, "read")

	first := testsupport.Shelve(t, store, "read", book.Hash)
	second := testsupport.Shelve(t, store, "read", book.Hash)
	if first.Hash == second.Hash {
		t.Fatal("duplicate shelvings must produce distinct memberships")
	}

	count, err := store.CountMemberships(context.Background(), "read")
	if err != nil {
		t.Fatalf("CountMemberships: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 memberships, got %d", count)
	}
}

func TestGetMembershipIsShelfScoped(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
	testsupport.CreateShelf(t, store, "read")
	testsupport.CreateShelf(t, store, "wishlist")
	member := testsupport.Shelve(t, store, "read", book.Hash)

	got, err := store.GetMembership(ctx, "read", member.Hash)
	if err != nil {
		t.Fatalf("GetMembership: %v", err)
	}
	if got.Book.Hash != book.Hash || got.ShelfName != "read" {
		t.Fatalf("unexpected membership: %+v", got)
	}

	// The same identifier does not resolve on another shelf.
	if _, err := store.GetMembership(ctx, "wishlist", member.Hash); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on other shelf, got %v", err)
	}
}

func TestRemoveFromShelfCascadesAttributeValues(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
	testsupport.CreateShelf(t, store, "read")
	member := testsupport.Shelve(t, store, "read", book.Hash)

	if _, err := store.ExtendShelf(ctx, "read", []string{"rating"}); err != nil {
		t.Fatalf("ExtendShelf: %v", err)
	}
	if err := store.ApplyAttributeEdits(ctx, member, map[string]string{"rating": "10"}); err != nil {
		t.Fatalf("ApplyAttributeEdits: %v", err)
	}

	removed, err := store.RemoveFromShelf(ctx, "read", member.Hash)
	if err != nil {
		t.Fatalf("RemoveFromShelf: %v", err)
	}
	if removed.Hash != member.Hash {
		t.Fatalf("removed wrong membership: %s", removed.Hash)
	}

	if _, err := store.GetMembership(ctx, "read", member.Hash); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected membership gone, got %v", err)
	}

	// A fresh membership for the same book starts with no values; nothing
	// orphaned survived the cascade.
	fresh := testsupport.Shelve(t, store, "read", book.Hash)
	values, err := store.AttributeValuesFor(ctx, fresh)
	if err != nil {
		t.Fatalf("AttributeValuesFor: %v", err)
	}
	for _, value := range values {
		if value.Set {
			t.Fatalf("expected no stored values on fresh membership, found %+v", value)
		}
	}
}

func TestRemoveFromShelfUnknownMembership(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	testsupport.CreateShelf(t, store, "read")
	if _, err := store.RemoveFromShelf(context.Background(), "read", "abcdef"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestShelvesSummaryOrderedByName(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
	testsupport.CreateShelf(t, store, "wishlist")
	testsupport.CreateShelf(t, store, "read")
	testsupport.Shelve(t, store, "read", book.Hash)
	testsupport.Shelve(t, store, "read", book.Hash)

	shelves, err := store.Shelves(context.Background())
	if err != nil {
		t.Fatalf("Shelves: %v", err)
	}
	if len(shelves) != 2 {
		t.Fatalf("expected 2 shelves, got %d", len(shelves))
	}
	if shelves[0].Name != "read" || shelves[0].Books != 2 {
		t.Fatalf("unexpected first summary: %+v", shelves[0])
	}
	if shelves[1].Name != "wishlist" || shelves[1].Books != 0 {
		t.Fatalf("unexpected second summary: %+v", shelves[1])
	}
}
