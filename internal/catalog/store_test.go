package catalog_test

import (
	"context"
	"errors"
	"testing"

	"booki/internal/catalog"
	"booki/internal/testsupport"
)

func TestOpenIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)

	store, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := catalog.Open(cfg)
	if err != nil {
		t.Fatalf("reopen against initialized database: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetBook(context.Background(), book.Hash)
	if err != nil {
		t.Fatalf("GetBook after reopen: %v", err)
	}
	if got.Title != "Dune" {
		t.Fatalf("unexpected book after reopen: %+v", got)
	}
}

func TestInsertBookAssignsIdentifier(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	fields := catalog.BookFields{ISBN: "9780441013593", Title: "Dune", Author: "Frank Herbert", PageCount: "412"}
	book, err := store.InsertBook(context.Background(), fields)
	if err != nil {
		t.Fatalf("InsertBook: %v", err)
	}
	if book.ID == 0 {
		t.Fatal("expected row id to be assigned")
	}
	if len(book.Hash) != 64 {
		t.Fatalf("expected full identifier, got %q", book.Hash)
	}

	again, err := store.InsertBook(context.Background(), fields)
	if err != nil {
		t.Fatalf("second InsertBook: %v", err)
	}
	if again.Hash == book.Hash {
		t.Fatal("identical fields must still produce distinct identifiers")
	}
}

func TestInsertBookSkipDuplicatesPolicy(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSkipDuplicates())
	store := testsupport.MustOpenStore(t, cfg)

	fields := catalog.BookFields{Title: "Dune", Author: "Frank Herbert"}
	if _, err := store.InsertBook(context.Background(), fields); err != nil {
		t.Fatalf("InsertBook: %v", err)
	}
	_, err := store.InsertBook(context.Background(), fields)
	if !errors.Is(err, catalog.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists under skip-duplicates policy, got %v", err)
	}

	// A single differing field is a different book again.
	fields.PageCount = "412"
	if _, err := store.InsertBook(context.Background(), fields); err != nil {
		t.Fatalf("InsertBook with differing fields: %v", err)
	}
}

func TestGetBookPrefixResolution(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})

	// The full identifier always resolves to its own record.
	got, err := store.GetBook(ctx, book.Hash)
	if err != nil {
		t.Fatalf("GetBook(full hash): %v", err)
	}
	if got.Hash != book.Hash {
		t.Fatalf("resolved wrong record: %s", got.Hash)
	}

	// Any unique leading prefix resolves too; with one book stored even a
	// single character is unique.
	got, err = store.GetBook(ctx, book.Hash[:1])
	if err != nil {
		t.Fatalf("GetBook(one-char prefix): %v", err)
	}
	if got.Hash != book.Hash {
		t.Fatalf("prefix resolved wrong record: %s", got.Hash)
	}

	// A prefix that differs from the stored identifier matches nothing.
	missing := flipLastHexDigit(book.Hash)
	if _, err := store.GetBook(ctx, missing); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// With two records stored, the empty prefix matches both.
	testsupport.InsertBook(t, store, catalog.BookFields{Title: "Foundation", Author: "Isaac Asimov"})
	if _, err := store.GetBook(ctx, ""); !errors.Is(err, catalog.ErrAmbiguous) {
		t.Fatalf("expected ErrAmbiguous, got %v", err)
	}
}

func flipLastHexDigit(hash string) string {
	last := hash[len(hash)-1]
	replacement := byte('0')
	if last == '0' {
		replacement = '1'
	}
	return hash[:len(hash)-1] + string(replacement)
}
