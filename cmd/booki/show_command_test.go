package main

import (
	"errors"
	"testing"

	"booki/internal/catalog"
	"booki/internal/identity"
	"booki/internal/testsupport"
)

func TestShowCatalogBook(t *testing.T) {
	env := setupCLITestEnv(t)

	var bookHash string
	env.seed(t, func(store *catalog.Store) {
		book := testsupport.InsertBook(t, store, catalog.BookFields{
			ISBN: "9780441013593", Title: "Dune", Author: "Frank Herbert", PageCount: "604",
		})
		bookHash = book.Hash
	})

	out, _, err := runCLI(t, env.configPath, "show", identity.Short(bookHash))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, identity.Short(bookHash))
	requireContains(t, out, bookHash)
	requireContains(t, out, "Dune")
	requireContains(t, out, "Frank Herbert")
	requireContains(t, out, "9780441013593")
	requireContains(t, out, "604")
}

func TestShowMembershipIncludesAttributes(t *testing.T) {
	env := setupCLITestEnv(t)

	var memberHash string
	env.seed(t, func(store *catalog.Store) {
		book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
		testsupport.CreateShelf(t, store, "read")
		member := testsupport.Shelve(t, store, "read", book.Hash)
		memberHash = member.Hash
	})
	_, _, err := runCLI(t, env.configPath, "shelf", "extend", "read", "rating")
	if err != nil {
		t.Fatalf("shelf extend: %v", err)
	}

	out, _, err := runCLI(t, env.configPath, "show", "read."+identity.Short(memberHash))
	if err != nil {
		t.Fatalf("show membership: %v", err)
	}
	requireContains(t, out, "read")
	requireContains(t, out, "Rating")
	requireContains(t, out, "(unset)")
}

func TestShowBadAndMissingReferences(t *testing.T) {
	env := setupCLITestEnv(t)

	var bookHash string
	env.seed(t, func(store *catalog.Store) {
		book := testsupport.InsertBook(t, store, catalog.BookFields{Title: "Dune", Author: "Frank Herbert"})
		bookHash = book.Hash
	})

	if _, _, err := runCLI(t, env.configPath, "show", "not-a-ref!"); !errors.Is(err, catalog.ErrBadQuery) {
		t.Fatalf("malformed reference should fail with ErrBadQuery, got %v", err)
	}

	// A full-length prefix differing in its last digit cannot match.
	missing := bookHash[:len(bookHash)-1]
	if bookHash[len(bookHash)-1] == '0' {
		missing += "1"
	} else {
		missing += "0"
	}
	if _, _, err := runCLI(t, env.configPath, "show", missing); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("missing record should fail with ErrNotFound, got %v", err)
	}
}
