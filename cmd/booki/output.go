package main

import (
	"fmt"
	"io"

	"booki/internal/catalog"
	"booki/internal/identity"
)

// printBookLine writes the one-line listing form of a catalog record:
//
//	<short-id>  <title> by <author> (<pages> pages)
//
// id is the record being addressed: the book's own identifier in catalog
// listings, the membership's in shelf listings.
func printBookLine(out io.Writer, id string, book catalog.Book) {
	fmt.Fprintf(out, "%s  %s by %s (%s pages)\n",
		identity.Short(id), book.Title, book.Author, pageCount(book.PageCount))
}

func pageCount(raw string) string {
	if raw == "" {
		return "??"
	}
	return raw
}
