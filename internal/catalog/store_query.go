package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Match describes how a search term is anchored within a field value.
type Match int

const (
	// MatchSubstring matches the term anywhere in the field.
	MatchSubstring Match = iota
	// MatchPrefix anchors the term to the start of the field (leading ^).
	MatchPrefix
	// MatchSuffix anchors the term to the end of the field (trailing $).
	MatchSuffix
	// MatchExact requires field equality (both anchors).
	MatchExact
)

// Predicate narrows a listing by one field. Predicates combine with AND and
// match case-insensitively using the database's own collation.
type Predicate struct {
	Field string
	Term  string
	Match Match
}

// searchFields are the only fields predicates may name.
var searchFields = map[string]struct{}{
	"title":  {},
	"author": {},
}

// ParsePredicates turns alternating field/term arguments into predicates.
// A leading ^ anchors the term to the start of the field, a trailing $ to
// the end; both mean exact match. An odd argument count or an unknown field
// is ErrBadQuery.
func ParsePredicates(args []string) ([]Predicate, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: need field/term pairs, got %d arguments", ErrBadQuery, len(args))
	}

	var predicates []Predicate
	for i := 0; i < len(args); i += 2 {
		field := args[i]
		if _, ok := searchFields[field]; !ok {
			return nil, fmt.Errorf("%w: field %q (want title or author)", ErrBadQuery, field)
		}

		term := args[i+1]
		match := MatchSubstring
		switch {
		case strings.HasPrefix(term, "^") && strings.HasSuffix(term, "$") && len(term) >= 2:
			match = MatchExact
			term = term[1 : len(term)-1]
		case strings.HasPrefix(term, "^"):
			match = MatchPrefix
			term = term[1:]
		case strings.HasSuffix(term, "$"):
			match = MatchSuffix
			term = term[:len(term)-1]
		}

		predicates = append(predicates, Predicate{Field: field, Term: term, Match: match})
	}
	return predicates, nil
}

// SearchBooks returns the catalog records satisfying every predicate, in
// canonical browsing order. With no predicates it lists the whole catalog.
func (s *Store) SearchBooks(ctx context.Context, predicates []Predicate) ([]Book, error) {
	where, args, err := predicateClauses(predicates, "")
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + bookColumns + ` FROM books`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	defer rows.Close()

	var books []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}

	sortBooks(books)
	return books, nil
}

// SearchShelf returns the named shelf's memberships whose books satisfy
// every predicate, in canonical browsing order of the books.
func (s *Store) SearchShelf(ctx context.Context, shelfName string, predicates []Predicate) ([]Membership, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return nil, err
	}

	where, args, err := predicateClauses(predicates, "b.")
	if err != nil {
		return nil, err
	}
	where = append([]string{"sb.shelf_id = ?"}, where...)
	args = append([]any{shelfID}, args...)

	query := `SELECT ` + membershipColumns + `
        FROM shelf_books sb JOIN books b ON b.id = sb.book_id
        WHERE ` + strings.Join(where, " AND ")

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search shelf: %w", err)
	}
	defer rows.Close()

	var members []Membership
	for rows.Next() {
		member, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		member.ShelfName = shelfName
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search shelf: %w", err)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return bookLess(members[i].Book, members[j].Book)
	})
	return members, nil
}

// predicateClauses renders predicates as SQL conditions. SQLite's LIKE is
// case-insensitive, which keeps matching on the store's native case folding
// rather than reimplementing it per caller.
func predicateClauses(predicates []Predicate, columnPrefix string) ([]string, []any, error) {
	var clauses []string
	var args []any
	for _, p := range predicates {
		if _, ok := searchFields[p.Field]; !ok {
			return nil, nil, fmt.Errorf("%w: field %q", ErrBadQuery, p.Field)
		}

		escaped := escapeLike(p.Term)
		var pattern string
		switch p.Match {
		case MatchExact:
			pattern = escaped
		case MatchPrefix:
			pattern = escaped + "%"
		case MatchSuffix:
			pattern = "%" + escaped
		default:
			pattern = "%" + escaped + "%"
		}

		clauses = append(clauses, columnPrefix+p.Field+` LIKE ? ESCAPE '\'`)
		args = append(args, pattern)
	}
	return clauses, args, nil
}

// sortBooks applies the canonical browsing order: title ascending
// (case-sensitive), then the author's surname for identical titles. The
// sort is stable so equal keys keep their stored order.
func sortBooks(books []Book) {
	sort.SliceStable(books, func(i, j int) bool {
		return bookLess(books[i], books[j])
	})
}

func bookLess(a, b Book) bool {
	if a.Title != b.Title {
		return a.Title < b.Title
	}
	return surname(a.Author) < surname(b.Author)
}

// surname extracts the sort key for an author field: the last
// whitespace-separated token of the first listed author.
func surname(author string) string {
	if idx := strings.IndexByte(author, ','); idx >= 0 {
		author = author[:idx]
	}
	fields := strings.Fields(author)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
