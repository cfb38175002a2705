package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"booki/internal/identity"
)

const bookColumns = "id, hash, isbn, title, author, page_count"

// InsertBook allocates an identifier and persists a new catalog record.
// When the skip-duplicates policy is enabled, a book whose fields all match
// an existing record is rejected with ErrAlreadyExists.
func (s *Store) InsertBook(ctx context.Context, fields BookFields) (*Book, error) {
	if s.skipDuplicates {
		var existing string
		err := s.db.QueryRowContext(ctx,
			`SELECT hash FROM books WHERE isbn = ? AND title = ? AND author = ? AND page_count = ? LIMIT 1`,
			fields.ISBN, fields.Title, fields.Author, fields.PageCount,
		).Scan(&existing)
		switch {
		case err == nil:
			return nil, fmt.Errorf("book %s: %w", identity.Short(existing), ErrAlreadyExists)
		case errors.Is(err, sql.ErrNoRows):
		default:
			return nil, fmt.Errorf("check duplicate book: %w", err)
		}
	}

	hash := identity.Allocate(fields.ISBN, fields.Title, fields.Author, fields.PageCount)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO books (hash, isbn, title, author, page_count) VALUES (?, ?, ?, ?, ?)`,
		hash, fields.ISBN, fields.Title, fields.Author, fields.PageCount,
	)
	if err != nil {
		return nil, wrapWriteError("insert book", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Book{ID: id, Hash: hash, BookFields: fields}, nil
}

// GetBook resolves an identifier prefix against the global catalog.
func (s *Store) GetBook(ctx context.Context, prefix string) (*Book, error) {
	return resolveBook(ctx, s.db, prefix)
}

// ListBooks returns every catalog record in canonical browsing order.
func (s *Store) ListBooks(ctx context.Context) ([]Book, error) {
	return s.SearchBooks(ctx, nil)
}

func resolveBook(ctx context.Context, q execer, prefix string) (*Book, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	rows, err := q.QueryContext(ctx,
		`SELECT `+bookColumns+` FROM books WHERE hash LIKE ? ESCAPE '\' LIMIT 2`,
		likePrefixPattern(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("resolve book: %w", err)
	}
	defer rows.Close()

	var matches []Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve book: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("book %q: %w", prefix, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("book %q: %w", prefix, ErrAmbiguous)
	}
}

func scanBook(scanner interface{ Scan(dest ...any) error }) (*Book, error) {
	var book Book
	if err := scanner.Scan(&book.ID, &book.Hash, &book.ISBN, &book.Title, &book.Author, &book.PageCount); err != nil {
		return nil, fmt.Errorf("scan book: %w", err)
	}
	return &book, nil
}

// likePrefixPattern builds a LIKE pattern matching identifiers that start
// with prefix. Metacharacters are escaped even though valid prefixes are
// hex-only, so raw user input stays safe here too.
func likePrefixPattern(prefix string) string {
	return escapeLike(prefix) + "%"
}

func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
