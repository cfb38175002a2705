package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"booki/internal/identity"
)

// CreateShelf persists a new, empty shelf. Shelf names are case-sensitive
// and unique.
func (s *Store) CreateShelf(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("create shelf: %w: name is empty", ErrBadQuery)
	}
	if _, err := s.db.ExecContext(ctx, `INSERT INTO shelves (name) VALUES (?)`, name); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return fmt.Errorf("shelf %q: %w", name, ErrAlreadyExists)
		}
		return fmt.Errorf("create shelf: %w", err)
	}
	return nil
}

// AddToShelf resolves a book by global prefix and records a new membership
// on the named shelf. Duplicates are allowed: adding the same book twice
// produces two distinct memberships.
func (s *Store) AddToShelf(ctx context.Context, shelfName, bookPrefix string) (*Membership, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return nil, err
	}
	book, err := s.GetBook(ctx, bookPrefix)
	if err != nil {
		return nil, err
	}

	hash := identity.Allocate(shelfName, book.Hash)
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO shelf_books (hash, book_id, shelf_id) VALUES (?, ?, ?)`,
		hash, book.ID, shelfID,
	)
	if err != nil {
		return nil, wrapWriteError("add to shelf", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Membership{
		ID:        id,
		Hash:      hash,
		ShelfID:   shelfID,
		ShelfName: shelfName,
		Book:      *book,
	}, nil
}

// RemoveFromShelf resolves a membership by shelf-scoped prefix, deletes its
// attribute values, then the membership row, in one transaction.
func (s *Store) RemoveFromShelf(ctx context.Context, shelfName, memberPrefix string) (*Membership, error) {
	member, err := s.GetMembership(ctx, shelfName, memberPrefix)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin remove tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM shelf_book_attribute WHERE shelf_book_id = ?`, member.ID); err != nil {
		return nil, fmt.Errorf("delete attribute values: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM shelf_books WHERE id = ?`, member.ID); err != nil {
		return nil, fmt.Errorf("delete membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit remove: %w", err)
	}
	return member, nil
}

// GetMembership resolves an identifier prefix against one shelf's
// memberships.
func (s *Store) GetMembership(ctx context.Context, shelfName, prefix string) (*Membership, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return nil, err
	}

	prefix = strings.ToLower(strings.TrimSpace(prefix))
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+membershipColumns+`
         FROM shelf_books sb JOIN books b ON b.id = sb.book_id
         WHERE sb.shelf_id = ? AND sb.hash LIKE ? ESCAPE '\' LIMIT 2`,
		shelfID, likePrefixPattern(prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("resolve membership: %w", err)
	}
	defer rows.Close()

	var matches []Membership
	for rows.Next() {
		member, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		member.ShelfName = shelfName
		matches = append(matches, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve membership: %w", err)
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("membership %s.%s: %w", shelfName, prefix, ErrNotFound)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("membership %s.%s: %w", shelfName, prefix, ErrAmbiguous)
	}
}

// ListShelf returns the named shelf's memberships joined to their books, in
// canonical browsing order.
func (s *Store) ListShelf(ctx context.Context, shelfName string) ([]Membership, error) {
	return s.SearchShelf(ctx, shelfName, nil)
}

// CountMemberships returns the number of memberships on the named shelf.
func (s *Store) CountMemberships(ctx context.Context, shelfName string) (int, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return 0, err
	}
	var count int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM shelf_books WHERE shelf_id = ?`, shelfID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count memberships: %w", err)
	}
	return count, nil
}

// Shelves returns every shelf with its membership count, ordered by name.
func (s *Store) Shelves(ctx context.Context) ([]ShelfSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT s.name, COUNT(sb.id)
         FROM shelves s LEFT JOIN shelf_books sb ON sb.shelf_id = s.id
         GROUP BY s.id ORDER BY s.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	defer rows.Close()

	var shelves []ShelfSummary
	for rows.Next() {
		var summary ShelfSummary
		if err := rows.Scan(&summary.Name, &summary.Books); err != nil {
			return nil, fmt.Errorf("scan shelf: %w", err)
		}
		shelves = append(shelves, summary)
	}
	return shelves, rows.Err()
}

func (s *Store) shelfID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `SELECT id FROM shelves WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("shelf %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("look up shelf: %w", err)
	}
	return id, nil
}

const membershipColumns = "sb.id, sb.hash, sb.shelf_id, b.id, b.hash, b.isbn, b.title, b.author, b.page_count"

func scanMembership(scanner interface{ Scan(dest ...any) error }) (*Membership, error) {
	var member Membership
	if err := scanner.Scan(
		&member.ID, &member.Hash, &member.ShelfID,
		&member.Book.ID, &member.Book.Hash, &member.Book.ISBN,
		&member.Book.Title, &member.Book.Author, &member.Book.PageCount,
	); err != nil {
		return nil, fmt.Errorf("scan membership: %w", err)
	}
	return &member, nil
}
