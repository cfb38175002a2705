package catalog

import (
	"context"
	"fmt"
)

// ShelfAttributes returns the named shelf's attribute schema in declaration
// order. An empty slice means the shelf carries no extra fields.
func (s *Store) ShelfAttributes(ctx context.Context, shelfName string) ([]Attribute, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return nil, err
	}
	return attributesForShelf(ctx, s.db, shelfID)
}

// ExtendShelf appends new attributes to a shelf's schema. Names already
// present are skipped rather than rejected, so extension is idempotent per
// name. The returned slice holds the names actually added, in input order.
func (s *Store) ExtendShelf(ctx context.Context, shelfName string, names []string) ([]string, error) {
	shelfID, err := s.shelfID(ctx, shelfName)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin extend tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := attributesForShelf(ctx, tx, shelfID)
	if err != nil {
		return nil, err
	}
	present := make(map[string]struct{}, len(existing))
	for _, attr := range existing {
		present[attr.Name] = struct{}{}
	}

	var added []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := present[name]; ok {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO shelf_attributes (shelf_id, name) VALUES (?, ?)`, shelfID, name); err != nil {
			return nil, wrapWriteError("extend shelf", err)
		}
		present[name] = struct{}{}
		added = append(added, name)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit extend: %w", err)
	}
	return added, nil
}

func attributesForShelf(ctx context.Context, q execer, shelfID int64) ([]Attribute, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, shelf_id, name FROM shelf_attributes WHERE shelf_id = ? ORDER BY id`, shelfID)
	if err != nil {
		return nil, fmt.Errorf("list attributes: %w", err)
	}
	defer rows.Close()

	var attrs []Attribute
	for rows.Next() {
		var attr Attribute
		if err := rows.Scan(&attr.ID, &attr.ShelfID, &attr.Name); err != nil {
			return nil, fmt.Errorf("scan attribute: %w", err)
		}
		attrs = append(attrs, attr)
	}
	return attrs, rows.Err()
}
