package catalog

import (
	"context"
	"fmt"
)

// AttributeValuesFor returns, for every attribute defined on the
// membership's shelf, the membership's current value. Attributes with no
// stored row come back with Set=false, distinct from a stored empty string.
func (s *Store) AttributeValuesFor(ctx context.Context, member *Membership) ([]AttributeValue, error) {
	attrs, err := attributesForShelf(ctx, s.db, member.ShelfID)
	if err != nil {
		return nil, err
	}
	stored, err := storedValues(ctx, s.db, member.ID)
	if err != nil {
		return nil, err
	}

	values := make([]AttributeValue, 0, len(attrs))
	for _, attr := range attrs {
		value, ok := stored[attr.ID]
		values = append(values, AttributeValue{Name: attr.Name, Value: value, Set: ok})
	}
	return values, nil
}

// ApplyAttributeEdits reconciles edited values against stored rows inside
// one transaction. For each attribute on the membership's shelf:
//
//   - a new value of at most one character clears the stored row, when one
//     exists;
//   - otherwise a value that differs from the stored one (including
//     previously unset) is inserted or updated;
//   - an unchanged value, or an attribute missing from edits, is left alone.
//
// The one-character clearing threshold guards against a stray newline from
// the editor round trip and is load-bearing for existing databases. See
// the reconciliation note in DESIGN.md before tightening it.
func (s *Store) ApplyAttributeEdits(ctx context.Context, member *Membership, edits map[string]string) error {
	attrs, err := attributesForShelf(ctx, s.db, member.ShelfID)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin edit tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stored, err := storedValues(ctx, tx, member.ID)
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		next, ok := edits[attr.Name]
		if !ok {
			continue
		}
		current, has := stored[attr.ID]

		switch {
		case len(next) <= 1 && has:
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM shelf_book_attribute WHERE shelf_book_id = ? AND shelf_attribute_id = ?`,
				member.ID, attr.ID); err != nil {
				return fmt.Errorf("clear attribute %q: %w", attr.Name, err)
			}
		case !has && next == "":
			// Nothing stored and nothing meaningful supplied.
		case !has || next != current:
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO shelf_book_attribute (shelf_book_id, shelf_attribute_id, value)
                 VALUES (?, ?, ?)
                 ON CONFLICT(shelf_book_id, shelf_attribute_id) DO UPDATE SET value = excluded.value`,
				member.ID, attr.ID, next); err != nil {
				return wrapWriteError(fmt.Sprintf("set attribute %q", attr.Name), err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit edits: %w", err)
	}
	return nil
}

func storedValues(ctx context.Context, q execer, memberID int64) (map[int64]string, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT shelf_attribute_id, value FROM shelf_book_attribute WHERE shelf_book_id = ?`, memberID)
	if err != nil {
		return nil, fmt.Errorf("load attribute values: %w", err)
	}
	defer rows.Close()

	values := make(map[int64]string)
	for rows.Next() {
		var attrID int64
		var value string
		if err := rows.Scan(&attrID, &value); err != nil {
			return nil, fmt.Errorf("scan attribute value: %w", err)
		}
		values[attrID] = value
	}
	return values, rows.Err()
}
