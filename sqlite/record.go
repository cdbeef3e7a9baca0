package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raingarden/plantfill"
)

// Compile-time interface verification.
var _ plantfill.RecordStore = (*RecordStore)(nil)

// RecordStore implements plantfill.RecordStore using SQLite.
type RecordStore struct {
	db *DB
}

// NewRecordStore creates a new RecordStore.
func NewRecordStore(db *DB) *RecordStore {
	return &RecordStore{db: db}
}

// nameKey is the case-insensitive identity of a botanical name.
func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Upsert merges records into the master list in one transaction.
func (s *RecordStore) Upsert(ctx context.Context, records []*plantfill.Record) (inserted, updated int, err error) {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, rec := range records {
		name := rec.Name()
		if name == "" {
			continue
		}

		var id string
		err = tx.QueryRowContext(ctx, `SELECT id FROM plants WHERE name_key = ?`, nameKey(name)).Scan(&id)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id = uuid.New().String()
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO plants (id, botanical_name, name_key, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?)
			`, id, name, nameKey(name), now, now); err != nil {
				return 0, 0, err
			}
			inserted++
		case err != nil:
			return 0, 0, err
		default:
			if _, err = tx.ExecContext(ctx, `UPDATE plants SET updated_at = ? WHERE id = ?`, now, id); err != nil {
				return 0, 0, err
			}
			updated++
		}

		for _, f := range rec.Fields() {
			v := rec.Get(f)
			if f == plantfill.FieldBotanicalName || strings.TrimSpace(v) == "" {
				continue
			}
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO plant_values (plant_id, field, value) VALUES (?, ?, ?)
				ON CONFLICT (plant_id, field) DO UPDATE SET value = excluded.value
			`, id, string(f), v); err != nil {
				return 0, 0, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}

// FindByName returns the master record for a botanical name.
func (s *RecordStore) FindByName(ctx context.Context, botanicalName string) (*plantfill.Record, error) {
	var id, name string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, botanical_name FROM plants WHERE name_key = ?
	`, nameKey(botanicalName)).Scan(&id, &name)
	if err == sql.ErrNoRows {
		return nil, plantfill.Errorf(plantfill.ENOTFOUND, "plant %q not found", botanicalName)
	}
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, `WHERE p.id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, plantfill.Errorf(plantfill.ENOTFOUND, "plant %q not found", name)
	}
	return records[0], nil
}

// FindAll returns every master record ordered by botanical name.
func (s *RecordStore) FindAll(ctx context.Context) ([]*plantfill.Record, error) {
	return s.load(ctx, "")
}

// load reads plants matching where together with their values.
func (s *RecordStore) load(ctx context.Context, where string, args ...any) ([]*plantfill.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT p.id, p.botanical_name, v.field, v.value
		FROM plants p
		LEFT JOIN plant_values v ON v.plant_id = p.id
		`+where+`
		ORDER BY p.botanical_name COLLATE NOCASE, p.id
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*plantfill.Record
	var lastID string
	var values map[plantfill.Field]string
	flush := func() {
		if values != nil {
			records = append(records, plantfill.NewRecord(values))
		}
	}
	for rows.Next() {
		var id, name string
		var field, value sql.NullString
		if err := rows.Scan(&id, &name, &field, &value); err != nil {
			return nil, err
		}
		if id != lastID {
			flush()
			lastID = id
			values = map[plantfill.Field]string{plantfill.FieldBotanicalName: name}
		}
		if field.Valid {
			values[plantfill.Field(field.String)] = value.String
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}
