package repositories

import (
	"database/sql"
	"fmt"
)

// SchemaRepository gives the schema guard raw access to the live table
// structure. It never caches: every call re-reads the authoritative catalog,
// since another process may have altered the schema in the meantime.
type SchemaRepository struct {
	db *sql.DB
}

func NewSchemaRepository(db *sql.DB) *SchemaRepository {
	return &SchemaRepository{
		db: db,
	}
}

// TableExists reports whether a table with the given name exists
func (r *SchemaRepository) TableExists(table string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM sqlite_master
		WHERE type = 'table' AND name = $1
	`

	var count int
	if err := r.db.QueryRow(query, table).Scan(&count); err != nil {
		return false, err
	}

	return count > 0, nil
}

// TableColumns returns the column names of the given table in definition order
func (r *SchemaRepository) TableColumns(table string) ([]string, error) {
	rows, err := r.db.Query(fmt.Sprintf("PRAGMA table_info(%q)", table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var (
			cid         int
			name, ctype string
			notNull     int
			dfltValue   sql.NullString
			pk          int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dfltValue, &pk); err != nil {
			return nil, err
		}
		columns = append(columns, name)
	}

	return columns, rows.Err()
}

// AddColumn issues a single additive alteration. SQLite forbids dropping a
// column's data through ADD COLUMN, so this can never destroy existing rows.
func (r *SchemaRepository) AddColumn(table, definition string) error {
	_, err := r.db.Exec(fmt.Sprintf("ALTER TABLE %q ADD COLUMN %s", table, definition))
	return err
}

// Exec runs a backfill statement after a column addition
func (r *SchemaRepository) Exec(query string, args ...interface{}) error {
	_, err := r.db.Exec(query, args...)
	return err
}
