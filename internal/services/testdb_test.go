package services

import (
	"database/sql"
	"testing"

	"github.com/datazhang-hub/portfolio/internal/repositories"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newSchemaService(db *sql.DB) *SchemaService {
	return NewSchemaService(repositories.NewSchemaRepository(db))
}

func newProjectService(db *sql.DB) *ProjectService {
	return NewProjectService(repositories.NewProjectRepository(db), newSchemaService(db))
}

func newContactService(db *sql.DB) *ContactService {
	return NewContactService(repositories.NewContactRepository(db))
}

// newLegacyTestDB opens an in-memory database carrying the legacy table
// shape, i.e. the projects table before any of the guard-managed columns
// existed. Contacts are created in full since that table never drifted.
func newLegacyTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// A second pool connection would see a different empty memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			type TEXT NOT NULL,
			date TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE contacts (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			company TEXT NOT NULL DEFAULT '',
			channel TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'unread',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	require.NoError(t, err)

	return db
}

// newTestDB opens an in-memory database with the fully repaired schema
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := newLegacyTestDB(t)
	_, err := newSchemaService(db).EnsureSchema()
	require.NoError(t, err)
	return db
}
