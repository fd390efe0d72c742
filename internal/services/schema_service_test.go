package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	t.Run("Adds all missing columns once", func(t *testing.T) {
		db := newLegacyTestDB(t)
		service := newSchemaService(db)

		added, err := service.EnsureSchema()
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"status", "updated_at", "analysis_depth", "industry", "content", "featured", "demo_url"}, added)
	})

	t.Run("Second run adds nothing", func(t *testing.T) {
		db := newLegacyTestDB(t)
		service := newSchemaService(db)

		_, err := service.EnsureSchema()
		require.NoError(t, err)

		added, err := service.EnsureSchema()
		require.NoError(t, err)
		assert.Empty(t, added)
	})

	t.Run("Backfills updated_at from created_at", func(t *testing.T) {
		db := newLegacyTestDB(t)
		_, err := db.Exec(`
			INSERT INTO projects (id, title, image_url, type, date, created_at)
			VALUES ('p1', 'Legacy', '/img.jpg', 'visualization', '2024-01-01', '2024-01-01 08:00:00')
		`)
		require.NoError(t, err)

		_, err = newSchemaService(db).EnsureSchema()
		require.NoError(t, err)

		var updatedAt string
		require.NoError(t, db.QueryRow(`SELECT updated_at FROM projects WHERE id = 'p1'`).Scan(&updatedAt))
		assert.Equal(t, "2024-01-01 08:00:00", updatedAt)

		var status string
		require.NoError(t, db.QueryRow(`SELECT status FROM projects WHERE id = 'p1'`).Scan(&status))
		assert.Equal(t, "offline", status)
	})

	t.Run("Fails when table is missing", func(t *testing.T) {
		db := newLegacyTestDB(t)
		_, err := db.Exec(`DROP TABLE projects`)
		require.NoError(t, err)

		_, err = newSchemaService(db).EnsureSchema()
		assert.Error(t, err)
	})
}

func TestSchemaStatus(t *testing.T) {
	db := newLegacyTestDB(t)
	service := newSchemaService(db)

	status := service.Status()

	assert.True(t, status.Connected)
	assert.True(t, status.ProjectsTable)
	assert.True(t, status.ContactsTable)
	assert.Contains(t, status.Columns, "title")
	assert.NotContains(t, status.Columns, "analysis_depth")
}

func TestIsSchemaDriftError(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		drift bool
	}{
		{"Nil error", nil, false},
		{"SQLite missing column on update", errors.New("no such column: analysis_depth"), true},
		{"SQLite missing column on insert", errors.New("table projects has no column named status"), true},
		{"Postgres wording", errors.New(`column "featured" of relation "projects" does not exist`), true},
		{"Unrelated column error", errors.New("NOT NULL constraint failed: projects.title"), false},
		{"Connection failure", errors.New("unable to open database file"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.drift, IsSchemaDriftError(tc.err))
		})
	}
}
