package services

import (
	"testing"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIfEmpty(t *testing.T) {
	db := newTestDB(t)
	seedService := NewSeedService(repositories.NewProjectRepository(db))
	projectService := newProjectService(db)

	created, err := seedService.SeedIfEmpty()
	require.NoError(t, err)
	assert.Equal(t, len(sampleProjects), created)

	projects, err := projectService.ListProjects(ListOptions{Status: StatusFilterAll})
	require.NoError(t, err)
	require.Len(t, projects, len(sampleProjects))

	// The legacy-typed sample is stored verbatim but invisible to both
	// canonical type filters
	var legacy *models.Project
	for _, p := range projects {
		if p.Type == "analysis" {
			legacy = p
		}
	}
	require.NotNil(t, legacy, "seed data should include a legacy-typed project")

	vizProjects := FilterByType(projects, models.ProjectTypeVisualization)
	docProjects := FilterByType(projects, models.ProjectTypeDocument)
	for _, p := range append(vizProjects, docProjects...) {
		assert.NotEqual(t, legacy.ID, p.ID)
	}

	t.Run("Second run on a populated table is a no-op", func(t *testing.T) {
		created, err := seedService.SeedIfEmpty()
		require.NoError(t, err)
		assert.Zero(t, created)
	})
}

// The database bootstrap sequence: base migrations leave the legacy table
// shape, so the schema guard must run before seeding can write the full
// column set.
func TestSeedRequiresRepairedSchema(t *testing.T) {
	db := newLegacyTestDB(t)
	seedService := NewSeedService(repositories.NewProjectRepository(db))

	_, err := seedService.SeedIfEmpty()
	require.Error(t, err)
	assert.True(t, IsSchemaDriftError(err))

	_, err = newSchemaService(db).EnsureSchema()
	require.NoError(t, err)

	created, err := seedService.SeedIfEmpty()
	require.NoError(t, err)
	assert.Equal(t, len(sampleProjects), created)
}
