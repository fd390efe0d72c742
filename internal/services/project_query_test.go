package services

import (
	"testing"
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterByType(t *testing.T) {
	projects := []*models.Project{
		{ID: "1", Type: "visualization"},
		{ID: "2", Type: "可视化"},
		{ID: "3", Type: "Document"},
	}

	t.Run("Visualization matches Chinese label", func(t *testing.T) {
		filtered := FilterByType(projects, "visualization")

		assert.Len(t, filtered, 2)
		assert.Equal(t, "1", filtered[0].ID)
		assert.Equal(t, "2", filtered[1].ID)
	})

	t.Run("Document matches legacy capitalization", func(t *testing.T) {
		filtered := FilterByType(projects, "document")

		assert.Len(t, filtered, 1)
		assert.Equal(t, "3", filtered[0].ID)
	})

	t.Run("All keeps everything", func(t *testing.T) {
		assert.Len(t, FilterByType(projects, "all"), 3)
		assert.Len(t, FilterByType(projects, ""), 3)
	})

	t.Run("Empty stored type never matches", func(t *testing.T) {
		withEmpty := append(projects, &models.Project{ID: "4", Type: ""})
		assert.Len(t, FilterByType(withEmpty, "visualization"), 2)
	})

	t.Run("Legacy analysis type matches no canonical filter", func(t *testing.T) {
		legacy := []*models.Project{{ID: "5", Type: "analysis"}}
		assert.Empty(t, FilterByType(legacy, "visualization"))
		assert.Empty(t, FilterByType(legacy, "document"))
	})

	t.Run("Unknown requested type falls back to substring match", func(t *testing.T) {
		filtered := FilterByType(projects, "图文")
		assert.Empty(t, filtered)
	})
}

func TestFilterByTag(t *testing.T) {
	projects := []*models.Project{
		{ID: "1", Tags: []string{"Power BI", "电商数据"}},
		{ID: "2", Tags: []string{"Python"}},
		{ID: "3", Tags: []string{}},
	}

	t.Run("Exact tag membership", func(t *testing.T) {
		filtered := FilterByTag(projects, "Python")

		assert.Len(t, filtered, 1)
		assert.Equal(t, "2", filtered[0].ID)
	})

	t.Run("No substring matching on tags", func(t *testing.T) {
		assert.Empty(t, FilterByTag(projects, "Power"))
	})

	t.Run("Sentinels keep everything", func(t *testing.T) {
		assert.Len(t, FilterByTag(projects, "all"), 3)
		assert.Len(t, FilterByTag(projects, "全部"), 3)
		assert.Len(t, FilterByTag(projects, ""), 3)
	})
}

func TestSortProjects(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Created at descending", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "old", CreatedAt: base.Add(-time.Hour)},
			{ID: "new", CreatedAt: base},
		}

		sorted := SortProjects(projects, SortByCreatedAt, "desc")

		assert.Equal(t, "new", sorted[0].ID)
		assert.Equal(t, "old", sorted[1].ID)
	})

	t.Run("Created at ascending", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "new", CreatedAt: base},
			{ID: "old", CreatedAt: base.Add(-time.Hour)},
		}

		sorted := SortProjects(projects, SortByCreatedAt, "asc")

		assert.Equal(t, "old", sorted[0].ID)
	})

	t.Run("Stable on equal keys", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "first", CreatedAt: base},
			{ID: "second", CreatedAt: base},
		}

		sorted := SortProjects(projects, SortByCreatedAt, "desc")

		assert.Equal(t, "first", sorted[0].ID)
		assert.Equal(t, "second", sorted[1].ID)
	})

	t.Run("Zero updated at falls back to created at", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "a", CreatedAt: base.Add(-time.Hour)},
			{ID: "b", CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(-2 * time.Hour)},
		}

		sorted := SortProjects(projects, SortByUpdatedAt, "desc")

		// a has no updated_at, so its created_at wins over b's older updated_at
		assert.Equal(t, "a", sorted[0].ID)
	})

	t.Run("Publish date sort", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "jan", Date: "2024-01-20"},
			{ID: "mar", Date: "2024-03-01"},
			{ID: "feb", Date: "2024-02-15"},
		}

		sorted := SortProjects(projects, SortByDate, "desc")

		assert.Equal(t, []string{"mar", "feb", "jan"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	})

	t.Run("Unparseable dates keep input order", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "dirty", Date: "not-a-date"},
			{ID: "clean", Date: "2024-02-15"},
			{ID: "empty", Date: ""},
		}

		sorted := SortProjects(projects, SortByDate, "desc")

		assert.Equal(t, "dirty", sorted[0].ID)
		assert.Equal(t, "clean", sorted[1].ID)
		assert.Equal(t, "empty", sorted[2].ID)
	})

	t.Run("Does not mutate input", func(t *testing.T) {
		projects := []*models.Project{
			{ID: "old", CreatedAt: base.Add(-time.Hour)},
			{ID: "new", CreatedAt: base},
		}

		SortProjects(projects, SortByCreatedAt, "desc")

		assert.Equal(t, "old", projects[0].ID)
	})
}
