package services

import (
	"sort"
	"strings"
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
)

// Listing filter sentinels
const (
	StatusFilterAll = "all"
	TypeFilterAll   = "all"
	TagFilterAll    = "all"
	// TagFilterAllLegacy is the label the original site's frontend still sends
	TagFilterAllLegacy = "全部"
)

// Sort keys
const (
	SortByCreatedAt = "created_at"
	SortByUpdatedAt = "updated_at"
	SortByDate      = "date"
)

// ListOptions selects and orders a project listing
type ListOptions struct {
	Status string
	Type   string
	Tag    string
	SortBy string
	Order  string
}

// typeSynonyms maps a canonical project type to the labels legacy rows may
// carry, including the Chinese frontend labels. Matching is by substring on
// the lower-cased stored type. Kept as-is from the original data model: the
// substring match can over-match on partial overlaps, which is accepted.
var typeSynonyms = map[string][]string{
	models.ProjectTypeVisualization: {"visualization", "可视化"},
	models.ProjectTypeDocument:      {"document", "图文案例", "文档"},
}

// FilterByType keeps projects whose stored type matches any synonym of the
// requested canonical type. Passing "" or "all" keeps everything.
func FilterByType(projects []*models.Project, requested string) []*models.Project {
	if requested == "" || strings.EqualFold(requested, TypeFilterAll) {
		return projects
	}

	synonyms, ok := typeSynonyms[strings.ToLower(requested)]
	if !ok {
		synonyms = []string{strings.ToLower(requested)}
	}

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		if project.Type == "" {
			continue
		}
		storedType := strings.ToLower(project.Type)
		for _, synonym := range synonyms {
			if strings.Contains(storedType, strings.ToLower(synonym)) {
				filtered = append(filtered, project)
				break
			}
		}
	}
	return filtered
}

// FilterByTag keeps projects whose tag list contains the exact tag
func FilterByTag(projects []*models.Project, tag string) []*models.Project {
	if tag == "" || tag == TagFilterAll || tag == TagFilterAllLegacy {
		return projects
	}

	filtered := make([]*models.Project, 0, len(projects))
	for _, project := range projects {
		for _, t := range project.Tags {
			if t == tag {
				filtered = append(filtered, project)
				break
			}
		}
	}
	return filtered
}

// SortProjects returns a fresh slice ordered by the requested key. Audit
// timestamps sort as instants (a zero updated_at falls back to created_at),
// anything else sorts by the publish date. The sort is stable and entries
// with missing or unparseable keys compare equal, so dirty data never makes
// sorting fail. Order defaults to descending, newest first.
func SortProjects(projects []*models.Project, sortBy, order string) []*models.Project {
	sorted := make([]*models.Project, len(projects))
	copy(sorted, projects)

	asc := order == "asc"

	var key func(*models.Project) time.Time
	switch sortBy {
	case SortByCreatedAt:
		key = func(p *models.Project) time.Time { return p.CreatedAt }
	case SortByUpdatedAt:
		key = func(p *models.Project) time.Time {
			if p.UpdatedAt.IsZero() {
				return p.CreatedAt
			}
			return p.UpdatedAt
		}
	default:
		key = func(p *models.Project) time.Time { return parseDate(p.Date) }
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := key(sorted[i]), key(sorted[j])
		if a.IsZero() || b.IsZero() {
			return false
		}
		if asc {
			return a.Before(b)
		}
		return a.After(b)
	})

	return sorted
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
