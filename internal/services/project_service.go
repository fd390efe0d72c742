package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/repositories"
	"github.com/datazhang-hub/portfolio/pkg/logger"
)

type ProjectService struct {
	projectRepo   *repositories.ProjectRepository
	schemaService *SchemaService
}

func NewProjectService(projectRepo *repositories.ProjectRepository, schemaService *SchemaService) *ProjectService {
	return &ProjectService{
		projectRepo:   projectRepo,
		schemaService: schemaService,
	}
}

// ProjectUpdate carries a partial field set for an update. Nil fields are
// preserved from the stored record, never nulled.
type ProjectUpdate struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	ImageURL      *string  `json:"image_url"`
	Tags          []string `json:"tags"`
	DemoURL       *string  `json:"demo_url"`
	Type          *string  `json:"type"`
	Date          *string  `json:"date"`
	Featured      *bool    `json:"featured"`
	Content       *string  `json:"content"`
	Status        *string  `json:"status"`
	AnalysisDepth *string  `json:"analysis_depth"`
	Industry      *string  `json:"industry"`
}

// CreateProject validates the new project, applies defaults and stores it
func (s *ProjectService) CreateProject(project *models.Project) error {
	project.Title = strings.TrimSpace(project.Title)

	if err := project.Validate(); err != nil {
		return err
	}

	if project.Status == "" {
		project.Status = models.ProjectStatusOffline
	} else if !models.IsValidProjectStatus(project.Status) {
		return models.ErrProjectStatusInvalid
	}
	if project.AnalysisDepth == "" {
		project.AnalysisDepth = models.AnalysisDepthExploratory
	} else if !models.IsValidAnalysisDepth(project.AnalysisDepth) {
		return models.ErrAnalysisDepthInvalid
	}
	if project.Industry == "" {
		project.Industry = models.DefaultIndustry
	}

	// IDs are always server generated, a caller-supplied one is discarded
	project.ID = ""

	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	return s.projectRepo.Create(project)
}

// GetProjectByID retrieves a project by ID
func (s *ProjectService) GetProjectByID(id string) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "project", ID: id}
		}
		return nil, err
	}
	return project, nil
}

// UpdateProject merges the partial field set over the stored record and
// persists the result. Runs under the schema repair-retry protocol.
func (s *ProjectService) UpdateProject(id string, update *ProjectUpdate) (*models.Project, error) {
	var updated *models.Project

	err := s.withSchemaRetry("update project", func() error {
		existing, err := s.projectRepo.GetByID(id)
		if err != nil {
			return err
		}

		merged := *existing
		if update.Title != nil {
			merged.Title = strings.TrimSpace(*update.Title)
		}
		if update.Description != nil {
			merged.Description = *update.Description
		}
		if update.ImageURL != nil {
			merged.ImageURL = *update.ImageURL
		}
		if update.Tags != nil {
			merged.Tags = update.Tags
		}
		if update.DemoURL != nil {
			merged.DemoURL = *update.DemoURL
		}
		if update.Type != nil {
			// Legacy rows may hold other type values, but a type cannot be
			// written anymore unless it is one of the two canonical ones
			if !models.IsValidProjectType(*update.Type) {
				return models.ErrProjectTypeInvalid
			}
			merged.Type = *update.Type
		}
		if update.Date != nil {
			merged.Date = *update.Date
		}
		if update.Featured != nil {
			merged.Featured = *update.Featured
		}
		if update.Content != nil {
			merged.Content = *update.Content
		}
		if update.Status != nil {
			if !models.IsValidProjectStatus(*update.Status) {
				return models.ErrProjectStatusInvalid
			}
			merged.Status = *update.Status
		}
		if update.AnalysisDepth != nil {
			if !models.IsValidAnalysisDepth(*update.AnalysisDepth) {
				return models.ErrAnalysisDepthInvalid
			}
			merged.AnalysisDepth = *update.AnalysisDepth
		}
		if update.Industry != nil {
			merged.Industry = *update.Industry
		}

		if merged.Title == "" {
			return models.ErrProjectTitleRequired
		}

		merged.UpdatedAt = time.Now()

		if err := s.projectRepo.Update(&merged); err != nil {
			return err
		}

		updated = &merged
		return nil
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &models.NotFoundError{Entity: "project", ID: id}
		}
		return nil, err
	}

	return updated, nil
}

// DeleteProject hard-removes a project
func (s *ProjectService) DeleteProject(id string) error {
	if err := s.projectRepo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.NotFoundError{Entity: "project", ID: id}
		}
		return err
	}
	return nil
}

// SetProjectStatus moves a project between online and offline. When the
// stored status already matches, the call succeeds without writing, so
// updated_at is not bumped. Runs under the schema repair-retry protocol.
func (s *ProjectService) SetProjectStatus(id, status string) (bool, error) {
	if !models.IsValidProjectStatus(status) {
		return false, models.ErrProjectStatusInvalid
	}

	var changed bool
	err := s.withSchemaRetry("set project status", func() error {
		project, err := s.projectRepo.GetByID(id)
		if err != nil {
			return err
		}

		if project.Status == status {
			changed = false
			return nil
		}

		updated, err := s.projectRepo.UpdateStatus(id, status, time.Now())
		if err != nil {
			return err
		}

		changed = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, &models.NotFoundError{Entity: "project", ID: id}
		}
		return false, err
	}

	return changed, nil
}

// SetProjectStatusBatch applies SetProjectStatus semantics to every ID and
// returns how many projects changed. Unknown IDs are tolerated; the batch
// fails only when storage itself fails. Runs under the repair-retry protocol.
func (s *ProjectService) SetProjectStatusBatch(ids []string, status string) (int, error) {
	if !models.IsValidProjectStatus(status) {
		return 0, models.ErrProjectStatusInvalid
	}

	var count int
	err := s.withSchemaRetry("batch set project status", func() error {
		n, err := s.projectRepo.UpdateStatusBatch(ids, status, time.Now())
		count = n
		return err
	})

	return count, err
}

// ListProjects returns the filtered, sorted project listing
func (s *ProjectService) ListProjects(opts ListOptions) ([]*models.Project, error) {
	var projects []*models.Project
	var err error

	switch opts.Status {
	case "", StatusFilterAll:
		projects, err = s.projectRepo.GetAll()
	default:
		if !models.IsValidProjectStatus(opts.Status) {
			return nil, models.ErrProjectStatusInvalid
		}
		projects, err = s.projectRepo.GetByStatus(opts.Status)
	}
	if err != nil {
		return nil, err
	}

	projects = FilterByType(projects, opts.Type)
	projects = FilterByTag(projects, opts.Tag)
	return SortProjects(projects, opts.SortBy, opts.Order), nil
}

// GetFeaturedProjects returns all featured online projects
func (s *ProjectService) GetFeaturedProjects() ([]*models.Project, error) {
	return s.projectRepo.GetFeatured()
}

// SetAllFeatured marks every project as featured
func (s *ProjectService) SetAllFeatured() (int, error) {
	return s.projectRepo.SetAllFeatured()
}

// ListTags returns the distinct tags of online projects, first-seen order
func (s *ProjectService) ListTags() ([]string, error) {
	projects, err := s.projectRepo.GetByStatus(models.ProjectStatusOnline)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := []string{}
	for _, project := range projects {
		for _, tag := range project.Tags {
			if tag != "" && !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	return tags, nil
}

// ListIndustries returns the distinct industries of online projects
func (s *ProjectService) ListIndustries() ([]string, error) {
	return s.distinctField(func(p *models.Project) string { return p.Industry })
}

// ListAnalysisDepths returns the distinct analysis depths of online projects
func (s *ProjectService) ListAnalysisDepths() ([]string, error) {
	return s.distinctField(func(p *models.Project) string { return p.AnalysisDepth })
}

func (s *ProjectService) distinctField(field func(*models.Project) string) ([]string, error) {
	projects, err := s.projectRepo.GetByStatus(models.ProjectStatusOnline)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	values := []string{}
	for _, project := range projects {
		value := field(project)
		if value != "" && !seen[value] {
			seen[value] = true
			values = append(values, value)
		}
	}
	return values, nil
}

// withSchemaRetry runs op once and, if it fails with an error that looks like
// schema drift, repairs the table and retries exactly once. Any further
// failure surfaces the original error marked with the repair attempt.
// Validation and not-found errors pass through untouched.
func (s *ProjectService) withSchemaRetry(operation string, op func() error) error {
	err := op()
	if err == nil || !IsSchemaDriftError(err) {
		return err
	}

	logger.WithError(err).Warnf("Schema drift detected during %s, attempting repair", operation)

	added, repairErr := s.schemaService.EnsureSchema()
	if repairErr != nil {
		logger.WithError(repairErr).Errorf("Schema repair failed during %s", operation)
		return &models.StructureError{Err: err, RepairAttempted: true}
	}

	logger.Infof("Schema repair added %d column(s), retrying %s", len(added), operation)

	if retryErr := op(); retryErr != nil {
		return &models.StructureError{Err: retryErr, RepairAttempted: true}
	}

	return nil
}
