package repositories

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/google/uuid"
)

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{
		db: db,
	}
}

const projectColumns = `id, title, description, image_url, tags, demo_url, type, date,
		featured, content, status, analysis_depth, industry, created_at, updated_at`

// Create inserts a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	query := `
		INSERT INTO projects (id, title, description, image_url, tags, demo_url, type, date,
			featured, content, status, analysis_depth, industry, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	if project.ID == "" {
		project.ID = uuid.New().String()
	}

	tags, err := json.Marshal(project.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(query,
		project.ID,
		project.Title,
		project.Description,
		project.ImageURL,
		string(tags),
		project.DemoURL,
		project.Type,
		project.Date,
		project.Featured,
		project.Content,
		project.Status,
		project.AnalysisDepth,
		project.Industry,
		project.CreatedAt,
		project.UpdatedAt,
	)

	return err
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id string) (*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE id = $1
	`

	return scanProject(r.db.QueryRow(query, id))
}

// GetAll retrieves all projects, newest first
func (r *ProjectRepository) GetAll() ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		ORDER BY created_at DESC
	`

	return r.queryProjects(query)
}

// GetByStatus retrieves all projects with the given status, newest first
func (r *ProjectRepository) GetByStatus(status string) ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE status = $1
		ORDER BY created_at DESC
	`

	return r.queryProjects(query, status)
}

// GetFeatured retrieves all featured online projects, newest first
func (r *ProjectRepository) GetFeatured() ([]*models.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects
		WHERE featured = 1 AND status = $1
		ORDER BY created_at DESC
	`

	return r.queryProjects(query, models.ProjectStatusOnline)
}

// Update overwrites all mutable fields of a project
func (r *ProjectRepository) Update(project *models.Project) error {
	query := `
		UPDATE projects
		SET title = $1, description = $2, image_url = $3, tags = $4, demo_url = $5,
			type = $6, date = $7, featured = $8, content = $9, status = $10,
			analysis_depth = $11, industry = $12, updated_at = $13
		WHERE id = $14
	`

	tags, err := json.Marshal(project.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(query,
		project.Title,
		project.Description,
		project.ImageURL,
		string(tags),
		project.DemoURL,
		project.Type,
		project.Date,
		project.Featured,
		project.Content,
		project.Status,
		project.AnalysisDepth,
		project.Industry,
		project.UpdatedAt,
		project.ID,
	)

	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// UpdateStatus sets a project's status. Rows already carrying the requested
// status are left untouched so updated_at is not bumped by a no-op.
func (r *ProjectRepository) UpdateStatus(id, status string, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE projects
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status <> $1
	`

	result, err := r.db.Exec(query, status, updatedAt, id)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// UpdateStatusBatch applies UpdateStatus to every ID in the list and returns
// how many rows changed. Unknown IDs simply contribute nothing; the batch is
// deliberately not wrapped in a transaction, so a mid-batch failure leaves
// earlier updates in place.
func (r *ProjectRepository) UpdateStatusBatch(ids []string, status string, updatedAt time.Time) (int, error) {
	count := 0
	for _, id := range ids {
		updated, err := r.UpdateStatus(id, status, updatedAt)
		if err != nil {
			return count, err
		}
		if updated {
			count++
		}
	}
	return count, nil
}

// SetAllFeatured marks every project as featured and returns the affected count
func (r *ProjectRepository) SetAllFeatured() (int, error) {
	result, err := r.db.Exec(`UPDATE projects SET featured = 1`)
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return int(rowsAffected), nil
}

// Delete performs a hard delete of a project
func (r *ProjectRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// Count returns the number of stored projects
func (r *ProjectRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM projects`).Scan(&count)
	return count, err
}

func (r *ProjectRepository) queryProjects(query string, args ...interface{}) ([]*models.Project, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanProject reads one project row. Columns added by the schema guard are
// scanned as nullable so rows written before a repair still load.
func scanProject(row rowScanner) (*models.Project, error) {
	project := &models.Project{}

	var tags string
	var featured sql.NullBool
	var content, status, analysisDepth, industry sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Description,
		&project.ImageURL,
		&tags,
		&project.DemoURL,
		&project.Type,
		&project.Date,
		&featured,
		&content,
		&status,
		&analysisDepth,
		&industry,
		&project.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &project.Tags); err != nil {
		// Dirty legacy rows may hold a bare comma-separated list
		project.Tags = []string{tags}
	}

	project.Featured = featured.Bool
	project.Content = content.String
	project.Status = status.String
	if project.Status == "" {
		project.Status = models.ProjectStatusOffline
	}
	project.AnalysisDepth = analysisDepth.String
	if project.AnalysisDepth == "" {
		project.AnalysisDepth = models.AnalysisDepthExploratory
	}
	project.Industry = industry.String
	if project.Industry == "" {
		project.Industry = models.DefaultIndustry
	}
	if updatedAt.Valid {
		project.UpdatedAt = updatedAt.Time
	} else {
		project.UpdatedAt = project.CreatedAt
	}

	return project, nil
}
