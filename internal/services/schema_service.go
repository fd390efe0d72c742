package services

import (
	"fmt"
	"strings"

	"github.com/datazhang-hub/portfolio/internal/repositories"
	"github.com/datazhang-hub/portfolio/pkg/logger"
	"github.com/sirupsen/logrus"
)

// ColumnSpec describes one column the current data model expects, together
// with the backfill that gives pre-existing rows a sane value.
type ColumnSpec struct {
	Name       string
	Definition string
	Backfill   string
}

// requiredProjectColumns is the set of columns the application writes today.
// The base migration ships the legacy table shape; everything here was added
// in a later version and may be missing on older deployments.
var requiredProjectColumns = []ColumnSpec{
	{
		Name:       "status",
		Definition: "status TEXT NOT NULL DEFAULT 'offline'",
		Backfill:   "UPDATE projects SET status = 'offline' WHERE status IS NULL OR status = ''",
	},
	{
		Name:       "updated_at",
		Definition: "updated_at TIMESTAMP",
		Backfill:   "UPDATE projects SET updated_at = created_at WHERE updated_at IS NULL",
	},
	{
		Name:       "analysis_depth",
		Definition: "analysis_depth TEXT NOT NULL DEFAULT 'exploratory'",
	},
	{
		Name:       "industry",
		Definition: "industry TEXT NOT NULL DEFAULT 'other'",
	},
	{
		Name:       "content",
		Definition: "content TEXT NOT NULL DEFAULT ''",
	},
	{
		Name:       "featured",
		Definition: "featured BOOLEAN NOT NULL DEFAULT 0",
	},
	{
		Name:       "demo_url",
		Definition: "demo_url TEXT NOT NULL DEFAULT ''",
	},
}

// SchemaStatus is the report returned by the admin db-status endpoint
type SchemaStatus struct {
	Connected     bool     `json:"databaseConnected"`
	ProjectsTable bool     `json:"projectsTableExists"`
	ContactsTable bool     `json:"contactsTableExists"`
	Columns       []string `json:"projectColumns"`
}

// SchemaService keeps the projects table's column set a superset of what the
// application expects. It holds no state about the schema between calls.
type SchemaService struct {
	schemaRepo *repositories.SchemaRepository
}

func NewSchemaService(schemaRepo *repositories.SchemaRepository) *SchemaService {
	return &SchemaService{
		schemaRepo: schemaRepo,
	}
}

// EnsureSchema adds every missing required column to the projects table and
// returns the names of the columns it added. Calling it on an up-to-date
// table adds nothing and succeeds. Each column addition is its own step: a
// failure on one column does not undo or skip the others, and the returned
// list reflects exactly what succeeded.
func (s *SchemaService) EnsureSchema() ([]string, error) {
	exists, err := s.schemaRepo.TableExists("projects")
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("projects table does not exist, run the base migrations first")
	}

	columns, err := s.schemaRepo.TableColumns("projects")
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(columns))
	for _, name := range columns {
		present[strings.ToLower(name)] = true
	}

	var added []string
	var firstErr error
	for _, spec := range requiredProjectColumns {
		if present[spec.Name] {
			continue
		}

		if err := s.schemaRepo.AddColumn("projects", spec.Definition); err != nil {
			// A concurrent repair may have won the race for this column
			if isDuplicateColumnError(err) {
				logger.WithField("column", spec.Name).Info("Column already added by a concurrent repair")
				continue
			}
			logger.WithFields(logrus.Fields{"column": spec.Name}).WithError(err).Error("Failed to add column")
			if firstErr == nil {
				firstErr = fmt.Errorf("add column %s: %w", spec.Name, err)
			}
			continue
		}

		if spec.Backfill != "" {
			if err := s.schemaRepo.Exec(spec.Backfill); err != nil {
				logger.WithFields(logrus.Fields{"column": spec.Name}).WithError(err).Error("Failed to backfill column")
				if firstErr == nil {
					firstErr = fmt.Errorf("backfill column %s: %w", spec.Name, err)
				}
			}
		}

		added = append(added, spec.Name)
	}

	if len(added) > 0 {
		logger.WithField("columns", strings.Join(added, ", ")).Info("Schema repair added missing columns")
	}

	return added, firstErr
}

// Status reports connectivity and table existence for the admin panel
func (s *SchemaService) Status() *SchemaStatus {
	status := &SchemaStatus{}

	projectsExists, err := s.schemaRepo.TableExists("projects")
	if err != nil {
		return status
	}
	status.Connected = true
	status.ProjectsTable = projectsExists

	if contactsExists, err := s.schemaRepo.TableExists("contacts"); err == nil {
		status.ContactsTable = contactsExists
	}

	if projectsExists {
		if columns, err := s.schemaRepo.TableColumns("projects"); err == nil {
			status.Columns = columns
		}
	}

	return status
}

// IsSchemaDriftError classifies a storage error as schema drift, i.e. a
// statement referenced a column the live table does not have. Detection is
// by error text, which is fragile, so every call site goes through here.
func IsSchemaDriftError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "no such column") || strings.Contains(msg, "has no column named") {
		return true
	}
	// Postgres-style wording, kept for deployments backed by other engines
	return strings.Contains(msg, "column") && strings.Contains(msg, "does not exist")
}

func isDuplicateColumnError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate column name")
}
