package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/datazhang-hub/portfolio/internal/services"
	"github.com/datazhang-hub/portfolio/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// AdminHandler covers the database maintenance surface of the admin panel:
// schema repair, status report, bootstrap and xlsx export.
type AdminHandler struct {
	schemaService *services.SchemaService
	seedService   *services.SeedService
	exportService *services.ExportService
}

func NewAdminHandler(schemaService *services.SchemaService, seedService *services.SeedService, exportService *services.ExportService) *AdminHandler {
	return &AdminHandler{
		schemaService: schemaService,
		seedService:   seedService,
		exportService: exportService,
	}
}

// FixDatabase runs the schema guard on demand. Safe to call repeatedly: an
// up-to-date table reports zero columns added.
func (h *AdminHandler) FixDatabase(c *gin.Context) {
	added, err := h.schemaService.EnsureSchema()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        err.Error(),
			"columnsAdded": added,
		})
		return
	}

	message := "database structure is up to date"
	if len(added) > 0 {
		message = fmt.Sprintf("added missing columns: %s", strings.Join(added, ", "))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"columnsAdded": added,
		"message":      message,
	})
}

// DBStatus reports connectivity and table existence
func (h *AdminHandler) DBStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.schemaService.Status())
}

// InitDatabase re-runs the base migrations and seeds sample data on an
// empty catalog. The base migrations create the legacy table shape, so the
// schema guard has to run before the seed writes the full column set.
func (h *AdminHandler) InitDatabase(c *gin.Context) {
	if err := database.RunSQLScripts(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.schemaService.EnsureSchema(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	seeded, err := h.seedService.SeedIfEmpty()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "seeded": seeded})
}

// ExportProjects streams the full catalog as an xlsx workbook
func (h *AdminHandler) ExportProjects(c *gin.Context) {
	f, err := h.exportService.ExportProjects()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	writeWorkbook(c, f, "projects.xlsx")
}

// ExportContacts streams all contact submissions as an xlsx workbook
func (h *AdminHandler) ExportContacts(c *gin.Context) {
	f, err := h.exportService.ExportContacts()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	writeWorkbook(c, f, "contacts.xlsx")
}

func writeWorkbook(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
