package handlers

import (
	"net/http"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/services"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// ListProjects handles the public catalog listing. Visitors only ever see
// online projects; the status restriction is not a query parameter here.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	opts := services.ListOptions{
		Status: models.ProjectStatusOnline,
		Type:   c.Query("type"),
		Tag:    c.Query("tag"),
		SortBy: c.DefaultQuery("sortBy", services.SortByCreatedAt),
		Order:  c.DefaultQuery("order", "desc"),
	}

	h.respondListing(c, opts)
}

// AdminListProjects handles the admin catalog listing across all statuses
func (h *ProjectHandler) AdminListProjects(c *gin.Context) {
	opts := services.ListOptions{
		Status: c.DefaultQuery("status", services.StatusFilterAll),
		Type:   c.Query("type"),
		Tag:    c.Query("tag"),
		SortBy: c.DefaultQuery("sortBy", services.SortByCreatedAt),
		Order:  c.DefaultQuery("order", "desc"),
	}

	h.respondListing(c, opts)
}

func (h *ProjectHandler) respondListing(c *gin.Context, opts services.ListOptions) {
	projects, err := h.projectService.ListProjects(opts)
	if err != nil {
		respondError(c, err)
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"meta": gin.H{
			"total":  len(projects),
			"filter": gin.H{"type": opts.Type, "tag": opts.Tag, "status": opts.Status},
			"sort":   gin.H{"by": opts.SortBy, "order": opts.Order},
		},
	})
}

// GetProject retrieves a single project
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectService.GetProjectByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// CreateProject handles admin project creation
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.projectService.CreateProject(&project); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project, "success": true})
}

// UpdateProject handles a partial admin update of a project
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var update services.ProjectUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	project, err := h.projectService.UpdateProject(c.Param("id"), &update)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project, "success": true})
}

// DeleteProject hard-deletes a project
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectService.DeleteProject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type statusRequest struct {
	Status string `json:"status"`
}

// SetProjectStatus toggles a project between online and offline
func (h *ProjectHandler) SetProjectStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id := c.Param("id")
	changed, err := h.projectService.SetProjectStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	response := gin.H{"success": true, "status": req.Status, "id": id}
	if !changed {
		response["message"] = "project status unchanged"
	}
	c.JSON(http.StatusOK, response)
}

type batchStatusRequest struct {
	IDs    []string `json:"ids"`
	Status string   `json:"status"`
}

// SetProjectStatusBatch toggles a list of projects in one call. Unknown IDs
// are tolerated; the response reports how many projects actually changed.
func (h *ProjectHandler) SetProjectStatusBatch(c *gin.Context) {
	var req batchStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project ID list is required"})
		return
	}

	count, err := h.projectService.SetProjectStatusBatch(req.IDs, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": req.Status, "count": count})
}

// SetAllFeatured marks every project as featured
func (h *ProjectHandler) SetAllFeatured(c *gin.Context) {
	count, err := h.projectService.SetAllFeatured()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
}

// GetFeaturedProjects lists featured online projects for the home page
func (h *ProjectHandler) GetFeaturedProjects(c *gin.Context) {
	projects, err := h.projectService.GetFeaturedProjects()
	if err != nil {
		respondError(c, err)
		return
	}

	if projects == nil {
		projects = []*models.Project{}
	}
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GetTags lists the distinct tags of online projects
func (h *ProjectHandler) GetTags(c *gin.Context) {
	tags, err := h.projectService.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

// GetIndustries lists the distinct industries of online projects
func (h *ProjectHandler) GetIndustries(c *gin.Context) {
	industries, err := h.projectService.ListIndustries()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"industries": industries})
}

// GetAnalysisDepths lists the distinct analysis depths of online projects
func (h *ProjectHandler) GetAnalysisDepths(c *gin.Context) {
	depths, err := h.projectService.ListAnalysisDepths()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"depths": depths})
}
