package handlers

import (
	"errors"
	"net/http"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP responses. Every
// error body carries a non-empty message; structure errors additionally set
// the structureError flag so the admin panel can offer a repair action.
func respondError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var notFoundErr *models.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var structureErr *models.StructureError
	if errors.As(err, &structureErr) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":          structureErr.Error(),
			"structureError": true,
		})
		return
	}

	message := "internal server error"
	if err != nil {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
