package handlers

import (
	"net/http"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/services"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
}

func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// CreateContact handles the public contact form submission
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.contactService.CreateContact(&contact); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "contact": contact})
}

// ListContacts returns all contact submissions for the admin panel
func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contactService.GetAllContacts()
	if err != nil {
		respondError(c, err)
		return
	}

	if contacts == nil {
		contacts = []*models.Contact{}
	}
	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// UpdateContactStatus moves a contact between unread, read and replied
func (h *ContactHandler) UpdateContactStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.contactService.UpdateContactStatus(c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
