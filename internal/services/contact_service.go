package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/datazhang-hub/portfolio/internal/repositories"
)

type ContactService struct {
	contactRepo *repositories.ContactRepository
}

func NewContactService(contactRepo *repositories.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// CreateContact validates and stores an inbound contact submission
func (s *ContactService) CreateContact(contact *models.Contact) error {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.TrimSpace(contact.Email)
	contact.Message = strings.TrimSpace(contact.Message)

	if err := contact.Validate(); err != nil {
		return err
	}

	if contact.Channel == "" {
		contact.Channel = models.DefaultContactChannel
	}
	contact.Status = models.ContactStatusUnread
	contact.CreatedAt = time.Now()

	return s.contactRepo.Create(contact)
}

// GetAllContacts returns all contact submissions, newest first
func (s *ContactService) GetAllContacts() ([]*models.Contact, error) {
	return s.contactRepo.GetAll()
}

// UpdateContactStatus moves a contact between unread, read and replied
func (s *ContactService) UpdateContactStatus(id, status string) error {
	if !models.IsValidContactStatus(status) {
		return models.ErrContactStatusInvalid
	}

	if err := s.contactRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.NotFoundError{Entity: "contact", ID: id}
		}
		return err
	}
	return nil
}
