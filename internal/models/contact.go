package models

import (
	"regexp"
	"time"
)

// Contact statuses
const (
	ContactStatusUnread  = "unread"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// DefaultContactChannel is recorded when the visitor did not say how they found the site
const DefaultContactChannel = "网站直接联系"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	Channel   string    `json:"channel"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the fields required for a new contact submission
func (c *Contact) Validate() error {
	if c.Name == "" {
		return ErrContactNameRequired
	}
	if c.Email == "" {
		return ErrContactEmailRequired
	}
	if !emailPattern.MatchString(c.Email) {
		return ErrContactEmailInvalid
	}
	if c.Message == "" {
		return ErrContactMessageRequired
	}
	return nil
}

// IsValidContactStatus reports whether s is one of the three contact states
func IsValidContactStatus(s string) bool {
	switch s {
	case ContactStatusUnread, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// Common errors
var (
	ErrContactNameRequired    = &ValidationError{Field: "name", Message: "Name is required"}
	ErrContactEmailRequired   = &ValidationError{Field: "email", Message: "Email is required"}
	ErrContactEmailInvalid    = &ValidationError{Field: "email", Message: "Email address is invalid"}
	ErrContactMessageRequired = &ValidationError{Field: "message", Message: "Message is required"}
	ErrContactStatusInvalid   = &ValidationError{Field: "status", Message: "Contact status must be unread, read or replied"}
)
