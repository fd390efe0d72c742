package repositories

import (
	"database/sql"

	"github.com/datazhang-hub/portfolio/internal/models"
	"github.com/google/uuid"
)

type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{
		db: db,
	}
}

// Create inserts a new contact submission
func (r *ContactRepository) Create(contact *models.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, company, channel, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}

	_, err := r.db.Exec(query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Company,
		contact.Channel,
		contact.Message,
		contact.Status,
		contact.CreatedAt,
	)

	return err
}

// GetByID retrieves a contact by ID
func (r *ContactRepository) GetByID(id string) (*models.Contact, error) {
	query := `
		SELECT id, name, email, company, channel, message, status, created_at
		FROM contacts
		WHERE id = $1
	`

	contact := &models.Contact{}
	err := r.db.QueryRow(query, id).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Company,
		&contact.Channel,
		&contact.Message,
		&contact.Status,
		&contact.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return contact, nil
}

// GetAll retrieves all contact submissions, newest first
func (r *ContactRepository) GetAll() ([]*models.Contact, error) {
	query := `
		SELECT id, name, email, company, channel, message, status, created_at
		FROM contacts
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		contact := &models.Contact{}
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Company,
			&contact.Channel,
			&contact.Message,
			&contact.Status,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}

	return contacts, rows.Err()
}

// UpdateStatus sets a contact's status
func (r *ContactRepository) UpdateStatus(id, status string) error {
	query := `
		UPDATE contacts
		SET status = $1
		WHERE id = $2
	`

	result, err := r.db.Exec(query, status, id)
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
