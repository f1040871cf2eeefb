package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

type ContactRepository struct{}

func NewContactRepository() *ContactRepository {
	return &ContactRepository{}
}

func (r *ContactRepository) Insert(ctx context.Context, contact *models.Contact) error {
	contact.ID = uuid.New().String()
	query := `
		INSERT INTO contacts (id, name, email, mobile, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	return config.DB.QueryRow(
		ctx,
		query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Mobile,
		contact.Message,
	).Scan(&contact.CreatedAt)
}

func (r *ContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT id, name, email, mobile, message, created_at FROM contacts ORDER BY created_at DESC`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		var contact models.Contact
		if err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.Email,
			&contact.Mobile,
			&contact.Message,
			&contact.CreatedAt,
		); err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}
