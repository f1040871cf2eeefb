package services

import (
	"context"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/repositories"
)

// ContactService exposes the stored contact-us submissions to admins.
type ContactService struct {
	contacts ContactStore
}

func NewContactService() *ContactService {
	return &ContactService{contacts: repositories.NewContactRepository()}
}

func (s *ContactService) GetContacts(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.FindAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to list contact submissions", err)
	}
	return contacts, nil
}
