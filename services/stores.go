package services

import (
	"context"

	"github.com/Goutam363/ewabeyapi/models"
)

// Store interfaces decouple the services from the pgx repositories; tests
// substitute in-memory fakes. The concrete implementations live in
// repositories/.

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, username, hashedPassword string) error
}

type StaffStore interface {
	Insert(ctx context.Context, staff *models.Staff) error
	FindByUsername(ctx context.Context, username string) (*models.Staff, error)
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	FindAll(ctx context.Context) ([]models.Staff, error)
	Update(ctx context.Context, staff *models.Staff) error
}

type AdminStore interface {
	Insert(ctx context.Context, admin *models.Admin) error
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindByID(ctx context.Context, id string) (*models.Admin, error)
	FindAll(ctx context.Context) ([]models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id string) (int64, error)
}

type ProjectStore interface {
	Insert(ctx context.Context, project *models.Project) error
	FindByID(ctx context.Context, id string) (*models.Project, error)
	FindByUser(ctx context.Context, userID string, filter models.ProjectFilter) ([]models.Project, error)
	FindSecure(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	FindByUsername(ctx context.Context, username string) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	AddPayment(ctx context.Context, id, amount, paymentID string) (*models.Project, error)
}

type ContactStore interface {
	Insert(ctx context.Context, contact *models.Contact) error
	FindAll(ctx context.Context) ([]models.Contact, error)
}
