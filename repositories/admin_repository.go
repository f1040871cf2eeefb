package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) Insert(ctx context.Context, admin *models.Admin) error {
	admin.ID = uuid.New().String()
	query := `
		INSERT INTO admins (id, name, email, username, password, admin_details, account_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING account_create_date
	`
	return config.DB.QueryRow(
		ctx,
		query,
		admin.ID,
		admin.Name,
		admin.Email,
		admin.Username,
		admin.Password,
		admin.AdminDetails,
		admin.AccountStatus,
	).Scan(&admin.AccountCreateDate)
}

func (r *AdminRepository) FindByUsername(ctx context.Context, username string) (*models.Admin, error) {
	query := `
		SELECT id, name, email, username, password, admin_details, account_status, account_create_date
		FROM admins WHERE username = $1
	`
	admin := &models.Admin{}
	err := config.DB.QueryRow(ctx, query, username).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.Username,
		&admin.Password,
		&admin.AdminDetails,
		&admin.AccountStatus,
		&admin.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	query := `
		SELECT id, name, email, username, password, admin_details, account_status, account_create_date
		FROM admins WHERE id = $1
	`
	admin := &models.Admin{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Name,
		&admin.Email,
		&admin.Username,
		&admin.Password,
		&admin.AdminDetails,
		&admin.AccountStatus,
		&admin.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return admin, nil
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]models.Admin, error) {
	query := `
		SELECT id, name, email, username, password, admin_details, account_status, account_create_date
		FROM admins ORDER BY account_create_date DESC
	`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(
			&admin.ID,
			&admin.Name,
			&admin.Email,
			&admin.Username,
			&admin.Password,
			&admin.AdminDetails,
			&admin.AccountStatus,
			&admin.AccountCreateDate,
		); err != nil {
			return nil, err
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	query := `
		UPDATE admins
		SET name = $1, email = $2, username = $3, admin_details = $4, account_status = $5
		WHERE id = $6
	`
	_, err := config.DB.Exec(
		ctx,
		query,
		admin.Name,
		admin.Email,
		admin.Username,
		admin.AdminDetails,
		admin.AccountStatus,
		admin.ID,
	)
	return err
}

// Delete returns the number of rows removed so the service can distinguish a
// missing id.
func (r *AdminRepository) Delete(ctx context.Context, id string) (int64, error) {
	result, err := config.DB.Exec(ctx, `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
