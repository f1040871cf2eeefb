package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Insert(ctx context.Context, user *models.User) error {
	user.ID = uuid.New().String()
	query := `
		INSERT INTO users (id, name, email, mobile, dob, username, password, account_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING account_create_date
	`
	return config.DB.QueryRow(
		ctx,
		query,
		user.ID,
		user.Name,
		user.Email,
		user.Mobile,
		user.Dob,
		user.Username,
		user.Password,
		user.AccountStatus,
	).Scan(&user.AccountCreateDate)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, account_status, account_create_date
		FROM users WHERE username = $1
	`
	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Mobile,
		&user.Dob,
		&user.Username,
		&user.Password,
		&user.AccountStatus,
		&user.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, account_status, account_create_date
		FROM users WHERE id = $1
	`
	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Mobile,
		&user.Dob,
		&user.Username,
		&user.Password,
		&user.AccountStatus,
		&user.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) ([]models.User, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, account_status, account_create_date
		FROM users WHERE email = $1
	`
	rows, err := config.DB.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Mobile,
			&user.Dob,
			&user.Username,
			&user.Password,
			&user.AccountStatus,
			&user.AccountCreateDate,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, account_status, account_create_date
		FROM users ORDER BY account_create_date DESC
	`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Mobile,
			&user.Dob,
			&user.Username,
			&user.Password,
			&user.AccountStatus,
			&user.AccountCreateDate,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, mobile = $3, dob = $4, username = $5, account_status = $6
		WHERE id = $7
	`
	_, err := config.DB.Exec(
		ctx,
		query,
		user.Name,
		user.Email,
		user.Mobile,
		user.Dob,
		user.Username,
		user.AccountStatus,
		user.ID,
	)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, hashedPassword string) error {
	query := `UPDATE users SET password = $1 WHERE username = $2`
	_, err := config.DB.Exec(ctx, query, hashedPassword, username)
	return err
}
