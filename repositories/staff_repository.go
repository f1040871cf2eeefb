package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) Insert(ctx context.Context, staff *models.Staff) error {
	staff.ID = uuid.New().String()
	query := `
		INSERT INTO staffs (id, name, email, mobile, dob, username, password, staff_details, account_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING account_create_date
	`
	return config.DB.QueryRow(
		ctx,
		query,
		staff.ID,
		staff.Name,
		staff.Email,
		staff.Mobile,
		staff.Dob,
		staff.Username,
		staff.Password,
		staff.StaffDetails,
		staff.AccountStatus,
	).Scan(&staff.AccountCreateDate)
}

func (r *StaffRepository) FindByUsername(ctx context.Context, username string) (*models.Staff, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, staff_details, account_status, account_create_date
		FROM staffs WHERE username = $1
	`
	staff := &models.Staff{}
	err := config.DB.QueryRow(ctx, query, username).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.Mobile,
		&staff.Dob,
		&staff.Username,
		&staff.Password,
		&staff.StaffDetails,
		&staff.AccountStatus,
		&staff.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, staff_details, account_status, account_create_date
		FROM staffs WHERE id = $1
	`
	staff := &models.Staff{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.Mobile,
		&staff.Dob,
		&staff.Username,
		&staff.Password,
		&staff.StaffDetails,
		&staff.AccountStatus,
		&staff.AccountCreateDate,
	)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

func (r *StaffRepository) FindAll(ctx context.Context) ([]models.Staff, error) {
	query := `
		SELECT id, name, email, mobile, dob, username, password, staff_details, account_status, account_create_date
		FROM staffs ORDER BY account_create_date DESC
	`
	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffs := []models.Staff{}
	for rows.Next() {
		var staff models.Staff
		if err := rows.Scan(
			&staff.ID,
			&staff.Name,
			&staff.Email,
			&staff.Mobile,
			&staff.Dob,
			&staff.Username,
			&staff.Password,
			&staff.StaffDetails,
			&staff.AccountStatus,
			&staff.AccountCreateDate,
		); err != nil {
			return nil, err
		}
		staffs = append(staffs, staff)
	}
	return staffs, rows.Err()
}

func (r *StaffRepository) Update(ctx context.Context, staff *models.Staff) error {
	query := `
		UPDATE staffs
		SET name = $1, email = $2, mobile = $3, dob = $4, username = $5, staff_details = $6, account_status = $7
		WHERE id = $8
	`
	_, err := config.DB.Exec(
		ctx,
		query,
		staff.Name,
		staff.Email,
		staff.Mobile,
		staff.Dob,
		staff.Username,
		staff.StaffDetails,
		staff.AccountStatus,
		staff.ID,
	)
	return err
}
