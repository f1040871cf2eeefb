package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/config"
	"github.com/Goutam363/ewabeyapi/models"
)

const projectColumns = `id, username, project_name, project_details, project_value, paid_amount,
	refund_amount, payment_ids, project_stage, project_status, email, mobile, address, start_date, user_id`

type ProjectRepository struct{}

func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

func scanProject(row interface{ Scan(dest ...any) error }, p *models.Project) error {
	return row.Scan(
		&p.ID,
		&p.Username,
		&p.ProjectName,
		&p.ProjectDetails,
		&p.ProjectValue,
		&p.PaidAmount,
		&p.RefundAmount,
		&p.PaymentIDs,
		&p.ProjectStage,
		&p.ProjectStatus,
		&p.Email,
		&p.Mobile,
		&p.Address,
		&p.StartDate,
		&p.UserID,
	)
}

func (r *ProjectRepository) Insert(ctx context.Context, project *models.Project) error {
	project.ID = uuid.New().String()
	query := `
		INSERT INTO projects (id, username, project_name, project_details, project_value, paid_amount,
			refund_amount, payment_ids, project_stage, project_status, email, mobile, address, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING start_date
	`
	return config.DB.QueryRow(
		ctx,
		query,
		project.ID,
		project.Username,
		project.ProjectName,
		project.ProjectDetails,
		project.ProjectValue,
		project.PaidAmount,
		project.RefundAmount,
		project.PaymentIDs,
		project.ProjectStage,
		project.ProjectStatus,
		project.Email,
		project.Mobile,
		project.Address,
		project.UserID,
	).Scan(&project.StartDate)
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)
	project := &models.Project{}
	if err := scanProject(config.DB.QueryRow(ctx, query, id), project); err != nil {
		return nil, err
	}
	return project, nil
}

// ownListQuery builds the listing for one user's projects with the optional
// stage/status equality filters.
func ownListQuery(userID string, filter models.ProjectFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE user_id = $1`, projectColumns)
	args := []any{userID}

	if filter.Stage != "" {
		args = append(args, filter.Stage)
		query += fmt.Sprintf(" AND project_stage = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND project_status = $%d", len(args))
	}

	query += " ORDER BY start_date DESC"
	return query, args
}

// secureListQuery builds the unscoped staff/admin listing. The search term
// matches email/mobile by case-insensitive equality and payment_ids /
// project_name by substring.
func secureListQuery(filter models.ProjectFilter) (string, []any) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE 1=1`, projectColumns)
	args := []any{}

	if filter.Stage != "" {
		args = append(args, filter.Stage)
		query += fmt.Sprintf(" AND project_stage = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND project_status = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, filter.Search)
		exact := len(args)
		args = append(args, "%"+filter.Search+"%")
		like := len(args)
		query += fmt.Sprintf(
			" AND (LOWER(email) = LOWER($%d) OR LOWER(mobile) = LOWER($%d) OR payment_ids LIKE $%d OR LOWER(project_name) LIKE LOWER($%d))",
			exact, exact, like, like,
		)
	}

	query += " ORDER BY start_date DESC"
	return query, args
}

func (r *ProjectRepository) FindByUser(ctx context.Context, userID string, filter models.ProjectFilter) ([]models.Project, error) {
	query, args := ownListQuery(userID, filter)
	return r.queryProjects(ctx, query, args...)
}

func (r *ProjectRepository) FindSecure(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	query, args := secureListQuery(filter)
	return r.queryProjects(ctx, query, args...)
}

func (r *ProjectRepository) FindByUsername(ctx context.Context, username string) ([]models.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE username = $1 ORDER BY start_date DESC`, projectColumns)
	return r.queryProjects(ctx, query, username)
}

func (r *ProjectRepository) queryProjects(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var project models.Project
		if err := scanProject(rows, &project); err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *models.Project) error {
	query := `
		UPDATE projects
		SET username = $1, project_name = $2, project_details = $3, project_value = $4,
			paid_amount = $5, refund_amount = $6, payment_ids = $7, project_stage = $8,
			project_status = $9, email = $10, mobile = $11, address = $12
		WHERE id = $13
	`
	_, err := config.DB.Exec(
		ctx,
		query,
		project.Username,
		project.ProjectName,
		project.ProjectDetails,
		project.ProjectValue,
		project.PaidAmount,
		project.RefundAmount,
		project.PaymentIDs,
		project.ProjectStage,
		project.ProjectStatus,
		project.Email,
		project.Mobile,
		project.Address,
		project.ID,
	)
	return err
}

// AddPayment appends a payment inside a row-locked transaction so concurrent
// submissions for the same project cannot lose an update.
func (r *ProjectRepository) AddPayment(ctx context.Context, id, amount, paymentID string) (*models.Project, error) {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1 FOR UPDATE`, projectColumns)
	project := &models.Project{}
	if err := scanProject(tx.QueryRow(ctx, query, id), project); err != nil {
		return nil, err
	}

	if err := project.ApplyPayment(amount, paymentID); err != nil {
		return nil, err
	}

	_, err = tx.Exec(
		ctx,
		`UPDATE projects SET paid_amount = $1, payment_ids = $2 WHERE id = $3`,
		project.PaidAmount,
		project.PaymentIDs,
		project.ID,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return project, nil
}
