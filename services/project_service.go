package services

import (
	"context"
	"strconv"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/repositories"
)

type ProjectService struct {
	projects ProjectStore
}

func NewProjectService() *ProjectService {
	return &ProjectService{projects: repositories.NewProjectRepository()}
}

func NewProjectServiceWithStore(projects ProjectStore) *ProjectService {
	return &ProjectService{projects: projects}
}

// CreateProject opens a new project for the signed-in user. Every project
// starts in PLANNING / WAITING_FOR_APPROVE.
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest, user *models.User) (*models.Project, error) {
	project := &models.Project{
		Username:       req.Username,
		ProjectName:    req.ProjectName,
		ProjectDetails: "",
		ProjectValue:   "0",
		PaidAmount:     "0",
		RefundAmount:   "0",
		PaymentIDs:     "",
		ProjectStage:   models.StagePlanning,
		ProjectStatus:  models.StatusWaitingForApprove,
		Email:          req.Email,
		Mobile:         req.Mobile,
		Address:        req.Address,
		UserID:         user.ID,
	}
	if err := s.projects.Insert(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to create project", err)
	}
	return project, nil
}

// GetProjects lists the caller's own projects only.
func (s *ProjectService) GetProjects(ctx context.Context, filter models.ProjectFilter, user *models.User) ([]models.Project, error) {
	projects, err := s.projects.FindByUser(ctx, user.ID, filter)
	if err != nil {
		return nil, apperrors.Internal("Failed to list projects", err)
	}
	return projects, nil
}

// GetProjectsSecure is the unscoped staff/admin listing with free-text search.
func (s *ProjectService) GetProjectsSecure(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	projects, err := s.projects.FindSecure(ctx, filter)
	if err != nil {
		return nil, apperrors.Internal("Failed to list projects", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectsByUsername(ctx context.Context, username string) ([]models.Project, error) {
	projects, err := s.projects.FindByUsername(ctx, username)
	if err != nil {
		return nil, apperrors.Internal("Failed to list projects", err)
	}
	return projects, nil
}

func (s *ProjectService) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Project with id " + id + " not found")
		}
		return nil, apperrors.Internal("Failed to load project", err)
	}
	return project, nil
}

func (s *ProjectService) VerifyProjectByID(ctx context.Context, id string) bool {
	_, err := s.projects.FindByID(ctx, id)
	return err == nil
}

func (s *ProjectService) UpdateProject(ctx context.Context, id string, req models.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectName = req.ProjectName
	project.ProjectDetails = req.ProjectDetails
	project.Email = req.Email
	project.Mobile = req.Mobile
	project.Address = req.Address
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStaff(ctx context.Context, id string, req models.UpdateProjectStaffRequest) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectDetails = req.ProjectDetails
	project.PaymentIDs = req.PaymentIDs
	project.ProjectStage = req.Stage
	project.ProjectStatus = req.Status
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectSuper(ctx context.Context, id string, req models.UpdateProjectAdminRequest) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectName = req.ProjectName
	project.ProjectDetails = req.ProjectDetails
	project.Email = req.Email
	project.Mobile = req.Mobile
	project.Address = req.Address
	project.ProjectStage = req.Stage
	project.ProjectStatus = req.Status
	project.ProjectValue = req.ProjectValue
	project.PaidAmount = req.PaidAmount
	project.RefundAmount = req.RefundAmount
	project.PaymentIDs = req.PaymentIDs
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectValue(ctx context.Context, id, projectValue string) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectValue = projectValue
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

// AddPaidAmount accumulates one payment. Stage/status are untouched; the
// append itself runs atomically in the store.
func (s *ProjectService) AddPaidAmount(ctx context.Context, id, amount, paymentID string) (*models.Project, error) {
	if _, err := strconv.Atoi(amount); err != nil {
		return nil, apperrors.BadRequest("Payment amount must be an integer")
	}
	project, err := s.projects.AddPayment(ctx, id, amount, paymentID)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NotFound("Project with id " + id + " not found")
		}
		return nil, apperrors.Internal("Failed to record payment", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStage(ctx context.Context, id string, stage models.ProjectStage) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectStage = stage
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

func (s *ProjectService) UpdateProjectStatus(ctx context.Context, id string, status models.ProjectStatus) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectStatus = status
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}

// UpdateProjectDetails writes the document URL produced by an upload.
func (s *ProjectService) UpdateProjectDetails(ctx context.Context, id, projectDetails string) (*models.Project, error) {
	project, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}
	project.ProjectDetails = projectDetails
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, apperrors.Internal("Failed to update project", err)
	}
	return project, nil
}
