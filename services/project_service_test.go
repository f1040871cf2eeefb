package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
)

type fakeProjectStore struct {
	projects map[string]*models.Project

	lastUserID string
	lastFilter models.ProjectFilter
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{projects: map[string]*models.Project{}}
}

func (s *fakeProjectStore) Insert(_ context.Context, project *models.Project) error {
	project.ID = uuid.NewString()
	s.projects[project.ID] = project
	return nil
}

func (s *fakeProjectStore) FindByID(_ context.Context, id string) (*models.Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return project, nil
}

func (s *fakeProjectStore) FindByUser(_ context.Context, userID string, filter models.ProjectFilter) ([]models.Project, error) {
	s.lastUserID = userID
	s.lastFilter = filter
	out := []models.Project{}
	for _, project := range s.projects {
		if project.UserID == userID {
			out = append(out, *project)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) FindSecure(_ context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	s.lastFilter = filter
	out := []models.Project{}
	for _, project := range s.projects {
		out = append(out, *project)
	}
	return out, nil
}

func (s *fakeProjectStore) FindByUsername(_ context.Context, username string) ([]models.Project, error) {
	out := []models.Project{}
	for _, project := range s.projects {
		if project.Username == username {
			out = append(out, *project)
		}
	}
	return out, nil
}

func (s *fakeProjectStore) Update(_ context.Context, project *models.Project) error {
	s.projects[project.ID] = project
	return nil
}

func (s *fakeProjectStore) AddPayment(_ context.Context, id, amount, paymentID string) (*models.Project, error) {
	project, ok := s.projects[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if err := project.ApplyPayment(amount, paymentID); err != nil {
		return nil, err
	}
	return project, nil
}

func seedProject(store *fakeProjectStore, username, userID string) *models.Project {
	project := &models.Project{
		ID:            uuid.NewString(),
		Username:      username,
		ProjectName:   "Portfolio site",
		ProjectValue:  "50000",
		PaidAmount:    "0",
		RefundAmount:  "0",
		ProjectStage:  models.StagePlanning,
		ProjectStatus: models.StatusWaitingForApprove,
		Email:         username + "@example.com",
		Mobile:        "9876543210",
		UserID:        userID,
	}
	store.projects[project.ID] = project
	return project
}

func TestCreateProjectStartsInPlanning(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	user := &models.User{ID: uuid.NewString(), Username: "goutam"}

	project, err := svc.CreateProject(context.Background(), models.CreateProjectRequest{
		Username:    "goutam",
		ProjectName: "Portfolio site",
		Email:       "goutam@example.com",
		Mobile:      "9876543210",
		Address:     "Kolkata",
	}, user)
	require.NoError(t, err)

	assert.Equal(t, models.StagePlanning, project.ProjectStage)
	assert.Equal(t, models.StatusWaitingForApprove, project.ProjectStatus)
	assert.Equal(t, "0", project.ProjectValue)
	assert.Equal(t, "0", project.PaidAmount)
	assert.Equal(t, "0", project.RefundAmount)
	assert.Equal(t, "", project.PaymentIDs)
	assert.Equal(t, user.ID, project.UserID)
	assert.NotEmpty(t, project.ID)
}

func TestGetProjectsScopedToCaller(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)

	owner := &models.User{ID: uuid.NewString(), Username: "owner"}
	other := &models.User{ID: uuid.NewString(), Username: "other"}
	seedProject(store, "owner", owner.ID)
	seedProject(store, "other", other.ID)

	projects, err := svc.GetProjects(context.Background(), models.ProjectFilter{}, owner)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "owner", projects[0].Username)
	assert.Equal(t, owner.ID, store.lastUserID)
}

func TestGetProjectsSecureIsUnscoped(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	seedProject(store, "a", uuid.NewString())
	seedProject(store, "b", uuid.NewString())

	projects, err := svc.GetProjectsSecure(context.Background(), models.ProjectFilter{Stage: models.StagePlanning})
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	assert.Equal(t, models.StagePlanning, store.lastFilter.Stage)
}

func TestGetProjectByIDNotFound(t *testing.T) {
	svc := NewProjectServiceWithStore(newFakeProjectStore())

	_, err := svc.GetProjectByID(context.Background(), uuid.NewString())
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestAddPaidAmount(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())

	updated, err := svc.AddPaidAmount(context.Background(), project.ID, "1000", "pay_001")
	require.NoError(t, err)
	assert.Equal(t, "1000", updated.PaidAmount)
	assert.Equal(t, "pay_001", updated.PaymentIDs)

	updated, err = svc.AddPaidAmount(context.Background(), project.ID, "500", "pay_002")
	require.NoError(t, err)
	assert.Equal(t, "1500", updated.PaidAmount)
	assert.Equal(t, "pay_001|pay_002", updated.PaymentIDs)

	assert.Equal(t, models.StagePlanning, updated.ProjectStage)
	assert.Equal(t, models.StatusWaitingForApprove, updated.ProjectStatus)
}

func TestAddPaidAmountRejectsNonInteger(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())

	_, err := svc.AddPaidAmount(context.Background(), project.ID, "12.5", "pay_001")
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Equal(t, "0", store.projects[project.ID].PaidAmount)
}

func TestAddPaidAmountUnknownProject(t *testing.T) {
	svc := NewProjectServiceWithStore(newFakeProjectStore())

	_, err := svc.AddPaidAmount(context.Background(), uuid.NewString(), "1000", "pay_001")
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
}

func TestUpdateProjectStageAndStatus(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())

	updated, err := svc.UpdateProjectStage(context.Background(), project.ID, models.StageDevelopment)
	require.NoError(t, err)
	assert.Equal(t, models.StageDevelopment, updated.ProjectStage)

	updated, err = svc.UpdateProjectStatus(context.Background(), project.ID, models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, updated.ProjectStatus)
}

func TestUpdateProjectTouchesBasicInfoOnly(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())
	project.PaidAmount = "2500"
	project.PaymentIDs = "pay_001"
	project.ProjectStage = models.StageDevelopment

	updated, err := svc.UpdateProject(context.Background(), project.ID, models.UpdateProjectRequest{
		ProjectName:    "Portfolio site v2",
		ProjectDetails: "revised scope",
		Email:          "new@example.com",
		Mobile:         "9123456789",
		Address:        "Bengaluru",
	})
	require.NoError(t, err)

	assert.Equal(t, "Portfolio site v2", updated.ProjectName)
	assert.Equal(t, "revised scope", updated.ProjectDetails)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.Equal(t, "9123456789", updated.Mobile)
	assert.Equal(t, "Bengaluru", updated.Address)

	assert.Equal(t, "2500", updated.PaidAmount)
	assert.Equal(t, "pay_001", updated.PaymentIDs)
	assert.Equal(t, models.StageDevelopment, updated.ProjectStage)
	assert.Equal(t, "50000", updated.ProjectValue)
}

func TestUpdateProjectValue(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())

	updated, err := svc.UpdateProjectValue(context.Background(), project.ID, "75000")
	require.NoError(t, err)
	assert.Equal(t, "75000", updated.ProjectValue)
}

func TestVerifyProjectByID(t *testing.T) {
	store := newFakeProjectStore()
	svc := NewProjectServiceWithStore(store)
	project := seedProject(store, "owner", uuid.NewString())

	assert.True(t, svc.VerifyProjectByID(context.Background(), project.ID))
	assert.False(t, svc.VerifyProjectByID(context.Background(), uuid.NewString()))
}
