package services

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
)

type fakeUploader struct {
	err        error
	lastFolder string
	lastID     string
}

func (u *fakeUploader) Upload(_ context.Context, _, folder, publicID string) (string, error) {
	u.lastFolder = folder
	u.lastID = publicID
	if u.err != nil {
		return "", u.err
	}
	return "https://res.cloudinary.com/" + folder + "/" + publicID, nil
}

type fakeProjectUpdater struct {
	lastID  string
	lastURL string
	err     error
}

func (f *fakeProjectUpdater) UpdateProjectDetails(_ context.Context, id, projectDetails string) (*models.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastID = id
	f.lastURL = projectDetails
	return &models.Project{ID: id, ProjectDetails: projectDetails}, nil
}

type fakePrincipalUpdater struct {
	lastStaffURL string
	lastAdminURL string
}

func (f *fakePrincipalUpdater) UpdateStaffDetails(_ context.Context, id, staffDetails string) (*models.Staff, error) {
	f.lastStaffURL = staffDetails
	return &models.Staff{ID: id, StaffDetails: staffDetails}, nil
}

func (f *fakePrincipalUpdater) UpdateAdminDetails(_ context.Context, id, adminDetails string) (*models.Admin, error) {
	f.lastAdminURL = adminDetails
	return &models.Admin{ID: id, AdminDetails: adminDetails}, nil
}

func tempUpload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf bytes"), 0o644))
	return path
}

func TestUploadProjectDetails(t *testing.T) {
	uploader := &fakeUploader{}
	projects := &fakeProjectUpdater{}
	svc := NewStorageServiceWithUploader(uploader, projects, &fakePrincipalUpdater{})

	id := uuid.NewString()
	localPath := tempUpload(t)

	project, err := svc.UploadProjectDetails(context.Background(), localPath, id+".pdf")
	require.NoError(t, err)

	assert.Equal(t, "ProjectDetails", uploader.lastFolder)
	assert.Equal(t, id, uploader.lastID)
	assert.Equal(t, id, projects.lastID)
	assert.Equal(t, "https://res.cloudinary.com/ProjectDetails/"+id, project.ProjectDetails)

	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed after upload")
}

func TestUploadRejectsMalformedFilename(t *testing.T) {
	uploader := &fakeUploader{}
	svc := NewStorageServiceWithUploader(uploader, &fakeProjectUpdater{}, &fakePrincipalUpdater{})
	localPath := tempUpload(t)

	_, err := svc.UploadProjectDetails(context.Background(), localPath, "not-a-uuid.pdf")
	assert.Equal(t, http.StatusBadRequest, apperrors.StatusOf(err))
	assert.Empty(t, uploader.lastFolder)

	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed on rejection")
}

func TestUploadFailureStillRemovesTempFile(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("network down")}
	svc := NewStorageServiceWithUploader(uploader, &fakeProjectUpdater{}, &fakePrincipalUpdater{})
	localPath := tempUpload(t)

	_, err := svc.UploadProjectDetails(context.Background(), localPath, uuid.NewString()+".pdf")
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusOf(err))

	_, statErr := os.Stat(localPath)
	assert.True(t, os.IsNotExist(statErr), "temp file should be removed on failure")
}

func TestUploadStaffAndAdminDetails(t *testing.T) {
	uploader := &fakeUploader{}
	principals := &fakePrincipalUpdater{}
	svc := NewStorageServiceWithUploader(uploader, &fakeProjectUpdater{}, principals)

	staffID := uuid.NewString()
	staff, err := svc.UploadStaffDetails(context.Background(), tempUpload(t), staffID+".png")
	require.NoError(t, err)
	assert.Equal(t, "StaffDetails", uploader.lastFolder)
	assert.Equal(t, "https://res.cloudinary.com/StaffDetails/"+staffID, staff.StaffDetails)

	adminID := uuid.NewString()
	admin, err := svc.UploadAdminDetails(context.Background(), tempUpload(t), adminID+".png")
	require.NoError(t, err)
	assert.Equal(t, "AdminDetails", uploader.lastFolder)
	assert.Equal(t, "https://res.cloudinary.com/AdminDetails/"+adminID, admin.AdminDetails)
}
