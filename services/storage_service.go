package services

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/libs"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/utils"
)

// Uploader abstracts the object storage client for tests.
type Uploader interface {
	Upload(ctx context.Context, localPath, folder, publicID string) (string, error)
}

type projectDetailsUpdater interface {
	UpdateProjectDetails(ctx context.Context, id, projectDetails string) (*models.Project, error)
}

type principalDetailsUpdater interface {
	UpdateStaffDetails(ctx context.Context, id, staffDetails string) (*models.Staff, error)
	UpdateAdminDetails(ctx context.Context, id, adminDetails string) (*models.Admin, error)
}

// StorageService uploads detail documents and attaches the resulting URL to
// the entity named by the file. The caller must name the file "<id>.<ext>";
// anything that does not parse as a UUID is rejected up front. The local temp
// file is removed on every path.
type StorageService struct {
	uploader Uploader
	projects projectDetailsUpdater
	auth     principalDetailsUpdater
}

func NewStorageService(projects *ProjectService, auth *AuthService) (*StorageService, error) {
	uploader, err := libs.NewCloudinaryUploader()
	if err != nil {
		return nil, err
	}
	return &StorageService{uploader: uploader, projects: projects, auth: auth}, nil
}

func NewStorageServiceWithUploader(uploader Uploader, projects projectDetailsUpdater, auth principalDetailsUpdater) *StorageService {
	return &StorageService{uploader: uploader, projects: projects, auth: auth}
}

// entityIDFromFilename strips the final extension; the remainder must be the
// target entity's UUID.
func entityIDFromFilename(filename string) (string, error) {
	id := strings.TrimSuffix(filename, filepath.Ext(filename))
	if _, err := uuid.Parse(id); err != nil {
		return "", apperrors.BadRequest("File must be named <entity-id>.<ext>")
	}
	return id, nil
}

func (s *StorageService) UploadProjectDetails(ctx context.Context, localPath, filename string) (*models.Project, error) {
	defer utils.RemoveFile(localPath)

	id, err := entityIDFromFilename(filename)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, localPath, "ProjectDetails", id)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading project details", err)
	}

	project, err := s.projects.UpdateProjectDetails(ctx, id, url)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading project details", err)
	}
	return project, nil
}

func (s *StorageService) UploadStaffDetails(ctx context.Context, localPath, filename string) (*models.Staff, error) {
	defer utils.RemoveFile(localPath)

	id, err := entityIDFromFilename(filename)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, localPath, "StaffDetails", id)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading staff details", err)
	}

	staff, err := s.auth.UpdateStaffDetails(ctx, id, url)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading staff details", err)
	}
	return staff, nil
}

func (s *StorageService) UploadAdminDetails(ctx context.Context, localPath, filename string) (*models.Admin, error) {
	defer utils.RemoveFile(localPath)

	id, err := entityIDFromFilename(filename)
	if err != nil {
		return nil, err
	}

	url, err := s.uploader.Upload(ctx, localPath, "AdminDetails", id)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading admin details", err)
	}

	admin, err := s.auth.UpdateAdminDetails(ctx, id, url)
	if err != nil {
		return nil, apperrors.Internal("Something went wrong while uploading admin details", err)
	}
	return admin, nil
}
