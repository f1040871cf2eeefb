package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/services"
	"github.com/Goutam363/ewabeyapi/utils"
)

type StorageController struct {
	storageService *services.StorageService
}

func NewStorageController(storageService *services.StorageService) *StorageController {
	return &StorageController{storageService: storageService}
}

// saveUpload pulls the multipart "file" part onto disk; the storage service
// owns the temp file from there.
func saveUpload(c *gin.Context) (localPath, filename string, ok bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "File required",
			Error:   err.Error(),
		})
		return "", "", false
	}

	localPath, err = utils.SaveTempFile(c, fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: err.Error(),
		})
		return "", "", false
	}
	return localPath, fileHeader.Filename, true
}

// UploadProjectDetails godoc
// @Summary Upload a project details document
// @Tags Storage
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document named <project-id>.<ext>"
// @Success 200 {object} models.Project
// @Router /storage/upload/project-details [post]
func (ctrl *StorageController) UploadProjectDetails(c *gin.Context) {
	localPath, filename, ok := saveUpload(c)
	if !ok {
		return
	}

	project, err := ctrl.storageService.UploadProjectDetails(c.Request.Context(), localPath, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *StorageController) UploadStaffDetails(c *gin.Context) {
	localPath, filename, ok := saveUpload(c)
	if !ok {
		return
	}

	staff, err := ctrl.storageService.UploadStaffDetails(c.Request.Context(), localPath, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (ctrl *StorageController) UploadAdminDetails(c *gin.Context) {
	localPath, filename, ok := saveUpload(c)
	if !ok {
		return
	}

	admin, err := ctrl.storageService.UploadAdminDetails(c.Request.Context(), localPath, filename)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}
