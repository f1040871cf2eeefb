package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/config"
)

// SaveTempFile writes an uploaded document into the upload dir under a
// collision-free name and returns its path. The caller owns the file and must
// remove it whatever happens next.
func SaveTempFile(c *gin.Context, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > 10*1024*1024 {
		return "", fmt.Errorf("file too large (max 10MB)")
	}

	uploadDir := config.AppConfig.UploadDir
	if err := os.MkdirAll(uploadDir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(uploadDir, fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, path); err != nil {
		return "", err
	}

	return path, nil
}

// RemoveFile deletes a local file, tolerating one that is already gone.
func RemoveFile(path string) {
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
}
