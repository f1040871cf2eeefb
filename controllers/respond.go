package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/apperrors"
	"github.com/Goutam363/ewabeyapi/models"
)

// respondError maps a service error to its HTTP status; anything untyped
// renders as 500 without leaking the cause.
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.StatusOf(err), models.ErrorResponse{
		Success: false,
		Message: apperrors.MessageOf(err),
	})
}

func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Message: "Invalid request body",
		Error:   err.Error(),
	})
}
