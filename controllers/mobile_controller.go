package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/services"
)

type MobileController struct {
	mobileService *services.MobileService
}

func NewMobileController(mobileService *services.MobileService) *MobileController {
	return &MobileController{mobileService: mobileService}
}

func (ctrl *MobileController) VerifyMobile(c *gin.Context) {
	var req models.MobileOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	otp, err := ctrl.mobileService.SendOTP(c.Request.Context(), req.Mobile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MsgResponse{Msg: otp})
}
