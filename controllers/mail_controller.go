package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/services"
)

type MailController struct {
	mailService *services.MailService
}

func NewMailController(mailService *services.MailService) *MailController {
	return &MailController{mailService: mailService}
}

func (ctrl *MailController) ContactUs(c *gin.Context) {
	var req models.ContactUsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.mailService.SendNewContactUsForm(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Form sent successfully"})
}

func (ctrl *MailController) VerifyEmail(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	otp, err := ctrl.mailService.SendOtp(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MsgResponse{Msg: otp})
}

func (ctrl *MailController) VerifyEmailFgUsr(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	otp, err := ctrl.mailService.SendOtpFgUsr(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MsgResponse{Msg: otp})
}

func (ctrl *MailController) VerifyEmailFgPsw(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	otp, err := ctrl.mailService.SendOtpFgPsw(req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MsgResponse{Msg: otp})
}

func (ctrl *MailController) SendUsernames(c *gin.Context) {
	var req models.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.mailService.SendUsernames(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Usernames sent successfully"})
}

func (ctrl *MailController) GetUsernames(c *gin.Context) {
	usernames, err := ctrl.mailService.GetUsernames(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, usernames)
}

func (ctrl *MailController) NotificationOfCreateStaff(c *gin.Context) {
	var req models.CredentialsNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.mailService.SendNotificationOfCreateNewStaff(req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notification sent"})
}

func (ctrl *MailController) NotificationOfCreateAdmin(c *gin.Context) {
	var req models.CredentialsNoticeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.mailService.SendNotificationOfCreateNewAdmin(req.Username, req.Password); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Notification sent"})
}
