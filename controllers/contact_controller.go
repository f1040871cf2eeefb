package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/services"
)

type ContactController struct {
	contactService *services.ContactService
}

func NewContactController(contactService *services.ContactService) *ContactController {
	return &ContactController{contactService: contactService}
}

func (ctrl *ContactController) GetContacts(c *gin.Context) {
	contacts, err := ctrl.contactService.GetContacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}
