package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/middleware"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/services"
)

type ProjectController struct {
	projectService *services.ProjectService
}

func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

func (ctrl *ProjectController) Test(c *gin.Context) {
	c.String(http.StatusOK, "Testing Successful!")
}

// GetProjects godoc
// @Summary List own projects
// @Tags Projects
// @Security BearerAuth
// @Produce json
// @Param stage query string false "Filter by stage"
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Project
// @Router /api/project [get]
func (ctrl *ProjectController) GetProjects(c *gin.Context) {
	var filter models.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(c, err)
		return
	}

	user := middleware.AuthUser(c)
	projects, err := ctrl.projectService.GetProjects(c.Request.Context(), filter, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a project
// @Tags Projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProjectRequest true "Create Project Request"
// @Success 201 {object} models.Project
// @Router /api/project [post]
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user := middleware.AuthUser(c)
	project, err := ctrl.projectService.CreateProject(c.Request.Context(), req, user)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProjectsSecure serves the unscoped staff/admin listing.
func (ctrl *ProjectController) GetProjectsSecure(c *gin.Context) {
	var filter models.ProjectFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondBadRequest(c, err)
		return
	}

	projects, err := ctrl.projectService.GetProjectsSecure(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectsByUsername lets staff pull every project a client opened.
func (ctrl *ProjectController) GetProjectsByUsername(c *gin.Context) {
	projects, err := ctrl.projectService.GetProjectsByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (ctrl *ProjectController) GetProjectByID(c *gin.Context) {
	project, err := ctrl.projectService.GetProjectByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) VerifyProjectByID(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.projectService.VerifyProjectByID(c.Request.Context(), c.Param("id")))
}

func (ctrl *ProjectController) UpdateProjectStatus(c *gin.Context) {
	var req models.UpdateProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProjectStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProjectStage(c *gin.Context) {
	var req models.UpdateProjectStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProjectStage(c.Request.Context(), c.Param("id"), req.Stage)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProjectStaff(c *gin.Context) {
	var req models.UpdateProjectStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProjectStaff(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProject(c *gin.Context) {
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProject(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProjectSuper(c *gin.Context) {
	var req models.UpdateProjectAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProjectSuper(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (ctrl *ProjectController) UpdateProjectValue(c *gin.Context) {
	var req models.UpdateProjectValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.UpdateProjectValue(c.Request.Context(), c.Param("id"), req.ProjectValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// AddPaidAmount godoc
// @Summary Record a payment against a project
// @Tags Projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project id"
// @Param request body models.AddPaidAmountRequest true "Payment"
// @Success 200 {object} models.Project
// @Router /api/project/secure/admin/{id}/paid-amount [patch]
func (ctrl *ProjectController) AddPaidAmount(c *gin.Context) {
	var req models.AddPaidAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	project, err := ctrl.projectService.AddPaidAmount(c.Request.Context(), c.Param("id"), req.Amount, req.PaymentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}
