package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/middleware"
	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/services"
)

type AuthController struct {
	authService *services.AuthService
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Signup godoc
// @Summary Register new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "Signup Request"
// @Success 201 {object} models.Response
// @Failure 409 {object} models.ErrorResponse
// @Router /api/auth/signup [post]
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.authService.CreateUser(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "User registered successfully"})
}

// SignIn godoc
// @Summary User sign in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.SignInRequest true "SignIn Request"
// @Success 200 {object} models.AccessTokenResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/signin [post]
func (ctrl *AuthController) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, err := ctrl.authService.SignInUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AccessTokenResponse{AccessToken: token})
}

// GetProfile godoc
// @Summary Get signed-in user's profile
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.UserProfile
// @Router /api/auth/profile [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	username := c.GetString(middleware.CtxUsername)

	profile, err := ctrl.authService.GetProfileByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (ctrl *AuthController) CheckUsername(c *gin.Context) {
	exist := ctrl.authService.CheckUsername(c.Request.Context(), c.Param("username"))
	c.JSON(http.StatusOK, models.ExistResponse{Exist: exist})
}

func (ctrl *AuthController) UpdatePassword(c *gin.Context) {
	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.authService.UpdatePassword(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Password updated successfully"})
}

func (ctrl *AuthController) GetAllUsers(c *gin.Context) {
	users, err := ctrl.authService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (ctrl *AuthController) GetUserByID(c *gin.Context) {
	user, err := ctrl.authService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctrl *AuthController) UpdateUserByStaff(c *gin.Context) {
	var req models.UpdateUserByStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctrl.authService.UpdateUserByStaff(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (ctrl *AuthController) UpdateUserByAdmin(c *gin.Context) {
	var req models.UpdateUserByAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := ctrl.authService.UpdateUserByAdmin(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Staff section

func (ctrl *AuthController) CreateStaff(c *gin.Context) {
	var req models.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.authService.CreateStaff(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Staff registered successfully"})
}

func (ctrl *AuthController) SignInStaff(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, err := ctrl.authService.SignInStaff(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AccessTokenResponse{AccessToken: token})
}

func (ctrl *AuthController) CheckUsernameStaff(c *gin.Context) {
	exist := ctrl.authService.CheckUsernameStaff(c.Request.Context(), c.Param("username"))
	c.JSON(http.StatusOK, models.ExistResponse{Exist: exist})
}

func (ctrl *AuthController) GetAllStaffs(c *gin.Context) {
	staffs, err := ctrl.authService.GetAllStaffs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staffs)
}

func (ctrl *AuthController) GetStaffByID(c *gin.Context) {
	staff, err := ctrl.authService.GetStaffByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

func (ctrl *AuthController) VerifyStaffByID(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.authService.VerifyStaffByID(c.Request.Context(), c.Param("id")))
}

func (ctrl *AuthController) UpdateStaffByAdmin(c *gin.Context) {
	var req models.UpdateStaffByAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	staff, err := ctrl.authService.UpdateStaffByAdmin(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// Admin section

func (ctrl *AuthController) CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := ctrl.authService.CreateAdmin(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Admin registered successfully"})
}

func (ctrl *AuthController) SignInAdmin(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	token, err := ctrl.authService.SignInAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.AccessTokenResponse{AccessToken: token})
}

func (ctrl *AuthController) CheckUsernameAdmin(c *gin.Context) {
	exist := ctrl.authService.CheckUsernameAdmin(c.Request.Context(), c.Param("username"))
	c.JSON(http.StatusOK, models.ExistResponse{Exist: exist})
}

func (ctrl *AuthController) GetAllAdmins(c *gin.Context) {
	admins, err := ctrl.authService.GetAllAdmins(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

func (ctrl *AuthController) GetAdminByID(c *gin.Context) {
	admin, err := ctrl.authService.GetAdminByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (ctrl *AuthController) VerifyAdminByID(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.authService.VerifyAdminByID(c.Request.Context(), c.Param("id")))
}

func (ctrl *AuthController) UpdateAdminByAdmin(c *gin.Context) {
	var req models.UpdateAdminByAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	admin, err := ctrl.authService.UpdateAdminByAdmin(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, admin)
}

func (ctrl *AuthController) DeleteAdmin(c *gin.Context) {
	if err := ctrl.authService.DeleteAdmin(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Admin deleted successfully"})
}
