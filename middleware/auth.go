package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Goutam363/ewabeyapi/models"
	"github.com/Goutam363/ewabeyapi/repositories"
	"github.com/Goutam363/ewabeyapi/utils"
)

// Context keys set by the guards.
const (
	CtxUsername = "username"
	CtxAuthUser = "auth_user"
)

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Success: false,
		Message: message,
	})
	c.Abort()
}

// validateFor parses the bearer token and pins it to the expected role so a
// token issued against one principal store cannot replay against another.
func validateFor(c *gin.Context, role string) (*utils.Claims, bool) {
	token, ok := bearerToken(c)
	if !ok {
		abortUnauthorized(c, "Authorization header required")
		return nil, false
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		abortUnauthorized(c, "Invalid or expired token")
		return nil, false
	}
	if claims.Role != role {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Success: false,
			Message: "Access denied for this role",
		})
		c.Abort()
		return nil, false
	}
	return claims, true
}

// UserAuthMiddleware resolves the token's username against the user store and
// exposes the full user record to handlers that need the owner.
func UserAuthMiddleware() gin.HandlerFunc {
	userRepo := repositories.NewUserRepository()
	return func(c *gin.Context) {
		claims, ok := validateFor(c, utils.RoleUser)
		if !ok {
			return
		}
		user, err := userRepo.FindByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			abortUnauthorized(c, "Unknown user")
			return
		}
		c.Set(CtxUsername, user.Username)
		c.Set(CtxAuthUser, user)
		c.Next()
	}
}

func StaffAuthMiddleware() gin.HandlerFunc {
	staffRepo := repositories.NewStaffRepository()
	return func(c *gin.Context) {
		claims, ok := validateFor(c, utils.RoleStaff)
		if !ok {
			return
		}
		if _, err := staffRepo.FindByUsername(c.Request.Context(), claims.Username); err != nil {
			abortUnauthorized(c, "Unknown staff")
			return
		}
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

func AdminAuthMiddleware() gin.HandlerFunc {
	adminRepo := repositories.NewAdminRepository()
	return func(c *gin.Context) {
		claims, ok := validateFor(c, utils.RoleAdmin)
		if !ok {
			return
		}
		if _, err := adminRepo.FindByUsername(c.Request.Context(), claims.Username); err != nil {
			abortUnauthorized(c, "Unknown admin")
			return
		}
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// AuthUser returns the user record stored by UserAuthMiddleware.
func AuthUser(c *gin.Context) *models.User {
	value, exists := c.Get(CtxAuthUser)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
