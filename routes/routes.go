package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Goutam363/ewabeyapi/controllers"
	"github.com/Goutam363/ewabeyapi/middleware"
	"github.com/Goutam363/ewabeyapi/services"
)

func SetupRoutes(router *gin.Engine) {
	authService := services.NewAuthService()
	projectService := services.NewProjectService()
	contactService := services.NewContactService()
	mobileService := services.NewMobileService()

	mailService, err := services.NewMailService(authService)
	if err != nil {
		log.Fatalf("mail service: %v", err)
	}
	storageService, err := services.NewStorageService(projectService, authService)
	if err != nil {
		log.Fatalf("storage service: %v", err)
	}

	authCtrl := controllers.NewAuthController(authService)
	projectCtrl := controllers.NewProjectController(projectService)
	mailCtrl := controllers.NewMailController(mailService)
	mobileCtrl := controllers.NewMobileController(mobileService)
	storageCtrl := controllers.NewStorageController(storageService)
	contactCtrl := controllers.NewContactController(contactService)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", authCtrl.Signup)
		auth.POST("/signin", authCtrl.SignIn)
		auth.GET("/check-username/:username", authCtrl.CheckUsername)
		auth.POST("/staff/signin", authCtrl.SignInStaff)
		auth.GET("/staff/check-username/:username", authCtrl.CheckUsernameStaff)
		auth.POST("/admin/signin", authCtrl.SignInAdmin)
		auth.GET("/admin/check-username/:username", authCtrl.CheckUsernameAdmin)

		// Unauthenticated reset path; the caller proves ownership with the
		// registered email, and the throttle keeps guessing expensive.
		auth.POST("/update-password", middleware.RateLimitMiddleware(), authCtrl.UpdatePassword)

		auth.GET("/profile", middleware.UserAuthMiddleware(), authCtrl.GetProfile)

		authStaff := auth.Group("/secure/staff")
		authStaff.Use(middleware.StaffAuthMiddleware())
		{
			authStaff.GET("/user/:id", authCtrl.GetUserByID)
			authStaff.PATCH("/user/:id", authCtrl.UpdateUserByStaff)
		}

		authAdmin := auth.Group("/secure/admin")
		authAdmin.Use(middleware.AdminAuthMiddleware())
		{
			authAdmin.POST("/staff", authCtrl.CreateStaff)
			authAdmin.POST("/admin", authCtrl.CreateAdmin)

			authAdmin.GET("/users", authCtrl.GetAllUsers)
			authAdmin.GET("/staffs", authCtrl.GetAllStaffs)
			authAdmin.GET("/admins", authCtrl.GetAllAdmins)

			authAdmin.GET("/user/:id", authCtrl.GetUserByID)
			authAdmin.GET("/staff/:id", authCtrl.GetStaffByID)
			authAdmin.GET("/admin/:id", authCtrl.GetAdminByID)
			authAdmin.GET("/staff/:id/verify", authCtrl.VerifyStaffByID)
			authAdmin.GET("/admin/:id/verify", authCtrl.VerifyAdminByID)

			authAdmin.PATCH("/user/:id", authCtrl.UpdateUserByAdmin)
			authAdmin.PATCH("/staff/:id", authCtrl.UpdateStaffByAdmin)
			authAdmin.PATCH("/admin/:id", authCtrl.UpdateAdminByAdmin)
			authAdmin.DELETE("/admin/:id", authCtrl.DeleteAdmin)
		}
	}

	project := router.Group("/api/project")
	{
		project.GET("/test", projectCtrl.Test)

		project.GET("", middleware.UserAuthMiddleware(), projectCtrl.GetProjects)
		project.POST("", middleware.UserAuthMiddleware(), projectCtrl.CreateProject)
		project.GET("/username/:username", middleware.StaffAuthMiddleware(), projectCtrl.GetProjectsByUsername)

		projectStaff := project.Group("/secure/staff")
		projectStaff.Use(middleware.StaffAuthMiddleware())
		{
			projectStaff.GET("", projectCtrl.GetProjectsSecure)
			projectStaff.GET("/:id", projectCtrl.GetProjectByID)
			projectStaff.PATCH("/:id", projectCtrl.UpdateProjectStaff)
			projectStaff.PATCH("/:id/status", projectCtrl.UpdateProjectStatus)
			projectStaff.PATCH("/:id/stage", projectCtrl.UpdateProjectStage)
		}

		projectAdmin := project.Group("/secure/admin")
		projectAdmin.Use(middleware.AdminAuthMiddleware())
		{
			projectAdmin.GET("", projectCtrl.GetProjectsSecure)
			projectAdmin.GET("/:id", projectCtrl.GetProjectByID)
			projectAdmin.GET("/:id/verify", projectCtrl.VerifyProjectByID)
			projectAdmin.PATCH("/:id", projectCtrl.UpdateProjectSuper)
			projectAdmin.PATCH("/:id/status", projectCtrl.UpdateProjectStatus)
			projectAdmin.PATCH("/:id/stage", projectCtrl.UpdateProjectStage)
			projectAdmin.PATCH("/:id/project-details", projectCtrl.UpdateProject)
			projectAdmin.PATCH("/:id/project-value", projectCtrl.UpdateProjectValue)
			projectAdmin.PATCH("/:id/paid-amount", projectCtrl.AddPaidAmount)
		}
	}

	mail := router.Group("/mail")
	mail.Use(middleware.RateLimitMiddleware())
	{
		mail.POST("/contact-us", mailCtrl.ContactUs)
		mail.POST("/verify-email", mailCtrl.VerifyEmail)
		mail.POST("/fg-usr/verify-email", mailCtrl.VerifyEmailFgUsr)
		mail.POST("/fg-psw/verify-email", mailCtrl.VerifyEmailFgPsw)
		mail.POST("/fg-usr/send-usrname", mailCtrl.SendUsernames)
		mail.GET("/fg-usr/send-usrname/:email", mailCtrl.GetUsernames)
	}

	mailAdmin := router.Group("/mail/notification")
	mailAdmin.Use(middleware.AdminAuthMiddleware())
	{
		mailAdmin.POST("/create-staff", mailCtrl.NotificationOfCreateStaff)
		mailAdmin.POST("/create-admin", mailCtrl.NotificationOfCreateAdmin)
	}

	router.POST("/mobile/verify-mobile", middleware.RateLimitMiddleware(), mobileCtrl.VerifyMobile)

	storage := router.Group("/storage")
	storage.Use(middleware.AdminAuthMiddleware())
	{
		storage.POST("/upload/project-details", storageCtrl.UploadProjectDetails)
		storage.POST("/upload/staff-details", storageCtrl.UploadStaffDetails)
		storage.POST("/upload/admin-details", storageCtrl.UploadAdminDetails)
	}

	contacts := router.Group("/contact")
	contacts.Use(middleware.AdminAuthMiddleware())
	{
		contacts.GET("", contactCtrl.GetContacts)
	}
}
