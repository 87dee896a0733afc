package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "github.com/deveshjagdale07/ConnectHire/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/deveshjagdale07/ConnectHire/internal/controller/admin"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/api"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/auth"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/dashboard"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/listing"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/messaging"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/notification"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/profile"
	"github.com/deveshjagdale07/ConnectHire/internal/controller/request"
	"github.com/deveshjagdale07/ConnectHire/internal/middleware"
	"github.com/deveshjagdale07/ConnectHire/internal/model"
)

// RegisterRoutes will register each http endpoint route to the bound MyServer
// instance.
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOriginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrigins := strings.Split(allowOriginsStr, ",")

	authCtl := auth.NewAuthController(s.DB, s.Sessions)
	profileCtl := profile.NewProfileController(s.DB)
	listingCtl := listing.NewListingController(s.DB, s.Events)
	requestCtl := request.NewRequestController(s.DB, s.Events)
	messagingCtl := messaging.NewMessagingController(s.DB)
	notificationCtl := notification.NewNotificationController(s.DB)
	dashboardCtl := dashboard.NewDashboardController(s.DB)
	adminCtl := admin.NewAdminController(s.DB)
	apiCtl := api.NewAPIController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type"},
		AllowCredentials: true, // sessions ride on cookies
	}))
	r.Use(middleware.SafeHeader())
	r.Use(middleware.EnvRateLimitMiddleware())

	r.Static("/public", "./public")

	r.GET("/", s.HomeHandler)
	r.GET("/health", s.healthHandler)

	authRoute := r.Group("/auth")
	{
		authRoute.GET("/register", authCtl.ShowRegister)
		authRoute.POST("/register", authCtl.Register)
		authRoute.GET("/login", authCtl.ShowLogin)
		authRoute.POST("/login", authCtl.Login)
		authRoute.GET("/logout", authCtl.Logout)
	}

	// Public read-only API
	apiRoute := r.Group("/api")
	{
		apiRoute.GET("/jobs", apiCtl.ListJobs)
		apiRoute.GET("/jobs/:id", apiCtl.GetJob)
		apiRoute.GET("/developers", apiCtl.ListDevelopers)
		apiRoute.GET("/developers/:id", apiCtl.GetDeveloper)
	}

	needLogin := r.Group("")
	{
		needLogin.Use(middleware.RequireLogin(s.Sessions))

		seekerRoute := needLogin.Group("/job_seeker")
		{
			seekerRoute.Use(middleware.CheckRole(model.RoleJobSeeker))
			seekerRoute.GET("/dashboard", dashboardCtl.SeekerDashboard)
			seekerRoute.GET("/create_profile", profileCtl.ShowSeekerProfileForm)
			seekerRoute.POST("/create_profile", middleware.SizeLimit(10<<20), profileCtl.SaveSeekerProfile)
			seekerRoute.POST("/upload_resume", middleware.SizeLimit(10<<20), profileCtl.UploadResume)
			seekerRoute.POST("/certifications", middleware.SizeLimit(10<<20), profileCtl.AddCertification)
			seekerRoute.POST("/certifications/delete/:id", profileCtl.DeleteCertification)
			seekerRoute.GET("/browse_jobs", listingCtl.BrowseListings)
			seekerRoute.POST("/apply_job/:id", listingCtl.Apply)
			seekerRoute.GET("/my_applications", listingCtl.MyApplications)
			seekerRoute.GET("/requests", requestCtl.SeekerRequests)
			seekerRoute.POST("/requests/:id/accept", requestCtl.Accept)
			seekerRoute.POST("/requests/:id/reject", requestCtl.Reject)
		}

		companyRoute := needLogin.Group("/company")
		{
			companyRoute.Use(middleware.CheckRole(model.RoleCompany))
			companyRoute.GET("/dashboard", dashboardCtl.CompanyDashboard)
			companyRoute.GET("/create_profile", profileCtl.ShowCompanyProfileForm)
			companyRoute.POST("/create_profile", middleware.SizeLimit(10<<20), profileCtl.SaveCompanyProfile)
			companyRoute.GET("/browse_developers", profileCtl.BrowseDevelopers)
			companyRoute.POST("/post_job", listingCtl.CreateListing)
			companyRoute.GET("/my_listings", listingCtl.MyListings)
			companyRoute.GET("/listings/:id/applicants", listingCtl.Applicants)
			companyRoute.POST("/applications/:id/schedule_interview", listingCtl.ScheduleInterview)
			companyRoute.POST("/send_request/:seekerId", requestCtl.SendRequest)
			companyRoute.GET("/sent_requests", requestCtl.SentRequests)
		}

		adminRoute := needLogin.Group("/admin")
		{
			adminRoute.Use(middleware.CheckRole(model.RoleAdmin))
			adminRoute.GET("/dashboard", adminCtl.Dashboard)
			adminRoute.POST("/delete_user/:id", adminCtl.DeleteUser)
			adminRoute.POST("/delete_request/:id", adminCtl.DeleteRequest)
		}

		messageRoute := needLogin.Group("/messages")
		{
			messageRoute.GET("", messagingCtl.ListConversations)
			messageRoute.GET("/:partnerId", messagingCtl.ViewConversation)
			messageRoute.POST("/:partnerId", messagingCtl.SendMessage)
		}

		notificationRoute := needLogin.Group("/notifications")
		{
			notificationRoute.GET("", notificationCtl.List)
			notificationRoute.POST("/:id/mark_as_read", notificationCtl.MarkAsRead)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HomeHandler is the public landing view model.
func (s *MyServer) HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":   "ConnectHire",
		"message": "Welcome to ConnectHire",
	})
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
