package routes

import (
	"net/http"

	"driveschool-backend/config"
	"driveschool-backend/controllers"
	"driveschool-backend/services"
	"driveschool-backend/store"
	"driveschool-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(st *store.Store, relay *services.RelayService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://tolworthdriving.co.uk",
			"https://www.tolworthdriving.co.uk",
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := &controllers.AuthController{Store: st}
	publicController := &controllers.PublicController{Store: st}
	enquiryController := &controllers.EnquiryController{Relay: relay}
	bookingController := &controllers.BookingController{Store: st, Relay: relay}
	serviceController := &controllers.ServiceController{Store: st}
	testimonialController := &controllers.TestimonialController{Store: st}
	settingsController := &controllers.SettingsController{Store: st}
	dashboardController := &controllers.DashboardController{Store: st}

	auth := r.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	{
		// Public site content and forms
		api.GET("/settings", publicController.GetSettings)
		api.GET("/services", publicController.GetServices)
		api.GET("/testimonials", publicController.GetTestimonials)
		api.GET("/posts", publicController.GetPosts)
		api.POST("/coverage", publicController.CheckCoverage)
		api.POST("/enquiries", enquiryController.Create)
		api.POST("/bookings", bookingController.Create)

		admin := api.Group("/admin")
		admin.Use(utils.AuthMiddleware(st))
		{
			bookings := admin.Group("/bookings")
			{
				bookings.GET("", bookingController.GetBookings)
				bookings.PUT("/:id/status", bookingController.UpdateStatus)
				bookings.DELETE("/:id", bookingController.Delete)
			}

			adminServices := admin.Group("/services")
			{
				adminServices.GET("", serviceController.GetServices)
				adminServices.POST("", serviceController.CreateService)
				adminServices.PUT("/:id", serviceController.UpdateService)
				adminServices.DELETE("/:id", serviceController.DeleteService)
			}

			testimonials := admin.Group("/testimonials")
			{
				testimonials.GET("", testimonialController.GetTestimonials)
				testimonials.POST("", testimonialController.CreateTestimonial)
				testimonials.PUT("/:id", testimonialController.UpdateTestimonial)
				testimonials.DELETE("/:id", testimonialController.DeleteTestimonial)
			}

			adminSettings := admin.Group("/settings")
			{
				adminSettings.GET("", settingsController.GetSettings)
				adminSettings.PUT("", settingsController.UpdateSettings)
				adminSettings.POST("/gallery", settingsController.AddGalleryImages)
			}

			admin.GET("/dashboard", dashboardController.GetOverview)
		}
	}

	// Legacy paths from the old site resolve to home-page anchors.
	legacy := map[string]string{
		"/services": "/#services",
		"/areas":    "/#areas",
		"/contact":  "/#contact",
	}
	for path, anchor := range legacy {
		target := anchor
		r.GET(path, func(c *gin.Context) {
			c.Redirect(http.StatusFound, target)
		})
	}

	return r
}
