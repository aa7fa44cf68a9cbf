package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jinu2024/TrainBookingSystem/models"
)

// NewRouter builds the gin engine with every route registered
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(h.log))

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", h.Health)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	authed := api.Group("")
	authed.Use(h.AuthRequired())
	{
		authed.POST("/auth/logout", h.Logout)

		authed.GET("/me", h.GetProfile)
		authed.PUT("/me", h.UpdateProfile)
		authed.GET("/me/passengers", h.ListPassengers)
		authed.POST("/me/passengers", h.AddPassenger)
		authed.PUT("/me/passengers/:id", h.UpdatePassenger)
		authed.DELETE("/me/passengers/:id", h.RemovePassenger)

		authed.GET("/stations", h.ListStations)
		authed.GET("/trains", h.ListTrains)
		authed.GET("/schedules/search", h.SearchSchedules)
		authed.GET("/schedules/:id", h.GetSchedule)
	}

	bookings := authed.Group("/bookings")
	bookings.Use(RequireRole(models.RoleCustomer))
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:code", h.GetBooking)
		bookings.DELETE("/:code", h.CancelBooking)
		bookings.GET("/:code/ticket", h.GetTicket)
	}

	admin := authed.Group("/admin")
	admin.Use(RequireRole(models.RoleAdmin))
	{
		admin.POST("/trains", h.CreateTrain)
		admin.PUT("/trains/:id", h.UpdateTrain)
		admin.DELETE("/trains/:id", h.RemoveTrain)
		admin.POST("/trains/:id/activate", h.ReactivateTrain)
		admin.GET("/trains/:id/schedules", h.TrainSchedules)

		admin.POST("/stations", h.CreateStation)
		admin.PUT("/stations/:id", h.UpdateStation)

		admin.GET("/schedules", h.ListSchedules)
		admin.POST("/schedules", h.CreateSchedule)
		admin.PUT("/schedules/:id", h.UpdateSchedule)
		admin.DELETE("/schedules/:id", h.DeleteSchedule)

		admin.POST("/admins", h.CreateAdmin)
		admin.POST("/users/:id/deactivate", h.DeactivateUser)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
