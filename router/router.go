package router

import (
	"github.com/amandier/restaurant-backend/controllers"
	"github.com/amandier/restaurant-backend/middlewares"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := controllers.NewUserController(db)
	reservationCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db)
	contactCtrl := controllers.NewContactController(db)
	adminCtrl := controllers.NewAdminController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------

	// Strict rate limiter on login/register
	authPublic := r.Group("/")
	authPublic.Use(middlewares.NewStrictRateLimiter())
	{
		authPublic.POST("/register", userCtrl.Register)
		authPublic.POST("/login", userCtrl.Login)
	}

	// Public JSON API consumed by the website frontend
	api := r.Group("/api")
	{
		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.GET("/reservations/availability", reservationCtrl.GetAvailableTimeSlots)
		api.GET("/menu", menuCtrl.GetMenuItems)
		api.GET("/menu/categories", menuCtrl.GetMenuCategories)
		api.POST("/contact", contactCtrl.SubmitContactForm)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)

	// RESERVATIONS
	auth.GET("/reservations", reservationCtrl.ListReservations)
	auth.PATCH("/reservations/:reservation_id/status", reservationCtrl.UpdateReservationStatus)

	// MENU
	auth.POST("/menu", menuCtrl.CreateMenuItem)
	auth.PATCH("/menu/:item_id", menuCtrl.UpdateMenuItem)
	auth.DELETE("/menu/:item_id", menuCtrl.DeleteMenuItem)
	auth.POST("/menu/:item_id/toggle", menuCtrl.ToggleItemAvailability)

	// CONTACT MESSAGES
	auth.GET("/messages", contactCtrl.GetContactMessages)
	auth.GET("/messages/stats", contactCtrl.GetMessageStats)
	auth.PATCH("/messages/:message_id/status", contactCtrl.UpdateMessageStatus)

	// DASHBOARD
	auth.GET("/dashboard/stats", adminCtrl.GetDashboardStats)
	auth.GET("/dashboard/activity", adminCtrl.GetRecentActivity)

	// SETTINGS
	auth.GET("/settings", adminCtrl.GetRestaurantSettings)
	auth.PUT("/settings", adminCtrl.UpdateRestaurantSetting)

	// Live updates for the dashboard (token via query param)
	auth.GET("/ws", controllers.LiveHandler)

	return r
}
