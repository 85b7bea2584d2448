package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-reservation/controllers"
	"github.com/yeremiapane/restaurant-reservation/middlewares"
	"github.com/yeremiapane/restaurant-reservation/models"
	"github.com/yeremiapane/restaurant-reservation/services"
	"github.com/yeremiapane/restaurant-reservation/store"
)

func SetupRouter(st *store.Store, monitor *services.AutoCompleteMonitor) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Rate limiter global (50 request per detik per IP)
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(st)
	tableCtrl := controllers.NewTableController(st)
	reservationCtrl := controllers.NewReservationController(st)
	notificationCtrl := controllers.NewNotificationController(st)
	feedbackCtrl := controllers.NewFeedbackController(st)
	adminCtrl := controllers.NewAdminController(st, monitor)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/login", userCtrl.Login)
	}

	// WebSocket dashboard events (token lewat query)
	r.GET("/events/ws", middlewares.AuthMiddleware(), controllers.EventsHandler)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.POST("/logout", userCtrl.Logout)
		auth.GET("/profile", userCtrl.GetProfile)
		auth.PATCH("/profile", userCtrl.UpdateProfile)

		// Meja: semua role boleh lihat
		auth.GET("/tables", tableCtrl.GetAllTables)
		auth.GET("/tables/layout", tableCtrl.GetTableLayout)

		// Reservasi: dikelola front-of-house (waiter, cashier) dan admin
		frontOfHouse := auth.Group("/reservations")
		frontOfHouse.Use(middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier))
		{
			frontOfHouse.POST("", reservationCtrl.CreateReservation)
			frontOfHouse.GET("", reservationCtrl.GetAllReservations)
			frontOfHouse.GET("/slots", reservationCtrl.GetAvailableSlots)
			frontOfHouse.GET("/:reservation_id", reservationCtrl.GetReservationByID)
			frontOfHouse.PUT("/:reservation_id", reservationCtrl.UpdateReservation)
			frontOfHouse.PATCH("/:reservation_id/status", reservationCtrl.UpdateReservationStatus)
		}

		// Notifikasi staff
		auth.GET("/notifications", notificationCtrl.GetAllNotifications)
		auth.PATCH("/notifications/:notif_id/read", notificationCtrl.MarkNotificationRead)
		auth.DELETE("/notifications/:notif_id", notificationCtrl.DeleteNotification)

		// Feedback: pelanggan mengisi, staff membaca
		auth.POST("/feedback", middlewares.RequireRoles(models.RoleCustomer), feedbackCtrl.CreateFeedback)
		auth.GET("/feedback", middlewares.RequireRoles(models.RoleWaiter, models.RoleCashier), feedbackCtrl.GetAllFeedback)

		// ------------------------------------------------------------
		//                      ADMIN ROUTES
		// ------------------------------------------------------------
		admin := auth.Group("/admin")
		admin.Use(middlewares.AdminOnly())
		{
			admin.POST("/register", userCtrl.Register)
			admin.GET("/users", userCtrl.GetAllUsers)
			admin.PATCH("/users/:user_id", userCtrl.UpdateUser)
			admin.DELETE("/users/:user_id", userCtrl.DeleteUser)

			admin.GET("/stats", adminCtrl.GetDashboardStats)
			admin.POST("/auto-complete/enable", adminCtrl.EnableAutoComplete)
			admin.POST("/auto-complete/disable", adminCtrl.DisableAutoComplete)
		}
	}

	return r
}
