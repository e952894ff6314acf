package routes

import (
	adminapi "santix-backoffice/internal/api/admin"
	assetsapi "santix-backoffice/internal/api/assets"
	authapi "santix-backoffice/internal/api/auth"
	funapi "santix-backoffice/internal/api/fun"
	moviesapi "santix-backoffice/internal/api/movies"
	ordersapi "santix-backoffice/internal/api/orders"
	paymentsapi "santix-backoffice/internal/api/payments"
	showtimesapi "santix-backoffice/internal/api/showtimes"
	theatersapi "santix-backoffice/internal/api/theaters"
	usersapi "santix-backoffice/internal/api/users"
	"santix-backoffice/database"
	"santix-backoffice/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// The webhook body is signed by Midtrans; it must reach the handler
	// byte-for-byte, so it skips the sanitizer group.
	r.POST("/payments/webhook", paymentsapi.PaymentWebhook)

	r.GET("/health", func(c *gin.Context) {
		var one int
		if err := database.DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
			c.JSON(500, gin.H{"error": "Database unreachable"})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	})

	r.GET("/payments/history", paymentsapi.GetPaymentHistory)
	r.GET("/payments/:orderId/status", paymentsapi.GetPaymentStatus)
	r.POST("/payments/:orderId/sync", paymentsapi.SyncPaymentStatus)

	r.GET("/assets/:id", assetsapi.GetAsset)
	r.POST("/assets", assetsapi.UploadAsset)

	r.GET("/auth/mobile/start", authapi.GoogleMobileStart)
	r.GET("/auth/mobile/callback", authapi.GoogleMobileCallback)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/auth/google", authapi.GoogleSignIn)
	public.POST("/payments/create", paymentsapi.CreatePayment)

	public.GET("/movies", moviesapi.ListMovies)
	public.GET("/movies/:id", moviesapi.GetMovie)
	public.POST("/movies", moviesapi.CreateMovie)
	public.PUT("/movies/:id", moviesapi.UpdateMovie)
	public.DELETE("/movies/:id", moviesapi.DeleteMovie)

	public.GET("/theaters", theatersapi.ListTheaters)
	public.GET("/theaters/:id", theatersapi.GetTheater)
	public.POST("/theaters", theatersapi.CreateTheater)
	public.PUT("/theaters/:id", theatersapi.UpdateTheater)
	public.DELETE("/theaters/:id", theatersapi.DeleteTheater)

	public.GET("/showtimes", showtimesapi.ListShowtimes)
	public.GET("/showtimes/:id", showtimesapi.GetShowtime)
	public.POST("/showtimes", showtimesapi.CreateShowtime)
	public.PUT("/showtimes/:id", showtimesapi.UpdateShowtime)
	public.DELETE("/showtimes/:id", showtimesapi.DeleteShowtime)

	public.GET("/orders", ordersapi.ListOrders)
	public.GET("/orders/:id", ordersapi.GetOrder)
	public.POST("/orders", ordersapi.CreateOrder)
	public.PUT("/orders/:id", ordersapi.UpdateOrder)
	public.DELETE("/orders/:id", ordersapi.DeleteOrder)

	public.GET("/users", usersapi.ListUsers)
	public.GET("/users/:id", usersapi.GetUser)
	public.POST("/users", usersapi.CreateUser)
	public.PUT("/users/:id", usersapi.UpdateUser)
	public.DELETE("/users/:id", usersapi.DeleteUser)

	public.GET("/fun", funapi.ListItems)
	public.GET("/fun/:id", funapi.GetItem)
	public.POST("/fun", funapi.CreateItem)
	public.PUT("/fun/:id", funapi.UpdateItem)
	public.DELETE("/fun/:id", funapi.DeleteItem)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetStats)
}
