package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "shuttle-backend/internal/config"
	"shuttle-backend/internal/domain"
	h "shuttle-backend/internal/http/handlers"
	"shuttle-backend/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Init(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	mustAuth := middleware.MustAuth([]byte(env.JWTSecret))
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		routes := api.Group("/routes")
		routes.GET("", h.GetRoutes)
		routes.POST("", mustAuth, adminOnly, h.CreateRoute)
		routes.PUT("/:id", mustAuth, adminOnly, h.UpdateRoute)
		routes.DELETE("/:id", mustAuth, adminOnly, h.DeleteRoute)

		shuttles := api.Group("/shuttles")
		shuttles.GET("", h.GetShuttles)
		shuttles.POST("", mustAuth, adminOnly, h.CreateShuttle)

		trips := api.Group("/trips")
		trips.POST("/create", mustAuth, adminOnly, h.CreateTrip)
		trips.GET("/trips-by-route", h.GetTripsByRoute)
		trips.GET("/trips-by-shuttle", h.GetTripsByShuttle)
		trips.GET("/:id", mustAuth, h.GetTripByID)
		trips.DELETE("/:id", mustAuth, adminOnly, h.DeleteTrip)

		bookings := api.Group("/bookings")
		bookings.Use(mustAuth)
		bookings.POST("/create", h.CreateBooking)
		bookings.GET("", h.ListMyBookings)
		bookings.GET("/:id/receipt", h.GetBookingReceipt)

		api.GET("/wallet", mustAuth, h.GetWallet)

		transactions := api.Group("/transactions")
		transactions.Use(mustAuth)
		transactions.GET("/get-transactions", h.GetMyTransactions)
		transactions.GET("", adminOnly, h.GetAllTransactions)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		cfg.AllowOrigins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return cors.New(cfg)
}
