package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into the gin engine.
func SetupRouter(
	ac *controllers.AuthController,
	pc *controllers.PropertyController,
	bc *controllers.BookingController,
	oc *controllers.OwnerController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
		}

		// Public browse endpoints.
		api.GET("/properties", pc.ListAvailable)
		api.GET("/properties/:id", pc.GetProperty)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth())
		{
			authed.POST("/properties", pc.CreateProperty)
			authed.PUT("/properties/:id", pc.UpdateProperty)

			bookings := authed.Group("/bookings")
			{
				bookings.POST("", bc.CreateBooking)
				bookings.GET("", bc.ListBookings)
				bookings.GET("/:id", bc.GetBooking)
				bookings.PUT("/:id/status", bc.UpdateStatus)
			}

			owner := authed.Group("/owner")
			{
				owner.GET("/bookings", oc.ListBookings)
				owner.GET("/stats", oc.Stats)
				owner.GET("/properties", pc.ListMine)
			}
		}
	}

	return r
}
