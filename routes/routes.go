package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hostel-backend/controllers"
	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"
)

func parseCorsOrigins() []string {
	raw := utils.EnvOrDefault("CORS_ORIGINS", "*")

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

func SetupRouter(
	ac *controllers.AuthController,
	hc *controllers.HostelController,
	rc *controllers.RoomController,
	resc *controllers.ReservationController,
	rvc *controllers.ReviewController,
	authSvc *services.AuthService,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

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

	r.Use(middleware.Identify(authSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", ac.Logout)
			auth.GET("/me", middleware.RequireUser(), ac.Me)
		}

		hostels := api.Group("/hostels")
		{
			hostels.GET("", hc.GetHostels)

			// must come before /:id
			hostels.GET("/featured", hc.GetFeaturedHostels)

			hostels.GET("/:id", hc.GetHostelByID)
			hostels.GET("/:id/rooms", hc.GetHostelRooms)
			hostels.GET("/:id/reviews", rvc.GetReviews)
			hostels.POST("/:id/reviews", middleware.RequireUser(), rvc.CreateReview)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("/:id", rc.GetRoomByID)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("/quote", resc.QuoteReservation)
			reservations.GET("", middleware.RequireUser(), resc.GetMyReservations)
			reservations.POST("", middleware.RequireUser(), resc.CreateReservation)
		}
	}

	return r
}
