package api

import (
	"log"
	stdhttp "net/http"

	intconfig "hotelbot/internal/config"
	h "hotelbot/internal/http/handlers"
	"hotelbot/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

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

	jwtSecret := []byte(env.JWTSecret)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login(jwtSecret))
		auth.POST("/register", h.Register)

		// Chat
		chat := api.Group("/chat")
		chat.POST("", h.Chat)
		chat.POST("/book", h.BookFromChat)
		chat.GET("/sessions/:id", h.SessionStatus)
		chat.GET("/sessions/:id/messages", h.SessionHistory)
		chat.POST("/sessions/:id/select-room", h.SelectRoom)

		// Bookings
		api.GET("/bookings/:id/confirmation", h.BookingConfirmationPDF)

		// Dataset processing (staff only)
		dataset := api.Group("/dataset")
		dataset.Use(middleware.AuthRequired(jwtSecret))
		dataset.POST("/process", h.ProcessDataset)
	}

	return r
}
