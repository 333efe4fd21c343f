package routes

import (
	"net/http"
	"time"

	"barberpro/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational booking endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("/:sessionID/message", hb.ChatMessage)
		api.POST("/:sessionID/accept", hb.ChatAccept)
		api.DELETE("/:sessionID", hb.ChatReset)
	}
}

// RegisterAppointmentRoutes registers the calendar endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("", hb.ListAppointments)
		api.POST("", hb.CreateAppointment)
		api.PATCH("/:id/status", hb.UpdateAppointmentStatus)
	}
}

// RegisterShopRoutes registers catalog, settings, client and ledger endpoints.
func RegisterShopRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	services := r.Group("/api/services")
	{
		services.GET("", hb.ListServices)
		services.POST("", hb.CreateService)
		services.DELETE("/:id", hb.DeleteService)
	}

	settings := r.Group("/api/settings")
	{
		settings.GET("", hb.GetSettings)
		settings.PUT("", hb.UpdateSettings)
	}

	clients := r.Group("/api/clients")
	{
		clients.GET("", hb.ListClients)
		clients.POST("", hb.CreateClient)
	}

	transactions := r.Group("/api/transactions")
	{
		transactions.GET("", hb.ListTransactions)
		transactions.POST("", hb.CreateTransaction)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BarberPro"})
	})
}

// RegisterRoutes wires every endpoint group plus CORS.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterChatRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterShopRoutes(r, hb)
}
