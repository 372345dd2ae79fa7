package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "bustickets/internal/config"
	h "bustickets/internal/http/handlers"
	"bustickets/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	_ = env

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	// The front-end is served from a different origin; the API stays
	// permissive like the original.
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type"},
		MaxAge:          24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{"error": "Not Found"})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Account
		api.POST("/register", h.Register)
		api.POST("/login", h.Login)

		// Route lookups
		api.GET("/top-routes", h.TopRoutes)
		api.GET("/search", h.SearchRoutes)

		// Tickets
		api.POST("/tickets", h.BookTickets)
		api.GET("/tickets", h.GetUserTickets)
		api.GET("/tickets/:id", h.GetTicketByID)
		api.DELETE("/tickets/:id", h.CancelTicket)
		api.GET("/tickets/:id/pdf", h.GetTicketETicketPDF)

		// Support
		api.GET("/support", h.GetSupportRequests)
		api.POST("/support", h.CreateSupportRequest)

		// Admin
		admin := api.Group("/admin")
		admin.GET("/schedules", h.AdminListSchedules)
		admin.POST("/schedules", h.AdminCreateSchedule)
		admin.DELETE("/schedules/:id", h.AdminDeleteSchedule)
		admin.GET("/users", h.AdminListUsers)
		admin.GET("/tickets", h.AdminListTickets)
	}

	return r
}
