package handlers

import (
	"net/http"

	"bustickets/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/top-routes
func TopRoutes(c *gin.Context) {
	svc := services.QueryService{}
	out, err := svc.TopRoutes()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/search?origin=&destination=&date=
func SearchRoutes(c *gin.Context) {
	svc := services.QueryService{}
	out, err := svc.Search(
		c.Query("origin"),
		c.Query("destination"),
		c.Query("date"),
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
