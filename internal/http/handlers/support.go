package handlers

import (
	"net/http"

	"bustickets/internal/services"

	"github.com/gin-gonic/gin"
)

type supportRequestBody struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /api/support
func CreateSupportRequest(c *gin.Context) {
	var req supportRequestBody
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.SupportService{}
	sr, err := svc.Create(req.Name, req.Email, req.Message)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sr)
}

// GET /api/support
func GetSupportRequests(c *gin.Context) {
	svc := services.SupportService{}
	out, err := svc.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
