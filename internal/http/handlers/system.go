package handlers

import (
	"net/http"

	intconfig "bustickets/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		respondError(c, http.StatusInternalServerError, "database not connected")
		return
	}
	var count int
	if err := intconfig.DB.QueryRow("SELECT COUNT(*) FROM schedule").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "database check failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database OK", "schedules_in_db": count})
}
