package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bustickets/internal/domain/models"
	"bustickets/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Admin surface mirrors the desktop admin panel: schedule management plus
// read-only listings of users and tickets. Unauthenticated, like the panel
// it replaces; intended for operator-network use only.

// GET /api/admin/schedules
func AdminListSchedules(c *gin.Context) {
	repo := repositories.ScheduleRepository{}
	out, err := repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not list schedules")
		return
	}
	c.JSON(http.StatusOK, out)
}

type adminScheduleRequest struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	DepartureTime  string  `json:"departure_time"`
	Operator       string  `json:"operator"`
	Price          float64 `json:"price"`
	SeatsAvailable int     `json:"seats_available"`
}

// POST /api/admin/schedules
func AdminCreateSchedule(c *gin.Context) {
	var req adminScheduleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Origin == "" || req.Destination == "" || req.Operator == "" {
		respondError(c, http.StatusBadRequest, "origin, destination and operator are required")
		return
	}
	if req.SeatsAvailable < 0 {
		respondError(c, http.StatusBadRequest, "seats_available must not be negative")
		return
	}

	dep, err := parseDepartureTime(req.DepartureTime)
	if err != nil {
		respondError(c, http.StatusBadRequest, "departure_time must be RFC3339 or 'YYYY-MM-DD HH:MM:SS'")
		return
	}

	repo := repositories.ScheduleRepository{}
	id, err := repo.Insert(models.Schedule{
		Origin:         req.Origin,
		Destination:    req.Destination,
		DepartureTime:  dep,
		Operator:       req.Operator,
		Price:          req.Price,
		SeatsAvailable: req.SeatsAvailable,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not create schedule")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// DELETE /api/admin/schedules/:id
func AdminDeleteSchedule(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Schedule not found")
		return
	}

	repo := repositories.ScheduleRepository{}
	affected, err := repo.Delete(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not delete schedule")
		return
	}
	if affected == 0 {
		respondError(c, http.StatusNotFound, "Schedule not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule deleted"})
}

// GET /api/admin/users
func AdminListUsers(c *gin.Context) {
	repo := repositories.UserRepository{}
	out, err := repo.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not list users")
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/admin/tickets
func AdminListTickets(c *gin.Context) {
	repo := repositories.TicketRepository{}
	out, err := repo.ListAll()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not list tickets")
		return
	}
	c.JSON(http.StatusOK, out)
}

func parseDepartureTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", s)
}
