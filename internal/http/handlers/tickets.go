package handlers

import (
	"net/http"
	"strconv"

	"bustickets/internal/http/middleware"
	"bustickets/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingRequest struct {
	UserID         int64    `json:"user_id"`
	ScheduleID     int64    `json:"schedule_id"`
	PassengerNames []string `json:"passenger_names"`
	PassengerPhone string   `json:"passenger_phone"`
	PassengerEmail string   `json:"passenger_email"`
}

// POST /api/tickets
func BookTickets(c *gin.Context) {
	var req bookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	ids, err := svc.Book(services.BookingInput{
		UserID:         req.UserID,
		ScheduleID:     req.ScheduleID,
		PassengerNames: req.PassengerNames,
		PassengerPhone: req.PassengerPhone,
		PassengerEmail: req.PassengerEmail,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ticket_ids": ids})
}

// GET /api/tickets?user_id=
func GetUserTickets(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	svc := services.QueryService{}
	out, err := svc.TicketsForUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/tickets/:id
func GetTicketByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}

	svc := services.QueryService{}
	d, err := svc.TicketByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// DELETE /api/tickets/:id
func CancelTicket(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	if err := svc.Cancel(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ticket cancelled successfully"})
}

// GET /api/tickets/:id/pdf returns the e-ticket inline.
func GetTicketETicketPDF(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusNotFound, "Ticket not found")
		return
	}

	svc := services.ETicketService{RequestID: middleware.GetRequestID(c)}
	pdfBytes, filename, err := svc.Generate(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
