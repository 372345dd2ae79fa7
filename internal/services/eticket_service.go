package services

import (
	"bytes"
	"fmt"
	"strings"

	"bustickets/internal/domain/models"
	"bustickets/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ETicketService renders a printable e-ticket for one purchased ticket.
type ETicketService struct {
	Query     QueryService
	RequestID string
}

func (s ETicketService) Generate(ticketID int64) ([]byte, string, error) {
	d, err := s.Query.TicketByID(ticketID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "eticket", "generate", fmt.Sprintf("ticket_id=%d", ticketID))
	return buildETicketPDF(d)
}

func buildETicketPDF(d models.TicketDetail) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BUS E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Ticket no.  : %d", d.ID),
		fmt.Sprintf("Passenger   : %s", safe(d.PassengerName)),
		fmt.Sprintf("Phone       : %s", safe(d.PassengerPhone)),
		fmt.Sprintf("Email       : %s", safe(d.PassengerEmail)),
		fmt.Sprintf("Route       : %s -> %s", safe(d.Origin), safe(d.Destination)),
		fmt.Sprintf("Departure   : %s", d.DepartureTime.Format("2006-01-02 15:04")),
		fmt.Sprintf("Operator    : %s", safe(d.Operator)),
		fmt.Sprintf("Price       : %.2f", d.Price),
		fmt.Sprintf("Purchased   : %s", d.PurchaseTime.Format("2006-01-02 15:04")),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This e-ticket is valid for one passenger (one seat). Please present it at boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("eticket-%d.pdf", d.ID)
	return buf.Bytes(), filename, nil
}

func safe(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
