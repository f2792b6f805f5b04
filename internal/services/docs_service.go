package services

import (
	"bytes"
	"fmt"
	"strings"

	"hotelbot/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking confirmation PDFs for finalized chat bookings.
type DocsService struct {
	Bookings  BookingService
	RequestID string

	// Loader overrides booking lookup, mainly for tests.
	Loader func(int64) (ChatBooking, error)
}

func (s DocsService) GenerateConfirmation(bookingID int64) ([]byte, string, error) {
	booking, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(booking)
}

func (s DocsService) loadBooking(id int64) (ChatBooking, error) {
	if s.Loader != nil {
		return s.Loader(id)
	}
	return s.Bookings.GetBooking(id)
}

func buildConfirmationPDF(b ChatBooking) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest Name    : %s", safe(b.CustomerName, "-")),
		fmt.Sprintf("Email         : %s", safe(b.CustomerEmail, "-")),
		fmt.Sprintf("Phone         : %s", safe(b.CustomerPhone, "-")),
		fmt.Sprintf("Room ID       : %d", b.RoomID),
		fmt.Sprintf("Check-in      : %s", safe(b.CheckInDate, "-")),
		fmt.Sprintf("Check-out     : %s", safe(b.CheckOutDate, "-")),
		fmt.Sprintf("Guests        : %d", b.Guests),
		fmt.Sprintf("Booking Code  : BK-%d", b.ID),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this confirmation at check-in. For changes call our hotline: 011-4545678.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("booking-confirmation-%d.pdf", b.ID)
	return buf.Bytes(), filename, nil
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
