package ticket

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"skyways/internal/models"
)

// Generate renders an e-ticket PDF for a confirmed booking. If the styled
// renderer fails for any reason, a plain single-column layout is produced
// instead so the download never comes back empty.
func Generate(booking *models.Booking) ([]byte, error) {
	data, err := renderStyled(booking)
	if err == nil {
		return data, nil
	}
	return renderPlain(booking)
}

func renderStyled(booking *models.Booking) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("ticket render: %v", r)
		}
	}()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("SkyWays E-Ticket "+booking.BookingReference, false)
	pdf.AddPage()

	// Header band.
	pdf.SetFillColor(30, 64, 175)
	pdf.Rect(0, 0, 210, 30, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetXY(15, 8)
	pdf.CellFormat(0, 10, "SkyWays", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetX(15)
	pdf.CellFormat(0, 6, "Electronic Ticket", "", 1, "L", false, 0, "")

	pdf.SetTextColor(17, 24, 39)
	pdf.SetY(38)

	// Reference and total block.
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(95, 8, "Booking Reference: "+booking.BookingReference, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Total Paid: INR %d", booking.TotalAmount), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Status: "+strings.ToUpper(booking.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Flight section.
	flight := booking.Flight
	sectionHeader(pdf, "Flight")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s %s  (%s)", flight.Airline, flight.FlightNumber, flight.Aircraft), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s (%s)  ->  %s (%s)",
		flight.Origin.City, flight.Origin.Code,
		flight.Destination.City, flight.Destination.Code), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Departure: %s", flight.DepartureTime.Format("Mon, 02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Arrival:   %s", flight.ArrivalTime.Format("Mon, 02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Duration: %s, Stops: %d", flight.Duration, flight.Stops), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Passenger table with assigned seats.
	sectionHeader(pdf, "Passengers")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(243, 244, 246)
	pdf.CellFormat(90, 7, "Name", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Seat", "1", 0, "C", true, 0, "")
	pdf.CellFormat(0, 7, "Class", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, p := range booking.Passengers {
		seatNo, class := "-", "-"
		if i < len(booking.Seats) {
			seatNo = booking.Seats[i].SeatNumber
			class = string(booking.Seats[i].Class)
		}
		name := strings.TrimSpace(fmt.Sprintf("%s %s %s", p.Title, p.FirstName, p.LastName))
		pdf.CellFormat(90, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, seatNo, "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, class, "1", 1, "C", false, 0, "")
	}
	for _, inf := range booking.Infants {
		pdf.CellFormat(90, 7, fmt.Sprintf("%s %s (infant)", inf.FirstName, inf.LastName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "lap", "1", 0, "C", false, 0, "")
		pdf.CellFormat(0, 7, "-", "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 5, "Carry a government-issued photo ID. Check-in closes 60 minutes before departure.", "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Issued %s", booking.CreatedAt.Format("02 Jan 2006 15:04 MST")), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(30, 64, 175)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.SetTextColor(17, 24, 39)
	pdf.Ln(1)
}

// renderPlain is the fallback layout: no fills, no tables, fixed lines.
func renderPlain(booking *models.Booking) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 11)

	lines := []string{
		"SkyWays E-Ticket",
		"Booking Reference: " + booking.BookingReference,
		fmt.Sprintf("Flight: %s %s", booking.Flight.Airline, booking.Flight.FlightNumber),
		fmt.Sprintf("Route: %s -> %s", booking.Flight.Origin.Code, booking.Flight.Destination.Code),
		"Departure: " + booking.Flight.DepartureTime.Format("2006-01-02 15:04"),
		fmt.Sprintf("Total Paid: INR %d", booking.TotalAmount),
	}
	for _, p := range booking.Passengers {
		lines = append(lines, "Passenger: "+strings.TrimSpace(p.FirstName+" "+p.LastName))
	}
	for _, s := range booking.Seats {
		lines = append(lines, "Seat: "+s.SeatNumber)
	}

	y := 20.0
	for _, line := range lines {
		pdf.Text(20, y, line)
		y += 8
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
