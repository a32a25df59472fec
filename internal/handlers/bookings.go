package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyways/internal/models"
	"skyways/internal/ticket"
)

// Booking and payment handlers

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.Create(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		fail(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings - GET /api/bookings
func (h *Handlers) ListBookings(c *gin.Context) {
	bookings, err := h.services.Bookings.List(c.Request.Context(), sessionID(c))
	if err != nil {
		fail(c, err, "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

// ProcessPayment - POST /api/payments
// Confirms the pending booking after the simulated gateway delay.
func (h *Handlers) ProcessPayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Bookings.ProcessPayment(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		fail(c, err, "Failed to process payment")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// DownloadTicket - GET /api/bookings/:reference/ticket
// Streams the e-ticket PDF for a confirmed booking.
func (h *Handlers) DownloadTicket(c *gin.Context) {
	reference := c.Param("reference")

	booking, err := h.services.Bookings.GetByReference(c.Request.Context(), sessionID(c), reference)
	if err != nil {
		fail(c, err, "Failed to load booking")
		return
	}

	data, err := ticket.Generate(booking)
	if err != nil {
		fail(c, err, "Failed to generate ticket")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=SkyWays-Ticket-%s.pdf", reference))
	c.Data(http.StatusOK, "application/pdf", data)
}
