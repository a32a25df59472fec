package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyways/internal/models"
)

// Flight search and seat selection handlers

// SearchFlights - POST /api/flights/search
func (h *Handlers) SearchFlights(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flights, err := h.services.Search.Search(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		fail(c, err, "Failed to search flights")
		return
	}

	c.JSON(http.StatusOK, models.SearchResponse{Flights: flights, Count: len(flights)})
}

// SelectFlight - POST /api/flights/select
func (h *Handlers) SelectFlight(c *gin.Context) {
	var req models.SelectFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.services.Search.SelectFlight(c.Request.Context(), sessionID(c), req.FlightID)
	if err != nil {
		fail(c, err, "Failed to select flight")
		return
	}

	c.JSON(http.StatusOK, flight)
}

// ListSeats - GET /api/flights/:id/seats
// Generates the seat map for the selected flight.
func (h *Handlers) ListSeats(c *gin.Context) {
	seats, err := h.services.Search.SeatMap(c.Request.Context(), sessionID(c), c.Param("id"))
	if err != nil {
		fail(c, err, "Failed to build seat map")
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": seats})
}

// SelectSeats - POST /api/seats/select
func (h *Handlers) SelectSeats(c *gin.Context) {
	var req models.SelectSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seats, err := h.services.Search.SelectSeats(c.Request.Context(), sessionID(c), req.SeatIDs)
	if err != nil {
		fail(c, err, "Failed to select seats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"seats": seats})
}
