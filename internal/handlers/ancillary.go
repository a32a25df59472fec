package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skyways/internal/models"
)

// Hotel, cab and travel-package handlers

// ListHotels - GET /api/hotels?city=BOM
func (h *Handlers) ListHotels(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	hotels := h.services.Hotels.ListByCity(city)
	c.JSON(http.StatusOK, gin.H{"hotels": hotels, "count": len(hotels)})
}

// BookHotel - POST /api/hotels/bookings
func (h *Handlers) BookHotel(c *gin.Context) {
	var req models.HotelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Hotels.Book(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		fail(c, err, "Failed to book hotel")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListCabs - GET /api/cabs
func (h *Handlers) ListCabs(c *gin.Context) {
	services := h.services.Cabs.List()
	c.JSON(http.StatusOK, gin.H{"services": services, "count": len(services)})
}

// EstimateCab - POST /api/cabs/estimate
func (h *Handlers) EstimateCab(c *gin.Context) {
	var req models.CabEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.services.Cabs.Estimate(&req)
	if err != nil {
		fail(c, err, "Failed to estimate fare")
		return
	}

	c.JSON(http.StatusOK, estimate)
}

// BookCab - POST /api/cabs/bookings
func (h *Handlers) BookCab(c *gin.Context) {
	var req models.CabBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Cabs.Book(c.Request.Context(), sessionID(c), &req)
	if err != nil {
		fail(c, err, "Failed to book cab")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CurrentPackage - GET /api/packages/current
func (h *Handlers) CurrentPackage(c *gin.Context) {
	pkg, err := h.services.Packages.Current(c.Request.Context(), sessionID(c))
	if err != nil {
		fail(c, err, "Failed to build travel package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}

// CompletePackage - POST /api/packages/complete
func (h *Handlers) CompletePackage(c *gin.Context) {
	pkg, err := h.services.Packages.Complete(c.Request.Context(), sessionID(c))
	if err != nil {
		fail(c, err, "Failed to complete travel package")
		return
	}

	c.JSON(http.StatusOK, pkg)
}
