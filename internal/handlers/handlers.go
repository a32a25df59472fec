package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyways/internal/middleware"
	"skyways/internal/service"
	"skyways/internal/store"
)

type Handlers struct {
	services *service.Services
	store    *store.Store
}

func NewHandlers(services *service.Services, st *store.Store) *Handlers {
	return &Handlers{
		services: services,
		store:    st,
	}
}

// sessionID pulls the session token the middleware attached.
func sessionID(c *gin.Context) string {
	return middleware.SessionIDFromContext(c)
}

// fail logs the error and maps it onto an HTTP status. Sentinel errors
// carry user-facing messages; anything else becomes a generic 500.
func fail(c *gin.Context, err error, msg string) {
	slog.Error(msg, "error", err)

	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, store.ErrSessionNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

// Health - GET /health
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
