package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"skyways/internal/models"
	"skyways/internal/store"
)

// Auth and session handlers

// SignUp - POST /api/auth/signup
func (h *Handlers) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.services.Auth.SignUp(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "Failed to sign up")
		return
	}

	c.JSON(http.StatusCreated, models.SessionResponse{SessionToken: token, User: user})
}

// SignIn - POST /api/auth/signin
func (h *Handlers) SignIn(c *gin.Context) {
	var req models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.services.Auth.SignIn(c.Request.Context(), &req)
	if err != nil {
		fail(c, err, "Failed to sign in")
		return
	}

	c.JSON(http.StatusOK, models.SessionResponse{SessionToken: token, User: user})
}

// SignOut - POST /api/auth/signout
func (h *Handlers) SignOut(c *gin.Context) {
	if err := h.services.Auth.SignOut(c.Request.Context(), sessionID(c)); err != nil {
		fail(c, err, "Failed to sign out")
		return
	}

	c.Status(http.StatusOK)
}

// GetSession - GET /api/session
// Returns the session's full state snapshot.
func (h *Handlers) GetSession(c *gin.Context) {
	state, err := h.store.State(c.Request.Context(), sessionID(c))
	if err != nil {
		fail(c, err, "Failed to load session")
		return
	}

	c.JSON(http.StatusOK, state)
}

// SetView - POST /api/session/view
// Moves the session to another screen, subject to flow prerequisites.
func (h *Handlers) SetView(c *gin.Context) {
	var req models.SetViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.store.Dispatch(c.Request.Context(), sessionID(c), store.Action{
		Type: store.SetCurrentView,
		View: store.View(req.View),
	})
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			fail(c, err, "Failed to change view")
			return
		}
		// Guard rejections are client errors.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"current_view": state.CurrentView})
}
