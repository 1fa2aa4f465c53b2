package api

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-employee-backend/internal/model"
	"cafe-employee-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store store.Store
	now   func() time.Time
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store) *Handler {
	return &Handler{
		store: s,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondError maps store and validation errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		respondMessage(c, http.StatusBadRequest, ve.Message)
	case errors.Is(err, store.ErrInvalidCafeID):
		respondMessage(c, http.StatusBadRequest, "Invalid Cafe ID format")
	case errors.Is(err, store.ErrCafeNotFound):
		respondMessage(c, http.StatusNotFound, "Cafe not found")
	case errors.Is(err, store.ErrEmployeeNotFound):
		respondMessage(c, http.StatusNotFound, "Employee not found")
	default:
		log.Printf("%s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		respondMessage(c, http.StatusInternalServerError, "Internal server error")
	}
}

// Health reports whether the service can reach its database.
func (h *Handler) Health(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
