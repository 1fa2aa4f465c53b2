package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cafe-employee-backend/internal/store"
)

// cafeResponse is a list entry of GET /cafes.
type cafeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Logo          *string `json:"logo"`
	Location      string  `json:"location"`
	EmployeeCount int64   `json:"employee_count"`
}

// cafeRequest is the body of POST /cafe and PUT /cafe/:id. Absent fields stay
// nil; Logo also records an explicit null.
type cafeRequest struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Logo        optionalString `json:"logo"`
	Location    *string        `json:"location"`
}

// ListCafes handles GET /cafes.
func (h *Handler) ListCafes(c *gin.Context) {
	cafes, err := h.store.ListCafes(c.Request.Context(), c.Query("location"))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(cafes) == 0 {
		respondMessage(c, http.StatusNotFound, "No cafes found")
		return
	}

	responses := make([]cafeResponse, 0, len(cafes))
	for _, cafe := range cafes {
		responses = append(responses, cafeResponse{
			ID:            cafe.ID,
			Name:          cafe.Name,
			Description:   cafe.Description,
			Logo:          cafe.Logo,
			Location:      cafe.Location,
			EmployeeCount: cafe.EmployeeCount,
		})
	}
	c.JSON(http.StatusOK, gin.H{"cafes": responses})
}

// CreateCafe handles POST /cafe.
func (h *Handler) CreateCafe(c *gin.Context) {
	var req cafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == nil || req.Location == nil {
		respondMessage(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	in := store.NewCafe{Name: *req.Name, Logo: req.Logo.Value, Location: *req.Location}
	if req.Description != nil {
		in.Description = *req.Description
	}

	cafe, err := h.store.CreateCafe(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cafe created successfully", "cafe_id": cafe.ID})
}

// GetCafe handles GET /cafe/:id.
func (h *Handler) GetCafe(c *gin.Context) {
	cafe, err := h.store.GetCafe(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cafe)
}

// UpdateCafe handles PUT /cafe/:id.
func (h *Handler) UpdateCafe(c *gin.Context) {
	var req cafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := store.CafePatch{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	}
	if req.Logo.Set {
		patch.Logo = req.Logo.Value
		patch.ClearLogo = req.Logo.Value == nil
	}
	if _, err := h.store.UpdateCafe(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Cafe updated successfully")
}

// DeleteCafe handles DELETE /cafe/:id.
func (h *Handler) DeleteCafe(c *gin.Context) {
	if _, err := h.store.DeleteCafe(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Cafe deleted successfully")
}
