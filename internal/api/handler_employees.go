package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cafe-employee-backend/internal/model"
	"cafe-employee-backend/internal/parse"
	"cafe-employee-backend/internal/store"
)

// employeeListItem is a list entry of GET /employees.
type employeeListItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	EmailAddress string `json:"email_address"`
	PhoneNumber  string `json:"phone_number"`
	Gender       string `json:"gender"`
	StartDate    string `json:"start_date"`
	DaysWorked   int    `json:"days_worked"`
	Cafe         string `json:"cafe"`
}

// employeeResponse is the body of GET /employee/:id.
type employeeResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	EmailAddress string  `json:"email_address"`
	PhoneNumber  string  `json:"phone_number"`
	Gender       string  `json:"gender"`
	StartDate    string  `json:"start_date"`
	CafeID       *string `json:"cafe_id"`
	DaysWorked   int     `json:"days_worked"`
}

// employeeRequest is the body of POST /employee and PUT /employee/:id.
// A cafe_id sent as null is present but resolves to no café.
type employeeRequest struct {
	Name         *string        `json:"name"`
	EmailAddress *string        `json:"email_address"`
	PhoneNumber  *string        `json:"phone_number"`
	Gender       *string        `json:"gender"`
	StartDate    *string        `json:"start_date"`
	CafeID       optionalString `json:"cafe_id"`
}

func (r employeeRequest) complete() bool {
	return r.Name != nil && r.EmailAddress != nil && r.PhoneNumber != nil &&
		r.Gender != nil && r.StartDate != nil && r.CafeID.Set
}

// parseStartDate turns the request date into a time, reporting malformed
// input as a validation error.
func parseStartDate(raw string) (time.Time, error) {
	t, err := parse.Date(raw)
	if err != nil {
		return time.Time{}, &model.ValidationError{Field: "start_date", Message: err.Error()}
	}
	return t, nil
}

// ListEmployees handles GET /employees.
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.store.ListEmployees(c.Request.Context(), c.Query("cafe"), h.now())
	if err != nil {
		respondError(c, err)
		return
	}
	if len(employees) == 0 {
		respondMessage(c, http.StatusNotFound, "No employees found")
		return
	}

	items := make([]employeeListItem, 0, len(employees))
	for _, e := range employees {
		items = append(items, employeeListItem{
			ID:           e.ID,
			Name:         e.Name,
			EmailAddress: e.EmailAddress,
			PhoneNumber:  e.PhoneNumber,
			Gender:       e.Gender,
			StartDate:    parse.FormatDate(e.StartDate),
			DaysWorked:   e.DaysWorked,
			Cafe:         e.CafeName,
		})
	}
	c.JSON(http.StatusOK, gin.H{"employees": items})
}

// CreateEmployee handles POST /employee.
func (h *Handler) CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !req.complete() {
		respondMessage(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	startDate, err := parseStartDate(*req.StartDate)
	if err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.store.CreateEmployee(c.Request.Context(), store.NewEmployee{
		Name:         *req.Name,
		EmailAddress: *req.EmailAddress,
		PhoneNumber:  *req.PhoneNumber,
		Gender:       *req.Gender,
		StartDate:    startDate,
		CafeID:       req.CafeID.orEmpty(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Employee created successfully", "employee_id": employee.ID})
}

// GetEmployee handles GET /employee/:id.
func (h *Handler) GetEmployee(c *gin.Context) {
	employee, err := h.store.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employeeResponse{
		ID:           employee.ID,
		Name:         employee.Name,
		EmailAddress: employee.EmailAddress,
		PhoneNumber:  employee.PhoneNumber,
		Gender:       employee.Gender,
		StartDate:    parse.FormatDate(employee.StartDate),
		CafeID:       employee.CafeID,
		DaysWorked:   model.DaysWorked(employee.StartDate, h.now()),
	})
}

// UpdateEmployee handles PUT /employee/:id.
func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	patch := store.EmployeePatch{
		Name:         req.Name,
		EmailAddress: req.EmailAddress,
		PhoneNumber:  req.PhoneNumber,
		Gender:       req.Gender,
	}
	if req.CafeID.Set {
		cafeID := req.CafeID.orEmpty()
		patch.CafeID = &cafeID
	}
	if req.StartDate != nil {
		startDate, err := parseStartDate(*req.StartDate)
		if err != nil {
			respondError(c, err)
			return
		}
		patch.StartDate = &startDate
	}

	if _, err := h.store.UpdateEmployee(c.Request.Context(), c.Param("id"), patch); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Employee updated successfully")
}

// DeleteEmployee handles DELETE /employee/:id.
func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.store.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "Employee deleted successfully")
}
