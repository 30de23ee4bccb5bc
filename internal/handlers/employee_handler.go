package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/httpresp"
	ucEmployee "github.com/agendaplus/booking-api/internal/usecase/employee"
)

type EmployeeHandler struct {
	create *ucEmployee.CreateEmployee
	update *ucEmployee.UpdateEmployee
	delete *ucEmployee.DeleteEmployee
	get    *ucEmployee.GetEmployee
	list   *ucEmployee.ListEmployees
}

func NewEmployeeHandler(
	create *ucEmployee.CreateEmployee,
	update *ucEmployee.UpdateEmployee,
	delete *ucEmployee.DeleteEmployee,
	get *ucEmployee.GetEmployee,
	list *ucEmployee.ListEmployees,
) *EmployeeHandler {
	return &EmployeeHandler{
		create: create,
		update: update,
		delete: delete,
		get:    get,
		list:   list,
	}
}

type CreateEmployeeRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=50"`
	ServiceIDs  []uint `json:"service_ids" binding:"required,min=1,dive,gt=0"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	employee, err := h.create.Execute(c.Request.Context(), ucEmployee.CreateEmployeeInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		ServiceIDs:  req.ServiceIDs,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "employee", "Invalid employee id.")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	employee, err := h.update.Execute(c.Request.Context(), id, fields)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "employee", "Invalid employee id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "employee", "Invalid employee id.")
		return
	}

	employee, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, employee)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, employees)
}
