package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/httpresp"
	ucAppointment "github.com/agendaplus/booking-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment
	get    *ucAppointment.GetAppointment
	list   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	delete *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		delete: delete,
		get:    get,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	CustomerID uint   `json:"customer_id" binding:"required,gt=0"`
	EmployeeID uint   `json:"employee_id" binding:"required,gt=0"`
	ServiceIDs []uint `json:"service_ids" binding:"required,min=1,max=10,dive,gt=0"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Date:       req.Date,
		CustomerID: req.CustomerID,
		EmployeeID: req.EmployeeID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// UPDATE (PARTIAL)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "appointment", "Invalid appointment id.")
		return
	}

	// The update payload is an open field map: unknown fields are
	// ignored, known fields are type-checked by the validator.
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), id, fields)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "appointment", "Invalid appointment id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// GET / LIST
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "appointment", "Invalid appointment id.")
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, aps)
}
