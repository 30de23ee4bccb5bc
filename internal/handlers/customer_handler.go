package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/httpresp"
	ucCustomer "github.com/agendaplus/booking-api/internal/usecase/customer"
)

type CustomerHandler struct {
	create *ucCustomer.CreateCustomer
	update *ucCustomer.UpdateCustomer
	delete *ucCustomer.DeleteCustomer
	get    *ucCustomer.GetCustomer
	list   *ucCustomer.ListCustomers
}

func NewCustomerHandler(
	create *ucCustomer.CreateCustomer,
	update *ucCustomer.UpdateCustomer,
	delete *ucCustomer.DeleteCustomer,
	get *ucCustomer.GetCustomer,
	list *ucCustomer.ListCustomers,
) *CustomerHandler {
	return &CustomerHandler{
		create: create,
		update: update,
		delete: delete,
		get:    get,
		list:   list,
	}
}

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=50"`
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	customer, err := h.create.Execute(c.Request.Context(), ucCustomer.CreateCustomerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "customer", "Invalid customer id.")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	customer, err := h.update.Execute(c.Request.Context(), id, fields)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "customer", "Invalid customer id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "customer", "Invalid customer id.")
		return
	}

	customer, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, customer)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, customers)
}
