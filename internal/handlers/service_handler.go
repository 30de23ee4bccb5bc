package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/httpresp"
	ucService "github.com/agendaplus/booking-api/internal/usecase/service"
)

type ServiceHandler struct {
	create *ucService.CreateService
	update *ucService.UpdateService
	delete *ucService.DeleteService
	get    *ucService.GetService
	list   *ucService.ListServices
}

func NewServiceHandler(
	create *ucService.CreateService,
	update *ucService.UpdateService,
	delete *ucService.DeleteService,
	get *ucService.GetService,
	list *ucService.ListServices,
) *ServiceHandler {
	return &ServiceHandler{
		create: create,
		update: update,
		delete: delete,
		get:    get,
		list:   list,
	}
}

type CreateServiceRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Price  int    `json:"price" binding:"required,gt=0"`
	Status string `json:"status" binding:"omitempty,oneof=available unavailable"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	service, err := h.create.Execute(c.Request.Context(), ucService.CreateServiceInput{
		Name:   req.Name,
		Price:  req.Price,
		Status: req.Status,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "service", "Invalid service id.")
		return
	}

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		httperr.BadRequest(c, "json", "Invalid request body.")
		return
	}

	service, err := h.update.Execute(c.Request.Context(), id, fields)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "service", "Invalid service id.")
		return
	}

	if err := h.delete.Execute(c.Request.Context(), id); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		httperr.BadRequest(c, "service", "Invalid service id.")
		return
	}

	service, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, service)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, services)
}
