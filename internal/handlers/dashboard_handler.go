package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendaplus/booking-api/internal/httperr"
	"github.com/agendaplus/booking-api/internal/httpresp"
	ucDashboard "github.com/agendaplus/booking-api/internal/usecase/dashboard"
)

type DashboardHandler struct {
	summary *ucDashboard.GetSummary
}

func NewDashboardHandler(summary *ucDashboard.GetSummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.summary.Execute(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, summary)
}
