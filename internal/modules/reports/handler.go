package reports

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetrental/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reports/fleet.pdf", h.FleetReport)
}

func (h *Handler) FleetReport(c *gin.Context) {
	filename := "fleet-report-" + time.Now().UTC().Format("2006-01-02") + ".pdf"
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.service.FleetReport(c.Request.Context(), c.Writer); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to generate report")
		return
	}
	c.Status(http.StatusOK)
}
