package dashboard

import (
	"net/http"

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
	rg.GET("/dashboard", h.Summary)
	rg.GET("/dashboard/map", h.MapMarkers)
}

func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build dashboard")
		return
	}
	response.Success(c, http.StatusOK, summary)
}

func (h *Handler) MapMarkers(c *gin.Context) {
	markers, err := h.service.MapMarkers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load map markers")
		return
	}
	response.Success(c, http.StatusOK, markers)
}
