package logs

import (
	"net/http"
	"strconv"

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
	rg.GET("/logs/trailers", h.TrailerLogs)
	rg.GET("/logs/trailers/:id", h.TrailerLogsByTrailer)
	rg.GET("/logs/rental-history", h.RentalHistory)
}

func (h *Handler) TrailerLogs(c *gin.Context) {
	page, err := h.service.TrailerLogs(c.Request.Context(), c.Query("event_type"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load trailer logs")
		return
	}
	response.Success(c, http.StatusOK, page)
}

func (h *Handler) TrailerLogsByTrailer(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid trailer ID")
		return
	}

	rows, err := h.service.TrailerLogsByTrailer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load trailer logs")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) RentalHistory(c *gin.Context) {
	var rentalID int64
	if raw := c.Query("rental_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid rental ID")
			return
		}
		rentalID = id
	}

	rows, err := h.service.RentalHistory(c.Request.Context(), rentalID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load rental history")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
