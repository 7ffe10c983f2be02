package fleet

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fleetrental/internal/pkg/response"
	"fleetrental/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/trailers", h.ListTrailers)
	rg.GET("/trailers/:id", h.GetTrailer)
	rg.POST("/trailers", h.CreateTrailer)
	rg.PUT("/trailers/:id", h.UpdateTrailer)
	rg.DELETE("/trailers/:id", h.DeleteTrailer)
}

func (h *Handler) ListTrailers(c *gin.Context) {
	trailers, err := h.service.ListTrailers(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, trailers)
}

func (h *Handler) GetTrailer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.service.GetTrailer(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateTrailer(c *gin.Context) {
	var req TrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid trailer data", fields)
		return
	}

	t, err := h.service.CreateTrailer(c.Request.Context(), req, c.GetString("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

func (h *Handler) UpdateTrailer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req TrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid trailer data", fields)
		return
	}

	t, err := h.service.UpdateTrailer(c.Request.Context(), id, req, c.GetString("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

func (h *Handler) DeleteTrailer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteTrailer(c.Request.Context(), id, c.GetString("username")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid trailer ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Trailer not found")
	case errors.Is(err, ErrDuplicateSerial):
		response.Error(c, http.StatusConflict, "DUPLICATE_SERIAL", "Serial number already registered")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
