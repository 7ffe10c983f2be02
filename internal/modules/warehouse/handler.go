package warehouse

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
	rg.GET("/warehouse/items", h.ListItems)
	rg.POST("/warehouse/items", h.AddItem)
	rg.PUT("/warehouse/items/:id", h.UpdateQuantity)
	rg.DELETE("/warehouse/items/:id", h.DeleteItem)
	rg.POST("/warehouse/items/bulk-delete", h.BulkDelete)
	rg.GET("/warehouse/logs", h.ListLogs)
}

func (h *Handler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid item data", fields)
		return
	}

	item, err := h.service.AddItem(c.Request.Context(), req, actorFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid quantity", fields)
		return
	}

	item, err := h.service.UpdateQuantity(c.Request.Context(), id, req, actorFrom(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteItem(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.service.DeleteItems(c.Request.Context(), req.IDs); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": req.IDs})
}

func (h *Handler) ListLogs(c *gin.Context) {
	logs, err := h.service.ListLogs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, logs)
}

func actorFrom(c *gin.Context) Actor {
	return Actor{
		ID:       c.GetInt64("user_id"),
		Username: c.GetString("username"),
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid item ID")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Item not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
