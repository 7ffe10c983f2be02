package rental

import (
	"errors"
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
	rg.GET("/companies", h.ListCompanies)
	rg.POST("/companies", h.CreateCompany)
	rg.DELETE("/companies/:id", h.DeleteCompany)
	rg.GET("/companies/:id/rentals", h.CompanyRentDetail)

	rg.GET("/rentals", h.ListRentals)
	rg.POST("/rentals", h.CreateRental)
	rg.DELETE("/rentals/:id", h.DeleteRental)
	rg.GET("/rentals/:id/available-trailers", h.FindAvailableTrailers)
	rg.POST("/rentals/:id/trailers", h.AssignTrailer)
	rg.DELETE("/rental-trailers/:id", h.UnassignTrailer)
}

func (h *Handler) CreateCompany(c *gin.Context) {
	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	company, err := h.service.CreateCompany(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Could not create company")
		return
	}
	response.Success(c, http.StatusCreated, company)
}

func (h *Handler) ListCompanies(c *gin.Context) {
	companies, err := h.service.ListCompanies(c.Request.Context())
	if err != nil {
		handleError(c, err, "Could not list companies")
		return
	}
	response.Success(c, http.StatusOK, companies)
}

func (h *Handler) DeleteCompany(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCompany(c.Request.Context(), id); err != nil {
		handleError(c, err, "Could not delete company")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) CompanyRentDetail(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	detail, err := h.service.CompanyRentDetail(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Could not load company rentals")
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) CreateRental(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rental, err := h.service.CreateRental(c.Request.Context(), req)
	if err != nil {
		handleError(c, err, "Could not create rental")
		return
	}
	response.Success(c, http.StatusCreated, rental)
}

func (h *Handler) ListRentals(c *gin.Context) {
	rentals, err := h.service.ListRentals(c.Request.Context())
	if err != nil {
		handleError(c, err, "Could not list rentals")
		return
	}
	response.Success(c, http.StatusOK, rentals)
}

func (h *Handler) DeleteRental(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.DeleteRental(c.Request.Context(), id); err != nil {
		handleError(c, err, "Could not delete rental")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *Handler) FindAvailableTrailers(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	trailers, err := h.service.FindAvailableTrailers(c.Request.Context(), id)
	if err != nil {
		handleError(c, err, "Could not compute availability")
		return
	}
	response.Success(c, http.StatusOK, trailers)
}

func (h *Handler) AssignTrailer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req AssignTrailerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rt, err := h.service.AssignTrailer(c.Request.Context(), id, req.TrailerID, c.GetInt64("user_id"))
	if err != nil {
		handleError(c, err, "Could not assign trailer")
		return
	}
	response.Success(c, http.StatusCreated, rt)
}

func (h *Handler) UnassignTrailer(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.UnassignTrailer(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		handleError(c, err, "Could not unassign trailer")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": id})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func handleError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Trailer is already assigned to another rental in this period")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
