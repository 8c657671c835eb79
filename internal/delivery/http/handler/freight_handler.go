package handler

import (
	"net/http"

	domainFreight "freightconnect/internal/domain/freight"
	"freightconnect/internal/usecase/freight"
	"freightconnect/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FreightHandler struct {
	service *freight.Service
}

func NewFreightHandler(service *freight.Service) *FreightHandler {
	return &FreightHandler{service: service}
}

func (h *FreightHandler) RegisterRoutes(router *gin.RouterGroup) {
	freights := router.Group("/freights")
	{
		// Public routes
		freights.GET("", h.ListFreights)
		freights.GET("/code/:code", h.GetFreightByCode)
	}
}

func (h *FreightHandler) RegisterCompanyRoutes(router *gin.RouterGroup) {
	freights := router.Group("/freights")
	{
		freights.PATCH("/:id/status", h.UpdateStatus)
		freights.DELETE("/:id", h.DeleteFreight)
	}
}

func (h *FreightHandler) ListFreights(c *gin.Context) {
	var req freight.FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.service.Search(c.Request.Context(), req.ToFilterModel())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Freights retrieved successfully", freight.ToListResponse(page))
}

func (h *FreightHandler) GetFreightByCode(c *gin.Context) {
	code := c.Param("code")

	f, rows, err := h.service.GetByCode(c.Request.Context(), code)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Freight retrieved successfully", freight.ToFreightResponse(f, rows))
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active pending completed canceled paused"`
}

func (h *FreightHandler) UpdateStatus(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid freight ID")
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), userID, freightID, domainFreight.Status(req.Status)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Freight status updated successfully", nil)
}

func (h *FreightHandler) DeleteFreight(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid freight ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, freightID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Freight deleted successfully", nil)
}
