package handler

import (
	"net/http"

	domainInterest "freightconnect/internal/domain/interest"
	"freightconnect/internal/usecase/interest"
	"freightconnect/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InterestHandler struct {
	service *interest.Service
}

func NewInterestHandler(service *interest.Service) *InterestHandler {
	return &InterestHandler{service: service}
}

func (h *InterestHandler) RegisterDriverRoutes(router *gin.RouterGroup) {
	router.POST("/freights/code/:code/interests", h.Register)
	router.GET("/interests", h.ListMine)
}

func (h *InterestHandler) RegisterCompanyRoutes(router *gin.RouterGroup) {
	router.GET("/interests/freight/:id", h.ListByFreight)
	router.PATCH("/interests/:id", h.Respond)
}

func (h *InterestHandler) Register(c *gin.Context) {
	driverID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req interest.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Register(c.Request.Context(), driverID, c.Param("code"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Interest registered", resp)
}

func (h *InterestHandler) ListMine(c *gin.Context) {
	driverID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	resp, err := h.service.ListByDriver(c.Request.Context(), driverID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interests retrieved", resp)
}

func (h *InterestHandler) ListByFreight(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	freightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid freight ID")
		return
	}

	resp, err := h.service.ListByFreight(c.Request.Context(), userID, freightID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interests retrieved", resp)
}

type respondRequest struct {
	Status string `json:"status" binding:"required" validate:"required,oneof=viewed accepted rejected"`
}

func (h *InterestHandler) Respond(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	interestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid interest ID")
		return
	}

	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Respond(c.Request.Context(), userID, interestID, domainInterest.InterestStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Interest updated", resp)
}
