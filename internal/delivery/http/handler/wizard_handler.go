package handler

import (
	"net/http"
	"strconv"

	"freightconnect/internal/usecase/wizard"
	"freightconnect/pkg/utils"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	service *wizard.Service
}

func NewWizardHandler(service *wizard.Service) *WizardHandler {
	return &WizardHandler{service: service}
}

func (h *WizardHandler) RegisterCompanyRoutes(router *gin.RouterGroup) {
	w := router.Group("/wizard")
	{
		w.POST("", h.Start)
		w.GET("/current", h.Current)
		w.DELETE("/current", h.Discard)

		w.PUT("/steps/1", h.SetCollaboratorsOrigin)
		w.PUT("/steps/2", h.SetDestinationsCargo)
		w.PUT("/steps/3", h.SetLogisticsCommercial)
		w.PUT("/steps/4", h.SetTollExtras)

		w.POST("/next", h.Next)
		w.POST("/back", h.Back)

		w.POST("/destinations", h.AddDestination)
		w.DELETE("/destinations/:index", h.RemoveDestination)
		w.POST("/stops", h.AddStop)
		w.DELETE("/stops/:index", h.RemoveStop)
		w.POST("/stops/reorder", h.ReorderStops)

		w.POST("/submit", h.Submit)
	}
}

func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	session := h.service.Start(userID)
	utils.SuccessResponse(c, http.StatusCreated, "Wizard session started", session)
}

func (h *WizardHandler) Current(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	session, err := h.service.Current(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Wizard session retrieved", session)
}

func (h *WizardHandler) Discard(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	h.service.Discard(userID)
	utils.SuccessResponse(c, http.StatusOK, "Wizard session discarded", nil)
}

func (h *WizardHandler) SetCollaboratorsOrigin(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.CollaboratorsOriginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SetCollaboratorsOrigin(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Step updated", session)
}

func (h *WizardHandler) SetDestinationsCargo(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.DestinationsCargoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SetDestinationsCargo(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Step updated", session)
}

func (h *WizardHandler) SetLogisticsCommercial(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.LogisticsCommercialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SetLogisticsCommercial(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Step updated", session)
}

func (h *WizardHandler) SetTollExtras(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.TollExtrasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.SetTollExtras(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Step updated", session)
}

func (h *WizardHandler) Next(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	session, err := h.service.Next(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Advanced to next step", session)
}

func (h *WizardHandler) Back(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	session, err := h.service.Back(userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Returned to previous step", session)
}

func (h *WizardHandler) AddDestination(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.AddDestination(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Destination added", session)
}

func (h *WizardHandler) RemoveDestination(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid destination index")
		return
	}

	session, err := h.service.RemoveDestination(userID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Destination removed", session)
}

func (h *WizardHandler) AddStop(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req wizard.StopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.AddStop(userID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stop added", session)
}

func (h *WizardHandler) RemoveStop(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid stop index")
		return
	}

	session, err := h.service.RemoveStop(userID, index)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stop removed", session)
}

type reorderStopsRequest struct {
	From int `json:"from" validate:"min=0"`
	To   int `json:"to" validate:"min=0"`
}

func (h *WizardHandler) ReorderStops(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	var req reorderStopsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.service.ReorderStops(userID, req.From, req.To)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Stops reordered", session)
}

func (h *WizardHandler) Submit(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		return
	}

	result, err := h.service.Submit(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Freight request submitted", result)
}
