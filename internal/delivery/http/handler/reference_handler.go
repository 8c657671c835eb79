package handler

import (
	"errors"
	"net/http"

	"freightconnect/internal/refdata"
	"freightconnect/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ReferenceHandler struct {
	provider *refdata.Provider
}

func NewReferenceHandler(provider *refdata.Provider) *ReferenceHandler {
	return &ReferenceHandler{provider: provider}
}

func (h *ReferenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	r := router.Group("/reference")
	{
		r.GET("/states", h.States)
		r.GET("/states/:uf/cities", h.Cities)
		r.GET("/vehicle-types", h.VehicleTypes)
		r.GET("/body-types", h.BodyTypes)
		r.GET("/freight-types", h.FreightTypes)
	}
}

func (h *ReferenceHandler) States(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "States retrieved", h.provider.States())
}

func (h *ReferenceHandler) Cities(c *gin.Context) {
	cities, err := h.provider.Cities(c.Request.Context(), c.Param("uf"))
	if err != nil {
		if errors.Is(err, refdata.ErrUnknownState) {
			utils.ErrorResponse(c, http.StatusNotFound, "Unknown state")
			return
		}
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Failed to load cities")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Cities retrieved", cities)
}

func (h *ReferenceHandler) VehicleTypes(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Vehicle types retrieved", h.provider.VehicleTypeGroups())
}

func (h *ReferenceHandler) BodyTypes(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Body types retrieved", h.provider.BodyTypeGroups())
}

func (h *ReferenceHandler) FreightTypes(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Freight types retrieved", h.provider.FreightTypes())
}
