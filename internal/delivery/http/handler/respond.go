package handler

import (
	"errors"
	"net/http"

	domainCompany "freightconnect/internal/domain/company"
	domainFreight "freightconnect/internal/domain/freight"
	domainInterest "freightconnect/internal/domain/interest"
	"freightconnect/internal/refdata"
	"freightconnect/internal/usecase/wizard"
	appErrors "freightconnect/pkg/errors"
	"freightconnect/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// userIDFromContext extracts the authenticated user's id set by the auth
// middleware.
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userID")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps domain and usecase errors onto HTTP statuses.
// Validation errors carry their field map; backend faults stay generic so
// stale or partial data is never dressed up as success.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrors appErrors.ValidationErrors
	if errors.As(err, &fieldErrors) {
		utils.ValidationErrorResponse(c, http.StatusUnprocessableEntity, fieldErrors)
		return
	}

	var fanout *wizard.PartialFanoutError
	if errors.As(err, &fanout) {
		c.JSON(http.StatusBadGateway, utils.Response{
			Success: false,
			Message: fanout.Error(),
			Data: gin.H{
				"created":   fanout.Created,
				"succeeded": len(fanout.Created),
				"requested": fanout.Total,
			},
		})
		return
	}

	switch {
	case errors.Is(err, domainFreight.ErrFreightNotFound),
		errors.Is(err, domainCompany.ErrCompanyNotFound),
		errors.Is(err, domainInterest.ErrInterestNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, wizard.ErrNoActiveSession):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, wizard.ErrDuplicateDestination),
		errors.Is(err, wizard.ErrDestinationIndex),
		errors.Is(err, wizard.ErrStopIndex),
		errors.Is(err, domainInterest.ErrDuplicateInterest),
		errors.Is(err, domainInterest.ErrInvalidTransition),
		errors.Is(err, domainFreight.ErrInvalidStatus),
		errors.Is(err, refdata.ErrUnknownState):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domainCompany.ErrFreightNotPermitted),
		errors.Is(err, domainFreight.ErrNotOwner):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, domainFreight.ErrQueryFailed),
		errors.Is(err, appErrors.ErrBackendUnavailable):
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "backend unavailable, please try again")
	default:
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	}
}
