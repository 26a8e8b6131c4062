package api

import (
	"context"
	"errors"
	"net/http"

	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/handler/httperr"
	"fittingroom/internal/pkg/errs"
	"fittingroom/internal/usecase/commands"
	"fittingroom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// seconds a kiosk should wait before retrying after a store failure
const retryAfterSeconds = "2"

// respondError maps usecase failures to statuses. Store failures and timeouts
// are reported as a retry prompt, never as an occupied room or an empty line.
func respondError(c *gin.Context, err error) {
	var conflict *commands.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, resdto.ConflictResponse{
			Error:         "Room is occupied",
			OccupiedUntil: conflict.OccupiedUntil(),
		})
	case errs.Is(err, commands.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid holder contact or identity"})
	case errs.Is(err, queries.ErrHolderRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone or userId is required"})
	case errs.Is(err, queries.ErrInvalidContact):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid phone number"})
	case errs.Is(err, commands.ErrInvalidRoom):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found or inactive"})
	case errs.Is(err, commands.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Queue entry not found"})
	case errs.Is(err, commands.ErrNotEntryHolder):
		c.JSON(http.StatusForbidden, gin.H{"error": "Queue entry belongs to another holder"})
	case errs.Is(err, commands.ErrLeaseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lease not found"})
	case errs.Is(err, commands.ErrLeaseNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Lease is not active"})
	case errs.Is(err, commands.ErrStoreUnavailable),
		errs.Is(err, queries.ErrStoreUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		c.Header("Retry-After", retryAfterSeconds)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Service temporarily unavailable, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
