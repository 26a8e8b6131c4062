package api

import (
	"net/http"

	reqdto "fittingroom/internal/handler/dto/request"
	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/handler/httperr"
	"fittingroom/internal/handler/middleware"
	"fittingroom/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LeaseHandler struct {
	cmds commands.LeaseCommands
}

func NewLeaseHandler(cmds commands.LeaseCommands) *LeaseHandler {
	return &LeaseHandler{cmds: cmds}
}

// @Summary Request a fitting room
// @Description Grant a five minute lease on a free room, or report until when it is occupied
// @Tags leases
// @Accept json
// @Produce json
// @Param request body reqdto.CreateLeaseRequest true "Lease request"
// @Success 200 {object} resdto.LeaseEnvelope
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} resdto.ConflictResponse
// @Failure 500 {object} httperr.Response
// @Router /leases [post]
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req reqdto.CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	params := commands.CreateLeaseParams{
		RoomID:        req.RoomID,
		HolderContact: req.GetHolderContact(),
		HolderUserID:  holderUserID(c, req.HolderUserID),
	}

	view, err := h.cmds.CreateLease(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := resdto.FromLeaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Release a lease
// @Description Complete an active lease early and hand the room to the next in line
// @Tags leases
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lease ID"
// @Success 200 {object} resdto.LeaseEnvelope
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /leases/{id}/release [post]
func (h *LeaseHandler) ReleaseLease(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lease ID format"})
		return
	}

	view, err := h.cmds.ReleaseLease(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := resdto.FromLeaseView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

// holderUserID prefers the authenticated identity over a self-declared id.
func holderUserID(c *gin.Context, declared *uuid.UUID) *uuid.UUID {
	if id, ok := middleware.GetUserID(c); ok {
		return &id
	}
	return declared
}
