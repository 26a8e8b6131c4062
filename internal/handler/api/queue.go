package api

import (
	"net/http"

	reqdto "fittingroom/internal/handler/dto/request"
	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/handler/httperr"
	"fittingroom/internal/usecase/commands"
	"fittingroom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueueHandler struct {
	cmds commands.QueueCommands
	q    queries.OccupancyQueries
}

func NewQueueHandler(cmds commands.QueueCommands, q queries.OccupancyQueries) *QueueHandler {
	return &QueueHandler{cmds: cmds, q: q}
}

// @Summary Join the waiting line
// @Description Append the holder to a room's line and quote a wait estimate
// @Tags queue
// @Accept json
// @Produce json
// @Param request body reqdto.JoinQueueRequest true "Queue join request"
// @Success 200 {object} resdto.JoinQueueResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} httperr.Response
// @Router /queue [post]
func (h *QueueHandler) JoinQueue(c *gin.Context) {
	var req reqdto.JoinQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.cmds.JoinQueue(c.Request.Context(), commands.JoinQueueParams{
		RoomID:        req.RoomID,
		HolderContact: req.GetHolderContact(),
		HolderUserID:  holderUserID(c, req.HolderUserID),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	body, err := resdto.FromJoinQueueResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, body)
}

// @Summary Leave the waiting line
// @Description Cancel a queue entry. Cancelling twice is not an error. The caller proves
// @Description ownership with a bearer token or the entry's phone number.
// @Tags queue
// @Produce json
// @Param id path string true "Queue entry ID"
// @Param phone query string false "Holder phone"
// @Success 200 {object} resdto.QueueEntryEnvelope
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /queue/{id} [delete]
func (h *QueueHandler) CancelEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid queue entry ID format"})
		return
	}

	view, err := h.cmds.CancelEntry(c.Request.Context(), commands.CancelEntryParams{
		EntryID:       id,
		HolderContact: c.Query("phone"),
		HolderUserID:  holderUserID(c, nil),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := resdto.FromQueueEntryView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.QueueEntryEnvelope{QueueEntry: entry})
}

// @Summary Holder positions
// @Description Waiting entries of one holder with live place in line and estimate
// @Tags queue
// @Produce json
// @Param phone query string false "Holder phone"
// @Param userId query string false "Holder user ID"
// @Success 200 {object} resdto.PositionsResponse
// @Failure 400 {object} map[string]string
// @Router /queue/positions [get]
func (h *QueueHandler) Positions(c *gin.Context) {
	lookup, ok := bindHolderLookup(c)
	if !ok {
		return
	}

	entries, err := h.q.HolderPositions(c.Request.Context(), lookup)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewPositionsResponse(entries))
}

func bindHolderLookup(c *gin.Context) (queries.HolderLookup, bool) {
	var q reqdto.HolderQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query"})
		return queries.HolderLookup{}, false
	}
	userID, err := q.ParseUserID()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid userId format"})
		return queries.HolderLookup{}, false
	}
	return queries.HolderLookup{UserID: userID, Phone: q.Phone}, true
}
