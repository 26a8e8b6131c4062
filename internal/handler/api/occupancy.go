package api

import (
	"net/http"

	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OccupancyHandler struct {
	q queries.OccupancyQueries
}

func NewOccupancyHandler(q queries.OccupancyQueries) *OccupancyHandler {
	return &OccupancyHandler{q: q}
}

// @Summary Room occupancy
// @Description Per-room occupancy, remaining time and line length
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.RoomsResponse
// @Failure 500 {object} httperr.Response
// @Router /rooms/occupancy [get]
func (h *OccupancyHandler) Occupancy(c *gin.Context) {
	rooms, err := h.q.RoomOccupancy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewRoomsResponse(rooms))
}

// @Summary Store summary
// @Description Current users, total line, average wait and load level
// @Tags rooms
// @Produce json
// @Success 200 {object} queries.SummaryView
// @Failure 500 {object} httperr.Response
// @Router /rooms/summary [get]
func (h *OccupancyHandler) Summary(c *gin.Context) {
	summary, err := h.q.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
