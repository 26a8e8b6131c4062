package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	resdto "fittingroom/internal/handler/dto/response"
	"fittingroom/internal/infra/changefeed"
	"fittingroom/internal/pkg/config"
	"fittingroom/internal/usecase/projection"
	"fittingroom/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ChangeSubscriber is satisfied by *changefeed.Broker.
type ChangeSubscriber interface {
	Subscribe(f changefeed.Filter) *changefeed.Subscription
}

type StreamHandler struct {
	feed      ChangeSubscriber
	q         queries.OccupancyQueries
	heartbeat time.Duration
	logger    *slog.Logger
}

func NewStreamHandler(feed ChangeSubscriber, q queries.OccupancyQueries, cfg config.Config, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{
		feed:      feed,
		q:         q,
		heartbeat: cfg.Engine.StreamHeartbeat,
		logger:    logger,
	}
}

// @Summary Room occupancy stream
// @Description Server-Sent Events. A full snapshot first, then a fresh one after every change.
// @Tags rooms
// @Produce text/event-stream
// @Success 200 {object} resdto.RoomsSnapshot
// @Router /rooms/stream [get]
func (h *StreamHandler) Rooms(c *gin.Context) {
	view := projection.NewView[resdto.RoomsSnapshot]("rooms", func(ctx context.Context) (resdto.RoomsSnapshot, error) {
		rooms, err := h.q.RoomOccupancy(ctx)
		if err != nil {
			return resdto.RoomsSnapshot{}, err
		}
		summary, err := h.q.Summary(ctx)
		if err != nil {
			return resdto.RoomsSnapshot{}, err
		}
		return resdto.RoomsSnapshot{Rooms: resdto.NewRoomsResponse(rooms).Rooms, Summary: summary}, nil
	}, h.logger)

	serveView(c, h, "rooms", changefeed.Filter{}, view)
}

// @Summary Holder position stream
// @Description Server-Sent Events carrying the holder's places in line after every change.
// @Tags queue
// @Produce text/event-stream
// @Param phone query string false "Holder phone"
// @Param userId query string false "Holder user ID"
// @Success 200 {object} resdto.PositionsResponse
// @Failure 400 {object} map[string]string
// @Router /queue/stream [get]
func (h *StreamHandler) Queue(c *gin.Context) {
	lookup, ok := bindHolderLookup(c)
	if !ok {
		return
	}
	// validate the lookup before switching to event-stream
	if _, err := h.q.HolderPositions(c.Request.Context(), lookup); err != nil {
		respondError(c, err)
		return
	}

	view := projection.NewView[resdto.PositionsResponse]("queue", func(ctx context.Context) (resdto.PositionsResponse, error) {
		entries, err := h.q.HolderPositions(ctx, lookup)
		if err != nil {
			return resdto.PositionsResponse{}, err
		}
		return resdto.NewPositionsResponse(entries), nil
	}, h.logger)

	filter := changefeed.Filter{Tables: []changefeed.Table{changefeed.TableQueueEntries, changefeed.TableLeases}}
	serveView(c, h, "positions", filter, view)
}

func serveView[T any](c *gin.Context, h *StreamHandler, event string, filter changefeed.Filter, view *projection.View[T]) {
	sub := h.feed.Subscribe(filter)
	defer sub.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	err := view.Follow(ctx, sub.C(), h.heartbeat, func(v T) error {
		c.SSEvent(event, v)
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		h.logger.Warn("stream ended", "stream", event, "error", err)
	}
}
