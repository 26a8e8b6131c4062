package notify

import (
	"context"
	"log/slog"

	"fittingroom/internal/usecase/commands"
)

// LogNotifier stands in when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyPromoted(_ context.Context, p commands.Promotion) error {
	n.logger.Info("queue entry promoted",
		"entry_id", p.EntryID,
		"room_id", p.RoomID,
		"contact", p.HolderContact,
		"respond_by", p.RespondBy,
	)
	return nil
}
