package response

import (
	"fittingroom/internal/usecase/queries"
)

type RoomsResponse struct {
	Rooms []queries.RoomOccupancyView `json:"rooms"`
}

type PositionsResponse struct {
	Entries []queries.HolderPositionView `json:"entries"`
}

// RoomsSnapshot is what the rooms stream pushes on every change.
type RoomsSnapshot struct {
	Rooms   []queries.RoomOccupancyView `json:"rooms"`
	Summary *queries.SummaryView        `json:"summary"`
}

func NewRoomsResponse(rooms []queries.RoomOccupancyView) RoomsResponse {
	if rooms == nil {
		rooms = []queries.RoomOccupancyView{}
	}
	return RoomsResponse{Rooms: rooms}
}

func NewPositionsResponse(entries []queries.HolderPositionView) PositionsResponse {
	if entries == nil {
		entries = []queries.HolderPositionView{}
	}
	return PositionsResponse{Entries: entries}
}
