// Package changefeed carries "something changed, re-fetch" signals from writers to
// every open projection. Events never carry state; subscribers always re-read the store.
package changefeed

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Table string

const (
	TableLeases       Table = "leases"
	TableQueueEntries Table = "queue_entries"
	// TableResync asks every subscriber to reload, e.g. after the relay reconnected.
	TableResync Table = "resync"
)

// HolderKey names the party whose action caused the change, for tracing only:
// any change in a room can move everybody's place in line.
type Event struct {
	Table     Table     `json:"table"`
	RoomID    uuid.UUID `json:"roomId"`
	HolderKey string    `json:"holderKey,omitempty"`
	At        time.Time `json:"at"`
	Origin    string    `json:"origin,omitempty"`
}

// Publisher is implemented by the local Broker and by RedisBus.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Filter narrows a subscription. Zero values match everything.
type Filter struct {
	Tables []Table
	RoomID uuid.UUID
}

func (f Filter) Matches(e Event) bool {
	if e.Table == TableResync {
		return true
	}
	if len(f.Tables) > 0 && !containsTable(f.Tables, e.Table) {
		return false
	}
	if f.RoomID != uuid.Nil && e.RoomID != f.RoomID {
		return false
	}
	return true
}

func containsTable(ts []Table, t Table) bool {
	for _, x := range ts {
		if x == t {
			return true
		}
	}
	return false
}
