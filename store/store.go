// Package store provides the durable slot store backing the directory and
// session layers: four collection slots each holding a JSON array, plus a
// session slot holding at most one JSON object.
package store

// Slot names. Collections are mutually independent; the session slot is the
// only one that may be absent.
const (
	SlotInvestors  = "investors"
	SlotManagement = "management"
	SlotVolunteers = "volunteers"
	SlotIdeas      = "investment_ideas"
	SlotSession    = "session"
)

// Store is a flat key-indexed durable store. Writes fully replace the
// previous slot contents. Implementations are safe for use from concurrent
// handler goroutines, though the platform model is single-client.
type Store interface {
	// ReadCollection returns the JSON array held by the named slot. A slot
	// with no prior durable data is materialized as an empty array and
	// persisted before being returned, so callers never observe an absent
	// collection.
	ReadCollection(name string) ([]byte, error)

	// WriteCollection replaces the named slot with the given JSON array.
	WriteCollection(name string, data []byte) error

	// ReadSlot returns the raw contents of a single-object slot, with
	// ok=false when nothing has been stored.
	ReadSlot(name string) ([]byte, bool, error)

	// WriteSlot replaces the named slot with the given JSON object.
	WriteSlot(name string, data []byte) error

	// DeleteSlot removes the named slot. Deleting an absent slot is not an
	// error.
	DeleteSlot(name string) error
}

var emptyList = []byte("[]")
