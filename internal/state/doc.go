// Package state holds the client's shared and per-region status.
//
// # Store
//
// Store is the only value touched from more than one goroutine: the health
// poller writes to it and the UI reads a Snapshot on every tick. It uses a
// sync.RWMutex and hands out copies, so a Snapshot never changes under the
// reader.
//
// A failed check keeps the last known health and increments
// ConsecutiveFailures; IsOffline reports true from the second failure on. A
// successful check resets the counter.
//
// # Status
//
// Status is a plain value owned by the Bubble Tea model, one per async
// region (search, saved list, detail, save toggle, auth). It is mutated only
// inside Update, so it needs no locking.
package state
