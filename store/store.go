package store

import "github.com/pkg/errors"

// Store owns every queue and the members waiting in them. Each method is a
// single atomic step against one queue name.
type Store interface {
	Create(name string, capacity int) error
	Delete(name string) error
	Enqueue(name, member string) error
	// DequeueBatch releases up to n members from the front; n below 1 counts as 1.
	DequeueBatch(name string, n int) ([]string, error)
	// RemoveMember reports whether member was actually queued.
	RemoveMember(name, member string) (bool, error)
	// PositionOf returns index-minus-capacity and whether member is queued at all.
	PositionOf(name, member string) (pos int, queued bool, err error)
	// Names lists queues in creation order.
	Names() []string
}

var (
	ErrQueueExists   = errors.New("queue already exists")
	ErrQueueNotFound = errors.New("queue not found")
	ErrAlreadyQueued = errors.New("member already queued")
)
