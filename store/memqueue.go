package store

import "sync"

// memQueue is a single FIFO line. Members are kept in arrival order, with a
// set alongside for duplicate checks.
type memQueue struct {
	mu sync.Mutex

	name     string
	capacity int
	seq      uint64
	members  []string
	index    map[string]struct{}

	// set once the queue is unlinked from its shard, so callers that looked
	// it up before the delete still see ErrQueueNotFound
	deleted bool
}

func newMemQueue(name string, capacity int, seq uint64) *memQueue {
	return &memQueue{
		name:     name,
		capacity: capacity,
		seq:      seq,
		index:    make(map[string]struct{}),
	}
}

func (q *memQueue) Add(member string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return ErrQueueNotFound
	}
	if _, has := q.index[member]; has {
		return ErrAlreadyQueued
	}

	q.members = append(q.members, member)
	q.index[member] = struct{}{}
	return nil
}

func (q *memQueue) Remove(member string) (bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return false, ErrQueueNotFound
	}
	if _, has := q.index[member]; !has {
		return false, nil
	}

	i := q.find(member)
	q.members = append(q.members[:i], q.members[i+1:]...)
	delete(q.index, member)
	return true, nil
}

func (q *memQueue) Pick(n int) ([]string, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return nil, ErrQueueNotFound
	}

	if n < 1 {
		n = 1
	}
	if n > len(q.members) {
		n = len(q.members)
	}

	released := make([]string, n)
	copy(released, q.members[:n])
	for _, m := range released {
		delete(q.index, m)
	}
	q.members = append([]string(nil), q.members[n:]...)

	return released, nil
}

func (q *memQueue) Position(member string) (int, bool, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return 0, false, ErrQueueNotFound
	}
	if _, has := q.index[member]; !has {
		return 0, false, nil
	}

	return q.find(member) - q.capacity, true, nil
}

func (q *memQueue) Snapshot() (Queue, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.deleted {
		return Queue{}, ErrQueueNotFound
	}

	return Queue{
		Name:     q.name,
		Capacity: q.capacity,
		Members:  append([]string(nil), q.members...),
	}, nil
}

// find must be called with mu held and member present in index.
func (q *memQueue) find(member string) int {
	for i, m := range q.members {
		if m == member {
			return i
		}
	}
	return -1
}
