package store

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

const defaultShards = 32

// MemStore implements in-memory store. Queue names are spread over shards so
// creating or looking up one queue never waits on an unrelated one, and each
// queue carries its own lock for member changes.
type MemStore struct {
	shards []*shard
	mask   uint64
	seq    uint64
}

type shard struct {
	mu     sync.RWMutex
	queues map[string]*memQueue
}

// NewMemStore creates a store with the given shard count rounded up to a
// power of two. Non-positive counts fall back to a default.
func NewMemStore(shards int) *MemStore {
	if shards <= 0 {
		shards = defaultShards
	}
	n := ceilPowerOfTwo(shards)

	m := &MemStore{
		shards: make([]*shard, n),
		mask:   uint64(n - 1),
	}
	for i := range m.shards {
		m.shards[i] = &shard{queues: make(map[string]*memQueue)}
	}
	return m
}

func (m *MemStore) shardFor(name string) *shard {
	return m.shards[xxhash.Sum64String(name)&m.mask]
}

func (m *MemStore) lookup(name string) (*memQueue, error) {
	s := m.shardFor(name)

	s.mu.RLock()
	q, ok := s.queues[name]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrQueueNotFound
	}
	return q, nil
}

func (m *MemStore) Create(name string, capacity int) error {
	s := m.shardFor(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.queues[name]; ok {
		return ErrQueueExists
	}

	s.queues[name] = newMemQueue(name, capacity, atomic.AddUint64(&m.seq, 1))
	return nil
}

func (m *MemStore) Delete(name string) error {
	s := m.shardFor(name)

	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.queues[name]
	if !ok {
		return ErrQueueNotFound
	}
	delete(s.queues, name)

	q.mu.Lock()
	q.deleted = true
	q.members = nil
	q.index = nil
	q.mu.Unlock()

	return nil
}

func (m *MemStore) Enqueue(name, member string) error {
	q, err := m.lookup(name)
	if err != nil {
		return err
	}
	return q.Add(member)
}

func (m *MemStore) DequeueBatch(name string, n int) ([]string, error) {
	q, err := m.lookup(name)
	if err != nil {
		return nil, err
	}
	return q.Pick(n)
}

func (m *MemStore) RemoveMember(name, member string) (bool, error) {
	q, err := m.lookup(name)
	if err != nil {
		return false, err
	}
	return q.Remove(member)
}

func (m *MemStore) PositionOf(name, member string) (int, bool, error) {
	q, err := m.lookup(name)
	if err != nil {
		return 0, false, err
	}
	return q.Position(member)
}

// Snapshot returns a copy of the named queue.
func (m *MemStore) Snapshot(name string) (Queue, error) {
	q, err := m.lookup(name)
	if err != nil {
		return Queue{}, err
	}
	return q.Snapshot()
}

func (m *MemStore) Names() []string {
	var all []*memQueue
	for _, s := range m.shards {
		s.mu.RLock()
		for _, q := range s.queues {
			all = append(all, q)
		}
		s.mu.RUnlock()
	}

	sort.Slice(all, func(i, j int) bool { return all[i].seq < all[j].seq })

	names := make([]string, len(all))
	for i, q := range all {
		names[i] = q.name
	}
	return names
}

func ceilPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
