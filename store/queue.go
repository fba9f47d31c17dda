package store

// Queue is a point-in-time copy of a queue's state.
type Queue struct {
	Name     string
	Capacity int
	Members  []string
}
