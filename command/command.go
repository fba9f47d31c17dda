// Package command turns a tokenized /queue command into store calls and
// describes the result in a presentation-neutral Response.
package command

// Queue sub-commands. Anything else, including a privileged action sent by an
// unprivileged caller, is answered with the help listing.
const (
	ActionHelp     = ""
	ActionJoin     = "join"
	ActionPosition = "position"
	ActionLeave    = "leave"
	ActionNew      = "new"
	ActionNext     = "next"
	ActionRemove   = "remove"
)

// AllQueues as the only argument expands to every queue.
const AllQueues = "all"

// Command is one inbound /queue invocation. Caller identity and privilege are
// resolved by the dispatcher.
type Command struct {
	Action     string
	Args       []string
	Caller     string
	Privileged bool
}

// Signal is the three-way acknowledgement shown to the caller.
type Signal int

const (
	SignalNone Signal = iota
	SignalSuccess
	// SignalNegative is a valid request that could not be honored.
	SignalNegative
	// SignalUnknown is a malformed request or an unknown queue.
	SignalUnknown
)

type Reason string

const (
	ReasonJoined        Reason = "joined"
	ReasonAlreadyQueued Reason = "already_queued"
	ReasonUnknownQueue  Reason = "unknown_queue"
	ReasonNotQueued     Reason = "not_queued"
	ReasonLeft          Reason = "left"
	ReasonCreated       Reason = "created"
	ReasonQueueExists   Reason = "queue_exists"
	ReasonAdvanced      Reason = "advanced"
	ReasonRemoved       Reason = "removed"
)

// Outcome is the result of one per-queue step.
type Outcome struct {
	Queue  string
	Signal Signal
	Reason Reason
}

// Position is the caller's place in one queue.
type Position struct {
	Queue    string
	Position int
}

type Kind int

const (
	// KindHelp carries usage and the valid queue names.
	KindHelp Kind = iota
	// KindResult carries per-queue outcomes and an optional overall signal.
	KindResult
	// KindPositions lists the queues the caller is in.
	KindPositions
	// KindNotQueued means position found the caller in no queue.
	KindNotQueued
)

type Response struct {
	Kind   Kind
	Action string

	Outcomes  []Outcome
	Positions []Position

	// Signal is the acknowledgement for the whole command.
	Signal Signal

	// Help only.
	Queues     []string
	Extended   bool
	Privileged bool
}

func (r *Response) add(queue string, s Signal, reason Reason) {
	r.Outcomes = append(r.Outcomes, Outcome{Queue: queue, Signal: s, Reason: reason})
}
