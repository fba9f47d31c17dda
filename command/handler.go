package command

import (
	"queuebot/store"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Handler is stateless; every call goes straight to the store, so it is safe
// to share between concurrent dispatches.
type Handler struct {
	store  store.Store
	logger *log.Logger
}

func NewHandler(s store.Store, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Handler{
		store:  s,
		logger: logger,
	}
}

func (h *Handler) Handle(cmd Command) Response {
	h.logger.WithFields(log.Fields{
		"user_id":    cmd.Caller,
		"action":     cmd.Action,
		"args":       cmd.Args,
		"privileged": cmd.Privileged,
	}).Debug("handling queue command")

	switch cmd.Action {
	case ActionHelp:
		return h.help(cmd, false)
	case ActionJoin:
		if names, ok := h.expand(cmd.Args, false); ok {
			return h.join(cmd, names)
		}
		return h.help(cmd, true)
	case ActionPosition:
		names, _ := h.expand(cmd.Args, true)
		return h.position(cmd, names)
	case ActionLeave:
		if names, ok := h.expand(cmd.Args, false); ok {
			return h.leave(cmd, names)
		}
		return h.help(cmd, true)
	}

	if cmd.Privileged {
		var (
			resp Response
			ok   bool
		)
		switch cmd.Action {
		case ActionNew:
			resp, ok = h.create(cmd)
		case ActionNext:
			resp, ok = h.next(cmd)
		case ActionRemove:
			resp, ok = h.remove(cmd)
		}
		if ok {
			return resp
		}
	}

	return h.help(cmd, true)
}

// expand resolves the queue names a batch command applies to. A lone "all"
// means every queue; an empty list does too when emptyMeansAll is set and is
// otherwise malformed.
func (h *Handler) expand(args []string, emptyMeansAll bool) ([]string, bool) {
	switch {
	case len(args) == 0 && !emptyMeansAll:
		return nil, false
	case len(args) == 0, len(args) == 1 && args[0] == AllQueues:
		return h.store.Names(), true
	}
	return args, true
}

func (h *Handler) help(cmd Command, malformed bool) Response {
	resp := Response{
		Kind:       KindHelp,
		Action:     cmd.Action,
		Queues:     h.store.Names(),
		Extended:   malformed,
		Privileged: cmd.Privileged,
	}
	if malformed {
		resp.Signal = SignalUnknown
	}
	return resp
}

func (h *Handler) join(cmd Command, names []string) Response {
	resp := Response{Kind: KindResult, Action: cmd.Action}

	for _, name := range names {
		err := h.store.Enqueue(name, cmd.Caller)
		switch {
		case errors.Is(err, store.ErrQueueNotFound):
			resp.add(name, SignalUnknown, ReasonUnknownQueue)
		case errors.Is(err, store.ErrAlreadyQueued):
			resp.add(name, SignalNegative, ReasonAlreadyQueued)
		case err != nil:
			h.logError(cmd, name, err)
			resp.add(name, SignalUnknown, ReasonUnknownQueue)
		default:
			h.logger.WithFields(log.Fields{
				"user_id": cmd.Caller,
				"queue":   name,
			}).Debug("member joined queue")
			resp.add(name, SignalSuccess, ReasonJoined)
		}
	}

	return resp
}

func (h *Handler) position(cmd Command, names []string) Response {
	resp := Response{Kind: KindPositions, Action: cmd.Action}

	for _, name := range names {
		pos, queued, err := h.store.PositionOf(name, cmd.Caller)
		if err != nil {
			if !errors.Is(err, store.ErrQueueNotFound) {
				h.logError(cmd, name, err)
			}
			resp.add(name, SignalUnknown, ReasonUnknownQueue)
			continue
		}
		if queued {
			resp.Positions = append(resp.Positions, Position{Queue: name, Position: pos})
		}
	}

	if len(resp.Positions) == 0 {
		resp.Kind = KindNotQueued
	}
	return resp
}

func (h *Handler) leave(cmd Command, names []string) Response {
	resp := Response{Kind: KindResult, Action: cmd.Action}

	for _, name := range names {
		removed, err := h.store.RemoveMember(name, cmd.Caller)
		switch {
		case err != nil:
			if !errors.Is(err, store.ErrQueueNotFound) {
				h.logError(cmd, name, err)
			}
			resp.add(name, SignalUnknown, ReasonUnknownQueue)
		case !removed:
			resp.add(name, SignalNegative, ReasonNotQueued)
		default:
			h.logger.WithFields(log.Fields{
				"user_id": cmd.Caller,
				"queue":   name,
			}).Debug("member left queue")
			resp.add(name, SignalSuccess, ReasonLeft)
		}
	}

	resp.Signal = SignalSuccess
	return resp
}

func (h *Handler) create(cmd Command) (Response, bool) {
	if len(cmd.Args) != 2 {
		return Response{}, false
	}
	name := cmd.Args[0]
	capacity, ok := parseCapacity(cmd.Args[1])
	if !ok {
		return Response{}, false
	}

	resp := Response{Kind: KindResult, Action: cmd.Action}

	err := h.store.Create(name, capacity)
	switch {
	case errors.Is(err, store.ErrQueueExists):
		resp.add(name, SignalNegative, ReasonQueueExists)
		resp.Signal = SignalNegative
	case err != nil:
		h.logError(cmd, name, err)
		resp.add(name, SignalNegative, ReasonQueueExists)
		resp.Signal = SignalNegative
	default:
		h.logger.WithFields(log.Fields{
			"user_id":  cmd.Caller,
			"queue":    name,
			"capacity": capacity,
		}).Info("queue created")
		resp.add(name, SignalSuccess, ReasonCreated)
		resp.Signal = SignalSuccess
	}

	return resp, true
}

func (h *Handler) next(cmd Command) (Response, bool) {
	if len(cmd.Args) < 1 || len(cmd.Args) > 2 {
		return Response{}, false
	}
	name := cmd.Args[0]
	n := parseCount(cmd.Args)

	resp := Response{Kind: KindResult, Action: cmd.Action}

	released, err := h.store.DequeueBatch(name, n)
	if err != nil {
		if !errors.Is(err, store.ErrQueueNotFound) {
			h.logError(cmd, name, err)
		}
		resp.add(name, SignalUnknown, ReasonUnknownQueue)
		resp.Signal = SignalUnknown
		return resp, true
	}

	// released members are not told; only the log keeps who went through
	h.logger.WithFields(log.Fields{
		"user_id":  cmd.Caller,
		"queue":    name,
		"count":    n,
		"released": released,
	}).Info("queue advanced")

	resp.add(name, SignalSuccess, ReasonAdvanced)
	resp.Signal = SignalSuccess
	return resp, true
}

func (h *Handler) remove(cmd Command) (Response, bool) {
	if len(cmd.Args) != 1 {
		return Response{}, false
	}
	name := cmd.Args[0]

	resp := Response{Kind: KindResult, Action: cmd.Action}

	err := h.store.Delete(name)
	if err != nil {
		if !errors.Is(err, store.ErrQueueNotFound) {
			h.logError(cmd, name, err)
		}
		resp.add(name, SignalUnknown, ReasonUnknownQueue)
		resp.Signal = SignalUnknown
		return resp, true
	}

	h.logger.WithFields(log.Fields{
		"user_id": cmd.Caller,
		"queue":   name,
	}).Info("queue removed")

	resp.add(name, SignalSuccess, ReasonRemoved)
	resp.Signal = SignalSuccess
	return resp, true
}

func (h *Handler) logError(cmd Command, queue string, err error) {
	h.logger.WithFields(log.Fields{
		"user_id": cmd.Caller,
		"action":  cmd.Action,
		"queue":   queue,
		"error":   err,
	}).Error("unexpected store error")
}
