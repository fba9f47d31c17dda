package queuebot

import (
	"strings"

	"queuebot/command"
)

// Dispatcher runs the text after /queue for one caller and renders the reply.
type Dispatcher struct {
	handler  *command.Handler
	renderer *Renderer
}

func NewDispatcher(handler *command.Handler, renderer *Renderer) *Dispatcher {
	return &Dispatcher{
		handler:  handler,
		renderer: renderer,
	}
}

// ParseCommand splits "action arg1 arg2 ..." into a command.
func ParseCommand(text, caller string, privileged bool) command.Command {
	cmd := command.Command{
		Caller:     caller,
		Privileged: privileged,
	}

	tokens := strings.Fields(text)
	if len(tokens) > 0 {
		cmd.Action = tokens[0]
		cmd.Args = tokens[1:]
	}
	return cmd
}

func (d *Dispatcher) Dispatch(text, caller string, privileged bool) string {
	resp := d.handler.Handle(ParseCommand(text, caller, privileged))
	return d.renderer.Render(resp)
}
