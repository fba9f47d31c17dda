package queuebot

import (
	"strings"

	"queuebot/command"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

var glyphs = map[command.Signal]string{
	command.SignalSuccess:  "✅",
	command.SignalNegative: "❌",
	command.SignalUnknown:  "❓",
}

// Renderer turns handler responses into chat text.
type Renderer struct {
	localizer *i18n.Localizer
}

func NewRenderer(bundle *i18n.Bundle, lang string) *Renderer {
	return &Renderer{
		localizer: i18n.NewLocalizer(bundle, lang),
	}
}

func (r *Renderer) Render(resp command.Response) string {
	var lines []string

	switch resp.Kind {
	case command.KindHelp:
		lines = r.help(resp)

	case command.KindResult:
		lines = r.outcomes(resp.Outcomes)
		if resp.Signal != command.SignalNone && !summarized(resp) {
			lines = append(lines, glyphs[resp.Signal]+" "+r.l("Queue_Done", nil))
		}
		if len(lines) == 0 {
			lines = append(lines, r.l("Queue_NoQueues", nil))
		}

	case command.KindPositions:
		lines = r.outcomes(resp.Outcomes)
		for _, p := range resp.Positions {
			lines = append(lines, r.l("Queue_Position", map[string]interface{}{
				"Queue":    p.Queue,
				"Position": p.Position,
			}))
		}

	case command.KindNotQueued:
		lines = r.outcomes(resp.Outcomes)
		lines = append(lines, r.l("Queue_NotQueued", nil))
	}

	return strings.Join(lines, "\n")
}

func (r *Renderer) help(resp command.Response) []string {
	var lines []string

	if resp.Signal != command.SignalNone {
		lines = append(lines, glyphs[resp.Signal])
	}

	if resp.Extended {
		lines = append(lines, r.l("Queue_UsageExtended", nil))
	} else {
		lines = append(lines, r.l("Queue_Usage", nil))
	}
	if resp.Privileged {
		lines = append(lines, r.l("Queue_UsageAdmin", nil))
	}

	if len(resp.Queues) == 0 {
		lines = append(lines, r.l("Queue_NoQueues", nil))
	} else {
		lines = append(lines, r.l("Queue_Valid", map[string]interface{}{
			"Queues": strings.Join(resp.Queues, " "),
		}))
	}

	return lines
}

func (r *Renderer) outcomes(outcomes []command.Outcome) []string {
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		lines = append(lines, glyphs[o.Signal]+" "+r.l("Queue_"+string(o.Reason), map[string]interface{}{
			"Queue": o.Queue,
		}))
	}
	return lines
}

// summarized reports whether the single outcome already shows the overall signal.
func summarized(resp command.Response) bool {
	return len(resp.Outcomes) == 1 && resp.Outcomes[0].Signal == resp.Signal
}
