package queuebot

import (
	"context"
	"regexp"
	"strings"

	botgolang "github.com/mail-ru-im/bot-golang"
	log "github.com/sirupsen/logrus"
)

var (
	botCmdRegexp = regexp.MustCompile("^/[a-zA-Z0-9_]+")
)

func (b *Bot) handleApiEvent(ctx context.Context, e *botgolang.Event) {
	b.logger.WithFields(log.Fields{
		"event_id":   e.EventID,
		"event_type": e.Type,
	}).Debug("handling event")

	if e.Type != botgolang.NEW_MESSAGE {
		return
	}

	msg := e.Payload.Message()

	cmd := botCmdRegexp.FindString(msg.Text)
	if cmd == "" {
		return
	}

	b.handleCommand(e, strings.ToLower(cmd[1:]), msg.Text[len(cmd):])
}

func (b *Bot) handleCommand(e *botgolang.Event, cmd, rest string) {
	b.logger.WithFields(log.Fields{
		"event_id": e.EventID,
		"command":  cmd,
	}).Debug("handling command")

	chatID := e.Payload.Chat.ID
	userID := e.Payload.From.ID

	switch cmd {
	case "start", "help":
		text := b.renderer.l("HelpMessage", map[string]interface{}{
			"Name": e.Payload.From.FirstName,
		})
		text += "\n\n" + b.dispatcher.Dispatch("", userID, b.admins.Has(userID))
		b.sendLog(e.EventID, b.bot.NewTextMessage(chatID, text))

	case "queue":
		if len(b.chats) > 0 && !b.chats.Has(chatID) {
			b.logger.WithFields(log.Fields{
				"event_id": e.EventID,
				"chat_id":  chatID,
				"user_id":  userID,
			}).Debug("queue command outside of queue chats")
			return
		}

		reply := b.dispatcher.Dispatch(rest, userID, b.admins.Has(userID))
		b.sendLog(e.EventID, b.bot.NewTextMessage(chatID, reply))

	default:
		rmsg := b.bot.NewTextMessage(chatID, b.renderer.l("UnknownCommand", map[string]interface{}{
			"Command": cmd,
		}))
		b.sendLog(e.EventID, rmsg)
	}
}
