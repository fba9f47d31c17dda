package queuebot

import (
	"context"

	"queuebot/command"
	"queuebot/store"

	botgolang "github.com/mail-ru-im/bot-golang"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

type Bot struct {
	bot        *botgolang.Bot
	cfg        Config
	dispatcher *Dispatcher
	renderer   *Renderer
	admins     idSet
	chats      idSet
	logger     *log.Logger
}

func NewBot(cfg Config) (*Bot, error) {
	bot := Bot{
		cfg:    cfg,
		admins: newIDSet(cfg.AdminIDs),
		chats:  newIDSet(cfg.QueueChats),
	}

	if cfg.Logger != nil {
		bot.logger = cfg.Logger
	} else {
		bot.logger = log.StandardLogger()
	}

	if cfg.Bundle == nil {
		return nil, errors.New("message bundle is required")
	}

	lang, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, errors.Wrapf(err, "cant parse language %q", cfg.Language)
	}

	s := cfg.Store
	if s == nil {
		s = store.NewMemStore(cfg.StoreShards)
	}

	bot.renderer = NewRenderer(cfg.Bundle, lang.String())
	bot.dispatcher = NewDispatcher(command.NewHandler(s, bot.logger), bot.renderer)

	var opts []botgolang.BotOption
	if cfg.APIURL != "" {
		opts = append(opts, botgolang.BotApiURL(cfg.APIURL))
	}

	bot.bot, err = botgolang.NewBot(cfg.Token, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "cant create botgolang bot")
	}

	return &bot, nil
}

func (b *Bot) BotInfo() *botgolang.BotInfo {
	return b.bot.Info
}

func (b *Bot) StartPolling(ctx context.Context) error {
	events := b.bot.GetUpdatesChannel(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e := <-events:
			go func() {
				defer func() {
					if r := recover(); r != nil {
						b.logger.WithFields(log.Fields{
							"error":    r,
							"event_id": e.EventID,
						}).Error("panic during event handling")
					}
				}()

				b.handleApiEvent(ctx, &e)
			}()
		}
	}
}
