package queuebot

import (
	"queuebot/store"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Token    string `env:"API_TOKEN,required"`
	APIURL   string `env:"API_URL"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Language string `env:"BOT_LANGUAGE" envDefault:"en"`

	// AdminIDs may create, advance and remove queues.
	AdminIDs []string `env:"ADMIN_IDS" envSeparator:","`
	// QueueChats limits /queue to these chats; empty means any chat.
	QueueChats []string `env:"QUEUE_CHATS" envSeparator:","`

	StoreShards int `env:"STORE_SHARDS" envDefault:"32"`

	Store store.Store `env:"-"`

	Bundle *i18n.Bundle
	Logger *log.Logger
}
