package queuebot

import (
	botgolang "github.com/mail-ru-im/bot-golang"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	log "github.com/sirupsen/logrus"
)

// l is shortcut for localization
func (r *Renderer) l(key string, data map[string]interface{}) string {
	return r.localizer.MustLocalize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}

// sendLog sends message, and logs error if there is any
func (b *Bot) sendLog(eID int, m *botgolang.Message) error {
	err := m.Send()
	if err != nil {
		b.logger.WithFields(log.Fields{
			"event_id": eID,
			"error":    err,
		}).Error("cant send message")
	}
	return err
}

type idSet map[string]struct{}

func newIDSet(ids []string) idSet {
	s := make(idSet, len(ids))
	for _, id := range ids {
		if id != "" {
			s[id] = struct{}{}
		}
	}
	return s
}

func (s idSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}
