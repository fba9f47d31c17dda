package queuebot

import (
	"embed"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed i18n/*.toml
var messageFiles embed.FS

// NewBundle loads every embedded message file. English is the fallback.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(messageFiles, "i18n/*.toml")
	if err != nil {
		return nil, errors.Wrap(err, "cant list message files")
	}

	for _, name := range files {
		data, err := messageFiles.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "cant read %s", name)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(name)); err != nil {
			return nil, errors.Wrapf(err, "cant parse %s", name)
		}
	}

	return bundle, nil
}
