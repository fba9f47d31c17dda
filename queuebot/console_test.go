package main

import (
	"bytes"
	"strings"
	"testing"

	"queuebot"
	"queuebot/command"
	"queuebot/store"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Run(t *testing.T) {
	bundle, err := queuebot.NewBundle()
	require.NoError(t, err)
	logger, _ := test.NewNullLogger()

	c := &console{
		dispatcher: queuebot.NewDispatcher(
			command.NewHandler(store.NewMemStore(1), logger),
			queuebot.NewRenderer(bundle, "en"),
		),
		user: "A",
	}

	in := strings.NewReader(strings.Join([]string{
		"new math 0",
		`\admin on`,
		"/queue new math 0",
		`\admin off`,
		"",
		"join math",
		`\user B`,
		"join math",
		"position math",
	}, "\n"))

	var out bytes.Buffer
	require.NoError(t, c.Run(in, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "❓", lines[0])
	assert.Contains(t, lines, "admin: true")
	assert.Contains(t, lines, "✅ Queue math created.")
	assert.Contains(t, lines, "user: B")
	assert.Equal(t, "math position: 1", lines[len(lines)-1])
}
