package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"queuebot"
	"queuebot/command"
	"queuebot/store"

	"github.com/caarlos0/env"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
)

type consoleConfig struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"warn"`
	Language    string `env:"BOT_LANGUAGE" envDefault:"en"`
	StoreShards int    `env:"STORE_SHARDS" envDefault:"32"`
}

// console reads /queue lines from a terminal instead of the bot API.
// Lines starting with "\user" or "\admin" switch the caller.
type console struct {
	dispatcher *queuebot.Dispatcher
	user       string
	admin      bool
}

func newConsoleCmd() *cobra.Command {
	var (
		user  string
		admin bool
	)

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run /queue commands from stdin against an in-memory store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg consoleConfig
			if err := env.Parse(&cfg); err != nil {
				return errors.Wrap(err, "cant parse config")
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return errors.Wrap(err, "failed to parse log level")
			}
			logger.SetOutput(cmd.ErrOrStderr())

			lang, err := language.Parse(cfg.Language)
			if err != nil {
				return errors.Wrapf(err, "cant parse language %q", cfg.Language)
			}

			bundle, err := queuebot.NewBundle()
			if err != nil {
				return err
			}

			c := &console{
				dispatcher: queuebot.NewDispatcher(
					command.NewHandler(store.NewMemStore(cfg.StoreShards), logger),
					queuebot.NewRenderer(bundle, lang.String()),
				),
				user:  user,
				admin: admin,
			}
			return c.Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&user, "user", "console", "caller id")
	cmd.Flags().BoolVar(&admin, "admin", false, "caller may create, advance and remove queues")

	return cmd
}

func (c *console) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if reply, ok := c.meta(line); ok {
			fmt.Fprintln(out, reply)
			continue
		}

		line = strings.TrimPrefix(line, "/queue")
		fmt.Fprintln(out, c.dispatcher.Dispatch(line, c.user, c.admin))
	}
	return scanner.Err()
}

func (c *console) meta(line string) (string, bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case `\user`:
		if len(fields) == 2 {
			c.user = fields[1]
		}
		return "user: " + c.user, true
	case `\admin`:
		if len(fields) == 2 {
			c.admin = fields[1] == "on"
		}
		return fmt.Sprintf("admin: %t", c.admin), true
	}
	return "", false
}
