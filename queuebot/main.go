package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "queuebot",
		Short:         "Chat bot keeping admin-controlled FIFO queues",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd(), newConsoleCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		log.WithField("err", err).Error("queuebot failed")
		os.Exit(1)
	}
}

func newLogger(level string) (*log.Logger, error) {
	logger := log.New()
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger.Level = lvl
	return logger, nil
}
