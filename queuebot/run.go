package main

import (
	"context"
	"os"
	"os/signal"

	"queuebot"
	"queuebot/store"

	"github.com/caarlos0/env"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Poll the bot API and serve /queue commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}
}

func run(ctx context.Context) error {
	var cfg queuebot.Config
	if err := env.Parse(&cfg); err != nil {
		return errors.Wrap(err, "cant parse config")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	cfg.Logger = logger
	cfg.Store = store.NewMemStore(cfg.StoreShards)

	cfg.Bundle, err = queuebot.NewBundle()
	if err != nil {
		return err
	}

	bot, err := queuebot.NewBot(cfg)
	if err != nil {
		return err
	}

	botInfo := bot.BotInfo()
	logger.WithFields(log.Fields{
		"bot_nick": botInfo.Nick,
		"bot_name": botInfo.FirstName,
		"admins":   len(cfg.AdminIDs),
	}).Info("starting bot")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := bot.StartPolling(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return errors.Wrap(err, "error from StartPolling")
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("stopping bot")
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped bot")
	return nil
}
