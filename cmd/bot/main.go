package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/Badiss244/discord2.0/internal/bot"
	"github.com/Badiss244/discord2.0/internal/bus"
	"github.com/Badiss244/discord2.0/internal/config"
	"github.com/Badiss244/discord2.0/internal/countdown"
	"github.com/Badiss244/discord2.0/internal/discord"
	"github.com/Badiss244/discord2.0/internal/logging"
)

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "countdown-bot",
		Short:         "Discord bot that tracks countdowns in continuously edited messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath)
		},
	}
	root.Flags().StringVar(&configPath, "config", "config.json", "path to the JSON config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logging.Setup(cfg.Log.Level, cfg.Log.File)

	store := countdown.NewStore(cfg.StorePath)
	store.Load()
	slog.Info("countdown store loaded", "path", cfg.StorePath, "count", store.Len())

	gateway, err := discord.New(cfg.Token)
	if err != nil {
		return err
	}

	queue := bus.NewQueue(64)
	b := bot.New(gateway, store, queue, cfg.Prefix)

	// Refresh ticks are published onto the same queue as commands so the
	// worker processes them strictly one at a time.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(fmt.Sprintf("@every %s", cfg.Interval()), func() {
		queue.Publish(bus.RefreshEvent{})
	}); err != nil {
		return fmt.Errorf("failed to schedule refresh loop: %w", err)
	}

	session := gateway.Raw()
	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		slog.Info("connected to discord", "user", r.User.Username, "guilds", len(r.Guilds))
		b.UpdateStatus()
		scheduler.Start()
	})
	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		queue.Publish(bus.CommandEvent{
			AuthorID:  m.Author.ID,
			ChannelID: m.ChannelID,
			MessageID: m.ID,
			Content:   m.Content,
		})
	})

	if err := gateway.Open(); err != nil {
		return fmt.Errorf("failed to open discord connection: %w", err)
	}
	defer gateway.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("countdown bot running", "prefix", cfg.Prefix, "interval", cfg.Interval())
	b.Run(ctx)

	scheduler.Stop()
	slog.Info("shutting down")
	return nil
}
