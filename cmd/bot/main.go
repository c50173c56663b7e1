package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"squadBot/internal/app/events"
	"squadBot/internal/domain"
	"squadBot/internal/infrastructure/config"
	"squadBot/internal/infrastructure/logging"
	"squadBot/internal/infrastructure/presence"
	kickadapter "squadBot/internal/interface/adapters/kick"
	twitchadapter "squadBot/internal/interface/adapters/twitch"
	"squadBot/internal/interface/api/ws"
	"squadBot/internal/interface/outs"
	"squadBot/internal/usecase/commands"
	"squadBot/internal/usecase/handle_message"
	"squadBot/internal/usecase/notifications"
	"squadBot/internal/usecase/squad"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:   "squadbot",
		Short: "Chat bot that splits a voice channel into random teams",
		Long: `squadbot listens on Twitch, Kick and/or a websocket bridge and answers
"!sq <duo|trio|squad>" with a randomized team roster.

Configuration is read from the environment and an optional .env file.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(newRosterCmd())
	return root
}

type platformAdapter interface {
	outs.Sender
	Start(ctx context.Context) error
}

func runBot(ctx context.Context, envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("booting up bot")

	tracker := presence.NewTracker(cfg.PresenceWindow)
	var present domain.PresencePort = presence.NewResolver(tracker)
	if cfg.TwitchChattersEnabled() {
		token, err := config.ReadToken(cfg.TwitchAPITokenFile)
		if err != nil {
			return err
		}
		client, err := presence.NewHelixClient(cfg.TwitchClientID, token)
		if err != nil {
			return err
		}
		present = presence.NewTwitchChatters(log, client, cfg.TwitchBotUserID, cfg.TwitchBroadcasterIDs, present)
	}

	router := commands.NewRouter(cfg.CommandPrefix)
	router.Register(commands.NewPingCommand())
	router.Register(commands.NewCommandsCommand())
	router.Register(commands.NewSquadCommand(
		log,
		present,
		squad.NewParser(log, squad.WithMatchPolicy(matchPolicy(cfg))),
		squad.NewPartitioner(nil),
		cfg.FallbackMessage,
	))

	multiOut := outs.NewMultiSender()
	uc := handle_message.NewInteractor(log, multiOut, router, tracker,
		handle_message.WithSelf(domain.PlatformTwitch, cfg.TwitchUsername),
		handle_message.WithSelf(domain.PlatformKick, cfg.KickBotUsername),
	)

	adapters := map[domain.Platform]platformAdapter{}

	if cfg.TwitchEnabled() {
		token, err := config.ReadToken(cfg.TwitchTokenFile)
		if err != nil {
			return err
		}
		ad := twitchadapter.NewAdapter(twitchadapter.Config{
			Username:   cfg.TwitchUsername,
			OAuthToken: token,
			Channels:   cfg.TwitchChannels,
		}, log)
		ad.SetHandler(uc.Handle)
		adapters[domain.PlatformTwitch] = ad
	}

	if cfg.KickEnabled() {
		token, err := config.ReadToken(cfg.KickTokenFile)
		if err != nil {
			return err
		}
		ad := kickadapter.NewAdapter(kickadapter.Config{
			AccessToken:       token,
			BroadcasterUserID: cfg.KickBroadcasterUserID,
			ChatroomID:        cfg.KickChatroomID,
			BotUserID:         cfg.KickBotUserID,
			BotUsername:       cfg.KickBotUsername,
			EventHandler:      notifications.NewEventLogger(log).HandleKickMessage,
		}, log)
		ad.SetHandler(uc.Handle)
		adapters[domain.PlatformKick] = ad
	}

	if cfg.WebBridgeEnabled() {
		bus := events.NewBus(log)
		defer bus.Close()
		srv := ws.NewServer(ws.Config{Addr: cfg.WebBridgeAddr}, bus, log)
		srv.SetHandler(uc.Handle)
		adapters[domain.PlatformWeb] = srv
	}

	g, gctx := errgroup.WithContext(ctx)
	for platform, ad := range adapters {
		multiOut.Register(platform, ad)
		g.Go(func() error {
			if err := ad.Start(gctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("adapter stopped", zap.String("platform", string(platform)), zap.Error(err))
				return err
			}
			return nil
		})
	}

	log.Info("bot up and running", zap.Int("platforms", len(adapters)))
	err = g.Wait()
	log.Info("bot shut down")
	return err
}

func matchPolicy(cfg *config.Config) squad.MatchPolicy {
	if cfg.ExcludeCaseInsensitive {
		return squad.MatchFold
	}
	return squad.MatchExact
}
