// Package twitchadapter adapter for twitch
package twitchadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/adeithe/go-twitch/irc"
	"go.uber.org/zap"

	"squadBot/internal/domain"
	"squadBot/internal/interface/outs"
)

type Config struct {
	Username   string
	OAuthToken string
	Channels   []string
}

type MessageHandler func(ctx context.Context, msg domain.Message) error

type Adapter struct {
	cfg     Config
	log     *zap.Logger
	handler MessageHandler

	mu   sync.RWMutex
	conn *irc.Conn
}

func NewAdapter(cfg Config, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{cfg: cfg, log: log.Named("twitch")}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if len(a.cfg.Channels) == 0 {
		return errors.New("twitch: no channels configured")
	}
	if a.cfg.Username == "" || a.cfg.OAuthToken == "" {
		return errors.New("twitch: empty username or oauth token")
	}

	conn := &irc.Conn{}

	if err := conn.SetLogin(a.cfg.Username, a.cfg.OAuthToken); err != nil {
		return fmt.Errorf("twitch: SetLogin: %w", err)
	}

	conn.OnMessage(func(cm irc.ChatMessage) {
		a.mu.RLock()
		handler := a.handler
		a.mu.RUnlock()
		if handler == nil {
			return
		}

		msg := mapChatMessageToDomain(cm)
		if err := handler(ctx, msg); err != nil {
			a.log.Error("handler failed", zap.String("channel", msg.ChannelID), zap.Error(err))
		}
	})

	if err := conn.Connect(); err != nil {
		return fmt.Errorf("twitch: Connect: %w", err)
	}

	if err := conn.Join(a.cfg.Channels...); err != nil {
		return fmt.Errorf("twitch: Join: %w", err)
	}

	a.mu.Lock()
	a.conn = conn
	a.mu.Unlock()

	a.log.Info("connected", zap.String("username", a.cfg.Username), zap.Strings("channels", a.cfg.Channels))

	<-ctx.Done()

	a.mu.Lock()
	if a.conn != nil {
		a.conn.Close()
	}
	a.mu.Unlock()

	return ctx.Err()
}

// SendMessage posts every line of text as its own chat message, since IRC
// messages cannot span lines.
func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformTwitch {
		return fmt.Errorf("twitch: adapter does not support platform %s", platform)
	}

	a.mu.RLock()
	conn := a.conn
	a.mu.RUnlock()

	if conn == nil || !conn.IsConnected() {
		return errors.New("twitch: connection not initialized or closed")
	}

	for _, line := range outs.SplitLines(text) {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.log.Debug("say", zap.String("channel", channelID), zap.String("text", line))
		if err := conn.Say(channelID, line); err != nil {
			return fmt.Errorf("twitch: Say: %w", err)
		}
	}
	return nil
}

func mapChatMessageToDomain(cm irc.ChatMessage) domain.Message {
	sender := cm.Sender

	return domain.Message{
		Platform:  domain.PlatformTwitch,
		ChannelID: cm.Channel,
		UserID:    strconv.FormatInt(sender.ID, 10),
		Username:  sender.DisplayName,
		Text:      cm.Text,

		IsPrivate: false,

		IsPlatformOwner: sender.IsBroadcaster,
		IsPlatformAdmin: sender.IsBroadcaster || sender.IsModerator,
		IsPlatformMod:   sender.IsModerator,
		IsPlatformVip:   sender.IsVIP,
	}
}
