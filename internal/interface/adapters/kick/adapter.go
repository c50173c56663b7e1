package kickadapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	kicksdk "github.com/glichtv/kick-sdk"
	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"go.uber.org/zap"

	"squadBot/internal/domain"
	"squadBot/internal/interface/outs"
)

type Config struct {
	// AccessToken is the bot user token.
	AccessToken string

	BroadcasterUserID int

	// ChatroomID differs from the broadcaster user id; it is the
	// "chatroom":{"id":...} field of https://kick.com/api/v2/channels/{slug}.
	ChatroomID int

	// BotUserID and BotUsername identify the account the bot posts as. The
	// chatroom socket echoes the bot's own posts; those are dropped.
	BotUserID   int
	BotUsername string

	// EventHandler sees every raw chatroom message, including subs and tips.
	EventHandler EventHandler
}

type MessageHandler func(ctx context.Context, msg domain.Message) error
type EventHandler func(msg kickchatwrapper.ChatMessage)

type Adapter struct {
	cfg     Config
	log     *zap.Logger
	handler MessageHandler

	mu  sync.RWMutex
	sdk *kicksdk.Client
	ws  *kickchatwrapper.Client
}

func NewAdapter(cfg Config, log *zap.Logger) *Adapter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Adapter{cfg: cfg, log: log.Named("kick")}
}

func (a *Adapter) SetHandler(h MessageHandler) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.handler = h
}

func (a *Adapter) Start(ctx context.Context) error {
	if a.cfg.AccessToken == "" {
		return errors.New("kick: empty AccessToken")
	}
	if a.cfg.ChatroomID == 0 {
		return errors.New("kick: ChatroomID not configured")
	}
	if a.cfg.BroadcasterUserID == 0 {
		return errors.New("kick: BroadcasterUserID not configured")
	}

	sdkClient := kicksdk.NewClient(
		kicksdk.WithAccessTokens(kicksdk.AccessTokens{
			UserAccessToken: a.cfg.AccessToken,
		}),
	)

	wsClient, err := kickchatwrapper.NewClient()
	if err != nil {
		return fmt.Errorf("kick: creating ws client: %w", err)
	}

	if err := wsClient.JoinChannelByID(a.cfg.ChatroomID); err != nil {
		return fmt.Errorf("kick: JoinChannelByID: %w", err)
	}

	msgChan := wsClient.ListenForMessages()

	a.mu.Lock()
	a.sdk = sdkClient
	a.ws = wsClient
	a.mu.Unlock()

	a.log.Info("connected",
		zap.Int("chatroom_id", a.cfg.ChatroomID),
		zap.Int("broadcaster_user_id", a.cfg.BroadcasterUserID),
	)

	go func() {
		for {
			select {
			case m, ok := <-msgChan:
				if !ok {
					a.log.Info("message channel closed")
					return
				}

				if h := a.cfg.EventHandler; h != nil {
					go h(m)
				}
				if !isChatMessage(m) || a.isSelf(m) {
					continue
				}

				a.mu.RLock()
				handler := a.handler
				a.mu.RUnlock()
				if handler == nil {
					continue
				}

				dmsg := mapChatMessageToDomain(m, a.cfg.BroadcasterUserID)

				if err := handler(ctx, dmsg); err != nil {
					a.log.Error("handler failed", zap.Error(err))
				}

			case <-ctx.Done():
				return
			}
		}
	}()

	<-ctx.Done()

	a.mu.Lock()
	if a.ws != nil {
		a.ws.Close()
	}
	a.mu.Unlock()

	return ctx.Err()
}

// SendMessage posts every line of text as its own chat message.
func (a *Adapter) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	if platform != domain.PlatformKick {
		return fmt.Errorf("kick: adapter does not support platform %s", platform)
	}

	a.mu.RLock()
	client := a.sdk
	a.mu.RUnlock()

	if client == nil {
		return errors.New("kick: SDK client not initialized (Start not called or failed)")
	}

	for _, line := range outs.SplitLines(text) {
		if err := a.post(ctx, client, line); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) post(ctx context.Context, client *kicksdk.Client, line string) error {
	resp, err := client.Chat().PostMessage(ctx, kicksdk.PostChatMessageInput{
		BroadcasterUserID: a.cfg.BroadcasterUserID,
		Content:           line,
		PosterType:        kicksdk.MessagePosterUser,
	})
	if err != nil {
		return fmt.Errorf("kick: sending chat message: %w", err)
	}

	if !resp.Payload.IsSent {
		meta := resp.ResponseMetadata
		a.log.Warn("PostMessage rejected",
			zap.Any("status", meta.StatusCode),
			zap.Any("message_id", resp.Payload.MessageID),
			zap.Any("kick_message", meta.KickMessage),
			zap.Any("kick_error", meta.KickError),
			zap.Any("description", meta.KickErrorDescription),
		)
		return fmt.Errorf("kick: message not accepted by the API (status %d)", meta.StatusCode)
	}

	a.log.Debug("message delivered", zap.Any("message_id", resp.Payload.MessageID))
	return nil
}

func isChatMessage(m kickchatwrapper.ChatMessage) bool {
	t := strings.TrimSpace(m.Type)
	return t == "" || strings.EqualFold(t, "chat") || strings.EqualFold(t, "message")
}

func (a *Adapter) isSelf(m kickchatwrapper.ChatMessage) bool {
	if a.cfg.BotUserID != 0 && m.Sender.ID == a.cfg.BotUserID {
		return true
	}
	return a.cfg.BotUsername != "" && strings.EqualFold(m.Sender.Username, a.cfg.BotUsername)
}

func mapChatMessageToDomain(m kickchatwrapper.ChatMessage, broadcasterUserID int) domain.Message {
	sender := m.Sender

	isOwner := sender.ID == broadcasterUserID

	var isMod, isVip bool
	for _, b := range sender.Identity.Badges {
		switch strings.ToLower(b.Type) {
		case "moderator", "broadcaster":
			isMod = true
		case "vip":
			isVip = true
		}
	}

	return domain.Message{
		Platform:  domain.PlatformKick,
		ChannelID: strconv.Itoa(m.ChatroomID),
		UserID:    strconv.Itoa(sender.ID),
		Username:  sender.Username,
		Text:      m.Content,

		IsPrivate: false,

		IsPlatformOwner: isOwner,
		IsPlatformAdmin: isOwner || isMod,
		IsPlatformMod:   isMod,
		IsPlatformVip:   isVip,
	}
}
