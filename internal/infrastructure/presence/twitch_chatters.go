package presence

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/nicklaw5/helix/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"squadBot/internal/domain"
)

// chattersPageSize is the Helix maximum for GET /chat/chatters.
const chattersPageSize = "1000"

// ChattersClient is the part of *helix.Client used to list connected chatters.
type ChattersClient interface {
	GetChannelChatChatters(params *helix.GetChatChattersParams) (*helix.GetChatChattersResponse, error)
}

// NewHelixClient builds a Helix client for a user token carrying the
// moderator:read:chatters scope. An IRC style "oauth:" prefix is accepted.
func NewHelixClient(clientID, userAccessToken string) (*helix.Client, error) {
	client, err := helix.NewClient(&helix.Options{
		ClientID:        clientID,
		UserAccessToken: strings.TrimPrefix(userAccessToken, "oauth:"),
	})
	if err != nil {
		return nil, fmt.Errorf("helix: NewClient: %w", err)
	}
	return client, nil
}

// TwitchChatters resolves presence on Twitch from the users connected to the
// channel's chat. Other platforms, voice rosters, unmapped channels and Helix
// failures go to the fallback port.
type TwitchChatters struct {
	log      *zap.Logger
	client   ChattersClient
	fallback domain.PresencePort

	// moderatorID is the bot account; it is left out of the result.
	moderatorID    string
	broadcasterIDs map[string]string
}

// NewTwitchChatters maps channel logins (with or without '#') to broadcaster
// user ids.
func NewTwitchChatters(
	log *zap.Logger,
	client ChattersClient,
	moderatorID string,
	broadcasterIDs map[string]string,
	fallback domain.PresencePort,
) *TwitchChatters {
	if log == nil {
		log = zap.NewNop()
	}
	ids := make(map[string]string, len(broadcasterIDs))
	for channel, id := range broadcasterIDs {
		ids[channelKey(channel)] = id
	}
	return &TwitchChatters{
		log:            log.Named("chatters"),
		client:         client,
		fallback:       fallback,
		moderatorID:    moderatorID,
		broadcasterIDs: ids,
	}
}

func (p *TwitchChatters) Present(ctx context.Context, msg domain.Message) ([]string, error) {
	if msg.Platform != domain.PlatformTwitch || msg.Voice != nil {
		return p.fallback.Present(ctx, msg)
	}

	broadcasterID, ok := p.broadcasterIDs[channelKey(msg.ChannelID)]
	if !ok {
		return p.fallback.Present(ctx, msg)
	}

	names, err := p.chatters(ctx, broadcasterID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		p.log.Warn("listing chatters failed, using recent chatters",
			zap.String("channel_id", msg.ChannelID),
			zap.Error(err),
		)
		return p.fallback.Present(ctx, msg)
	}
	if len(names) == 0 {
		return p.fallback.Present(ctx, msg)
	}
	return names, nil
}

func (p *TwitchChatters) chatters(ctx context.Context, broadcasterID string) ([]string, error) {
	var names []string
	cursor := ""
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := p.client.GetChannelChatChatters(&helix.GetChatChattersParams{
			BroadcasterID: broadcasterID,
			ModeratorID:   p.moderatorID,
			First:         chattersPageSize,
			After:         cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("helix: GetChannelChatChatters: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("helix: GetChannelChatChatters failed (%d: %s) %s",
				resp.StatusCode, resp.Error, resp.ErrorMessage)
		}

		names = append(names, lo.FilterMap(resp.Data.Chatters, func(c helix.ChatChatter, _ int) (string, bool) {
			return chatterName(c), c.UserID != p.moderatorID
		})...)

		cursor = resp.Data.Pagination.Cursor
		if cursor == "" {
			return names, nil
		}
	}
}

// chatterName matches the display name the IRC adapter reports as Username.
func chatterName(c helix.ChatChatter) string {
	if c.UserName != "" {
		return c.UserName
	}
	return c.UserLogin
}

func channelKey(channel string) string {
	return strings.ToLower(strings.TrimPrefix(channel, "#"))
}

var _ domain.PresencePort = (*TwitchChatters)(nil)
