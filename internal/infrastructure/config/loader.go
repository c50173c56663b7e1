package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	CommandPrefix string `envconfig:"BOT_COMMAND_PREFIX" default:"!" validate:"required,max=3"`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	FallbackMessage        string        `envconfig:"SQUAD_FALLBACK_MESSAGE" default:"Jag fattar inte vad du skriver eller så är jag dum i huvudet. Försök igen." validate:"required"`
	ExcludeCaseInsensitive bool          `envconfig:"SQUAD_EXCLUDE_CASE_INSENSITIVE" default:"false"`
	PresenceWindow         time.Duration `envconfig:"PRESENCE_WINDOW" default:"10m" validate:"gt=0"`

	TwitchUsername  string   `envconfig:"TWITCH_BOT_USERNAME"`
	TwitchChannels  []string `envconfig:"TWITCH_BOT_CHANNELS" validate:"dive,required"`
	TwitchTokenFile string   `envconfig:"TWITCH_BOT_TOKEN_FILE" default:".token"`

	// Helix chatters lookup. The token needs moderator:read:chatters and
	// TWITCH_BOT_USER_ID must be a moderator in every mapped channel.
	TwitchClientID       string            `envconfig:"TWITCH_CLIENT_ID"`
	TwitchBotUserID      string            `envconfig:"TWITCH_BOT_USER_ID"`
	TwitchBroadcasterIDs map[string]string `envconfig:"TWITCH_BROADCASTER_IDS"`
	TwitchAPITokenFile   string            `envconfig:"TWITCH_API_TOKEN_FILE" default:".token"`

	KickBroadcasterUserID int    `envconfig:"KICK_BROADCASTER_USER_ID" validate:"gte=0"`
	KickChatroomID        int    `envconfig:"KICK_CHATROOM_ID" validate:"gte=0"`
	KickTokenFile         string `envconfig:"KICK_BOT_TOKEN_FILE" default:".kick_token"`
	KickBotUserID         int    `envconfig:"KICK_BOT_USER_ID" validate:"gte=0"`
	KickBotUsername       string `envconfig:"KICK_BOT_USERNAME"`

	WebBridgeAddr string `envconfig:"WEB_BRIDGE_ADDR"`
}

func (c *Config) TwitchEnabled() bool {
	return c.TwitchUsername != "" && len(c.TwitchChannels) > 0
}

func (c *Config) TwitchChattersEnabled() bool {
	return c.TwitchEnabled() && c.TwitchClientID != "" && c.TwitchBotUserID != "" && len(c.TwitchBroadcasterIDs) > 0
}

func (c *Config) KickEnabled() bool {
	return c.KickChatroomID != 0 && c.KickBroadcasterUserID != 0
}

func (c *Config) WebBridgeEnabled() bool {
	return c.WebBridgeAddr != ""
}

var ErrNoPlatform = errors.New("config: no platform configured (twitch, kick or web bridge)")

var validate = validator.New()

// Load reads envFiles (a missing file is not an error), then the
// environment, and validates the result.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if !cfg.TwitchEnabled() && !cfg.KickEnabled() && !cfg.WebBridgeEnabled() {
		return nil, ErrNoPlatform
	}

	return cfg, nil
}

// ReadToken returns the trimmed content of a credential file.
func ReadToken(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("config: reading token %s: %w", path, err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("config: token file %s is empty", path)
	}
	return token, nil
}
