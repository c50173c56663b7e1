package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WEB_BRIDGE_ADDR", ":9000")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.PresenceWindow)
	assert.False(t, cfg.ExcludeCaseInsensitive)
	assert.Equal(t, "Jag fattar inte vad du skriver eller så är jag dum i huvudet. Försök igen.", cfg.FallbackMessage)
	assert.Equal(t, ".token", cfg.TwitchTokenFile)
	assert.True(t, cfg.WebBridgeEnabled())
	assert.False(t, cfg.TwitchEnabled())
	assert.False(t, cfg.KickEnabled())
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"TWITCH_BOT_USERNAME=squadbot\n"+
			"TWITCH_BOT_CHANNELS=room1,room2\n"+
			"SQUAD_EXCLUDE_CASE_INSENSITIVE=true\n"+
			"LOG_LEVEL=debug\n",
	), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("TWITCH_BOT_USERNAME", "")
	t.Setenv("TWITCH_BOT_CHANNELS", "")
	t.Setenv("SQUAD_EXCLUDE_CASE_INSENSITIVE", "")
	t.Setenv("LOG_LEVEL", "")
	for _, k := range []string{"TWITCH_BOT_USERNAME", "TWITCH_BOT_CHANNELS", "SQUAD_EXCLUDE_CASE_INSENSITIVE", "LOG_LEVEL"} {
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "squadbot", cfg.TwitchUsername)
	assert.Equal(t, []string{"room1", "room2"}, cfg.TwitchChannels)
	assert.True(t, cfg.ExcludeCaseInsensitive)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TwitchEnabled())
}

func TestLoad_NoPlatform(t *testing.T) {
	t.Setenv("WEB_BRIDGE_ADDR", "")
	t.Setenv("TWITCH_BOT_USERNAME", "")
	t.Setenv("KICK_CHATROOM_ID", "0")

	_, err := Load()
	assert.ErrorIs(t, err, ErrNoPlatform)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("WEB_BRIDGE_ADDR", ":9000")
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := Load()
	assert.Error(t, err)
}

func TestReadToken(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".token")
	require.NoError(t, os.WriteFile(path, []byte("  secret-token\n"), 0o600))

	token, err := ReadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", token)

	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))
	_, err = ReadToken(empty)
	assert.Error(t, err)

	_, err = ReadToken(filepath.Join(dir, "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_BotIdentityAndChatters(t *testing.T) {
	t.Setenv("TWITCH_BOT_USERNAME", "squadbot")
	t.Setenv("TWITCH_BOT_CHANNELS", "room1,room2")
	t.Setenv("TWITCH_CLIENT_ID", "client")
	t.Setenv("TWITCH_BOT_USER_ID", "99")
	t.Setenv("TWITCH_BROADCASTER_IDS", "room1:11,room2:22")
	t.Setenv("KICK_BROADCASTER_USER_ID", "5")
	t.Setenv("KICK_CHATROOM_ID", "6")
	t.Setenv("KICK_BOT_USER_ID", "7")
	t.Setenv("KICK_BOT_USERNAME", "SquadBot")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.TwitchChattersEnabled())
	assert.Equal(t, map[string]string{"room1": "11", "room2": "22"}, cfg.TwitchBroadcasterIDs)
	assert.Equal(t, ".token", cfg.TwitchAPITokenFile)
	assert.Equal(t, 7, cfg.KickBotUserID)
	assert.Equal(t, "SquadBot", cfg.KickBotUsername)

	t.Setenv("TWITCH_CLIENT_ID", "")
	cfg, err = Load()
	require.NoError(t, err)
	assert.False(t, cfg.TwitchChattersEnabled())
}
