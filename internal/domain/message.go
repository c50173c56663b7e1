package domain

type Platform string

const (
	PlatformTwitch Platform = "twitch"
	PlatformKick   Platform = "kick"
	// PlatformWeb covers clients connected through the websocket bridge.
	PlatformWeb Platform = "web"
)

// VoiceState is the voice roster a platform reports alongside a message.
// An empty ChannelID means the author is not connected to voice.
type VoiceState struct {
	ChannelID string
	Members   []string
}

type Message struct {
	Platform  Platform
	ChannelID string
	UserID    string
	Username  string
	Text      string
	IsPrivate bool

	// Voice is nil for chat-only platforms.
	Voice *VoiceState

	IsPlatformOwner bool
	IsPlatformAdmin bool
	IsPlatformMod   bool
	IsPlatformVip   bool
}
