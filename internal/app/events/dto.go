package events

import (
	"time"

	"squadBot/internal/domain"
)

// ReplyDTO is a bot reply delivered to web bridge clients.
type ReplyDTO struct {
	Type      string `json:"type"`
	Platform  string `json:"platform"`
	ChannelID string `json:"channel_id"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

func NewReplyDTO(platform domain.Platform, channelID, text string) ReplyDTO {
	return ReplyDTO{
		Type:      "reply",
		Platform:  string(platform),
		ChannelID: channelID,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
}
