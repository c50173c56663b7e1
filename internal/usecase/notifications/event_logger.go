package notifications

import (
	"strings"

	kickchatwrapper "github.com/johanvandegriff/kick-chat-wrapper"
	"go.uber.org/zap"
)

// EventLogger records platform events that are not chat messages (subs,
// gifts, tips) so operators can see them next to command activity.
type EventLogger struct {
	log *zap.Logger
}

func NewEventLogger(log *zap.Logger) *EventLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &EventLogger{log: log.Named("events")}
}

// HandleKickMessage logs websocket messages from Kick that are not plain chat.
func (l *EventLogger) HandleKickMessage(msg kickchatwrapper.ChatMessage) {
	if strings.EqualFold(strings.TrimSpace(msg.Type), "chat") || strings.EqualFold(strings.TrimSpace(msg.Type), "message") {
		return
	}

	l.log.Info("kick event",
		zap.String("event_type", msg.Type),
		zap.Any("chatroom_id", msg.ChatroomID),
		zap.Any("payload", msg),
	)
}
