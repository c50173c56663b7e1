package commands

import (
	"context"

	"squadBot/internal/domain"
)

type Command interface {
	Name() string
	Aliases() []string
	SupportsPlatform(p domain.Platform) bool
	Handle(ctx context.Context, c *Context) error
}

type Context struct {
	Message domain.Message
	Out     domain.OutgoingMessagePort

	// Raw is the message text without the prefix, keyword included.
	Raw  string
	Args []string
}

func (c *Context) Reply(ctx context.Context, text string) error {
	return c.Out.SendMessage(ctx, c.Message.Platform, c.Message.ChannelID, text)
}
