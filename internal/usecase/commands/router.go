package commands

import (
	"context"
	"strings"
	"unicode"

	"squadBot/internal/domain"
)

const (
	replyUnknownCommand = "Unknown command."
	replyNotAvailable   = "This command is not available here."
)

type Router struct {
	prefix   string
	cmdIndex map[string]Command
}

func NewRouter(prefix string) *Router {
	return &Router{
		prefix:   prefix,
		cmdIndex: make(map[string]Command),
	}
}

func (r *Router) Register(cmd Command) {
	r.cmdIndex[strings.ToLower(cmd.Name())] = cmd
	for _, alias := range cmd.Aliases() {
		r.cmdIndex[strings.ToLower(alias)] = cmd
	}
}

// Lookup reports whether text would be routed to a registered command.
func (r *Router) Lookup(text string) (Command, bool) {
	name, _, ok := r.split(text)
	if !ok {
		return nil, false
	}
	cmd, ok := r.cmdIndex[name]
	return cmd, ok
}

func (r *Router) Handle(ctx context.Context, msg domain.Message, out domain.OutgoingMessagePort) error {
	cmdName, withoutPrefix, ok := r.split(msg.Text)
	if !ok {
		return nil
	}

	cmd, ok := r.cmdIndex[cmdName]
	if !ok {
		return out.SendMessage(ctx, msg.Platform, msg.ChannelID, replyUnknownCommand)
	}

	if !cmd.SupportsPlatform(msg.Platform) {
		return out.SendMessage(ctx, msg.Platform, msg.ChannelID, replyNotAvailable)
	}

	ctxCmd := &Context{
		Message: msg,
		Out:     out,
		Raw:     withoutPrefix,
		Args:    strings.Fields(withoutPrefix)[1:],
	}

	return cmd.Handle(ctx, ctxCmd)
}

// split only drops leading whitespace and line endings. The keyword must
// follow the prefix directly, and trailing spaces stay in withoutPrefix so the
// parser sees the same tokens the user typed.
func (r *Router) split(text string) (name, withoutPrefix string, ok bool) {
	text = strings.TrimRight(strings.TrimLeftFunc(text, unicode.IsSpace), "\r\n")
	if text == "" || !strings.HasPrefix(text, r.prefix) {
		return "", "", false
	}

	withoutPrefix = strings.TrimPrefix(text, r.prefix)
	parts := strings.Fields(withoutPrefix)
	if len(parts) == 0 || !strings.HasPrefix(withoutPrefix, parts[0]) {
		return "", "", false
	}

	return strings.ToLower(parts[0]), withoutPrefix, true
}
