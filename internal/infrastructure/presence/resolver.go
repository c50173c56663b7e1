package presence

import (
	"context"

	"squadBot/internal/domain"
)

// Resolver prefers the voice roster attached to a message and falls back to
// recently active chatters.
type Resolver struct {
	tracker *Tracker
}

func NewResolver(tracker *Tracker) *Resolver {
	return &Resolver{tracker: tracker}
}

func (r *Resolver) Present(ctx context.Context, msg domain.Message) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if msg.Voice != nil {
		if msg.Voice.ChannelID == "" {
			return nil, domain.NewNotPresentError(msg.Username)
		}
		return append([]string(nil), msg.Voice.Members...), nil
	}

	names := r.tracker.Active(msg.Platform, msg.ChannelID)
	if len(names) == 0 {
		return nil, domain.NewNotPresentError(msg.Username)
	}
	return names, nil
}

var _ domain.PresencePort = (*Resolver)(nil)
