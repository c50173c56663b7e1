// Package handle_message
package handle_message

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"squadBot/internal/domain"
	"squadBot/internal/usecase/commands"
)

// PresenceRecorder is told about every incoming message before it is routed.
type PresenceRecorder interface {
	Touch(msg domain.Message)
}

type Interactor struct {
	log    *zap.Logger
	router *commands.Router
	out    domain.OutgoingMessagePort
	seen   PresenceRecorder
	self   map[domain.Platform]string
}

type Option func(*Interactor)

// WithSelf names the bot's own account on a platform. Its messages are
// neither recorded as presence nor routed.
func WithSelf(platform domain.Platform, username string) Option {
	return func(uc *Interactor) {
		if username != "" {
			uc.self[platform] = username
		}
	}
}

func NewInteractor(log *zap.Logger, out domain.OutgoingMessagePort, router *commands.Router, seen PresenceRecorder, opts ...Option) *Interactor {
	if log == nil {
		log = zap.NewNop()
	}
	uc := &Interactor{
		log:    log.Named("handler"),
		router: router,
		out:    out,
		seen:   seen,
		self:   make(map[domain.Platform]string),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *Interactor) isSelf(msg domain.Message) bool {
	name, ok := uc.self[msg.Platform]
	return ok && strings.EqualFold(strings.TrimPrefix(msg.Username, "@"), name)
}

func (uc *Interactor) Handle(ctx context.Context, msg domain.Message) error {
	if uc.isSelf(msg) {
		return nil
	}

	if uc.seen != nil {
		uc.seen.Touch(msg)
	}

	if _, ok := uc.router.Lookup(msg.Text); !ok {
		return uc.router.Handle(ctx, msg, uc.out)
	}

	log := uc.log.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("platform", string(msg.Platform)),
		zap.String("channel_id", msg.ChannelID),
		zap.String("author", msg.Username),
	)
	log.Info("command received", zap.String("text", msg.Text))

	start := time.Now()
	err := uc.router.Handle(ctx, msg, uc.out)
	if err != nil {
		log.Error("command failed", zap.Error(err), zap.Duration("took", time.Since(start)))
		return err
	}
	log.Debug("command handled", zap.Duration("took", time.Since(start)))
	return nil
}
