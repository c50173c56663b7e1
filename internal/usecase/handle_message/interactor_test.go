package handle_message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"squadBot/internal/domain"
	"squadBot/internal/infrastructure/presence"
	"squadBot/internal/interface/outs"
	"squadBot/internal/mocks"
	"squadBot/internal/usecase/commands"
	"squadBot/internal/usecase/squad"
)

type inOrder struct{}

func (inOrder) Shuffle(int, func(i, j int)) {}

func newInteractor(t *testing.T, out domain.OutgoingMessagePort, opts ...Option) *Interactor {
	uc, _ := newInteractorWithTracker(t, out, opts...)
	return uc
}

func newInteractorWithTracker(t *testing.T, out domain.OutgoingMessagePort, opts ...Option) (*Interactor, *presence.Tracker) {
	log := zaptest.NewLogger(t)
	tracker := presence.NewTracker(time.Hour)

	router := commands.NewRouter("!")
	router.Register(commands.NewPingCommand())
	router.Register(commands.NewCommandsCommand())
	router.Register(commands.NewSquadCommand(
		log,
		presence.NewResolver(tracker),
		squad.NewParser(log),
		squad.NewPartitioner(inOrder{}),
		"",
	))

	return NewInteractor(log, out, router, tracker, opts...), tracker
}

func kickMessage(user, text string) domain.Message {
	return domain.Message{
		Platform:  domain.PlatformKick,
		ChannelID: "42",
		UserID:    "u-" + user,
		Username:  user,
		Text:      text,
	}
}

func TestInteractor_ChattersBecomeParticipants(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutgoingMessagePort(ctrl)
	uc := newInteractor(t, out)
	ctx := context.Background()

	require.NoError(t, uc.Handle(ctx, kickMessage("Ann", "hi")))
	require.NoError(t, uc.Handle(ctx, kickMessage("Bo", "gg")))
	require.NoError(t, uc.Handle(ctx, kickMessage("Cez", "anyone up for a game?")))

	out.EXPECT().
		SendMessage(gomock.Any(), domain.PlatformKick, "42", "-- Duos --\n1. Ann, Cez\n2. Dot\n").
		Return(nil)

	require.NoError(t, uc.Handle(ctx, kickMessage("Ann", "!sq duo !Bo Dot")))
}

func TestInteractor_PropagatesCommandError(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutgoingMessagePort(ctrl)
	uc := newInteractor(t, out)

	sendErr := errors.New("rate limited")
	out.EXPECT().SendMessage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(sendErr)

	err := uc.Handle(context.Background(), kickMessage("Ann", "!sq"))
	assert.ErrorIs(t, err, sendErr)
}

func TestInteractor_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutgoingMessagePort(ctrl)
	uc := newInteractor(t, out)

	out.EXPECT().SendMessage(gomock.Any(), domain.PlatformKick, "42", gomock.Any()).Return(nil)

	require.NoError(t, uc.Handle(context.Background(), kickMessage("Ann", "!dance")))
}

// echoChat plays back every posted line as a chat message from the bot, the
// way the Kick chatroom socket does.
type echoChat struct {
	t     *testing.T
	uc    *Interactor
	sent  []string
	limit int
}

func (e *echoChat) SendMessage(ctx context.Context, platform domain.Platform, channelID, text string) error {
	for _, line := range outs.SplitLines(text) {
		e.sent = append(e.sent, line)
		if len(e.sent) > e.limit {
			e.t.Fatalf("reply loop: %d lines sent", len(e.sent))
		}
		if err := e.uc.Handle(ctx, kickMessage("squadbot", line)); err != nil {
			return err
		}
	}
	return nil
}

func TestInteractor_IgnoresOwnEchoedReplies(t *testing.T) {
	echo := &echoChat{t: t, limit: 10}
	uc, tracker := newInteractorWithTracker(t, echo, WithSelf(domain.PlatformKick, "SquadBot"))
	echo.uc = uc
	ctx := context.Background()

	require.NoError(t, uc.Handle(ctx, kickMessage("Ann", "!commands")))
	assert.Len(t, echo.sent, len(commands.BuiltinCommandCatalog()))

	echo.sent = nil
	require.NoError(t, uc.Handle(ctx, kickMessage("Ann", "!sq")))
	assert.Equal(t, outs.SplitLines(squad.HelpText), echo.sent)

	assert.Equal(t, []string{"Ann"}, tracker.Active(domain.PlatformKick, "42"))
}

func TestInteractor_SelfIsPerPlatform(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mocks.NewMockOutgoingMessagePort(ctrl)
	uc, tracker := newInteractorWithTracker(t, out, WithSelf(domain.PlatformTwitch, "squadbot"))

	out.EXPECT().SendMessage(gomock.Any(), domain.PlatformKick, "42", "pong from kick").Return(nil)

	require.NoError(t, uc.Handle(context.Background(), kickMessage("squadbot", "!ping")))
	assert.Equal(t, []string{"squadbot"}, tracker.Active(domain.PlatformKick, "42"))
}
