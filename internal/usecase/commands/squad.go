package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"squadBot/internal/domain"
	"squadBot/internal/usecase/squad"
)

// DefaultFallbackMessage is sent whenever a squad command cannot be parsed.
const DefaultFallbackMessage = "Jag fattar inte vad du skriver eller så är jag dum i huvudet. Försök igen."

type SquadCommand struct {
	log         *zap.Logger
	presence    domain.PresencePort
	parser      *squad.Parser
	partitioner *squad.Partitioner
	fallback    string
}

func NewSquadCommand(
	log *zap.Logger,
	presence domain.PresencePort,
	parser *squad.Parser,
	partitioner *squad.Partitioner,
	fallback string,
) *SquadCommand {
	if log == nil {
		log = zap.NewNop()
	}
	if fallback == "" {
		fallback = DefaultFallbackMessage
	}
	return &SquadCommand{
		log:         log.Named("squad"),
		presence:    presence,
		parser:      parser,
		partitioner: partitioner,
		fallback:    fallback,
	}
}

func (c *SquadCommand) Name() string {
	return "sq"
}

func (c *SquadCommand) Aliases() []string {
	return []string{"squad"}
}

func (c *SquadCommand) SupportsPlatform(domain.Platform) bool {
	return true
}

func (c *SquadCommand) Handle(ctx context.Context, cmdCtx *Context) error {
	msg := cmdCtx.Message

	present, err := c.presence.Present(ctx, msg)
	if err != nil {
		if errors.Is(err, domain.ErrNotPresent) {
			c.log.Debug("requester not in a voice channel", zap.String("user", msg.Username))
			return nil
		}
		return fmt.Errorf("squad: resolving presence: %w", err)
	}

	outcome, err := c.parser.Parse(cmdCtx.Raw, present)
	if err != nil {
		c.log.Error("could not parse command",
			zap.String("user", msg.Username),
			zap.String("text", cmdCtx.Raw),
			zap.Error(err),
		)
		return cmdCtx.Reply(ctx, c.fallback)
	}

	switch o := outcome.(type) {
	case domain.Help:
		return cmdCtx.Reply(ctx, string(o))
	case domain.Request:
		c.log.Info("creating teams",
			zap.Stringer("team_size", o.TeamSize),
			zap.Strings("participants", o.Participants),
		)
		return cmdCtx.Reply(ctx, c.partitioner.CreateTeams(o))
	default:
		return fmt.Errorf("squad: unexpected parse outcome %T", outcome)
	}
}
