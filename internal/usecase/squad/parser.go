// Package squad turns a squad command into a validated request and a request
// into a shuffled team roster.
package squad

import (
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"squadBot/internal/domain"
)

const HelpText = "I will fetch everyone in your voice channel and randomize teams.\n" +
	"!sq <duo|trio|squad> !<name to exclude> <name to add>\n" +
	"Excluded names must match the voice channel name."

const exclusionPrefix = "!"

// MatchPolicy decides how an exclusion token is compared to a participant.
type MatchPolicy int

const (
	// MatchExact compares names byte for byte.
	MatchExact MatchPolicy = iota
	// MatchFold ignores case.
	MatchFold
)

func (p MatchPolicy) matches(excluded, name string) bool {
	if p == MatchFold {
		return strings.EqualFold(excluded, name)
	}
	return excluded == name
}

type Parser struct {
	log    *zap.Logger
	policy MatchPolicy
}

type ParserOption func(*Parser)

func WithMatchPolicy(p MatchPolicy) ParserOption {
	return func(parser *Parser) {
		parser.policy = p
	}
}

func NewParser(log *zap.Logger, opts ...ParserOption) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Parser{log: log, policy: MatchExact}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse splits raw on single spaces. The first token is the command keyword
// and only counts towards detecting a bare invocation. The returned error is
// always a *domain.ParseError.
func (p *Parser) Parse(raw string, present []string) (domain.ParseOutcome, error) {
	args := strings.Split(raw, " ")

	if len(args) == 1 {
		return domain.Help(HelpText), nil
	}

	if len(args) < 2 {
		return nil, domain.NewInvalidCommandError()
	}

	size, err := domain.ParseTeamSize(args[1])
	if err != nil {
		return nil, err
	}

	exclude := lo.FilterMap(args[1:], func(arg string, _ int) (string, bool) {
		return strings.TrimPrefix(arg, exclusionPrefix), strings.HasPrefix(arg, exclusionPrefix)
	})
	p.log.Debug("squad exclusions", zap.Strings("exclude", exclude))
	p.log.Debug("squad present", zap.Strings("present", present))

	participants := lo.Reject(present, func(name string, _ int) bool {
		return lo.ContainsBy(exclude, func(excluded string) bool {
			return p.policy.matches(excluded, name)
		})
	})

	extra := lo.Reject(args[2:], func(arg string, _ int) bool {
		return strings.HasPrefix(arg, exclusionPrefix)
	})
	p.log.Debug("squad extras", zap.Strings("extra", extra))

	participants = append(participants, extra...)

	return domain.Request{TeamSize: size, Participants: participants}, nil
}
