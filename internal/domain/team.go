package domain

import "strings"

// TeamSize is the number of members per team.
type TeamSize int

const (
	Duo   TeamSize = 2
	Trio  TeamSize = 3
	Squad TeamSize = 4
)

// ParseTeamSize matches s case-insensitively against duo, trio and squad.
func ParseTeamSize(s string) (TeamSize, error) {
	switch strings.ToLower(s) {
	case "duo":
		return Duo, nil
	case "trio":
		return Trio, nil
	case "squad":
		return Squad, nil
	default:
		return 0, NewInvalidTeamSetupError(s)
	}
}

func (s TeamSize) Valid() bool {
	return s == Duo || s == Trio || s == Squad
}

func (s TeamSize) String() string {
	switch s {
	case Duo:
		return "duo"
	case Trio:
		return "trio"
	case Squad:
		return "squad"
	default:
		return "unknown"
	}
}

// Label is the plural heading used when rendering a roster.
func (s TeamSize) Label() string {
	switch s {
	case Duo:
		return "Duos"
	case Trio:
		return "Trios"
	case Squad:
		return "Squads"
	default:
		return "Teams"
	}
}

// Request is a validated squad command. It is built only by the parser and
// must not be modified afterwards.
type Request struct {
	TeamSize     TeamSize
	Participants []string
}

func (Request) isParseOutcome() {}

// ParseOutcome is either a Request or a help response.
type ParseOutcome interface {
	isParseOutcome()
}

// Help is the usage text returned when a command has no arguments.
type Help string

func (Help) isParseOutcome() {}

// Roster is a partition of the shuffled participants into teams.
type Roster [][]string
