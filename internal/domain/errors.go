package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCommand   = errors.New("INVALID_COMMAND")
	ErrInvalidTeamSetup = errors.New("INVALID_TEAM_SETUP")
	ErrNotPresent       = errors.New("NOT_PRESENT")
)

// ParseError describes why a squad command could not be parsed. Kind is one
// of ErrInvalidCommand or ErrInvalidTeamSetup.
type ParseError struct {
	Kind   error
	Detail string
}

// Error always quotes the offending token for ErrInvalidTeamSetup, even when
// it is empty (`!sq  duo`).
func (e *ParseError) Error() string {
	if errors.Is(e.Kind, ErrInvalidTeamSetup) || e.Detail != "" {
		return fmt.Sprintf("%s: %q", e.Kind.Error(), e.Detail)
	}
	return e.Kind.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Kind
}

// NewInvalidCommandError is returned when a required argument is missing.
func NewInvalidCommandError() error {
	return &ParseError{Kind: ErrInvalidCommand}
}

// NewInvalidTeamSetupError carries the unrecognized team size token.
func NewInvalidTeamSetupError(token string) error {
	return &ParseError{Kind: ErrInvalidTeamSetup, Detail: token}
}

// NewNotPresentError reports that a user has no voice/room context.
func NewNotPresentError(username string) error {
	return fmt.Errorf("%w: %s is not in a voice channel", ErrNotPresent, username)
}
