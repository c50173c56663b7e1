//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=../mocks/mock_ports.go -package=mocks
package domain

import "context"

type OutgoingMessagePort interface {
	SendMessage(ctx context.Context, platform Platform, channelID, text string) error
}

// PresencePort resolves who is present in the same voice/room context as the
// author of msg. It returns ErrNotPresent when the author has no such context.
type PresencePort interface {
	Present(ctx context.Context, msg Message) ([]string, error)
}
