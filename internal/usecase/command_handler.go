package usecase

import (
	"context"
)

// CommandHandler parses and executes one command family. CanHandle
// must match the entire input; Handle must validate fully before
// mutating the session's PNR so a failed command never partially
// applies.
type CommandHandler interface {
	Name() string
	CanHandle(input string) bool
	Handle(ctx context.Context, sess *Session, input string) string
}

// Shared user-facing responses
const (
	MsgNoCurrentPNR   = "NO PNR IN PROGRESS"
	MsgNoItinerary    = "NEED ITINERARY"
	MsgUnknownCommand = "INVALID ENTRY - CHECK FORMAT"
)
