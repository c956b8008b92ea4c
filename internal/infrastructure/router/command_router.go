package router

import (
	"context"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/usecase"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"
)

// CommandRouter matches raw terminal input against the registered
// command handlers and routes to the first whose pattern matches the
// whole input. Registration order resolves prefix ambiguity: handlers
// with longer literal prefixes (APE- over AP, SRFOID over SR) must be
// registered first.
type CommandRouter struct {
	handlers []usecase.CommandHandler
	sessions *usecase.SessionManager
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewCommandRouter creates a new command router
func NewCommandRouter(sessions *usecase.SessionManager, m *metrics.Metrics, log logger.Logger) *CommandRouter {
	return &CommandRouter{
		handlers: make([]usecase.CommandHandler, 0),
		sessions: sessions,
		metrics:  m,
		logger:   log,
	}
}

// Register appends a handler to the matching table
func (r *CommandRouter) Register(handler usecase.CommandHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered command handler", "command", handler.Name())
}

// Dispatch executes one line of input for a session and returns the
// formatted response. All failures come back as user-facing text;
// Dispatch never panics to the caller.
func (r *CommandRouter) Dispatch(ctx context.Context, sessionID, userID, input string) (response string) {
	started := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("command handler panicked", "input", input, "panic", rec)
			response = "SYSTEM ERROR - TRY AGAIN"
		}
	}()

	input = strings.TrimSpace(input)
	if input == "" {
		return usecase.MsgUnknownCommand
	}

	sess := r.sessions.Get(sessionID, userID)
	sess.Lock()
	defer sess.Unlock()

	for _, handler := range r.handlers {
		if !handler.CanHandle(input) {
			continue
		}
		response = handler.Handle(ctx, sess, input)

		// Any command other than XI abandons a pending cancellation;
		// a confirming RF has already consumed it by now
		if handler.Name() != "XI" {
			sess.ClearPendingCancel()
		}

		r.metrics.CommandsProcessed.WithLabelValues(handler.Name()).Inc()
		r.metrics.CommandTime.Observe(time.Since(started).Seconds())
		return response
	}

	// Unrecognized input still counts as "any other command" for a
	// cancellation awaiting its confirming RF
	sess.ClearPendingCancel()

	r.metrics.UnknownCommands.Inc()
	r.logger.Debug("unrecognized command", "session", sessionID, "input", input)
	return usecase.MsgUnknownCommand
}
