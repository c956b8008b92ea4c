package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/utils"
)

var (
	endPattern    = regexp.MustCompile(`(?i)^(ET|ER)$`)
	cancelPattern = regexp.MustCompile(`(?i)^XI$`)
	ignorePattern = regexp.MustCompile(`(?i)^IG$`)
)

// EndTransactionHandler executes ET and ER. Both validate the PNR,
// assign a permanent locator, confirm all segments and persist; ET
// then ends the session with a one-line confirmation while ER keeps
// the PNR current and shows the full record.
type EndTransactionHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewEndTransactionHandler creates the ET/ER handler
func NewEndTransactionHandler(mirror *PNRMirror, formatter *Formatter, m *metrics.Metrics, log logger.Logger) *EndTransactionHandler {
	return &EndTransactionHandler{
		mirror:    mirror,
		formatter: formatter,
		metrics:   m,
		logger:    log,
		now:       time.Now,
	}
}

func (h *EndTransactionHandler) Name() string { return "ET" }

func (h *EndTransactionHandler) CanHandle(input string) bool {
	return endPattern.MatchString(input)
}

func (h *EndTransactionHandler) Handle(ctx context.Context, sess *Session, input string) string {
	command := strings.ToUpper(strings.TrimSpace(input))

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	if violations := validateForFinalize(pnr); len(violations) > 0 {
		return strings.Join(violations, "\n")
	}

	if utils.IsTempLocator(pnr.RecordLocator) {
		pnr.RecordLocator = utils.NewRecordLocator()
	}
	for i := range pnr.Segments {
		pnr.Segments[i].Status = entity.SegmentStatusConfirmed
	}
	ticketed := h.now()
	pnr.TicketingDate = &ticketed
	pnr.Status = entity.PNRStatusConfirmed

	h.mirror.Mirror(ctx, pnr, command, "TRANSACTION COMPLETE")
	h.metrics.PNRsFinalized.Inc()
	h.logger.Info("pnr finalized",
		"recordLocator", pnr.RecordLocator,
		"command", command,
		"user", sess.UserID)

	if command == "ET" {
		locator := pnr.RecordLocator
		sess.ClearCurrent()
		return "END OF TRANSACTION COMPLETE - " + locator
	}
	return h.formatter.FormatFinalized(pnr)
}

// CancelHandler executes XI. A PNR that was never persisted only gets
// guidance; a saved one enters the awaiting-confirmation state that a
// following RF resolves.
type CancelHandler struct {
	logger logger.Logger
}

// NewCancelHandler creates the XI handler
func NewCancelHandler(log logger.Logger) *CancelHandler {
	return &CancelHandler{logger: log}
}

func (h *CancelHandler) Name() string { return "XI" }

func (h *CancelHandler) CanHandle(input string) bool {
	return cancelPattern.MatchString(input)
}

func (h *CancelHandler) Handle(ctx context.Context, sess *Session, input string) string {
	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if utils.IsTempLocator(pnr.RecordLocator) || pnr.ID == "" {
		return "PNR NOT YET SAVED - USE IG TO DISCARD"
	}

	sess.SetPendingCancel(&PendingCancel{Locator: pnr.RecordLocator})
	return "WARNING - PNR " + pnr.RecordLocator + " WILL BE CANCELLED - CONFIRM WITH RF <NAME>"
}

// IgnoreHandler executes IG, discarding the in-progress PNR without
// persisting anything
type IgnoreHandler struct{}

// NewIgnoreHandler creates the IG handler
func NewIgnoreHandler() *IgnoreHandler {
	return &IgnoreHandler{}
}

func (h *IgnoreHandler) Name() string { return "IG" }

func (h *IgnoreHandler) CanHandle(input string) bool {
	return ignorePattern.MatchString(input)
}

func (h *IgnoreHandler) Handle(ctx context.Context, sess *Session, input string) string {
	sess.ClearCurrent()
	sess.ClearPendingCancel()
	return "IGNORED"
}
