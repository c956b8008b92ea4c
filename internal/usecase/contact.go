package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"
)

var (
	phonePattern = regexp.MustCompile(`(?i)^AP\s*([A-Z]{3})(\d+)(?:-([A-Z]))?$`)
	emailPattern = regexp.MustCompile(`(?i)^APE-(\S+@\S+\.\S+)$`)
	rfPattern    = regexp.MustCompile(`(?i)^RF\s*(\S.*)$`)
)

// PhoneContactHandler executes AP<CITY><PHONE>[-<TYPE>]. The PNR
// carries one active phone contact; a new one replaces it.
type PhoneContactHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewPhoneContactHandler creates the AP handler
func NewPhoneContactHandler(mirror *PNRMirror, formatter *Formatter) *PhoneContactHandler {
	return &PhoneContactHandler{mirror: mirror, formatter: formatter}
}

func (h *PhoneContactHandler) Name() string { return "AP" }

func (h *PhoneContactHandler) CanHandle(input string) bool {
	return phonePattern.MatchString(input)
}

func (h *PhoneContactHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := phonePattern.FindStringSubmatch(strings.ToUpper(input))

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	pnr.Contact = &entity.PhoneContact{
		City:  m[1],
		Phone: m[2],
		Type:  m[3],
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "PHONE CONTACT SET")
	return response
}

// EmailContactHandler executes APE-<email>, replacing the single
// active email contact
type EmailContactHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewEmailContactHandler creates the APE handler
func NewEmailContactHandler(mirror *PNRMirror, formatter *Formatter) *EmailContactHandler {
	return &EmailContactHandler{mirror: mirror, formatter: formatter}
}

func (h *EmailContactHandler) Name() string { return "APE" }

func (h *EmailContactHandler) CanHandle(input string) bool {
	return emailPattern.MatchString(input)
}

func (h *EmailContactHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := emailPattern.FindStringSubmatch(input)

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	pnr.EmailContact = &entity.EmailContact{
		Address: strings.ToLower(m[1]),
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "EMAIL CONTACT SET")
	return response
}

// ReceivedFromHandler executes RF <name>. When a cancellation is
// pending from XI it confirms that cancellation instead of setting
// received-from.
type ReceivedFromHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
	metrics   *metrics.Metrics
	logger    logger.Logger
}

// NewReceivedFromHandler creates the RF handler
func NewReceivedFromHandler(mirror *PNRMirror, formatter *Formatter, m *metrics.Metrics, log logger.Logger) *ReceivedFromHandler {
	return &ReceivedFromHandler{
		mirror:    mirror,
		formatter: formatter,
		metrics:   m,
		logger:    log,
	}
}

func (h *ReceivedFromHandler) Name() string { return "RF" }

func (h *ReceivedFromHandler) CanHandle(input string) bool {
	return rfPattern.MatchString(input)
}

func (h *ReceivedFromHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := rfPattern.FindStringSubmatch(strings.ToUpper(input))
	name := strings.TrimSpace(m[1])

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	if pc := sess.GetPendingCancel(); pc != nil && pc.Locator == pnr.RecordLocator && pnr.ID != "" {
		sess.ClearPendingCancel()
		return h.confirmCancellation(ctx, sess, pnr, name)
	}

	pnr.ReceivedFrom = name
	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "RECEIVED FROM SET")
	return response
}

func (h *ReceivedFromHandler) confirmCancellation(ctx context.Context, sess *Session, pnr *entity.PNR, name string) string {
	now := time.Now()
	pnr.Status = entity.PNRStatusCancelled
	pnr.IsDeleted = true
	pnr.CancelledBy = sess.UserID
	pnr.CancelledAs = name
	pnr.CancelledAt = &now

	h.mirror.Mirror(ctx, pnr, "XI", "PNR CANCELLED")
	h.metrics.PNRsCancelled.Inc()
	h.logger.Info("pnr cancelled",
		"recordLocator", pnr.RecordLocator,
		"user", sess.UserID,
		"receivedFrom", name)

	locator := pnr.RecordLocator
	sess.ClearCurrent()
	return "PNR " + locator + " CANCELLED"
}
