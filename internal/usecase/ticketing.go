package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/utils"
)

var ticketingPattern = regexp.MustCompile(`(?i)^TK(OK|TL|XL)(?:(\d{1,2}[A-Z]{3})/(\d{4}))?$`)

// TicketingHandler executes TK{OK|TL<date>/<time>|XL<date>/<time>},
// arming the PNR's ticketing record
type TicketingHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
	now       func() time.Time
}

// NewTicketingHandler creates the TK handler
func NewTicketingHandler(mirror *PNRMirror, formatter *Formatter) *TicketingHandler {
	return &TicketingHandler{
		mirror:    mirror,
		formatter: formatter,
		now:       time.Now,
	}
}

func (h *TicketingHandler) Name() string { return "TK" }

func (h *TicketingHandler) CanHandle(input string) bool {
	return ticketingPattern.MatchString(input)
}

func (h *TicketingHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := ticketingPattern.FindStringSubmatch(strings.ToUpper(input))
	mode := m[1]

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	ticketing := &entity.Ticketing{Mode: mode}
	switch mode {
	case entity.TicketingModeOK:
		if m[2] != "" {
			return "TKOK TAKES NO TIME LIMIT"
		}
	default:
		if m[2] == "" {
			return fmt.Sprintf("TK%s REQUIRES DATE/TIME", mode)
		}
		date, err := utils.ParseDDMon(m[2], h.now())
		if err != nil {
			return fmt.Sprintf("INVALID DATE %s", m[2])
		}
		if _, err := utils.CombineDateTime(date, m[3]); err != nil {
			return fmt.Sprintf("INVALID TIME %s", m[3])
		}
		ticketing.LimitDate = &date
		ticketing.LimitTime = m[3]
	}

	pnr.Ticketing = ticketing
	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "TICKETING ARMED")
	return response
}
