package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/repository"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/utils"
)

var availabilityPattern = regexp.MustCompile(`(?i)^AN(\d{1,2}[A-Z]{3}(?:\d{2})?)([A-Z]{3})([A-Z]{3})$`)

// AvailabilityHandler answers AN<DDMON><ORIGIN><DEST> searches and
// stores the numbered result set a later SS command sells from
type AvailabilityHandler struct {
	flights   repository.FlightRepository
	formatter *Formatter
	logger    logger.Logger
	now       func() time.Time
}

// NewAvailabilityHandler creates the AN handler
func NewAvailabilityHandler(flights repository.FlightRepository, formatter *Formatter, log logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		flights:   flights,
		formatter: formatter,
		logger:    log,
		now:       time.Now,
	}
}

func (h *AvailabilityHandler) Name() string { return "AN" }

func (h *AvailabilityHandler) CanHandle(input string) bool {
	return availabilityPattern.MatchString(input)
}

func (h *AvailabilityHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := availabilityPattern.FindStringSubmatch(strings.ToUpper(input))

	date, err := utils.ParseDDMon(m[1], h.now())
	if err != nil {
		return fmt.Sprintf("INVALID DATE %s", m[1])
	}
	origin, destination := m[2], m[3]

	flights, err := h.flights.FindByRoute(ctx, origin, destination)
	if err != nil {
		h.logger.Error("availability lookup failed", "origin", origin, "destination", destination, "error", err)
		return "SYSTEM ERROR - TRY AGAIN"
	}
	if len(flights) == 0 {
		return fmt.Sprintf("NO FLIGHTS FOUND FOR %s%s %s", origin, destination, m[1])
	}

	lines := make([]entity.AvailabilityLine, 0, len(flights))
	for i, f := range flights {
		lines = append(lines, entity.AvailabilityLine{
			LineNumber:    i + 1,
			Flight:        f,
			DepartureDate: date,
		})
	}
	sess.SetAvailability(lines)

	h.logger.Debug("availability search", "session", sess.ID, "route", origin+destination, "results", len(lines))
	return h.formatter.FormatAvailability(date, origin, destination, lines)
}
