package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/utils"
)

var sellPattern = regexp.MustCompile(`(?i)^SS(\d+)([A-Z])(\d+)$`)

// SellHandler executes SS<qty><class><lineNumber> against the last
// availability search, creating the PNR on the first sold segment
type SellHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
	officeID  string
	logger    logger.Logger
}

// NewSellHandler creates the SS handler
func NewSellHandler(mirror *PNRMirror, formatter *Formatter, officeID string, log logger.Logger) *SellHandler {
	return &SellHandler{
		mirror:    mirror,
		formatter: formatter,
		officeID:  officeID,
		logger:    log,
	}
}

func (h *SellHandler) Name() string { return "SS" }

func (h *SellHandler) CanHandle(input string) bool {
	return sellPattern.MatchString(input)
}

func (h *SellHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := sellPattern.FindStringSubmatch(strings.ToUpper(input))
	qty, _ := strconv.Atoi(m[1])
	class := m[2]
	lineNumber, _ := strconv.Atoi(m[3])

	if qty < 1 {
		return "INVALID QUANTITY"
	}

	availability := sess.Availability()
	if len(availability) == 0 {
		return "NO AVAILABILITY DISPLAYED - SEARCH FIRST"
	}
	if lineNumber < 1 || lineNumber > len(availability) {
		return fmt.Sprintf("INVALID LINE NUMBER %d", lineNumber)
	}

	line := availability[lineNumber-1]
	seats, ok := line.Flight.ClassAvailability()[class]
	if !ok {
		return fmt.Sprintf("CLASS %s NOT AVAILABLE ON LINE %d", class, lineNumber)
	}
	if qty > seats {
		return fmt.Sprintf("ONLY %d SEAT(S) AVAILABLE IN CLASS %s", seats, class)
	}

	departure, err := utils.CombineDateTime(line.DepartureDate, line.Flight.DepartureTime)
	if err != nil {
		h.logger.Error("bad departure time in reference data", "flight", line.Flight.FlightNumber, "error", err)
		return "SYSTEM ERROR - TRY AGAIN"
	}
	arrival := utils.ArrivalFrom(departure, line.Flight.DurationMinutes)

	pnr := sess.Current()
	if pnr == nil {
		pnr = &entity.PNR{
			RecordLocator: utils.NewTempLocator(),
			OfficeID:      h.officeID,
			Status:        entity.PNRStatusInProgress,
			CreatedBy:     sess.UserID,
		}
		sess.SetCurrent(pnr)
	}

	pnr.Segments = append(pnr.Segments, entity.Segment{
		AirlineCode:   line.Flight.AirlineCode,
		FlightNumber:  line.Flight.FlightNumber,
		Class:         class,
		Origin:        line.Flight.Origin,
		Destination:   line.Flight.Destination,
		DepartureDate: line.DepartureDate,
		DayOfWeek:     utils.DayOfWeekCode(line.DepartureDate),
		DepartureTime: utils.FormatHHMM(departure),
		ArrivalTime:   utils.FormatHHMM(arrival),
		ArrivalDate:   time.Date(arrival.Year(), arrival.Month(), arrival.Day(), 0, 0, 0, 0, time.UTC),
		Equipment:     line.Flight.Equipment,
		Status:        entity.SegmentStatusRequested,
		Quantity:      qty,
	})

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "SEGMENT SOLD")
	return response
}
