package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

var (
	seatmapPattern = regexp.MustCompile(`(?i)^SM(\d*)$`)
	seatPattern    = regexp.MustCompile(`(?i)^ST/(\d{1,2}[A-K])/P(\d+)/S(\d+)$`)
)

// SeatMapHandler executes SM[<segmentNumber>], handing off to the
// seat-map display the UI renders
type SeatMapHandler struct{}

// NewSeatMapHandler creates the SM handler
func NewSeatMapHandler() *SeatMapHandler {
	return &SeatMapHandler{}
}

func (h *SeatMapHandler) Name() string { return "SM" }

func (h *SeatMapHandler) CanHandle(input string) bool {
	return seatmapPattern.MatchString(input)
}

func (h *SeatMapHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := seatmapPattern.FindStringSubmatch(strings.ToUpper(input))

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if len(pnr.Segments) == 0 {
		return MsgNoItinerary
	}

	segNo := 1
	if m[1] != "" {
		segNo, _ = strconv.Atoi(m[1])
		if segNo < 1 || segNo > len(pnr.Segments) {
			return fmt.Sprintf("INVALID SEGMENT REFERENCE S%d", segNo)
		}
	}

	seg := pnr.Segments[segNo-1]
	return fmt.Sprintf("SEAT MAP - SEGMENT %d - %s %s %s%s - SELECT SEATS IN DISPLAY",
		segNo, seg.AirlineCode, seg.FlightNumber, seg.Origin, seg.Destination)
}

// SeatHandler executes ST/<seat>/P<n>/S<m>, recording the seat choice
// as an RQST element on the segment. A passenger holds one seat per
// segment; choosing again replaces it.
type SeatHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewSeatHandler creates the ST handler
func NewSeatHandler(mirror *PNRMirror, formatter *Formatter) *SeatHandler {
	return &SeatHandler{mirror: mirror, formatter: formatter}
}

func (h *SeatHandler) Name() string { return "ST" }

func (h *SeatHandler) CanHandle(input string) bool {
	return seatPattern.MatchString(input)
}

func (h *SeatHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := seatPattern.FindStringSubmatch(strings.ToUpper(input))
	seat := m[1]
	paxRef, _ := strconv.Atoi(m[2])
	segRef, _ := strconv.Atoi(m[3])

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if paxRef < 1 || paxRef > len(pnr.Passengers) {
		return fmt.Sprintf("INVALID PASSENGER REFERENCE P%d", paxRef)
	}
	if segRef < 1 || segRef > len(pnr.Segments) {
		return fmt.Sprintf("INVALID SEGMENT REFERENCE S%d", segRef)
	}

	label := fmt.Sprintf("P%d", paxRef)
	merged := false
	for i := range pnr.SSRElements {
		ssr := &pnr.SSRElements[i]
		if ssr.Code == "RQST" && ssr.SegmentRef == segRef {
			if ssr.Seats == nil {
				ssr.Seats = make(map[string]string)
			}
			ssr.Seats[label] = seat
			merged = true
			break
		}
	}
	if !merged {
		pnr.SSRElements = append(pnr.SSRElements, entity.SSRElement{
			Code:        "RQST",
			AirlineCode: pnr.Segments[segRef-1].AirlineCode,
			Status:      "HK1",
			SegmentRef:  segRef,
			Seats:       map[string]string{label: seat},
		})
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "SEAT REQUESTED")
	return response
}
