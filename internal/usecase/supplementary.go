package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

const (
	maxOSITextLen  = 68
	maxOSIElements = 127
)

var (
	osiPattern  = regexp.MustCompile(`(?i)^OS\s+([A-Z0-9]{2})\s+(.+?)(?:\s*/P(\d+))?$`)
	ssrPattern  = regexp.MustCompile(`(?i)^SR([A-Z]{4})/P(\d+)$`)
	foidPattern = regexp.MustCompile(`(?i)^SRFOID\s+([A-Z0-9]{2})\s+HK1-(PP|NI)([A-Z0-9]+)/P(\d+)$`)
)

// OSIHandler executes OS <airline> <message>[/P<n>]. Airline YY
// expands to every distinct airline in the itinerary.
type OSIHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewOSIHandler creates the OS handler
func NewOSIHandler(mirror *PNRMirror, formatter *Formatter) *OSIHandler {
	return &OSIHandler{mirror: mirror, formatter: formatter}
}

func (h *OSIHandler) Name() string { return "OS" }

func (h *OSIHandler) CanHandle(input string) bool {
	return osiPattern.MatchString(input)
}

func (h *OSIHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := osiPattern.FindStringSubmatch(strings.ToUpper(input))
	airline := m[1]
	text := strings.TrimSpace(m[2])

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if len(text) > maxOSITextLen {
		return fmt.Sprintf("OSI TEXT EXCEEDS %d CHARACTERS", maxOSITextLen)
	}

	paxRef := 0
	if m[3] != "" {
		paxRef, _ = strconv.Atoi(m[3])
		if paxRef < 1 || paxRef > len(pnr.Passengers) {
			return fmt.Sprintf("INVALID PASSENGER REFERENCE P%d", paxRef)
		}
	}

	airlines := []string{airline}
	if airline == "YY" {
		airlines = pnr.DistinctAirlines()
		if len(airlines) == 0 {
			return MsgNoItinerary
		}
	}
	if len(pnr.OSIElements)+len(airlines) > maxOSIElements {
		return fmt.Sprintf("MAXIMUM %d OSI ELEMENTS EXCEEDED", maxOSIElements)
	}

	for _, code := range airlines {
		pnr.OSIElements = append(pnr.OSIElements, entity.OSIElement{
			AirlineCode:  code,
			Text:         text,
			PassengerRef: paxRef,
		})
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "OSI ELEMENT ADDED")
	return response
}

// SSRHandler executes SR<code>/P<n>. The code must belong to the SSR
// vocabulary and the passenger reference is mandatory; one element is
// created per itinerary segment.
type SSRHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewSSRHandler creates the SR handler
func NewSSRHandler(mirror *PNRMirror, formatter *Formatter) *SSRHandler {
	return &SSRHandler{mirror: mirror, formatter: formatter}
}

func (h *SSRHandler) Name() string { return "SR" }

func (h *SSRHandler) CanHandle(input string) bool {
	return ssrPattern.MatchString(input)
}

func (h *SSRHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := ssrPattern.FindStringSubmatch(strings.ToUpper(input))
	code := m[1]
	paxRef, _ := strconv.Atoi(m[2])

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if !entity.IsValidSSRCode(code) {
		return fmt.Sprintf("INVALID SSR CODE %s", code)
	}
	if len(pnr.Segments) == 0 {
		return MsgNoItinerary
	}
	if paxRef < 1 || paxRef > len(pnr.Passengers) {
		return fmt.Sprintf("INVALID PASSENGER REFERENCE P%d", paxRef)
	}

	for i, seg := range pnr.Segments {
		pnr.SSRElements = append(pnr.SSRElements, entity.SSRElement{
			Code:         code,
			AirlineCode:  seg.AirlineCode,
			Status:       "HK1",
			PassengerRef: paxRef,
			SegmentRef:   i + 1,
		})
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "SSR ELEMENT ADDED")
	return response
}

// FOIDHandler executes SRFOID <airline> HK1-<PP|NI><document>/P<n>.
// A passenger holds at most one identity document; a new FOID
// replaces the prior one.
type FOIDHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewFOIDHandler creates the SRFOID handler
func NewFOIDHandler(mirror *PNRMirror, formatter *Formatter) *FOIDHandler {
	return &FOIDHandler{mirror: mirror, formatter: formatter}
}

func (h *FOIDHandler) Name() string { return "SRFOID" }

func (h *FOIDHandler) CanHandle(input string) bool {
	return foidPattern.MatchString(input)
}

func (h *FOIDHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := foidPattern.FindStringSubmatch(strings.ToUpper(input))
	airline := m[1]
	docType := m[2]
	document := m[3]
	paxRef, _ := strconv.Atoi(m[4])

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if paxRef < 1 || paxRef > len(pnr.Passengers) {
		return fmt.Sprintf("INVALID PASSENGER REFERENCE P%d", paxRef)
	}

	airlines := []string{airline}
	if airline == "YY" {
		airlines = pnr.DistinctAirlines()
		if len(airlines) == 0 {
			return MsgNoItinerary
		}
	}

	// One identity document per passenger
	kept := pnr.SSRElements[:0]
	for _, ssr := range pnr.SSRElements {
		if ssr.Code == "FOID" && ssr.PassengerRef == paxRef {
			continue
		}
		kept = append(kept, ssr)
	}
	pnr.SSRElements = kept

	for _, code := range airlines {
		pnr.SSRElements = append(pnr.SSRElements, entity.SSRElement{
			Code:         "FOID",
			AirlineCode:  code,
			Status:       "HK1",
			Text:         docType + document,
			PassengerRef: paxRef,
		})
	}

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "FOID ELEMENT SET")
	return response
}
