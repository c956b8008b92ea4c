package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
)

var (
	namePattern = regexp.MustCompile(`(?i)^NM(\d+)([A-Z]+)/([A-Z]+(?:/[A-Z]+)*)(?:\s+(MR|MRS|MS|MSTR|MISS|DR))?(?:\((CHD|INF)([^)]*)\))?$`)
	dobPattern  = regexp.MustCompile(`^\d{1,2}[A-Z]{3}\d{2}$`)
	infPattern  = regexp.MustCompile(`^([A-Z]+)/([A-Z]+)/(\d{1,2}[A-Z]{3}\d{2})$`)
)

// NameHandler executes NM<qty><LASTNAME>/<FIRSTNAME>... adding
// passengers to the current PNR. The passenger list is re-sorted by
// (lastName, firstName) after every addition; the renumbering that
// causes in later displays is protocol behavior.
type NameHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
	logger    logger.Logger
}

// NewNameHandler creates the NM handler
func NewNameHandler(mirror *PNRMirror, formatter *Formatter, log logger.Logger) *NameHandler {
	return &NameHandler{
		mirror:    mirror,
		formatter: formatter,
		logger:    log,
	}
}

func (h *NameHandler) Name() string { return "NM" }

func (h *NameHandler) CanHandle(input string) bool {
	return namePattern.MatchString(input)
}

func (h *NameHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := namePattern.FindStringSubmatch(strings.ToUpper(input))
	qty, _ := strconv.Atoi(m[1])
	lastName := m[2]
	givenNames := strings.Split(m[3], "/")
	title := m[4]
	suffixKind := m[5]
	suffixDetail := m[6]

	if qty < 1 {
		return "INVALID QUANTITY"
	}
	if qty != len(givenNames) {
		return fmt.Sprintf("QUANTITY %d DOES NOT MATCH %d NAME(S)", qty, len(givenNames))
	}
	if suffixKind != "" && qty != 1 {
		return fmt.Sprintf("%s ENTRY MUST NAME ONE PASSENGER", suffixKind)
	}

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}
	if err := validateSeatCapacity(pnr, qty); err != nil {
		return err.Error()
	}

	incoming := make([]entity.Passenger, 0, qty)
	for _, given := range givenNames {
		incoming = append(incoming, entity.Passenger{
			LastName:  lastName,
			FirstName: given,
			Title:     title,
			Type:      entity.PaxTypeAdult,
		})
	}

	switch suffixKind {
	case "CHD":
		// Date of birth is optional for a child
		dob := strings.TrimPrefix(suffixDetail, "/")
		if dob != "" && !dobPattern.MatchString(dob) {
			return fmt.Sprintf("INVALID DATE OF BIRTH %s", dob)
		}
		incoming[0].Type = entity.PaxTypeChild
		incoming[0].DateOfBirth = dob
	case "INF":
		im := infPattern.FindStringSubmatch(suffixDetail)
		if im == nil {
			return "INVALID INFANT ENTRY - USE (INFLASTNAME/FIRSTNAME/DDMONYY)"
		}
		incoming[0].Infant = &entity.Infant{
			LastName:    im[1],
			FirstName:   im[2],
			DateOfBirth: im[3],
		}
	}

	pnr.Passengers = append(pnr.Passengers, incoming...)
	pnr.SortPassengers()
	rebuildInfantSSRs(pnr)

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "NAME ELEMENT ADDED")
	return response
}

// rebuildInfantSSRs regenerates every INFT element from the current
// passenger and segment lists. Passenger numbers shift whenever the
// list re-sorts, so the elements are derived fresh instead of patched.
func rebuildInfantSSRs(pnr *entity.PNR) {
	kept := pnr.SSRElements[:0]
	for _, ssr := range pnr.SSRElements {
		if ssr.Code != "INFT" {
			kept = append(kept, ssr)
		}
	}
	pnr.SSRElements = kept

	for i, pax := range pnr.Passengers {
		if pax.Infant == nil {
			continue
		}
		text := fmt.Sprintf("%s/%s %s", pax.Infant.LastName, pax.Infant.FirstName, pax.Infant.DateOfBirth)
		for s := range pnr.Segments {
			pnr.SSRElements = append(pnr.SSRElements, entity.SSRElement{
				Code:         "INFT",
				AirlineCode:  pnr.Segments[s].AirlineCode,
				Status:       "HK1",
				Text:         text,
				PassengerRef: i + 1,
				SegmentRef:   s + 1,
			})
		}
	}
}
