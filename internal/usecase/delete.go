package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

var deletePattern = regexp.MustCompile(`(?i)^XE(\d+(?:-\d+)?(?:,\d+(?:-\d+)?)*)$`)

// DeleteHandler executes XE<n>, XE<n>,<m> and XE<n>-<m>. Element
// numbers are resolved against the current numbering and removed in
// descending order so earlier deletions cannot shift later targets;
// any out-of-range number aborts the whole command.
type DeleteHandler struct {
	mirror    *PNRMirror
	formatter *Formatter
}

// NewDeleteHandler creates the XE handler
func NewDeleteHandler(mirror *PNRMirror, formatter *Formatter) *DeleteHandler {
	return &DeleteHandler{mirror: mirror, formatter: formatter}
}

func (h *DeleteHandler) Name() string { return "XE" }

func (h *DeleteHandler) CanHandle(input string) bool {
	return deletePattern.MatchString(input)
}

func (h *DeleteHandler) Handle(ctx context.Context, sess *Session, input string) string {
	m := deletePattern.FindStringSubmatch(strings.ToUpper(input))

	pnr := sess.Current()
	if pnr == nil {
		return MsgNoCurrentPNR
	}

	numbers, err := parseElementNumbers(m[1])
	if err != nil {
		return err.Error()
	}

	refs := elementIndex(pnr)
	for _, n := range numbers {
		if n < 1 || n > len(refs) {
			return fmt.Sprintf("ELEMENT %d DOES NOT EXIST", n)
		}
	}

	// Seats sold must still cover the remaining passengers afterwards
	paxGone, seatsGone := 0, 0
	for _, n := range numbers {
		switch ref := refs[n-1]; ref.kind {
		case elemPassenger:
			paxGone++
		case elemSegment:
			seatsGone += pnr.Segments[ref.index].Quantity
		}
	}
	if len(pnr.Passengers)-paxGone > pnr.TotalSeatsSold()-seatsGone {
		return "CANNOT DELETE - NAMES WOULD EXCEED SEATS SOLD"
	}

	for _, n := range numbers {
		applyDeletion(pnr, refs[n-1])
	}
	pruneDanglingRefs(pnr)
	rebuildInfantSSRs(pnr)

	response := h.formatter.FormatPNR(pnr)
	h.mirror.Mirror(ctx, pnr, strings.ToUpper(input), "ELEMENTS DELETED")
	return response
}

// parseElementNumbers expands an n,m,a-b list into unique numbers in
// descending order
func parseElementNumbers(list string) ([]int, error) {
	seen := make(map[int]bool)
	for _, part := range strings.Split(list, ",") {
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			from, _ := strconv.Atoi(lo)
			to, _ := strconv.Atoi(hi)
			if from > to {
				return nil, fmt.Errorf("INVALID RANGE %s", part)
			}
			for n := from; n <= to; n++ {
				seen[n] = true
			}
		} else {
			n, _ := strconv.Atoi(part)
			seen[n] = true
		}
	}

	numbers := make([]int, 0, len(seen))
	for n := range seen {
		numbers = append(numbers, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(numbers)))
	return numbers, nil
}

func applyDeletion(pnr *entity.PNR, ref elementRef) {
	switch ref.kind {
	case elemPassenger:
		pnr.Passengers = append(pnr.Passengers[:ref.index], pnr.Passengers[ref.index+1:]...)
	case elemSegment:
		pnr.Segments = append(pnr.Segments[:ref.index], pnr.Segments[ref.index+1:]...)
	case elemContact:
		pnr.Contact = nil
	case elemEmailContact:
		pnr.EmailContact = nil
	case elemReceivedFrom:
		pnr.ReceivedFrom = ""
	case elemTicketing:
		pnr.Ticketing = nil
	case elemRemark:
		pnr.Remarks = append(pnr.Remarks[:ref.index], pnr.Remarks[ref.index+1:]...)
	}
}

// pruneDanglingRefs drops supplementary elements whose passenger or
// segment reference no longer exists
func pruneDanglingRefs(pnr *entity.PNR) {
	keptSSR := pnr.SSRElements[:0]
	for _, ssr := range pnr.SSRElements {
		if ssr.PassengerRef > len(pnr.Passengers) || ssr.SegmentRef > len(pnr.Segments) {
			continue
		}
		keptSSR = append(keptSSR, ssr)
	}
	pnr.SSRElements = keptSSR

	keptOSI := pnr.OSIElements[:0]
	for _, osi := range pnr.OSIElements {
		if osi.PassengerRef > len(pnr.Passengers) {
			continue
		}
		keptOSI = append(keptOSI, osi)
	}
	pnr.OSIElements = keptOSI
}
