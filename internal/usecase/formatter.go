package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/utils"
)

// Formatter renders PNRs and availability results into the
// fixed-layout text blocks the terminal displays
type Formatter struct {
	officeID string
}

// NewFormatter creates a formatter bound to one office id
func NewFormatter(officeID string) *Formatter {
	return &Formatter{officeID: officeID}
}

// FormatPNR renders the working display of a PNR
func (f *Formatter) FormatPNR(p *entity.PNR) string {
	var b strings.Builder
	fmt.Fprintf(&b, "RP/%s/\n", f.officeID)
	f.writeBody(&b, p)
	b.WriteString("*TRN*\n>")
	return b.String()
}

// FormatFinalized renders the post-ET/ER display with the record
// locator and ticketing date header
func (f *Formatter) FormatFinalized(p *entity.PNR) string {
	var b strings.Builder
	b.WriteString("---RLR---\n")
	ticketed := ""
	if p.TicketingDate != nil {
		ticketed = " " + utils.FormatDDMon(*p.TicketingDate)
	}
	fmt.Fprintf(&b, "RP/%s/ %s%s\n", f.officeID, p.RecordLocator, ticketed)
	f.writeBody(&b, p)
	b.WriteString("*TRN*\n>")
	return b.String()
}

// FormatAvailability renders the numbered result list of an AN search
func (f *Formatter) FormatAvailability(date time.Time, origin, destination string, lines []entity.AvailabilityLine) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** AMADEUS AVAILABILITY - AN ** %s%s %s %s\n",
		origin, destination, utils.FormatDDMon(date), utils.DayOfWeekCode(date))
	for _, line := range lines {
		fl := line.Flight
		dep, _ := utils.CombineDateTime(line.DepartureDate, fl.DepartureTime)
		arr := utils.ArrivalFrom(dep, fl.DurationMinutes)
		fmt.Fprintf(&b, "%d %2s %4s %s %s%s %s %s E %s\n",
			line.LineNumber, fl.AirlineCode, fl.FlightNumber, fl.Classes,
			fl.Origin, fl.Destination,
			utils.FormatHHMM(dep), utils.FormatHHMM(arr), fl.Equipment)
	}
	b.WriteString("*TRN*\n>")
	return b.String()
}

func (f *Formatter) writeBody(b *strings.Builder, p *entity.PNR) {
	for n, ref := range elementIndex(p) {
		b.WriteString(f.formatElement(n+1, ref, p))
		b.WriteString("\n")
	}
	for _, osi := range p.OSIElements {
		line := fmt.Sprintf("OS %s %s", osi.AirlineCode, osi.Text)
		if osi.PassengerRef > 0 {
			line += fmt.Sprintf("/P%d", osi.PassengerRef)
		}
		b.WriteString(line + "\n")
	}
	for _, ssr := range p.SSRElements {
		b.WriteString(formatSSR(ssr) + "\n")
	}
}

func (f *Formatter) formatElement(n int, ref elementRef, p *entity.PNR) string {
	switch ref.kind {
	case elemPassenger:
		return fmt.Sprintf("%d.%s", n, formatPassenger(p.Passengers[ref.index]))
	case elemSegment:
		s := p.Segments[ref.index]
		return fmt.Sprintf("%d %s %s %s %s %s %s%s %s%d %s %s %s E %s",
			n, s.AirlineCode, s.FlightNumber, s.Class,
			utils.FormatDDMon(s.DepartureDate), s.DayOfWeek,
			s.Origin, s.Destination,
			s.Status, s.Quantity,
			s.DepartureTime, s.ArrivalTime,
			utils.FormatDDMon(s.ArrivalDate), s.Equipment)
	case elemContact:
		c := p.Contact
		line := fmt.Sprintf("%d AP %s %s", n, c.City, c.Phone)
		if c.Type != "" {
			line += "-" + c.Type
		}
		return line
	case elemEmailContact:
		return fmt.Sprintf("%d APE %s", n, p.EmailContact.Address)
	case elemReceivedFrom:
		return fmt.Sprintf("%d RF %s", n, p.ReceivedFrom)
	case elemTicketing:
		tk := p.Ticketing
		if tk.Mode == entity.TicketingModeOK {
			return fmt.Sprintf("%d TK OK", n)
		}
		return fmt.Sprintf("%d TK %s%s/%s", n, tk.Mode, utils.FormatDDMon(*tk.LimitDate), tk.LimitTime)
	case elemRemark:
		rm := p.Remarks[ref.index]
		return fmt.Sprintf("%d %s %s", n, rm.Kind, rm.Text)
	}
	return ""
}

func formatPassenger(pax entity.Passenger) string {
	line := pax.DisplayName()
	switch {
	case pax.Type == entity.PaxTypeChild:
		if pax.DateOfBirth != "" {
			line += fmt.Sprintf("(CHD/%s)", pax.DateOfBirth)
		} else {
			line += "(CHD)"
		}
	case pax.Infant != nil:
		inf := pax.Infant
		line += fmt.Sprintf("(INF%s/%s/%s)", inf.LastName, inf.FirstName, inf.DateOfBirth)
	}
	return line
}

func formatSSR(ssr entity.SSRElement) string {
	line := fmt.Sprintf("SSR %s %s %s", ssr.Code, ssr.AirlineCode, ssr.Status)
	if len(ssr.Seats) > 0 {
		labels := make([]string, 0, len(ssr.Seats))
		for label := range ssr.Seats {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		cells := make([]string, 0, len(labels))
		for _, label := range labels {
			cells = append(cells, label+":"+ssr.Seats[label])
		}
		line += " " + strings.Join(cells, " ")
	} else if ssr.Text != "" {
		line += " " + ssr.Text
	}
	if ssr.PassengerRef > 0 {
		line += fmt.Sprintf("/P%d", ssr.PassengerRef)
	}
	if ssr.SegmentRef > 0 {
		line += fmt.Sprintf("/S%d", ssr.SegmentRef)
	}
	return line
}
