package usecase

import (
	"testing"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func displayPNR() *entity.PNR {
	limitDate := time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC)
	return &entity.PNR{
		RecordLocator: "TEMP0001",
		OfficeID:      "UTN5168",
		Status:        entity.PNRStatusInProgress,
		Passengers: []entity.Passenger{
			{LastName: "GARCIA", FirstName: "JUAN", Title: "MR", Type: entity.PaxTypeAdult},
		},
		Segments: []entity.Segment{
			{
				AirlineCode: "AR", FlightNumber: "1132", Class: "Y",
				DepartureDate: time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC),
				DayOfWeek:     "7",
				Origin:        "EZE", Destination: "MAD",
				Status: entity.SegmentStatusRequested, Quantity: 1,
				DepartureTime: "2300", ArrivalTime: "1150",
				ArrivalDate: time.Date(2026, time.November, 16, 0, 0, 0, 0, time.UTC),
				Equipment:   "332",
			},
		},
		Contact:      &entity.PhoneContact{City: "BUE", Phone: "12345678", Type: "M"},
		EmailContact: &entity.EmailContact{Address: "juan@example.com"},
		ReceivedFrom: "GARCIA",
		Ticketing:    &entity.Ticketing{Mode: entity.TicketingModeTL, LimitDate: &limitDate, LimitTime: "1200"},
		Remarks: []entity.Remark{
			{Kind: entity.RemarkGeneral, Text: "NOTE ONE"},
		},
	}
}

func TestFormatPNRFullBlock(t *testing.T) {
	f := NewFormatter("UTN5168")

	want := "RP/UTN5168/\n" +
		"1.GARCIA/JUAN MR\n" +
		"2 AR 1132 Y 15NOV 7 EZEMAD DK1 2300 1150 16NOV E 332\n" +
		"3 AP BUE 12345678-M\n" +
		"4 APE juan@example.com\n" +
		"5 RF GARCIA\n" +
		"6 TK TL10NOV/1200\n" +
		"7 RM NOTE ONE\n" +
		"*TRN*\n" +
		">"
	assert.Equal(t, want, f.FormatPNR(displayPNR()))
}

func TestFormatPNRRenumbersAfterRemoval(t *testing.T) {
	f := NewFormatter("UTN5168")
	pnr := displayPNR()
	pnr.Contact = nil

	out := f.FormatPNR(pnr)
	assert.Contains(t, out, "3 APE juan@example.com")
	assert.Contains(t, out, "4 RF GARCIA")
	assert.NotContains(t, out, "AP BUE")
}

func TestFormatFinalizedHeader(t *testing.T) {
	f := NewFormatter("UTN5168")
	pnr := displayPNR()
	pnr.RecordLocator = "ABC123"
	ticketed := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	pnr.TicketingDate = &ticketed

	out := f.FormatFinalized(pnr)
	assert.Contains(t, out, "---RLR---\n")
	assert.Contains(t, out, "RP/UTN5168/ ABC123 31AUG\n")
}

func TestFormatPassengerSuffixes(t *testing.T) {
	chd := entity.Passenger{LastName: "GARCIA", FirstName: "PEPE", Title: "MSTR", Type: entity.PaxTypeChild, DateOfBirth: "01JAN15"}
	assert.Equal(t, "GARCIA/PEPE MSTR(CHD/01JAN15)", formatPassenger(chd))

	chd.DateOfBirth = ""
	assert.Equal(t, "GARCIA/PEPE MSTR(CHD)", formatPassenger(chd))

	adt := entity.Passenger{
		LastName: "GARCIA", FirstName: "JUAN", Title: "MR", Type: entity.PaxTypeAdult,
		Infant: &entity.Infant{LastName: "GARCIA", FirstName: "MARIA", DateOfBirth: "01JAN24"},
	}
	assert.Equal(t, "GARCIA/JUAN MR(INFGARCIA/MARIA/01JAN24)", formatPassenger(adt))
}

func TestFormatSupplementaryLinesUnnumbered(t *testing.T) {
	f := NewFormatter("UTN5168")
	pnr := displayPNR()
	pnr.OSIElements = []entity.OSIElement{{AirlineCode: "AR", Text: "VIP", PassengerRef: 1}}
	pnr.SSRElements = []entity.SSRElement{
		{Code: "VGML", AirlineCode: "AR", Status: "HK1", PassengerRef: 1, SegmentRef: 1},
		{Code: "RQST", AirlineCode: "AR", Status: "HK1", SegmentRef: 1, Seats: map[string]string{"P1": "12A"}},
	}

	out := f.FormatPNR(pnr)
	assert.Contains(t, out, "OS AR VIP/P1\n")
	assert.Contains(t, out, "SSR VGML AR HK1/P1/S1\n")
	assert.Contains(t, out, "SSR RQST AR HK1 P1:12A/S1\n")
}

func TestFormatAvailability(t *testing.T) {
	f := NewFormatter("UTN5168")
	date := time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC)
	lines := []entity.AvailabilityLine{
		{LineNumber: 1, Flight: testFlight(), DepartureDate: date},
	}

	out := f.FormatAvailability(date, "EZE", "MAD", lines)
	assert.Contains(t, out, "** AMADEUS AVAILABILITY - AN ** EZEMAD 15NOV 7")
	assert.Contains(t, out, "1 AR 1132 J4 Y9 M5 EZEMAD 2300 1150 E 332")
	assert.Contains(t, out, "*TRN*\n>")
}

func TestElementIndexOrder(t *testing.T) {
	pnr := displayPNR()
	refs := elementIndex(pnr)

	kinds := make([]elementKind, len(refs))
	for i, r := range refs {
		kinds[i] = r.kind
	}
	assert.Equal(t, []elementKind{
		elemPassenger, elemSegment, elemContact, elemEmailContact,
		elemReceivedFrom, elemTicketing, elemRemark,
	}, kinds)
}
