package entity

import (
	"sort"
	"strings"
	"time"
)

// PNRStatus is the lifecycle state of a reservation
type PNRStatus string

const (
	PNRStatusInProgress PNRStatus = "IN_PROGRESS"
	PNRStatusConfirmed  PNRStatus = "CONFIRMED"
	PNRStatusCancelled  PNRStatus = "CANCELLED"
)

// PassengerType codes
const (
	PaxTypeAdult  = "ADT"
	PaxTypeChild  = "CHD"
	PaxTypeInfant = "INF"
)

// Segment status codes
const (
	SegmentStatusRequested = "DK"
	SegmentStatusConfirmed = "HK"
)

// Ticketing arming modes
const (
	TicketingModeOK = "OK"
	TicketingModeTL = "TL"
	TicketingModeXL = "XL"
)

// Identity document types accepted by SRFOID
const (
	DocTypePassport   = "PP"
	DocTypeNationalID = "NI"
)

// Remark kinds
const (
	RemarkGeneral      = "RM"
	RemarkConfidential = "RC"
	RemarkItinerary    = "RIR"
)

// PNR is the reservation record built up by one terminal session
type PNR struct {
	ID            string        `bson:"_id,omitempty"`
	RecordLocator string        `bson:"recordLocator"`
	OfficeID      string        `bson:"officeId"`
	Status        PNRStatus     `bson:"status"`
	Passengers    []Passenger   `bson:"passengers"`
	Segments      []Segment     `bson:"segments"`
	Contact       *PhoneContact `bson:"contact,omitempty"`
	EmailContact  *EmailContact `bson:"emailContact,omitempty"`
	ReceivedFrom  string        `bson:"receivedFrom,omitempty"`
	Remarks       []Remark      `bson:"remarks"`
	OSIElements   []OSIElement  `bson:"osiElements"`
	SSRElements   []SSRElement  `bson:"ssrElements"`
	Ticketing     *Ticketing    `bson:"ticketing,omitempty"`
	TicketingDate *time.Time    `bson:"ticketingDate,omitempty"`
	IsDeleted     bool          `bson:"isDeleted"`
	CancelledBy   string        `bson:"cancelledBy,omitempty"`
	CancelledAs   string        `bson:"cancelledAs,omitempty"`
	CancelledAt   *time.Time    `bson:"cancelledAt,omitempty"`
	CreatedBy     string        `bson:"createdBy,omitempty"`
	CreatedAt     time.Time     `bson:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt"`
}

// Passenger is one traveller on the PNR. An infant travels on an
// adult's lap and is nested under that adult rather than listed as a
// passenger of its own.
type Passenger struct {
	LastName    string  `bson:"lastName"`
	FirstName   string  `bson:"firstName"`
	Title       string  `bson:"title,omitempty"`
	Type        string  `bson:"type"`
	DateOfBirth string  `bson:"dateOfBirth,omitempty"`
	Infant      *Infant `bson:"infant,omitempty"`
}

// Infant identity nested under the carrying adult
type Infant struct {
	LastName    string `bson:"lastName"`
	FirstName   string `bson:"firstName"`
	DateOfBirth string `bson:"dateOfBirth"`
}

// Segment is one sold flight leg
type Segment struct {
	AirlineCode   string    `bson:"airlineCode"`
	FlightNumber  string    `bson:"flightNumber"`
	Class         string    `bson:"class"`
	Origin        string    `bson:"origin"`
	Destination   string    `bson:"destination"`
	DepartureDate time.Time `bson:"departureDate"`
	DayOfWeek     string    `bson:"dayOfWeek"`
	DepartureTime string    `bson:"departureTime"`
	ArrivalTime   string    `bson:"arrivalTime"`
	ArrivalDate   time.Time `bson:"arrivalDate"`
	Equipment     string    `bson:"equipment"`
	Status        string    `bson:"status"`
	Quantity      int       `bson:"quantity"`
}

// PhoneContact is the single active AP contact
type PhoneContact struct {
	City  string `bson:"city"`
	Phone string `bson:"phone"`
	Type  string `bson:"type,omitempty"`
}

// EmailContact is the single active APE contact
type EmailContact struct {
	Address string `bson:"address"`
}

// Remark is a free-text note tagged by kind; confidential remarks
// record the authoring user
type Remark struct {
	Kind     string `bson:"kind"`
	Text     string `bson:"text"`
	AuthorID string `bson:"authorId,omitempty"`
}

// OSIElement is an Other Service Information element
type OSIElement struct {
	AirlineCode  string `bson:"airlineCode"`
	Text         string `bson:"text"`
	PassengerRef int    `bson:"passengerRef,omitempty"`
}

// SSRElement is a Special Service Request. Seat requests (code RQST)
// carry a passengerLabel -> seatCode map instead of free text.
type SSRElement struct {
	Code         string            `bson:"code"`
	AirlineCode  string            `bson:"airlineCode"`
	Status       string            `bson:"status"`
	Text         string            `bson:"text,omitempty"`
	PassengerRef int               `bson:"passengerRef,omitempty"`
	SegmentRef   int               `bson:"segmentRef,omitempty"`
	Seats        map[string]string `bson:"seats,omitempty"`
}

// Ticketing is the TK arming record
type Ticketing struct {
	Mode      string     `bson:"mode"`
	LimitDate *time.Time `bson:"limitDate,omitempty"`
	LimitTime string     `bson:"limitTime,omitempty"`
}

// HistoryEntry records one command applied to a persisted PNR
type HistoryEntry struct {
	Command   string    `bson:"command"`
	Result    string    `bson:"result"`
	Timestamp time.Time `bson:"timestamp"`
}

// SortPassengers restores the (lastName, firstName) ordering that
// element numbering depends on
func (p *PNR) SortPassengers() {
	sort.SliceStable(p.Passengers, func(i, j int) bool {
		a, b := p.Passengers[i], p.Passengers[j]
		if a.LastName != b.LastName {
			return a.LastName < b.LastName
		}
		return a.FirstName < b.FirstName
	})
}

// TotalSeatsSold sums seat quantity across all segments
func (p *PNR) TotalSeatsSold() int {
	total := 0
	for _, s := range p.Segments {
		total += s.Quantity
	}
	return total
}

// SeatedPassengerCount counts passengers that occupy a seat; lap
// infants do not
func (p *PNR) SeatedPassengerCount() int {
	return len(p.Passengers)
}

// DistinctAirlines returns the distinct airline codes across the
// itinerary, in first-appearance order
func (p *PNR) DistinctAirlines() []string {
	seen := make(map[string]bool)
	var codes []string
	for _, s := range p.Segments {
		if !seen[s.AirlineCode] {
			seen[s.AirlineCode] = true
			codes = append(codes, s.AirlineCode)
		}
	}
	return codes
}

// DisplayName renders a passenger as LASTNAME/FIRSTNAME TITLE
func (x Passenger) DisplayName() string {
	name := x.LastName + "/" + x.FirstName
	if x.Title != "" {
		name += " " + x.Title
	}
	return strings.ToUpper(name)
}
