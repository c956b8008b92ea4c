package entity

import (
	"strconv"
	"strings"
	"time"
)

// Flight is one scheduled flight from the reference data, the unit an
// availability search returns
type Flight struct {
	ID              uint
	AirlineCode     string
	FlightNumber    string
	Origin          string
	Destination     string
	DepartureTime   string // HHMM
	DurationMinutes int
	Equipment       string
	Classes         string // space-separated <class><seats> cells, e.g. "J4 Y9 M5"
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ClassAvailability parses the Classes string into a booking class ->
// available seats map
func (f Flight) ClassAvailability() map[string]int {
	avail := make(map[string]int)
	for _, cell := range strings.Fields(f.Classes) {
		if len(cell) < 2 {
			continue
		}
		class := strings.ToUpper(cell[:1])
		seats, err := strconv.Atoi(cell[1:])
		if err != nil {
			continue
		}
		avail[class] = seats
	}
	return avail
}

// AvailabilityLine is one numbered row of the last availability
// search, the thing a subsequent SS command indexes into
type AvailabilityLine struct {
	LineNumber    int
	Flight        Flight
	DepartureDate time.Time
}
