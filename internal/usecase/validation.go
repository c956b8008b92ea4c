package usecase

import (
	"fmt"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

// Finalize violation messages, reported together in this order
const (
	msgNeedItinerary    = "NEED ITINERARY"
	msgNeedName         = "NEED NAME"
	msgNeedContact      = "NEED PHONE CONTACT"
	msgNeedReceivedFrom = "NEED RECEIVED FROM"
)

// validateForFinalize returns every element still missing before the
// PNR can be closed with ET/ER, not just the first
func validateForFinalize(p *entity.PNR) []string {
	var violations []string
	if len(p.Segments) == 0 {
		violations = append(violations, msgNeedItinerary)
	}
	if len(p.Passengers) == 0 {
		violations = append(violations, msgNeedName)
	}
	if p.Contact == nil {
		violations = append(violations, msgNeedContact)
	}
	if p.ReceivedFrom == "" {
		violations = append(violations, msgNeedReceivedFrom)
	}
	return violations
}

// validateSeatCapacity enforces that passengers never outnumber sold
// seats. incoming is the number of seated passengers about to join.
func validateSeatCapacity(p *entity.PNR, incoming int) error {
	total := p.TotalSeatsSold()
	current := p.SeatedPassengerCount()
	if current+incoming > total {
		return fmt.Errorf("TOO MANY NAMES FOR SEATS SOLD - %d SEAT(S), %d NAME(S)", total, current+incoming)
	}
	return nil
}
