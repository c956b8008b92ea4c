package repository

import (
	"context"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

// FlightRepository defines the interface for flight reference data
type FlightRepository interface {
	FindByRoute(ctx context.Context, origin, destination string) ([]entity.Flight, error)
}
