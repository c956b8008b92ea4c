package repository

import (
	"context"
	"strings"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/repository"

	"gorm.io/gorm"
)

// GormFlightRepository implements the FlightRepository interface
type GormFlightRepository struct {
	db *gorm.DB
}

// NewGormFlightRepository creates a new GORM flight repository
func NewGormFlightRepository(db *gorm.DB) repository.FlightRepository {
	return &GormFlightRepository{
		db: db,
	}
}

// Flights GORM model for database mapping
type Flights struct {
	ID              uint   `gorm:"primaryKey"`
	AirlineCode     string `gorm:"column:airline_code;index"`
	FlightNumber    string `gorm:"column:flight_number"`
	Origin          string `gorm:"column:origin;index:idx_route"`
	Destination     string `gorm:"column:destination;index:idx_route"`
	DepartureTime   string `gorm:"column:departure_time"`
	DurationMinutes int    `gorm:"column:duration_minutes"`
	Equipment       string `gorm:"column:equipment"`
	Classes         string `gorm:"column:classes"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Flights) TableName() string {
	return "m_flights"
}

// FindByRoute finds scheduled flights for a city pair, earliest
// departure first
func (r *GormFlightRepository) FindByRoute(ctx context.Context, origin, destination string) ([]entity.Flight, error) {
	var rows []Flights
	result := r.db.WithContext(ctx).
		Where("origin = ? AND destination = ?", strings.ToUpper(origin), strings.ToUpper(destination)).
		Order("departure_time asc").
		Find(&rows)

	if result.Error != nil {
		return nil, result.Error
	}

	// Convert GORM models to domain entities
	flights := make([]entity.Flight, 0, len(rows))
	for _, row := range rows {
		flights = append(flights, entity.Flight{
			ID:              row.ID,
			AirlineCode:     row.AirlineCode,
			FlightNumber:    row.FlightNumber,
			Origin:          row.Origin,
			Destination:     row.Destination,
			DepartureTime:   row.DepartureTime,
			DurationMinutes: row.DurationMinutes,
			Equipment:       row.Equipment,
			Classes:         row.Classes,
			CreatedAt:       row.CreatedAt,
			UpdatedAt:       row.UpdatedAt,
		})
	}
	return flights, nil
}
