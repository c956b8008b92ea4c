package repository

import (
	"context"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
)

// PNRRepository is the persistence gateway for reservation records.
// Updates take a partial field map so concurrent history entries are
// never clobbered; history is append-only. FindByLocator returns
// nil, nil when no record matches.
type PNRRepository interface {
	Create(ctx context.Context, pnr *entity.PNR) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}, history entity.HistoryEntry) error
	FindByLocator(ctx context.Context, locator string) (*entity.PNR, error)
}
