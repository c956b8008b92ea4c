package usecase

import (
	"context"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/repository"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"
)

// PersistOutcome is the typed result of a mirror write. A warning
// means the gateway write failed; the in-memory PNR stays
// authoritative for the session either way.
type PersistOutcome int

const (
	PersistOK PersistOutcome = iota
	PersistWarn
)

// PNRMirror mirrors in-memory PNR mutations through the persistence
// gateway. Updates are fire-and-forget; only the first create blocks,
// because later updates need the generated id to target.
type PNRMirror struct {
	repo    repository.PNRRepository
	logger  logger.Logger
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewPNRMirror creates a mirror over the given gateway
func NewPNRMirror(repo repository.PNRRepository, log logger.Logger, m *metrics.Metrics, timeout time.Duration) *PNRMirror {
	return &PNRMirror{
		repo:    repo,
		logger:  log,
		metrics: m,
		timeout: timeout,
	}
}

// Mirror writes the PNR's current state to the gateway along with one
// history entry for the command that produced it
func (m *PNRMirror) Mirror(ctx context.Context, p *entity.PNR, command, result string) PersistOutcome {
	if p.ID == "" {
		cctx, cancel := context.WithTimeout(ctx, m.timeout)
		defer cancel()

		id, err := m.repo.Create(cctx, p)
		if err != nil {
			m.warn("create", p.RecordLocator, command, err)
			return PersistWarn
		}
		p.ID = id
		return PersistOK
	}

	entry := entity.HistoryEntry{
		Command:   command,
		Result:    result,
		Timestamp: time.Now(),
	}
	fields := pnrFields(p)
	id := p.ID
	locator := p.RecordLocator

	go func() {
		cctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()

		if err := m.repo.Update(cctx, id, fields, entry); err != nil {
			m.warn("update", locator, command, err)
		}
	}()
	return PersistOK
}

func (m *PNRMirror) warn(op, locator, command string, err error) {
	m.logger.Warn("persistence mirror failed",
		"operation", op,
		"recordLocator", locator,
		"command", command,
		"error", err)
	m.metrics.PersistWarnings.Inc()
}

// pnrFields snapshots every mutable field for a partial update. The
// write runs on a goroutine while the session keeps mutating the PNR
// in place, so slices, maps and pointer fields are deep-copied here.
func pnrFields(p *entity.PNR) map[string]interface{} {
	return map[string]interface{}{
		"recordLocator": p.RecordLocator,
		"status":        p.Status,
		"passengers":    clonePassengers(p.Passengers),
		"segments":      append([]entity.Segment(nil), p.Segments...),
		"contact":       clonePtr(p.Contact),
		"emailContact":  clonePtr(p.EmailContact),
		"receivedFrom":  p.ReceivedFrom,
		"remarks":       append([]entity.Remark(nil), p.Remarks...),
		"osiElements":   append([]entity.OSIElement(nil), p.OSIElements...),
		"ssrElements":   cloneSSRElements(p.SSRElements),
		"ticketing":     clonePtr(p.Ticketing),
		"ticketingDate": clonePtr(p.TicketingDate),
		"isDeleted":     p.IsDeleted,
		"cancelledBy":   p.CancelledBy,
		"cancelledAs":   p.CancelledAs,
		"cancelledAt":   clonePtr(p.CancelledAt),
	}
}

func clonePassengers(src []entity.Passenger) []entity.Passenger {
	out := append([]entity.Passenger(nil), src...)
	for i := range out {
		out[i].Infant = clonePtr(out[i].Infant)
	}
	return out
}

func cloneSSRElements(src []entity.SSRElement) []entity.SSRElement {
	out := append([]entity.SSRElement(nil), src...)
	for i := range out {
		if out[i].Seats == nil {
			continue
		}
		seats := make(map[string]string, len(out[i].Seats))
		for label, seat := range out[i].Seats {
			seats[label] = seat
		}
		out[i].Seats = seats
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
