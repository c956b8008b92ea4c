package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/logger"
	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/pkg/metrics"
)

// promauto registers globally, so every test shares one instance
var testMetrics = metrics.NewMetrics("amadeus_trainer_test")

type updateCall struct {
	id      string
	fields  map[string]interface{}
	history entity.HistoryEntry
}

// fakePNRRepo is an in-memory persistence gateway
type fakePNRRepo struct {
	mu        sync.Mutex
	nextID    int
	created   []*entity.PNR
	updates   []updateCall
	stored    map[string]*entity.PNR
	createErr error
	findErr   error
}

func newFakePNRRepo() *fakePNRRepo {
	return &fakePNRRepo{stored: make(map[string]*entity.PNR)}
}

func (f *fakePNRRepo) Create(ctx context.Context, pnr *entity.PNR) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return "", f.createErr
	}
	f.nextID++
	id := fmt.Sprintf("id-%d", f.nextID)
	snapshot := *pnr
	snapshot.ID = id
	f.created = append(f.created, &snapshot)
	f.stored[snapshot.RecordLocator] = &snapshot
	return id, nil
}

func (f *fakePNRRepo) Update(ctx context.Context, id string, fields map[string]interface{}, history entity.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, updateCall{id: id, fields: fields, history: history})
	return nil
}

func (f *fakePNRRepo) FindByLocator(ctx context.Context, locator string) (*entity.PNR, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	pnr, ok := f.stored[locator]
	if !ok || pnr.IsDeleted {
		return nil, nil
	}
	snapshot := *pnr
	return &snapshot, nil
}

// waitForUpdates polls until n mirror writes have landed and returns
// them; the update path runs on a goroutine
func (f *fakePNRRepo) waitForUpdates(t *testing.T, n int) []updateCall {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		if len(f.updates) >= n {
			out := append([]updateCall(nil), f.updates...)
			f.mu.Unlock()
			return out
		}
		f.mu.Unlock()
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %d mirror write(s)", n)
	return nil
}

func (f *fakePNRRepo) put(pnr *entity.PNR) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored[pnr.RecordLocator] = pnr
}

func testLogger() logger.Logger {
	return logger.NewLogger()
}

func newTestMirror(repo *fakePNRRepo) *PNRMirror {
	return NewPNRMirror(repo, testLogger(), testMetrics, time.Second)
}

func testFormatter() *Formatter {
	return NewFormatter("UTN5168")
}

func newTestSession() *Session {
	return &Session{ID: "TEST", UserID: "agent1"}
}

// testFlight is the reference flight used across handler tests:
// AR 1132 EZE-MAD, leaves 2300, 12h50 in the air, lands 1150 next day
func testFlight() entity.Flight {
	return entity.Flight{
		ID:              1,
		AirlineCode:     "AR",
		FlightNumber:    "1132",
		Origin:          "EZE",
		Destination:     "MAD",
		DepartureTime:   "2300",
		DurationMinutes: 770,
		Equipment:       "332",
		Classes:         "J4 Y9 M5",
	}
}

// 2026-11-15 is a Sunday, day code 7
var testDepartureDate = time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC)

func primeAvailability(sess *Session) {
	sess.SetAvailability([]entity.AvailabilityLine{
		{LineNumber: 1, Flight: testFlight(), DepartureDate: testDepartureDate},
	})
}

// sellSegments sets up a session with a current PNR holding n sold
// seats on one segment each
func sellSegments(sess *Session, mirror *PNRMirror, quantities ...int) *entity.PNR {
	h := NewSellHandler(mirror, testFormatter(), "UTN5168", logger.NewLogger())
	primeAvailability(sess)
	for _, qty := range quantities {
		h.Handle(context.Background(), sess, fmt.Sprintf("SS%dY1", qty))
	}
	return sess.Current()
}
