package usecase

import (
	"sync"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"

	"github.com/google/uuid"
)

// PendingCancel marks a cancellation requested by XI that is waiting
// for its confirming RF. Any other command abandons it.
type PendingCancel struct {
	Locator string
}

// Session is the state of one terminal; it owns the current PNR, the
// last availability search, and the cancel-confirmation state. Each
// session processes one command at a time.
type Session struct {
	ID     string
	UserID string

	mu            sync.Mutex
	currentPNR    *entity.PNR
	availability  []entity.AvailabilityLine
	pendingCancel *PendingCancel
}

// Lock serializes command execution for this session
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session for the next command
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// Current returns the PNR being worked on, or nil
func (s *Session) Current() *entity.PNR {
	return s.currentPNR
}

// SetCurrent makes pnr the session's working PNR
func (s *Session) SetCurrent(pnr *entity.PNR) {
	s.currentPNR = pnr
}

// ClearCurrent ends the working session on the current PNR
func (s *Session) ClearCurrent() {
	s.currentPNR = nil
}

// Availability returns the numbered result set of the last search
func (s *Session) Availability() []entity.AvailabilityLine {
	return s.availability
}

// SetAvailability stores the numbered result set of a search
func (s *Session) SetAvailability(lines []entity.AvailabilityLine) {
	s.availability = lines
}

// GetPendingCancel returns the cancellation awaiting confirmation, or nil
func (s *Session) GetPendingCancel() *PendingCancel {
	return s.pendingCancel
}

// SetPendingCancel records a cancellation awaiting RF confirmation
func (s *Session) SetPendingCancel(pc *PendingCancel) {
	s.pendingCancel = pc
}

// ClearPendingCancel abandons any cancellation awaiting confirmation
func (s *Session) ClearPendingCancel() {
	s.pendingCancel = nil
}

// SessionManager holds one Session per terminal, replacing a
// process-wide current-PNR variable so independent training sessions
// never share state
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating it on first use. An empty
// id allocates a fresh session.
func (m *SessionManager) Get(id, userID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}
	sess, ok := m.sessions[id]
	if !ok {
		sess = &Session{ID: id, UserID: userID}
		m.sessions[id] = sess
	}
	if userID != "" {
		sess.UserID = userID
	}
	return sess
}
