package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTicketingHandler(repo *fakePNRRepo) *TicketingHandler {
	return NewTicketingHandler(newTestMirror(repo), testFormatter())
}

func TestTicketingRequiresCurrentPNR(t *testing.T) {
	h := newTicketingHandler(newFakePNRRepo())
	sess := newTestSession()

	assert.Equal(t, MsgNoCurrentPNR, h.Handle(context.Background(), sess, "TKOK"))
}

func TestTicketingOK(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	out := h.Handle(context.Background(), sess, "TKOK")

	tk := sess.Current().Ticketing
	require.NotNil(t, tk)
	assert.Equal(t, entity.TicketingModeOK, tk.Mode)
	assert.Nil(t, tk.LimitDate)
	assert.Contains(t, out, "TK OK")
}

func TestTicketingOKRejectsTimeLimit(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	out := h.Handle(context.Background(), sess, "TKOK15NOV/1200")

	assert.Equal(t, "TKOK TAKES NO TIME LIMIT", out)
	assert.Nil(t, sess.Current().Ticketing)
}

func TestTicketingTimeLimit(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	out := h.Handle(context.Background(), sess, "TKTL15NOV/1200")

	tk := sess.Current().Ticketing
	require.NotNil(t, tk)
	assert.Equal(t, entity.TicketingModeTL, tk.Mode)
	require.NotNil(t, tk.LimitDate)
	assert.Equal(t, time.November, tk.LimitDate.Month())
	assert.Equal(t, 15, tk.LimitDate.Day())
	assert.Equal(t, "1200", tk.LimitTime)
	assert.Contains(t, out, "TK TL15NOV/1200")
}

func TestTicketingCancelDeadline(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	h.Handle(context.Background(), sess, "TKXL20DEC/0900")

	tk := sess.Current().Ticketing
	require.NotNil(t, tk)
	assert.Equal(t, entity.TicketingModeXL, tk.Mode)
	assert.Equal(t, "0900", tk.LimitTime)
}

func TestTicketingDeadlineModesRequireDateTime(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	assert.Equal(t, "TKTL REQUIRES DATE/TIME", h.Handle(context.Background(), sess, "TKTL"))
	assert.Equal(t, "TKXL REQUIRES DATE/TIME", h.Handle(context.Background(), sess, "TKXL"))
	assert.Nil(t, sess.Current().Ticketing)
}

func TestTicketingRejectsBadDateAndTime(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	assert.Equal(t, "INVALID DATE 31FEB", h.Handle(context.Background(), sess, "TKTL31FEB/1200"))
	assert.Equal(t, "INVALID TIME 2500", h.Handle(context.Background(), sess, "TKTL15NOV/2500"))
	assert.Nil(t, sess.Current().Ticketing)
}

func TestTicketingReplacesPriorArming(t *testing.T) {
	repo := newFakePNRRepo()
	sess := sessionWithPNR(repo)
	h := newTicketingHandler(repo)

	h.Handle(context.Background(), sess, "TKTL15NOV/1200")
	h.Handle(context.Background(), sess, "TKOK")

	tk := sess.Current().Ticketing
	require.NotNil(t, tk)
	assert.Equal(t, entity.TicketingModeOK, tk.Mode)
	assert.Nil(t, tk.LimitDate)
}

func TestTicketingGrammar(t *testing.T) {
	h := newTicketingHandler(newFakePNRRepo())

	assert.True(t, h.CanHandle("TKOK"))
	assert.True(t, h.CanHandle("tktl15nov/1200"))
	assert.False(t, h.CanHandle("TK"))
	assert.False(t, h.CanHandle("TKZZ"))
	assert.False(t, h.CanHandle("TKTL15NOV"))
}
