package usecase

import (
	"context"
	"testing"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithPNR(repo *fakePNRRepo) *Session {
	sess := newTestSession()
	sellSegments(sess, newTestMirror(repo), 2)
	return sess
}

func TestPhoneContactSetAndReplace(t *testing.T) {
	repo := newFakePNRRepo()
	h := NewPhoneContactHandler(newTestMirror(repo), testFormatter())
	sess := sessionWithPNR(repo)

	resp := h.Handle(context.Background(), sess, "AP BUE12345678-M")
	require.NotNil(t, sess.Current().Contact)
	assert.Equal(t, "BUE", sess.Current().Contact.City)
	assert.Equal(t, "12345678", sess.Current().Contact.Phone)
	assert.Equal(t, "M", sess.Current().Contact.Type)
	assert.Contains(t, resp, "AP BUE 12345678-M")

	// Last write wins - one active phone contact
	h.Handle(context.Background(), sess, "AP MAD98765432-H")
	assert.Equal(t, "MAD", sess.Current().Contact.City)
	assert.Equal(t, "98765432", sess.Current().Contact.Phone)
}

func TestPhoneContactWithoutType(t *testing.T) {
	repo := newFakePNRRepo()
	h := NewPhoneContactHandler(newTestMirror(repo), testFormatter())
	sess := sessionWithPNR(repo)

	h.Handle(context.Background(), sess, "APBUE12345678")

	require.NotNil(t, sess.Current().Contact)
	assert.Empty(t, sess.Current().Contact.Type)
}

func TestEmailContactSetAndReplace(t *testing.T) {
	repo := newFakePNRRepo()
	h := NewEmailContactHandler(newTestMirror(repo), testFormatter())
	sess := sessionWithPNR(repo)

	resp := h.Handle(context.Background(), sess, "APE-juan@example.com")
	require.NotNil(t, sess.Current().EmailContact)
	assert.Equal(t, "juan@example.com", sess.Current().EmailContact.Address)
	assert.Contains(t, resp, "APE juan@example.com")

	h.Handle(context.Background(), sess, "APE-ana@example.com")
	assert.Equal(t, "ana@example.com", sess.Current().EmailContact.Address)
}

func TestEmailDoesNotMatchPhoneHandler(t *testing.T) {
	phone := NewPhoneContactHandler(nil, nil)
	email := NewEmailContactHandler(nil, nil)

	assert.False(t, phone.CanHandle("APE-juan@example.com"))
	assert.True(t, email.CanHandle("APE-juan@example.com"))
	assert.False(t, email.CanHandle("AP BUE12345678-M"))
}

func TestReceivedFromSetsName(t *testing.T) {
	repo := newFakePNRRepo()
	h := NewReceivedFromHandler(newTestMirror(repo), testFormatter(), testMetrics, testLogger())
	sess := sessionWithPNR(repo)

	resp := h.Handle(context.Background(), sess, "RF GARCIA")

	assert.Equal(t, "GARCIA", sess.Current().ReceivedFrom)
	assert.Contains(t, resp, "RF GARCIA")
}

func TestRemarksAppendByKind(t *testing.T) {
	repo := newFakePNRRepo()
	h := NewRemarkHandler(newTestMirror(repo), testFormatter())
	sess := sessionWithPNR(repo)

	h.Handle(context.Background(), sess, "RM CLIENTE FRECUENTE")
	h.Handle(context.Background(), sess, "RC INTERNAL NOTE  DOUBLE SPACE")
	h.Handle(context.Background(), sess, "RIR CHECK IN 3 HOURS BEFORE")

	pnr := sess.Current()
	require.Len(t, pnr.Remarks, 3)
	assert.Equal(t, entity.RemarkGeneral, pnr.Remarks[0].Kind)
	assert.Equal(t, "CLIENTE FRECUENTE", pnr.Remarks[0].Text)

	// Confidential remarks carry the author; text keeps internal whitespace
	assert.Equal(t, entity.RemarkConfidential, pnr.Remarks[1].Kind)
	assert.Equal(t, "INTERNAL NOTE  DOUBLE SPACE", pnr.Remarks[1].Text)
	assert.Equal(t, "agent1", pnr.Remarks[1].AuthorID)

	assert.Equal(t, entity.RemarkItinerary, pnr.Remarks[2].Kind)
	assert.Empty(t, pnr.Remarks[0].AuthorID)
}
