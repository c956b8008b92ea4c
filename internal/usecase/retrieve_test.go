package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/Facundo-Villafane/amadeus-trainer-utn-sub001/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetrieveNoMatchLeavesSessionUntouched(t *testing.T) {
	repo := &fakePNRRepo{}
	h := NewRetrieveHandler(repo, testFormatter(), testLogger())
	sess := newTestSession()
	current := &entity.PNR{RecordLocator: "TEMP0001"}
	sess.SetCurrent(current)

	out := h.Handle(context.Background(), sess, "RTZZZ999")

	assert.Equal(t, "NO MATCH FOR RECORD LOCATOR ZZZ999", out)
	assert.Same(t, current, sess.Current())
}

func TestRetrieveRepoErrorDoesNotReplaceSession(t *testing.T) {
	repo := &fakePNRRepo{findErr: errors.New("mongo down")}
	h := NewRetrieveHandler(repo, testFormatter(), testLogger())
	sess := newTestSession()

	out := h.Handle(context.Background(), sess, "RTABC123")

	assert.Equal(t, "SYSTEM ERROR - TRY AGAIN", out)
	assert.Nil(t, sess.Current())
}

func TestRetrieveSetsCurrentAndDisplays(t *testing.T) {
	stored := &entity.PNR{
		ID:            "id-1",
		RecordLocator: "ABC123",
		OfficeID:      "UTN5168",
		Status:        entity.PNRStatusConfirmed,
		Passengers: []entity.Passenger{
			{LastName: "GARCIA", FirstName: "JUAN", Type: entity.PaxTypeAdult},
		},
	}
	repo := &fakePNRRepo{stored: map[string]*entity.PNR{"ABC123": stored}}
	h := NewRetrieveHandler(repo, testFormatter(), testLogger())
	sess := newTestSession()

	out := h.Handle(context.Background(), sess, "rtabc123")

	require.NotNil(t, sess.Current())
	assert.Equal(t, "ABC123", sess.Current().RecordLocator)
	assert.Equal(t, "id-1", sess.Current().ID)
	assert.Contains(t, out, "1.GARCIA/JUAN")
}

func TestRetrieveRejectsShortLocator(t *testing.T) {
	h := NewRetrieveHandler(&fakePNRRepo{}, testFormatter(), testLogger())
	assert.False(t, h.CanHandle("RTABC"))
	assert.False(t, h.CanHandle("RT"))
	assert.True(t, h.CanHandle("RTABC123"))
}
