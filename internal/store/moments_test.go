package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vetrivel962969-dotcom/CricManager-Pro/internal/model"
)

func TestAddCapturedMoment_NewestFirst(t *testing.T) {
	s := newTestStore()

	first, err := s.AddCapturedMoment(model.CapturedMoment{
		MatchLabel: "Eagles vs Hawks",
		URL:        "data:image/jpeg;base64,aaa",
		Type:       model.MomentImage,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := s.AddCapturedMoment(model.CapturedMoment{
		MatchLabel: "Eagles vs Hawks",
		URL:        "data:video/webm;base64,bbb",
		Type:       model.MomentVideo,
	})
	require.NoError(t, err)

	moments := s.CapturedMoments()
	require.Len(t, moments, 2)
	assert.Equal(t, second.ID, moments[0].ID, "latest capture comes first")
	assert.Equal(t, first.ID, moments[1].ID)
}

func TestAddCapturedMoment_KeepsCallerID(t *testing.T) {
	s := newTestStore()

	moment, err := s.AddCapturedMoment(model.CapturedMoment{ID: "m1", Type: model.MomentImage})
	require.NoError(t, err)
	assert.Equal(t, "m1", moment.ID)
}

func TestDeleteCapturedMoment(t *testing.T) {
	s := newTestStore()
	moment, _ := s.AddCapturedMoment(model.CapturedMoment{Type: model.MomentImage})

	require.NoError(t, s.DeleteCapturedMoment(moment.ID))
	assert.Empty(t, s.CapturedMoments())

	require.ErrorIs(t, s.DeleteCapturedMoment(moment.ID), ErrMomentNotFound)
}
