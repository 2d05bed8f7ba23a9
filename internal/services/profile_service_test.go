package services

import (
	"testing"

	"sahyogjeevan/internal/repositories"
	"sahyogjeevan/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileGet_DefaultWhenMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewProfileService(repositories.NewProfileRepository(db))

	profile, err := svc.Get(12)
	require.NoError(t, err)
	assert.Equal(t, uint(12), profile.UserID)
	assert.Empty(t, profile.Bio)
}

func TestProfileUpsert(t *testing.T) {
	db := newTestDB(t)
	authSvc, _, _ := newAuthService(t, db)
	svc := NewProfileService(repositories.NewProfileRepository(db))

	worker := createWorker(t, authSvc, "+919876543210")

	saved, err := svc.Upsert(worker.ID, &dto.UpsertProfileRequest{
		Bio:      "Electrician with 5 years of experience",
		Skills:   []string{"wiring", "repairs"},
		Location: "Pune",
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	// A second upsert replaces the fields on the same row.
	_, err = svc.Upsert(worker.ID, &dto.UpsertProfileRequest{
		Bio:      "Updated bio",
		Location: "Pune",
	})
	require.NoError(t, err)

	got, err := svc.Get(worker.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated bio", got.Bio)
	assert.Equal(t, saved.ID, got.ID)
}
