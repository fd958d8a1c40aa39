package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasmzg/characters-api/internal/repo"
)

func newTestCharacterService() *CharacterService {
	return &CharacterService{Repo: repo.NewCharacterRepo()}
}

func strPtr(s string) *string { return &s }

func TestCharacterService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := newTestCharacterService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "Rivia")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, "Geralt", "")
	assert.ErrorIs(t, err, ErrValidation)

	ch, err := svc.Create(ctx, "Geralt", "Rivia")
	require.NoError(t, err)
	assert.NotZero(t, ch.ID)
	assert.Equal(t, "Geralt", ch.Name)
}

func TestCharacterService_Patch_Partial(t *testing.T) {
	t.Parallel()

	svc := newTestCharacterService()
	ctx := context.Background()

	ch, err := svc.Create(ctx, "Geralt", "Rivia")
	require.NoError(t, err)

	updated, err := svc.Patch(ctx, ch.ID, CharacterPatch{Name: strPtr("Gerald")})
	require.NoError(t, err)
	assert.Equal(t, "Gerald", updated.Name)
	assert.Equal(t, "Rivia", updated.LastName)

	_, err = svc.Patch(ctx, 999, CharacterPatch{Name: strPtr("x")})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestCharacterService_Delete(t *testing.T) {
	t.Parallel()

	svc := newTestCharacterService()
	ctx := context.Background()

	ch, err := svc.Create(ctx, "Geralt", "Rivia")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, ch.ID))
	assert.ErrorIs(t, svc.Delete(ctx, ch.ID), repo.ErrNotFound)
	assert.Empty(t, svc.List(ctx))
}
