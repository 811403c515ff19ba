package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexmorbo/build-hipchat-notifier/application/dto"
	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

var testSeed = notification.GlobalConfig{Server: "api.hipchat.com", Token: "seed-token", Room: "seed-room"}

func TestEnsureDefaultsSeedsEmptyStore(t *testing.T) {
	repo := &mockSettingsRepository{}
	uc := NewSettingsUseCase(repo, testSeed, testLogger())

	require.NoError(t, uc.EnsureDefaults(context.Background()))
	require.NotNil(t, repo.cfg)
	assert.Equal(t, testSeed, *repo.cfg)
}

func TestEnsureDefaultsKeepsExisting(t *testing.T) {
	stored := notification.GlobalConfig{Server: "s", Token: "t", Room: "r"}
	repo := &mockSettingsRepository{cfg: &stored}
	uc := NewSettingsUseCase(repo, testSeed, testLogger())

	require.NoError(t, uc.EnsureDefaults(context.Background()))
	assert.Equal(t, 0, repo.saveCalls)
	assert.Equal(t, stored, *repo.cfg)
}

func TestEnsureDefaultsErrors(t *testing.T) {
	t.Run("load fails", func(t *testing.T) {
		uc := NewSettingsUseCase(&mockSettingsRepository{loadErr: errors.New("boom")}, testSeed, testLogger())
		err := uc.EnsureDefaults(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load settings")
	})

	t.Run("save fails", func(t *testing.T) {
		uc := NewSettingsUseCase(&mockSettingsRepository{saveErr: errors.New("boom")}, testSeed, testLogger())
		err := uc.EnsureDefaults(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "seed settings")
	})
}

func TestSettingsLoadFallsBackToSeed(t *testing.T) {
	uc := NewSettingsUseCase(&mockSettingsRepository{}, testSeed, testLogger())

	cfg, err := uc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testSeed, cfg)
}

func TestSettingsGetMasksToken(t *testing.T) {
	uc := NewSettingsUseCase(&mockSettingsRepository{}, testSeed, testLogger())

	out, err := uc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "seed-room", out.Room)
	assert.True(t, out.TokenSet)
	assert.NotContains(t, out.Token, "seed-")
	assert.Equal(t, "oken", out.Token[len(out.Token)-4:])
}

func TestSettingsUpdate(t *testing.T) {
	repo := &mockSettingsRepository{}
	uc := NewSettingsUseCase(repo, testSeed, testLogger())

	out, err := uc.Update(context.Background(), dto.SettingsInput{Room: " ops ", Token: ""})
	require.NoError(t, err)

	require.NotNil(t, repo.cfg)
	assert.Equal(t, notification.GlobalConfig{
		Server: "api.hipchat.com",
		Token:  "seed-token",
		Room:   "ops",
	}, *repo.cfg)
	assert.Equal(t, "ops", out.Room)
	assert.True(t, out.TokenSet)

	_, err = uc.Update(context.Background(), dto.SettingsInput{Server: "chat.internal", Token: "new-token", Room: "ops"})
	require.NoError(t, err)
	assert.Equal(t, "chat.internal", repo.cfg.Server)
	assert.Equal(t, "new-token", repo.cfg.Token)
}

func TestSettingsUpdateSaveFails(t *testing.T) {
	uc := NewSettingsUseCase(&mockSettingsRepository{saveErr: errors.New("boom")}, testSeed, testLogger())

	out, err := uc.Update(context.Background(), dto.SettingsInput{Room: "ops"})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestSettingsUpdateClearToken(t *testing.T) {
	stored := notification.GlobalConfig{Server: "chat.internal", Token: "old-token", Room: "ops"}
	repo := &mockSettingsRepository{cfg: &stored}
	uc := NewSettingsUseCase(repo, testSeed, testLogger())

	out, err := uc.Update(context.Background(), dto.SettingsInput{Room: "ops", ClearToken: true})
	require.NoError(t, err)

	assert.Equal(t, "", repo.cfg.Token)
	assert.Equal(t, "chat.internal", repo.cfg.Server)
	assert.False(t, out.TokenSet)
}

func TestSettingsUpdateEmptyRoomClearsRoom(t *testing.T) {
	stored := notification.GlobalConfig{Server: "chat.internal", Token: "tok", Room: "ops"}
	repo := &mockSettingsRepository{cfg: &stored}
	uc := NewSettingsUseCase(repo, testSeed, testLogger())

	_, err := uc.Update(context.Background(), dto.SettingsInput{})
	require.NoError(t, err)

	assert.Equal(t, "", repo.cfg.Room)
	assert.Equal(t, "tok", repo.cfg.Token)
}
