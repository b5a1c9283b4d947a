package services

import (
	"testing"

	"github.com/pelinsarix/themind/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteGameCascades(t *testing.T) {
	s := newTestService(t)
	gameID := startedGame(t, s, "alice", "bob")

	s.deleteGame(gameID)

	_, err := s.GetGameState(gameID)
	assert.ErrorIs(t, err, ErrGameNotFound)

	var players, hands int64
	require.NoError(t, s.db.Model(&models.Player{}).Where("game_id = ?", gameID).Count(&players).Error)
	require.NoError(t, s.db.Model(&models.HandCard{}).Where("game_id = ?", gameID).Count(&hands).Error)
	assert.Zero(t, players)
	assert.Zero(t, hands)
}
