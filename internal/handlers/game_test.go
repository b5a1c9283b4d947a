package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pelinsarix/themind/internal/cache"
	"github.com/pelinsarix/themind/internal/models"
	"github.com/pelinsarix/themind/internal/services"
	"github.com/pelinsarix/themind/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Game{}, &models.Player{}, &models.HandCard{}, &models.PlayedCard{},
	))

	hub := ws.NewHub()
	gameService := services.NewGameService(db, cache.New(time.Second), hub)
	gameHandler := NewGameHandler(gameService)
	wsHandler := NewWSHandler(gameService, hub)

	r := gin.New()
	r.GET("/ws/:game_id", wsHandler.HandleWebSocket)
	r.POST("/create_game", gameHandler.CreateGame)
	r.POST("/join_game", gameHandler.JoinGame)
	r.POST("/start_game", gameHandler.StartGame)
	r.POST("/play_card", gameHandler.PlayCard)
	r.POST("/next_round", gameHandler.NextRound)
	r.GET("/game_status/:game_id", gameHandler.GameStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeState(t *testing.T, w *httptest.ResponseRecorder) services.GameState {
	t.Helper()
	var state services.GameState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}

func TestGameFlowOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create_game", gin.H{"player_name": "alice"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	created := decodeState(t, w)
	gameID := created.GameID
	require.Len(t, gameID, 6)
	assert.Equal(t, models.GameStatusWaiting, created.Status)

	w = doJSON(t, r, http.MethodPost, "/join_game", gin.H{"game_id": gameID, "player_name": "bob"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"alice", "bob"}, decodeState(t, w).Players)

	w = doJSON(t, r, http.MethodPost, "/start_game", gin.H{"game_id": gameID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	started := decodeState(t, w)
	assert.Equal(t, models.GameStatusPlaying, started.Status)
	require.Len(t, started.PlayerHands["alice"], 1)
	require.Len(t, started.PlayerHands["bob"], 1)

	// Play in the correct order: lowest card first.
	first, second := "alice", "bob"
	if started.PlayerHands["bob"][0] < started.PlayerHands["alice"][0] {
		first, second = "bob", "alice"
	}

	w = doJSON(t, r, http.MethodPost, "/play_card", gin.H{
		"game_id": gameID, "player_id": first, "card_value": started.PlayerHands[first][0],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result services.PlayResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, services.OutcomeAccepted, result.Outcome)

	w = doJSON(t, r, http.MethodPost, "/play_card", gin.H{
		"game_id": gameID, "player_id": second, "card_value": started.PlayerHands[second][0],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, services.OutcomeRoundEnd, result.Outcome)
	assert.Equal(t, models.GameStatusRoundEnd, result.State.Status)

	w = doJSON(t, r, http.MethodPost, "/next_round", gin.H{"game_id": gameID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, services.OutcomeRoundAdvance, result.Outcome)
	assert.Equal(t, 2, result.State.CurrentRound)

	w = doJSON(t, r, http.MethodGet, "/game_status/"+gameID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, decodeState(t, w).CurrentRound)
}

func TestErrorStatusCodes(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create_game", gin.H{"player_name": "alice"})
	require.Equal(t, http.StatusOK, w.Code)
	gameID := decodeState(t, w).GameID

	tests := []struct {
		name     string
		method   string
		path     string
		body     any
		wantCode int
	}{
		{"missing body field", http.MethodPost, "/create_game", gin.H{}, http.StatusBadRequest},
		{"join unknown game", http.MethodPost, "/join_game", gin.H{"game_id": "ZZZZZZ", "player_name": "bob"}, http.StatusNotFound},
		{"duplicate name", http.MethodPost, "/join_game", gin.H{"game_id": gameID, "player_name": "alice"}, http.StatusConflict},
		{"too few players", http.MethodPost, "/start_game", gin.H{"game_id": gameID}, http.StatusBadRequest},
		{"play while waiting", http.MethodPost, "/play_card", gin.H{"game_id": gameID, "player_id": "alice", "card_value": 10}, http.StatusConflict},
		{"advance while waiting", http.MethodPost, "/next_round", gin.H{"game_id": gameID}, http.StatusConflict},
		{"status unknown game", http.MethodGet, "/game_status/ZZZZZZ", nil, http.StatusNotFound},
		{"ws unknown game", http.MethodGet, "/ws/ZZZZZZ", nil, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestCardNotInHandIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/create_game", gin.H{"player_name": "alice"})
	gameID := decodeState(t, w).GameID
	doJSON(t, r, http.MethodPost, "/join_game", gin.H{"game_id": gameID, "player_name": "bob"})
	w = doJSON(t, r, http.MethodPost, "/start_game", gin.H{"game_id": gameID})
	started := decodeState(t, w)

	// A 1..100 value that nobody holds.
	held := map[int]bool{}
	for _, hand := range started.PlayerHands {
		for _, v := range hand {
			held[v] = true
		}
	}
	missing := 0
	for v := 1; v <= 100; v++ {
		if !held[v] {
			missing = v
			break
		}
	}

	w = doJSON(t, r, http.MethodPost, "/play_card", gin.H{
		"game_id": gameID, "player_id": "alice", "card_value": missing,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}
