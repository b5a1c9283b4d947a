package handlers

import (
	"net/http"

	"github.com/pelinsarix/themind/internal/services"

	"github.com/gin-gonic/gin"
)

// GameHandler translates HTTP requests into service calls. Fan-out to
// websocket subscribers happens inside the service, under the game lock.
type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

type CreateGameRequest struct {
	PlayerName string `json:"player_name" binding:"required,min=1,max=100"`
}

type JoinGameRequest struct {
	GameID     string `json:"game_id" binding:"required,len=6"`
	PlayerName string `json:"player_name" binding:"required,min=1,max=100"`
}

type StartGameRequest struct {
	GameID string `json:"game_id" binding:"required,len=6"`
}

type PlayCardRequest struct {
	GameID    string `json:"game_id" binding:"required,len=6"`
	PlayerID  string `json:"player_id" binding:"required,min=1,max=100"`
	CardValue int    `json:"card_value" binding:"required,min=1,max=100"`
}

type NextRoundRequest struct {
	GameID string `json:"game_id" binding:"required,len=6"`
}

// CreateGame godoc
// @Summary      Create a new game
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body CreateGameRequest true "Creator's display name"
// @Success      200 {object} services.GameState
// @Failure      400 {object} ErrorResponse
// @Router       /create_game [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.gameService.CreateGame(req.PlayerName)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// JoinGame godoc
// @Summary      Join a waiting game
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body JoinGameRequest true "Game id and display name"
// @Success      200 {object} services.GameState
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /join_game [post]
func (h *GameHandler) JoinGame(c *gin.Context) {
	var req JoinGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.gameService.JoinGame(req.GameID, req.PlayerName)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// StartGame godoc
// @Summary      Start the game and deal round 1
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body StartGameRequest true "Game id"
// @Success      200 {object} services.GameState
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /start_game [post]
func (h *GameHandler) StartGame(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.gameService.StartGame(req.GameID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}

// PlayCard godoc
// @Summary      Play a card from a hand
// @Description  Ordering and premature-play violations are not errors: the
// @Description  response is 200 with the penalty outcome and the new state.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body PlayCardRequest true "Game id, player id and card value"
// @Success      200 {object} services.PlayResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /play_card [post]
func (h *GameHandler) PlayCard(c *gin.Context) {
	var req PlayCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.gameService.PlayCard(req.GameID, req.PlayerID, req.CardValue)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// NextRound godoc
// @Summary      Advance to the next round
// @Description  Advancing past round 10 ends the game as won.
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body NextRoundRequest true "Game id"
// @Success      200 {object} services.PlayResult
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /next_round [post]
func (h *GameHandler) NextRound(c *gin.Context) {
	var req NextRoundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.gameService.AdvanceRound(req.GameID)
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GameStatus godoc
// @Summary      Read-only game state
// @Tags         game
// @Produce      json
// @Param        game_id path string true "Game ID"
// @Success      200 {object} services.GameState
// @Failure      404 {object} ErrorResponse
// @Router       /game_status/{game_id} [get]
func (h *GameHandler) GameStatus(c *gin.Context) {
	state, err := h.gameService.GetGameState(c.Param("game_id"))
	if err != nil {
		c.JSON(statusForError(err), ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, state)
}
