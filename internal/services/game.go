package services

import (
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/pelinsarix/themind/internal/cache"
	"github.com/pelinsarix/themind/internal/deck"
	"github.com/pelinsarix/themind/internal/models"
	"github.com/pelinsarix/themind/internal/ws"

	"gorm.io/gorm"
)

// Broadcaster pushes state-change events to a game's subscribers. The
// service calls it while still holding the per-game lock, so every
// connection observes transitions in the order they were produced;
// enqueueing must therefore be non-blocking (the hub's is).
type Broadcaster interface {
	BroadcastToGame(gameID string, message ws.WSMessage)
}

// GameService is the single authority over game state. Every mutating call
// takes the per-game lock, runs its validate-and-mutate sequence in one
// transaction, invalidates the read cache and broadcasts the fresh state
// before releasing the lock. Network I/O never happens under the lock.
type GameService struct {
	db          *gorm.DB
	locks       *KeyedMutex
	cache       *cache.StateCache
	broadcaster Broadcaster
}

func NewGameService(db *gorm.DB, stateCache *cache.StateCache, broadcaster Broadcaster) *GameService {
	return &GameService{db: db, locks: NewKeyedMutex(), cache: stateCache, broadcaster: broadcaster}
}

type GameState struct {
	GameID       string           `json:"game_id"`
	Status       string           `json:"status"`
	CurrentRound int              `json:"current_round"`
	Lives        int              `json:"lives"`
	Won          bool             `json:"won"`
	Players      []string         `json:"players"`
	PlayedCards  []PlayedCardView `json:"played_cards"`
	PlayerHands  map[string][]int `json:"player_hands"`
}

type PlayedCardView struct {
	PlayerID  string `json:"player_id"`
	CardValue int    `json:"card_value"`
}

// Play outcomes. Violations are not errors: the caller gets the outcome and
// the post-transition state with a nil error.
const (
	OutcomeAccepted     = "card_played"
	OutcomeRoundEnd     = "round_end"
	OutcomeRoundRestart = "round_restarted"
	OutcomeGameOver     = "game_over"
	OutcomeGameWon      = "game_won"
	OutcomeRoundAdvance = "round_advanced"
)

const (
	ViolationOrdering  = "ordering"
	ViolationPremature = "premature"
)

type PlayResult struct {
	Outcome   string     `json:"outcome"`
	Violation string     `json:"violation,omitempty"`
	State     *GameState `json:"state"`
}

func (s *GameService) CreateGame(playerName string) (*GameState, error) {
	gameID := s.generateUniqueGameID()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		game := models.Game{
			GameID:       gameID,
			Status:       models.GameStatusWaiting,
			CurrentRound: 1,
			Lives:        models.StartingLives,
		}
		if err := tx.Create(&game).Error; err != nil {
			return err
		}
		creator := models.Player{GameID: gameID, PlayerID: playerName, JoinedAt: time.Now()}
		return tx.Create(&creator).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return s.loadState(s.db, gameID)
}

func (s *GameService) JoinGame(gameID, playerName string) (*GameState, error) {
	s.locks.Lock(gameID)
	defer s.locks.Unlock(gameID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.findGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusWaiting {
			return ErrInvalidTransition
		}

		var taken int64
		if err := tx.Model(&models.Player{}).
			Where("game_id = ? AND player_id = ?", gameID, playerName).
			Count(&taken).Error; err != nil {
			return fmt.Errorf("failed to check player name: %w", err)
		}
		if taken > 0 {
			return ErrNameTaken
		}

		player := models.Player{GameID: gameID, PlayerID: playerName, JoinedAt: time.Now()}
		return tx.Create(&player).Error
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(gameID)
	state, err := s.loadState(s.db, gameID)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastToGame(gameID, ws.WSMessage{Type: "player_joined", Data: state})
	return state, nil
}

func (s *GameService) StartGame(gameID string) (*GameState, error) {
	s.locks.Lock(gameID)
	defer s.locks.Unlock(gameID)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.findGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusWaiting {
			return ErrInvalidTransition
		}

		var playerCount int64
		if err := tx.Model(&models.Player{}).
			Where("game_id = ?", gameID).
			Count(&playerCount).Error; err != nil {
			return fmt.Errorf("failed to count players: %w", err)
		}
		if playerCount < models.MinPlayers {
			return ErrTooFewPlayers
		}

		game.Status = models.GameStatusPlaying
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		return s.dealHands(tx, gameID, game.CurrentRound)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(gameID)
	state, err := s.loadState(s.db, gameID)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastToGame(gameID, ws.WSMessage{Type: "game_started", Data: state})
	return state, nil
}

// PlayCard validates and applies a single play. The checks run in a fixed
// order: card in hand, then ascending order against the table, then hidden
// smaller cards in other hands. A card failing both of the last two is
// always reported as an ordering violation.
func (s *GameService) PlayCard(gameID, playerID string, cardValue int) (*PlayResult, error) {
	s.locks.Lock(gameID)
	defer s.locks.Unlock(gameID)

	result := &PlayResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.findGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusPlaying {
			return ErrInvalidTransition
		}

		var inHand int64
		if err := tx.Model(&models.HandCard{}).
			Where("game_id = ? AND round_number = ? AND player_id = ? AND card_value = ?",
				gameID, game.CurrentRound, playerID, cardValue).
			Count(&inHand).Error; err != nil {
			return fmt.Errorf("failed to check hand: %w", err)
		}
		if inHand == 0 {
			return ErrCardNotInHand
		}

		var lastPlayed sql.NullInt64
		if err := tx.Model(&models.PlayedCard{}).
			Where("game_id = ? AND round_number = ?", gameID, game.CurrentRound).
			Select("MAX(card_value)").
			Scan(&lastPlayed).Error; err != nil {
			return err
		}
		if lastPlayed.Valid && cardValue <= int(lastPlayed.Int64) {
			result.Violation = ViolationOrdering
			return s.applyPenalty(tx, game, result)
		}

		var smallerElsewhere int64
		if err := tx.Model(&models.HandCard{}).
			Where("game_id = ? AND round_number = ? AND player_id <> ? AND card_value < ?",
				gameID, game.CurrentRound, playerID, cardValue).
			Count(&smallerElsewhere).Error; err != nil {
			return fmt.Errorf("failed to check other hands: %w", err)
		}
		if smallerElsewhere > 0 {
			result.Violation = ViolationPremature
			return s.applyPenalty(tx, game, result)
		}

		var playedCount int64
		if err := tx.Model(&models.PlayedCard{}).
			Where("game_id = ? AND round_number = ?", gameID, game.CurrentRound).
			Count(&playedCount).Error; err != nil {
			return fmt.Errorf("failed to count played cards: %w", err)
		}
		play := models.PlayedCard{
			GameID:      gameID,
			RoundNumber: game.CurrentRound,
			PlayerID:    playerID,
			CardValue:   cardValue,
			PlayOrder:   int(playedCount) + 1,
		}
		if err := tx.Create(&play).Error; err != nil {
			return err
		}
		if err := tx.Where("game_id = ? AND round_number = ? AND player_id = ? AND card_value = ?",
			gameID, game.CurrentRound, playerID, cardValue).
			Delete(&models.HandCard{}).Error; err != nil {
			return err
		}

		var remaining int64
		if err := tx.Model(&models.HandCard{}).
			Where("game_id = ? AND round_number = ?", gameID, game.CurrentRound).
			Count(&remaining).Error; err != nil {
			return fmt.Errorf("failed to count remaining cards: %w", err)
		}
		if remaining == 0 {
			game.Status = models.GameStatusRoundEnd
			if err := tx.Save(game).Error; err != nil {
				return err
			}
			result.Outcome = OutcomeRoundEnd
			return nil
		}

		result.Outcome = OutcomeAccepted
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(gameID)
	state, err := s.loadState(s.db, gameID)
	if err != nil {
		return nil, err
	}
	result.State = state
	s.broadcaster.BroadcastToGame(gameID, ws.WSMessage{Type: result.Outcome, Data: result})
	return result, nil
}

// applyPenalty handles both violation kinds: one life down, then either
// terminal gameOver (the offending play is discarded, nothing is restarted)
// or a redeal of the same round.
func (s *GameService) applyPenalty(tx *gorm.DB, game *models.Game, result *PlayResult) error {
	game.Lives--
	if game.Lives <= 0 {
		game.Lives = 0
		game.Status = models.GameStatusGameOver
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		result.Outcome = OutcomeGameOver
		return nil
	}

	if err := tx.Save(game).Error; err != nil {
		return err
	}
	if err := s.redealRound(tx, game.GameID, game.CurrentRound); err != nil {
		return err
	}
	result.Outcome = OutcomeRoundRestart
	return nil
}

func (s *GameService) AdvanceRound(gameID string) (*PlayResult, error) {
	s.locks.Lock(gameID)
	defer s.locks.Unlock(gameID)

	result := &PlayResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		game, err := s.findGame(tx, gameID)
		if err != nil {
			return err
		}
		if game.Status != models.GameStatusRoundEnd {
			return ErrInvalidTransition
		}

		newRound := game.CurrentRound + 1
		if newRound > models.MaxRound {
			game.Status = models.GameStatusGameOver
			game.Won = true
			if err := tx.Save(game).Error; err != nil {
				return err
			}
			result.Outcome = OutcomeGameWon
			return nil
		}

		game.CurrentRound = newRound
		game.Status = models.GameStatusPlaying
		if newRound%models.BonusRoundEvery == 0 && game.Lives < models.MaxLives {
			game.Lives++
		}
		if err := tx.Save(game).Error; err != nil {
			return err
		}
		if err := s.dealHands(tx, gameID, newRound); err != nil {
			return err
		}
		result.Outcome = OutcomeRoundAdvance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(gameID)
	state, err := s.loadState(s.db, gameID)
	if err != nil {
		return nil, err
	}
	result.State = state
	s.broadcaster.BroadcastToGame(gameID, ws.WSMessage{Type: result.Outcome, Data: result})
	return result, nil
}

// GetGameState serves read-only queries, optionally from the bounded-
// staleness cache. Play decisions never come through here.
func (s *GameService) GetGameState(gameID string) (*GameState, error) {
	if cached, ok := s.cache.Get(gameID); ok {
		if state, ok := cached.(*GameState); ok {
			return state, nil
		}
	}

	state, err := s.loadState(s.db, gameID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(gameID, state)
	return state, nil
}

// GameExists reports whether a game id is known, without touching hands or
// plays. Used by the websocket handshake.
func (s *GameService) GameExists(gameID string) bool {
	var count int64
	s.db.Model(&models.Game{}).Where("game_id = ?", gameID).Count(&count)
	return count > 0
}

func (s *GameService) findGame(tx *gorm.DB, gameID string) (*models.Game, error) {
	var game models.Game
	if err := tx.First(&game, "game_id = ?", gameID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return &game, nil
}

func (s *GameService) dealHands(tx *gorm.DB, gameID string, roundNumber int) error {
	var players []models.Player
	if err := tx.Where("game_id = ?", gameID).
		Order("joined_at ASC, id ASC").
		Find(&players).Error; err != nil {
		return err
	}

	hands, err := deck.Deal(roundNumber, len(players))
	if err != nil {
		return err
	}

	cards := make([]models.HandCard, 0, roundNumber*len(players))
	for i, player := range players {
		for _, value := range hands[i] {
			cards = append(cards, models.HandCard{
				GameID:      gameID,
				RoundNumber: roundNumber,
				PlayerID:    player.PlayerID,
				CardValue:   value,
			})
		}
	}
	return tx.Create(&cards).Error
}

func (s *GameService) redealRound(tx *gorm.DB, gameID string, roundNumber int) error {
	if err := tx.Where("game_id = ? AND round_number = ?", gameID, roundNumber).
		Delete(&models.PlayedCard{}).Error; err != nil {
		return err
	}
	if err := tx.Where("game_id = ? AND round_number = ?", gameID, roundNumber).
		Delete(&models.HandCard{}).Error; err != nil {
		return err
	}
	return s.dealHands(tx, gameID, roundNumber)
}

func (s *GameService) loadState(db *gorm.DB, gameID string) (*GameState, error) {
	game, err := s.findGame(db, gameID)
	if err != nil {
		return nil, err
	}

	var players []models.Player
	if err := db.Where("game_id = ?", gameID).
		Order("joined_at ASC, id ASC").
		Find(&players).Error; err != nil {
		return nil, err
	}

	var played []models.PlayedCard
	if err := db.Where("game_id = ? AND round_number = ?", gameID, game.CurrentRound).
		Order("play_order ASC").
		Find(&played).Error; err != nil {
		return nil, err
	}

	state := &GameState{
		GameID:       game.GameID,
		Status:       game.Status,
		CurrentRound: game.CurrentRound,
		Lives:        game.Lives,
		Won:          game.Won,
		Players:      make([]string, 0, len(players)),
		PlayedCards:  make([]PlayedCardView, 0, len(played)),
		PlayerHands:  make(map[string][]int, len(players)),
	}

	for _, p := range players {
		state.Players = append(state.Players, p.PlayerID)
		state.PlayerHands[p.PlayerID] = []int{}
	}
	for _, pc := range played {
		state.PlayedCards = append(state.PlayedCards, PlayedCardView{
			PlayerID:  pc.PlayerID,
			CardValue: pc.CardValue,
		})
	}

	var hands []models.HandCard
	if err := db.Where("game_id = ? AND round_number = ?", gameID, game.CurrentRound).
		Order("card_value ASC").
		Find(&hands).Error; err != nil {
		return nil, err
	}
	for _, hc := range hands {
		state.PlayerHands[hc.PlayerID] = append(state.PlayerHands[hc.PlayerID], hc.CardValue)
	}

	return state, nil
}

const gameIDCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func (s *GameService) generateUniqueGameID() string {
	for {
		id := make([]byte, 6)
		for i := range id {
			id[i] = gameIDCharset[rand.Intn(len(gameIDCharset))]
		}
		var count int64
		err := s.db.Model(&models.Game{}).Where("game_id = ?", string(id)).Count(&count).Error
		// A failed lookup does not retry: the primary key on game_id still
		// rejects a collision at insert time, and CreateGame surfaces that.
		if err != nil || count == 0 {
			return string(id)
		}
	}
}
