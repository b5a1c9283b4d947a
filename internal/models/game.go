package models

import "time"

type Game struct {
	GameID       string    `gorm:"primaryKey;size:6" json:"game_id"`
	Status       string    `gorm:"size:20;not null;default:'waiting'" json:"status"`
	CurrentRound int       `gorm:"not null;default:1" json:"current_round"`
	Lives        int       `gorm:"not null;default:3" json:"lives"`
	Won          bool      `gorm:"not null;default:false" json:"won"`
	Players      []Player  `gorm:"foreignKey:GameID;references:GameID;constraint:OnDelete:CASCADE" json:"players,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	GameStatusWaiting  = "waiting"
	GameStatusPlaying  = "playing"
	GameStatusRoundEnd = "roundEnd"
	GameStatusGameOver = "gameOver"
)

const (
	StartingLives = 3
	MaxLives      = 5
	// Life bonus every BonusRoundEvery-th round reached by advancing.
	BonusRoundEvery = 3
	// Winning past MaxRound ends the game with Won set.
	MaxRound   = 10
	MinPlayers = 2
)
