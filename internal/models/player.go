package models

import "time"

// Player identity is the chosen display name, unique within its game only.
type Player struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	GameID   string    `gorm:"size:6;not null;uniqueIndex:idx_game_player" json:"game_id"`
	PlayerID string    `gorm:"size:100;not null;uniqueIndex:idx_game_player" json:"player_id"`
	JoinedAt time.Time `json:"joined_at"`
}
