package models

// HandCard is one undealt card in a player's hand for a given round.
// Hands are cleared and rewritten on every deal, redeal and round advance.
type HandCard struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GameID      string `gorm:"size:6;not null;index:idx_hand_game_round" json:"game_id"`
	RoundNumber int    `gorm:"not null;index:idx_hand_game_round" json:"round_number"`
	PlayerID    string `gorm:"size:100;not null" json:"player_id"`
	CardValue   int    `gorm:"not null" json:"card_value"`
}

// PlayedCard records an accepted play. PlayOrder is the 1-based insertion
// order within the round; values are strictly increasing while a round is
// in progress.
type PlayedCard struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	GameID      string `gorm:"size:6;not null;index:idx_played_game_round" json:"game_id"`
	RoundNumber int    `gorm:"not null;index:idx_played_game_round" json:"round_number"`
	PlayerID    string `gorm:"size:100;not null" json:"player_id"`
	CardValue   int    `gorm:"not null" json:"card_value"`
	PlayOrder   int    `gorm:"not null" json:"play_order"`
}
