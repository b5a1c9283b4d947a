package services

import "errors"

// Client-facing failures. Handlers translate these with errors.Is; anything
// else that bubbles out of a service call is a storage fault.
var (
	ErrGameNotFound      = errors.New("game not found")
	ErrInvalidTransition = errors.New("operation not allowed in current game status")
	ErrNameTaken         = errors.New("player name already taken in this game")
	ErrTooFewPlayers     = errors.New("at least 2 players required to start")
	ErrCardNotInHand     = errors.New("card not in player's hand")
)
