package deck

import (
	"errors"
	"math/rand"
)

// Card values run from MinCard to MaxCard inclusive.
const (
	MinCard = 1
	MaxCard = 100
)

// ErrExhausted is returned when a round needs more unique cards than the
// pool holds (round * players > 100).
var ErrExhausted = errors.New("deck exhausted: not enough cards for this round")

// Deal produces numPlayers disjoint hands of roundNumber cards each, drawn
// uniformly without replacement from [MinCard, MaxCard]. No player position
// is favored: a single permutation of the pool is sliced in order.
func Deal(roundNumber, numPlayers int) ([][]int, error) {
	total := roundNumber * numPlayers
	if roundNumber < 1 || numPlayers < 1 {
		return nil, errors.New("round and player count must be positive")
	}
	if total > MaxCard {
		return nil, ErrExhausted
	}

	drawn := rand.Perm(MaxCard)[:total]
	hands := make([][]int, numPlayers)
	for i := range hands {
		hand := make([]int, roundNumber)
		for j := range hand {
			hand[j] = drawn[i*roundNumber+j] + MinCard
		}
		hands[i] = hand
	}
	return hands, nil
}
