package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealHandSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		round      int
		numPlayers int
	}{
		{"round 1 two players", 1, 2},
		{"round 5 four players", 5, 4},
		{"round 10 ten players", 10, 10},
		{"full pool", 50, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := Deal(tt.round, tt.numPlayers)
			require.NoError(t, err)
			require.Len(t, hands, tt.numPlayers)
			for _, hand := range hands {
				assert.Len(t, hand, tt.round)
			}
		})
	}
}

func TestDealUniqueAcrossHands(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		hands, err := Deal(8, 5)
		require.NoError(t, err)

		seen := make(map[int]bool)
		for _, hand := range hands {
			for _, v := range hand {
				assert.GreaterOrEqual(t, v, MinCard)
				assert.LessOrEqual(t, v, MaxCard)
				assert.False(t, seen[v], "card %d dealt twice", v)
				seen[v] = true
			}
		}
		assert.Len(t, seen, 40)
	}
}

func TestDealExhausted(t *testing.T) {
	t.Parallel()

	_, err := Deal(11, 10)
	assert.ErrorIs(t, err, ErrExhausted)

	_, err = Deal(51, 2)
	assert.ErrorIs(t, err, ErrExhausted)

	// Exactly 100 cards is still dealable.
	hands, err := Deal(10, 10)
	require.NoError(t, err)
	assert.Len(t, hands, 10)
}

func TestDealRejectsNonPositiveArgs(t *testing.T) {
	t.Parallel()

	_, err := Deal(0, 2)
	assert.Error(t, err)
	_, err = Deal(1, 0)
	assert.Error(t, err)
}
