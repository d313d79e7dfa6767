package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardPointValue(t *testing.T) {
	tests := []struct {
		name  string
		input Card
		want  int
	}{
		{"Ace counts as eleven", Card{Suit: Spades, Value: Ace}, 11},
		{"Two", Card{Suit: Hearts, Value: Two}, 2},
		{"Five", Card{Suit: Clubs, Value: Five}, 5},
		{"Nine", Card{Suit: Diamonds, Value: Nine}, 9},
		{"Ten", Card{Suit: Spades, Value: Ten}, 10},
		{"Jack counts as ten", Card{Suit: Hearts, Value: Jack}, 10},
		{"Queen counts as ten", Card{Suit: Diamonds, Value: Queen}, 10},
		{"King counts as ten", Card{Suit: Clubs, Value: King}, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.input.PointValue())
		})
	}
}

func TestCardIsAce(t *testing.T) {
	require.True(t, Card{Suit: Spades, Value: Ace}.IsAce())
	require.False(t, Card{Suit: Spades, Value: King}.IsAce())
}

func TestCardString(t *testing.T) {
	require.Equal(t, "A♠", Card{Suit: Spades, Value: Ace}.String())
	require.Equal(t, "10♥", Card{Suit: Hearts, Value: Ten}.String())
}
