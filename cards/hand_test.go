package cards

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func card(v Value) Card {
	return Card{Suit: Spades, Value: v}
}

func TestHandPoints(t *testing.T) {
	tests := []struct {
		name  string
		cards []Value
		want  int
	}{
		{"empty hand", nil, 0},
		{"simple total", []Value{Ten, Seven}, 17},
		{"soft seventeen", []Value{Ace, Six}, 17},
		{"ace downgraded once", []Value{Ace, Six, Ten}, 17},
		{"two aces", []Value{Ace, Ace}, 12},
		{"two aces with nine", []Value{Ace, Ace, Nine}, 21},
		{"all four aces", []Value{Ace, Ace, Ace, Ace}, 14},
		{"natural", []Value{Ace, King}, 21},
		{"bust", []Value{Ten, Nine, Five}, 24},
		{"ace keeps eleven below bust", []Value{Ace, Five}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hand := NewHand()
			for _, v := range tt.cards {
				hand.Push(card(v))
			}
			require.Equal(t, tt.want, hand.Points())
		})
	}
}

func TestHandIsBlackjack(t *testing.T) {
	natural := NewHand()
	natural.Push(card(Ace))
	natural.Push(card(Queen))
	require.True(t, natural.IsBlackjack())

	threeCard := NewHand()
	threeCard.Push(card(Seven))
	threeCard.Push(card(Seven))
	threeCard.Push(card(Seven))
	require.Equal(t, 21, threeCard.Points())
	require.False(t, threeCard.IsBlackjack(), "21 with three cards is not a natural")

	twoCard := NewHand()
	twoCard.Push(card(Ten))
	twoCard.Push(card(Nine))
	require.False(t, twoCard.IsBlackjack())
}

func TestHandVisiblePoints(t *testing.T) {
	hand := NewHand()
	hand.Push(card(Six))
	hand.Push(card(Ten))
	hand.ToggleConceal(0, true)

	require.Equal(t, 16, hand.Points())
	require.Equal(t, 10, hand.VisiblePoints())

	hand.ToggleConceal(0, false)
	require.Equal(t, 16, hand.VisiblePoints())
}

func TestHandVisiblePointsSoftTotal(t *testing.T) {
	// A concealed ten leaves a soft ace total on the visible side.
	hand := NewHand()
	hand.Push(card(Ten))
	hand.Push(card(Ace))
	hand.ToggleConceal(0, true)

	require.Equal(t, 21, hand.Points())
	require.Equal(t, 11, hand.VisiblePoints())
}

func TestHandClear(t *testing.T) {
	hand := NewHand()
	hand.Push(card(Six))
	hand.Push(card(Ten))
	hand.ToggleConceal(0, true)

	hand.Clear()
	require.Equal(t, 0, hand.Len())
	require.Equal(t, 0, hand.Points())

	// A fresh push after Clear comes in face up.
	hand.Push(card(Nine))
	require.Equal(t, FaceUpToAll, hand.Cards[0].Visibility)
}

func TestToggleConcealOutOfRange(t *testing.T) {
	hand := NewHand()
	hand.Push(card(Six))

	hand.ToggleConceal(-1, true)
	hand.ToggleConceal(5, true)
	require.Equal(t, FaceUpToAll, hand.Cards[0].Visibility)
}
