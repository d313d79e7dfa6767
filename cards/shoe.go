package cards

import (
	"errors"
	"math/rand"
)

// ErrShoeExhausted is returned by Draw when every card has been dealt. With
// one player and one dealer a 52-card shoe should never run dry in normal
// play, so this is a defensive bound rather than an expected outcome.
var ErrShoeExhausted = errors.New("shoe exhausted")

// Shoe is the ordered source of undealt cards. Cards before the cursor have
// been dealt and are owned by hands; cards at and after the cursor belong
// exclusively to the shoe.
type Shoe struct {
	cards  []Card
	cursor int
}

// NewShoe creates a 52-card shoe in its deterministic pre-shuffle order:
// ranks cycling ace through king within each suit.
func NewShoe() *Shoe {
	cards := make([]Card, 0, 52)
	suits := []Suit{Spades, Hearts, Diamonds, Clubs}
	values := []Value{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

	for _, suit := range suits {
		for _, value := range values {
			cards = append(cards, Card{Suit: suit, Value: value})
		}
	}

	return &Shoe{cards: cards}
}

// NewShoeFrom creates a shoe with an explicit card order.
func NewShoeFrom(cards ...Card) *Shoe {
	return &Shoe{cards: cards}
}

// Shuffle permutes the shoe in place with a Fisher–Yates sweep and resets the
// cursor. It must only be called between rounds, never mid-deal.
func (s *Shoe) Shuffle(r *rand.Rand) {
	for i := range s.cards {
		j := i + r.Intn(len(s.cards)-i)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	s.cursor = 0
}

// Draw deals the card at the cursor and advances it.
func (s *Shoe) Draw() (Card, error) {
	if s.cursor >= len(s.cards) {
		return Card{}, ErrShoeExhausted
	}

	card := s.cards[s.cursor]
	s.cursor++
	return card, nil
}

// RemainingCount returns how many cards are still undealt.
func (s *Shoe) RemainingCount() int {
	return len(s.cards) - s.cursor
}

// PeekRemainingValues returns the point values of the undealt cards in order,
// without advancing the cursor.
func (s *Shoe) PeekRemainingValues() []int {
	values := make([]int, 0, s.RemainingCount())
	for _, card := range s.cards[s.cursor:] {
		values = append(values, card.PointValue())
	}
	return values
}

// Size returns the total number of cards in the shoe, dealt or not.
func (s *Shoe) Size() int {
	return len(s.cards)
}
