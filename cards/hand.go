package cards

type CardVisibility string

const (
	FaceDown    CardVisibility = "down" // Hidden from opponents and outlook math
	FaceUpToAll CardVisibility = "all"  // Everyone can see
)

// HeldCard represents a card that's in play with visibility information
type HeldCard struct {
	Card
	Visibility CardVisibility
}

// Hand is an ordered collection of held cards belonging to one participant.
type Hand struct {
	Cards []HeldCard
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{}
}

// Push appends a card to the hand, face up by default.
func (h *Hand) Push(card Card) {
	h.Cards = append(h.Cards, HeldCard{Card: card, Visibility: FaceUpToAll})
}

// ToggleConceal marks or unmarks the card at index as concealed. Out-of-range
// indices are ignored.
func (h *Hand) ToggleConceal(index int, hidden bool) {
	if index < 0 || index >= len(h.Cards) {
		return
	}
	if hidden {
		h.Cards[index].Visibility = FaceDown
	} else {
		h.Cards[index].Visibility = FaceUpToAll
	}
}

// Clear empties the hand and drops any concealment flags with it.
func (h *Hand) Clear() {
	h.Cards = nil
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// Points returns the soft/hard total of the whole hand: aces count as 11
// unless that busts the hand, in which case they are downgraded to 1 one at
// a time.
func (h *Hand) Points() int {
	total, aces := 0, 0
	for _, card := range h.Cards {
		total += card.PointValue()
		if card.IsAce() {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// VisiblePoints returns the soft/hard total of the face-up cards only. This
// is the total an opponent-facing computation is allowed to see before the
// hole card is revealed.
func (h *Hand) VisiblePoints() int {
	total, aces := 0, 0
	for _, card := range h.Cards {
		if card.Visibility == FaceDown {
			continue
		}
		total += card.PointValue()
		if card.IsAce() {
			aces++
		}
	}

	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}

	return total
}

// IsBlackjack checks for a natural: exactly two cards totalling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Points() == 21
}
