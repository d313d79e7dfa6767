package game

// Seat identifies which side of the table a card went to.
type Seat string

const (
	SeatPlayer Seat = "player"
	SeatDealer Seat = "dealer"
)

// BetPlaced represents the event when the round's bet is committed.
type BetPlaced struct {
	RoundID string `json:"roundId"`
	Amount  int    `json:"amount"`
	Bank    int    `json:"bank"`
}

func (e BetPlaced) EventName() string { return "bet-placed" }

// CardDealt represents the event when a card is drawn to a hand. A concealed
// card reports a zero value until HoleCardRevealed.
type CardDealt struct {
	RoundID   string `json:"roundId"`
	Seat      Seat   `json:"seat"`
	Value     int    `json:"value"`
	Concealed bool   `json:"concealed"`
}

func (e CardDealt) EventName() string { return "card-dealt" }

// HoleCardRevealed represents the event when the dealer's hole card turns over.
type HoleCardRevealed struct {
	RoundID string `json:"roundId"`
	Value   int    `json:"value"`
}

func (e HoleCardRevealed) EventName() string { return "hole-card-revealed" }

// OutlookUpdated represents the event when the outlook ratios are recomputed.
type OutlookUpdated struct {
	RoundID string  `json:"roundId"`
	Outlook Outlook `json:"outlook"`
}

func (e OutlookUpdated) EventName() string { return "outlook-updated" }

// RoundSettled represents the event when the round reaches a terminal outcome
// and the ledger is adjusted.
type RoundSettled struct {
	RoundID string  `json:"roundId"`
	Outcome Outcome `json:"outcome"`
	Payout  int     `json:"payout"`
	Bank    int     `json:"bank"`
}

func (e RoundSettled) EventName() string { return "round-settled" }

// RoundReset represents the event when a settled round is cleared for a new
// bet. It carries the new round's ID.
type RoundReset struct {
	RoundID string `json:"roundId"`
	Bank    int    `json:"bank"`
}

func (e RoundReset) EventName() string { return "round-reset" }
