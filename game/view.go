package game

import "blackjack/cards"

// CardView is one card as the presentation layer may see it: the point value
// of a concealed card is withheld until it is revealed.
type CardView struct {
	Value     int  `json:"value"`
	Concealed bool `json:"concealed"`
}

// RoundView is the full observable state of the round, rebuilt after every
// command. The presentation layer renders it; it never reaches back into the
// engine's internals.
type RoundView struct {
	RoundID      string     `json:"roundId"`
	Phase        GamePhase  `json:"phase"`
	Player       []CardView `json:"player"`
	PlayerPoints int        `json:"playerPoints"`
	Dealer       []CardView `json:"dealer"`
	DealerPoints int        `json:"dealerPoints"`
	Bank         int        `json:"bank"`
	Bet          int        `json:"bet"`
	BetOptions   []int      `json:"betOptions"`
	Outlook      *Outlook   `json:"outlook,omitempty"`
	Outcome      Outcome    `json:"outcome,omitempty"`
}

// View snapshots the current round state. DealerPoints is the visible total
// only, so a concealed hole card stays concealed.
func (re *RoundEngine) View() RoundView {
	view := RoundView{
		RoundID:      re.roundID,
		Phase:        re.phase,
		Player:       handView(re.player),
		PlayerPoints: re.player.Points(),
		Dealer:       handView(re.dealer),
		DealerPoints: re.dealer.VisiblePoints(),
		Bank:         re.ledger.Bank,
		Bet:          re.ledger.CurrentBet,
		Outcome:      re.outcome,
	}

	if re.outlook.Available {
		outlook := re.outlook
		view.Outlook = &outlook
	}

	if re.phase == PhaseAwaitingBet {
		for _, option := range re.betOptions {
			if option <= re.ledger.Bank {
				view.BetOptions = append(view.BetOptions, option)
			}
		}
	}

	return view
}

func handView(hand *cards.Hand) []CardView {
	views := make([]CardView, 0, hand.Len())
	for _, held := range hand.Cards {
		cv := CardView{Concealed: held.Visibility == cards.FaceDown}
		if !cv.Concealed {
			cv.Value = held.PointValue()
		}
		views = append(views, cv)
	}
	return views
}
