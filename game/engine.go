package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sanity-io/litter"

	"blackjack/cards"
	"blackjack/events"
)

// GamePhase represents the current phase of a round
type GamePhase string

const (
	PhaseAwaitingBet GamePhase = "awaiting_bet"
	PhaseDealing     GamePhase = "dealing"
	PhasePlayerTurn  GamePhase = "player_turn"
	PhaseDealerTurn  GamePhase = "dealer_turn"
	PhaseSettled     GamePhase = "settled"
)

// Outcome is the machine-readable tag for how a round ended. Formatting it
// into user-facing text is a presentation concern.
type Outcome string

const (
	OutcomeNone            Outcome = ""
	OutcomePlayerBlackjack Outcome = "PlayerBlackjack"
	OutcomeDealerBlackjack Outcome = "DealerBlackjack"
	OutcomePush            Outcome = "Push"
	OutcomePlayerBust      Outcome = "PlayerBust"
	OutcomeDealerBust      Outcome = "DealerBust"
	OutcomePlayerWin       Outcome = "PlayerWin"
	OutcomeDealerWin       Outcome = "DealerWin"
	OutcomeTie             Outcome = "Tie"
)

// dealerStand is the hard-17 stop: the dealer draws below it, never at or
// above it, with no soft-17 special case.
const dealerStand = 17

// RoundEngine drives one blackjack table: it owns the shoe, both hands and
// the ledger, and sequences them through the betting, dealing, turn and
// settlement phases, emitting domain events as it goes.
type RoundEngine struct {
	eventStore    events.EventStore
	eventHandlers []events.EventHandler
	logger        *log.Logger
	rng           *rand.Rand

	roundID    string
	shoe       *cards.Shoe
	player     *cards.Hand
	dealer     *cards.Hand
	ledger     *BankLedger
	betOptions []int
	phase      GamePhase
	outcome    Outcome
	outlook    Outlook
}

// NewRoundEngine creates an engine with a freshly shuffled shoe and the given
// starting bank. betOptions are the fixed bet amounts the table advertises.
func NewRoundEngine(store events.EventStore, startingBank int, betOptions []int, logger *log.Logger, rng *rand.Rand) *RoundEngine {
	shoe := cards.NewShoe()
	shoe.Shuffle(rng)

	return &RoundEngine{
		eventStore: store,
		logger:     logger,
		rng:        rng,
		roundID:    uuid.NewString(),
		shoe:       shoe,
		player:     cards.NewHand(),
		dealer:     cards.NewHand(),
		ledger:     NewBankLedger(startingBank),
		betOptions: betOptions,
		phase:      PhaseAwaitingBet,
	}
}

// AddEventHandler registers a handler notified of every emitted event
func (re *RoundEngine) AddEventHandler(handler events.EventHandler) {
	re.eventHandlers = append(re.eventHandlers, handler)
}

// RoundID returns the identifier of the round in progress
func (re *RoundEngine) RoundID() string {
	return re.roundID
}

// PlaceBet commits a bet, deals the initial hands and resolves any natural
// blackjack. On success the round is either in PlayerTurn or already Settled.
func (re *RoundEngine) PlaceBet(amount int) error {
	if re.phase != PhaseAwaitingBet {
		return fmt.Errorf("%w: cannot place a bet during %s", ErrIllegalTransition, re.phase)
	}

	if err := re.ledger.PlaceBet(amount); err != nil {
		return err
	}

	re.emitEvent(BetPlaced{RoundID: re.roundID, Amount: amount, Bank: re.ledger.Bank})
	re.phase = PhaseDealing
	return re.dealInitialHands()
}

// Hit draws one card for the player. Busting settles the round immediately;
// landing exactly on 21 stands automatically.
func (re *RoundEngine) Hit() error {
	if re.phase != PhasePlayerTurn {
		return fmt.Errorf("%w: cannot hit during %s", ErrIllegalTransition, re.phase)
	}

	if err := re.dealTo(SeatPlayer, false); err != nil {
		return err
	}

	switch points := re.player.Points(); {
	case points > 21:
		re.revealHoleCard()
		re.settle(OutcomePlayerBust, re.ledger.SettleLoss())
		return nil
	case points == 21:
		// Implicit stand
		return re.playDealerTurn()
	default:
		return nil
	}
}

// Stand ends the player's turn
func (re *RoundEngine) Stand() error {
	if re.phase != PhasePlayerTurn {
		return fmt.Errorf("%w: cannot stand during %s", ErrIllegalTransition, re.phase)
	}

	return re.playDealerTurn()
}

// PlayAgain clears a settled round for a new bet: fresh round ID, cleared
// hands, reshuffled shoe. It fails with ErrOutOfFunds once the bank is empty.
func (re *RoundEngine) PlayAgain() error {
	if re.phase != PhaseSettled {
		return fmt.Errorf("%w: cannot reset during %s", ErrIllegalTransition, re.phase)
	}

	if re.ledger.Bank <= 0 {
		return fmt.Errorf("%w: bank is empty, game over", ErrOutOfFunds)
	}

	re.roundID = uuid.NewString()
	re.player.Clear()
	re.dealer.Clear()
	re.shoe.Shuffle(re.rng)
	re.outcome = OutcomeNone
	re.outlook = Outlook{}
	re.phase = PhaseAwaitingBet

	re.emitEvent(RoundReset{RoundID: re.roundID, Bank: re.ledger.Bank})
	return nil
}

// dealInitialHands is the Dealing entry action: two cards each, interleaved
// player-dealer-player-dealer, dealer's first card concealed, then the
// natural-blackjack check.
func (re *RoundEngine) dealInitialHands() error {
	re.player.Clear()
	re.dealer.Clear()

	for i := 0; i < 2; i++ {
		if err := re.dealTo(SeatPlayer, false); err != nil {
			return err
		}
		// The dealer's first card is the hole card.
		if err := re.dealTo(SeatDealer, i == 0); err != nil {
			return err
		}
	}

	playerNatural := re.player.IsBlackjack()
	dealerNatural := re.dealer.IsBlackjack()

	switch {
	case playerNatural && dealerNatural:
		re.revealHoleCard()
		re.settle(OutcomePush, re.ledger.SettlePush())
	case playerNatural:
		re.revealHoleCard()
		re.settle(OutcomePlayerBlackjack, re.ledger.SettleBlackjack())
	case dealerNatural:
		re.revealHoleCard()
		re.settle(OutcomeDealerBlackjack, re.ledger.SettleLoss())
	default:
		re.refreshOutlook()
		re.phase = PhasePlayerTurn
	}

	return nil
}

// playDealerTurn is the DealerTurn entry action: reveal the hole card, draw
// to the hard-17 stop, then compare totals and settle. It runs to completion
// synchronously.
func (re *RoundEngine) playDealerTurn() error {
	re.phase = PhaseDealerTurn
	re.revealHoleCard()

	for re.dealer.Points() < dealerStand {
		if err := re.dealTo(SeatDealer, false); err != nil {
			return err
		}
	}

	playerPoints := re.player.Points()
	dealerPoints := re.dealer.Points()

	switch {
	case playerPoints > 21:
		// Busts are settled in Hit; keep the comparison safe regardless.
		re.settle(OutcomePlayerBust, re.ledger.SettleLoss())
	case dealerPoints > 21:
		re.settle(OutcomeDealerBust, re.ledger.SettleWin())
	case playerPoints > dealerPoints:
		re.settle(OutcomePlayerWin, re.ledger.SettleWin())
	case playerPoints < dealerPoints:
		re.settle(OutcomeDealerWin, re.ledger.SettleLoss())
	default:
		re.settle(OutcomeTie, re.ledger.SettlePush())
	}

	return nil
}

// dealTo draws the next card into a hand. Player cards refresh the outlook;
// dealer draws do not.
func (re *RoundEngine) dealTo(seat Seat, concealed bool) error {
	card, err := re.shoe.Draw()
	if err != nil {
		return fmt.Errorf("dealing to %s: %w", seat, err)
	}

	hand := re.player
	if seat == SeatDealer {
		hand = re.dealer
	}

	hand.Push(card)
	if concealed {
		hand.ToggleConceal(hand.Len()-1, true)
	}

	dealt := CardDealt{RoundID: re.roundID, Seat: seat, Concealed: concealed}
	if !concealed {
		dealt.Value = card.PointValue()
	}
	re.emitEvent(dealt)

	if seat == SeatPlayer {
		re.refreshOutlook()
	}
	return nil
}

// refreshOutlook recomputes the outlook ratios from the undealt remainder.
// The outlook is undefined until both hands hold two cards.
func (re *RoundEngine) refreshOutlook() {
	if re.player.Len() < 2 || re.dealer.Len() < 2 {
		re.outlook = Outlook{}
		return
	}

	hiddenConcealed := re.dealer.Cards[0].Visibility == cards.FaceDown
	re.outlook = ComputeOutlook(
		re.shoe.PeekRemainingValues(),
		re.player.Points(),
		re.dealer.VisiblePoints(),
		re.dealer.Cards[0].PointValue(),
		hiddenConcealed,
	)

	re.emitEvent(OutlookUpdated{RoundID: re.roundID, Outlook: re.outlook})
}

func (re *RoundEngine) revealHoleCard() {
	if re.dealer.Len() == 0 || re.dealer.Cards[0].Visibility != cards.FaceDown {
		return
	}

	re.dealer.ToggleConceal(0, false)
	re.emitEvent(HoleCardRevealed{RoundID: re.roundID, Value: re.dealer.Cards[0].PointValue()})
}

func (re *RoundEngine) settle(outcome Outcome, payout int) {
	re.outcome = outcome
	re.phase = PhaseSettled
	re.emitEvent(RoundSettled{
		RoundID: re.roundID,
		Outcome: outcome,
		Payout:  payout,
		Bank:    re.ledger.Bank,
	})
}

// emitEvent appends the event to the store and notifies registered handlers
func (re *RoundEngine) emitEvent(event events.Event) {
	if err := re.eventStore.Append(event); err != nil {
		re.logger.Error("failed to append event", "event", event.EventName(), "err", err)
	}
	re.logger.Debug("event emitted", "event", event.EventName(), "payload", litter.Sdump(event))

	for _, handler := range re.eventHandlers {
		handler(event)
	}
}
