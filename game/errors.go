package game

import (
	"errors"

	"blackjack/cards"
)

// Typed failures surfaced at the controller boundary. Every one of them
// leaves the round state untouched; callers match them with errors.Is.
var (
	// ErrInvalidBet rejects a non-positive amount, an amount exceeding the
	// bank, or a bet placed while one is already outstanding.
	ErrInvalidBet = errors.New("invalid bet")

	// ErrShoeExhausted mirrors the shoe's defensive draw bound.
	ErrShoeExhausted = cards.ErrShoeExhausted

	// ErrOutOfFunds ends the session: a new round needs a positive bank.
	ErrOutOfFunds = errors.New("out of funds")

	// ErrIllegalTransition rejects a command the current phase does not permit.
	ErrIllegalTransition = errors.New("illegal transition")
)
