package game

import "fmt"

// BankLedger tracks the available funds and the one outstanding bet. The bet
// is deducted from the bank at placement and held until settlement.
type BankLedger struct {
	Bank       int
	CurrentBet int
}

// NewBankLedger creates a ledger with the given starting bank
func NewBankLedger(bank int) *BankLedger {
	return &BankLedger{Bank: bank}
}

// PlaceBet deducts amount from the bank and holds it as the current bet.
func (l *BankLedger) PlaceBet(amount int) error {
	if l.CurrentBet != 0 {
		return fmt.Errorf("%w: a bet of %d is already outstanding", ErrInvalidBet, l.CurrentBet)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidBet, amount)
	}
	if amount > l.Bank {
		return fmt.Errorf("%w: amount %d exceeds bank %d", ErrInvalidBet, amount, l.Bank)
	}

	l.Bank -= amount
	l.CurrentBet = amount
	return nil
}

// SettleWin pays even money: the stake comes back plus the same again.
// Returns the amount credited.
func (l *BankLedger) SettleWin() int {
	payout := l.CurrentBet * 2
	l.Bank += payout
	l.CurrentBet = 0
	return payout
}

// SettleBlackjack pays 3:2 on top of returning the stake, truncated to an
// integer. Returns the amount credited.
func (l *BankLedger) SettleBlackjack() int {
	payout := l.CurrentBet * 5 / 2
	l.Bank += payout
	l.CurrentBet = 0
	return payout
}

// SettlePush returns the stake. Returns the amount credited.
func (l *BankLedger) SettlePush() int {
	payout := l.CurrentBet
	l.Bank += payout
	l.CurrentBet = 0
	return payout
}

// SettleLoss forfeits the stake, which was already deducted at placement.
func (l *BankLedger) SettleLoss() int {
	l.CurrentBet = 0
	return 0
}
