package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlaceBet(t *testing.T) {
	tests := []struct {
		name    string
		bank    int
		held    int
		amount  int
		wantErr bool
	}{
		{"valid bet", 1000, 0, 100, false},
		{"whole bank", 1000, 0, 1000, false},
		{"zero amount", 1000, 0, 0, true},
		{"negative amount", 1000, 0, -50, true},
		{"exceeds bank", 1000, 0, 1001, true},
		{"bet already outstanding", 1000, 100, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := &BankLedger{Bank: tt.bank, CurrentBet: tt.held}
			err := ledger.PlaceBet(tt.amount)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBet)
				require.Equal(t, tt.bank, ledger.Bank, "bank must be untouched on rejection")
				require.Equal(t, tt.held, ledger.CurrentBet)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.bank-tt.amount, ledger.Bank)
			require.Equal(t, tt.amount, ledger.CurrentBet)
		})
	}
}

func TestSettleWin(t *testing.T) {
	ledger := &BankLedger{Bank: 900, CurrentBet: 100}
	require.Equal(t, 200, ledger.SettleWin())
	require.Equal(t, 1100, ledger.Bank)
	require.Equal(t, 0, ledger.CurrentBet)
}

func TestSettleBlackjack(t *testing.T) {
	ledger := &BankLedger{Bank: 900, CurrentBet: 100}
	require.Equal(t, 250, ledger.SettleBlackjack())
	require.Equal(t, 1150, ledger.Bank)
	require.Equal(t, 0, ledger.CurrentBet)
}

func TestSettleBlackjackTruncates(t *testing.T) {
	// 15 * 2.5 = 37.5 pays 37.
	ledger := &BankLedger{Bank: 0, CurrentBet: 15}
	require.Equal(t, 37, ledger.SettleBlackjack())
	require.Equal(t, 37, ledger.Bank)
}

func TestSettlePush(t *testing.T) {
	ledger := &BankLedger{Bank: 900, CurrentBet: 100}
	require.Equal(t, 100, ledger.SettlePush())
	require.Equal(t, 1000, ledger.Bank)
	require.Equal(t, 0, ledger.CurrentBet)
}

func TestSettleLoss(t *testing.T) {
	ledger := &BankLedger{Bank: 900, CurrentBet: 100}
	require.Equal(t, 0, ledger.SettleLoss())
	require.Equal(t, 900, ledger.Bank)
	require.Equal(t, 0, ledger.CurrentBet)
}
