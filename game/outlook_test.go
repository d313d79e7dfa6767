package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeOutlookEmptyRemainder(t *testing.T) {
	outlook := ComputeOutlook(nil, 18, 10, 6, true)
	require.False(t, outlook.Available)
	require.Zero(t, outlook.DealerWin)
	require.Zero(t, outlook.Player17To21)
	require.Zero(t, outlook.PlayerBust)
}

func TestComputeOutlookWithHiddenCard(t *testing.T) {
	// Player 18, dealer shows 10 with a concealed 6.
	// Dealer win: baseline 10+6=16 misses; 10+2=12 misses; 10+10=20 lands,
	// twice. 2 favorable of 4 cases (3 cards + the baseline).
	// Player 17-21: only 18+2=20 lands, of 3 remaining cards.
	// Player bust: the two tens, of 3 remaining cards.
	outlook := ComputeOutlook([]int{2, 10, 10}, 18, 10, 6, true)

	require.True(t, outlook.Available)
	require.InDelta(t, 2.0/4.0, outlook.DealerWin, 1e-9)
	require.InDelta(t, 1.0/3.0, outlook.Player17To21, 1e-9)
	require.InDelta(t, 2.0/3.0, outlook.PlayerBust, 1e-9)
}

func TestComputeOutlookAfterReveal(t *testing.T) {
	// No baseline case once the hole card is face up: the denominator is the
	// remaining-card count for all three ratios.
	outlook := ComputeOutlook([]int{3}, 14, 17, 0, false)

	require.True(t, outlook.Available)
	require.InDelta(t, 1.0, outlook.DealerWin, 1e-9, "17+3=20 beats 14 without busting")
	require.InDelta(t, 1.0, outlook.Player17To21, 1e-9, "14+3=17")
	require.Zero(t, outlook.PlayerBust)
}

func TestComputeOutlookDealerBustNotFavorable(t *testing.T) {
	// A dealer extension past 21 never counts as a dealer win.
	outlook := ComputeOutlook([]int{10, 11}, 12, 15, 10, true)

	// Baseline 25 busts, 15+10=25 busts, 15+11=26 busts.
	require.Zero(t, outlook.DealerWin)
}

func TestComputeOutlookRatiosBounded(t *testing.T) {
	remaining := []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10, 11}
	for player := 4; player <= 21; player++ {
		for visible := 2; visible <= 11; visible++ {
			outlook := ComputeOutlook(remaining, player, visible, 10, true)
			require.GreaterOrEqual(t, outlook.DealerWin, 0.0)
			require.LessOrEqual(t, outlook.DealerWin, 1.0)
			require.GreaterOrEqual(t, outlook.Player17To21, 0.0)
			require.LessOrEqual(t, outlook.Player17To21, 1.0)
			require.GreaterOrEqual(t, outlook.PlayerBust, 0.0)
			require.LessOrEqual(t, outlook.PlayerBust, 1.0)
		}
	}
}
