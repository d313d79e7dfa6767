package game

// Outlook holds the live probability estimates computed from the undealt
// remainder of the shoe. Available is false before both hands are dealt and
// once the shoe is empty; the ratios are zero in that case.
type Outlook struct {
	DealerWin    float64 `json:"dealerWin"`
	Player17To21 float64 `json:"player17to21"`
	PlayerBust   float64 `json:"playerBust"`
	Available    bool    `json:"available"`
}

// ComputeOutlook evaluates the three outlook ratios over the remaining card
// values. dealerKnown is the dealer's visible total; while the hole card is
// still concealed, hiddenConcealed is true and hiddenValue carries its point
// value.
//
// The dealer-win ratio is a single-draw lookahead, not a simulation of the
// draw-to-17 policy: each remaining value v is a candidate dealer extension,
// and while the hole card is hidden the pairing of the visible card with the
// hole card counts as one extra candidate in both numerator and denominator.
// The two player ratios divide by the remaining-card count alone.
func ComputeOutlook(remaining []int, playerPoints, dealerKnown, hiddenValue int, hiddenConcealed bool) Outlook {
	if len(remaining) == 0 {
		return Outlook{}
	}

	outlook := Outlook{Available: true}

	favorable, cases := 0, 0
	if hiddenConcealed {
		if total := dealerKnown + hiddenValue; total > playerPoints && total <= 21 {
			favorable++
		}
		cases++
	}
	for _, v := range remaining {
		if total := dealerKnown + v; total > playerPoints && total <= 21 {
			favorable++
		}
		cases++
	}
	outlook.DealerWin = float64(favorable) / float64(cases)

	goodRange, bust := 0, 0
	for _, v := range remaining {
		total := playerPoints + v
		if total >= 17 && total <= 21 {
			goodRange++
		}
		if total > 21 {
			bust++
		}
	}
	outlook.Player17To21 = float64(goodRange) / float64(len(remaining))
	outlook.PlayerBust = float64(bust) / float64(len(remaining))

	return outlook
}
