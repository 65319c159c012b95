package model

// CoinValue is the project value in dollars credited per coin.
const CoinValue = 10

// Reward is the XP and coin payout attached to an issue.
type Reward struct {
	XP    int
	Coins int
}

// Value returns the dollar value the reward contributes toward the project.
func (r Reward) Value() int {
	return r.Coins * CoinValue
}
