package catalog

import (
	"strings"

	"github.com/ericfisherdev/realmseed/internal/domain/model"
)

// rewardTier pays Low up to and including Split and High after it, for
// every issue up to and including Ceiling.
type rewardTier struct {
	Ceiling int
	Split   int
	Low     model.Reward
	High    model.Reward
}

var rewardTiers = []rewardTier{
	{Ceiling: 160, Split: 80, Low: model.Reward{XP: 25, Coins: 10}, High: model.Reward{XP: 50, Coins: 20}},
	{Ceiling: 300, Split: 250, Low: model.Reward{XP: 100, Coins: 40}, High: model.Reward{XP: 200, Coins: 80}},
	{Ceiling: 480, Split: 400, Low: model.Reward{XP: 200, Coins: 80}, High: model.Reward{XP: 300, Coins: 120}},
	{Ceiling: 640, Split: 560, Low: model.Reward{XP: 150, Coins: 60}, High: model.Reward{XP: 250, Coins: 100}},
	{Ceiling: 780, Split: 720, Low: model.Reward{XP: 100, Coins: 50}, High: model.Reward{XP: 150, Coins: 75}},
	{Ceiling: 900, Split: 900, Low: model.Reward{XP: 200, Coins: 100}},
}

var fallbackReward = model.Reward{XP: 150, Coins: 75}

// XPCoins returns the reward for catalog issue n. Asset and model work pays
// half again in coins, script and system work 30% more, truncated.
func XPCoins(n int, taskType string) model.Reward {
	reward := fallbackReward
	for _, t := range rewardTiers {
		if n > t.Ceiling {
			continue
		}
		reward = t.Low
		if n > t.Split {
			reward = t.High
		}
		break
	}

	kind := strings.ToLower(taskType)
	switch {
	case strings.Contains(kind, "model") || strings.Contains(kind, "asset"):
		reward.Coins = reward.Coins * 3 / 2
	case strings.Contains(kind, "script") || strings.Contains(kind, "system"):
		reward.Coins = reward.Coins * 13 / 10
	}
	return reward
}

// FragmentRange names the memory fragments catalog issue n progresses toward.
func FragmentRange(n int) string {
	switch {
	case n <= 160:
		return "Fragments 1-7"
	case n <= 300:
		return "Fragments 8-14"
	case n <= 500:
		return "Fragments 15-21"
	case n <= 700:
		return "Fragments 22-28"
	case n <= 850:
		return "Fragments 29-35"
	default:
		return "Fragments 36-42"
	}
}

// RewardTotals sums the rewards of the given specs.
func RewardTotals(specs []model.IssueSpec) model.Reward {
	var total model.Reward
	for _, s := range specs {
		total.XP += s.Reward.XP
		total.Coins += s.Reward.Coins
	}
	return total
}
