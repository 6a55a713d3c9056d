package game

import (
	"math"

	"TimeTrader/internal/model"
)

// StartingCash is the cash every playthrough begins with.
const StartingCash = 10000

// NewPlaythrough initializes a run over the given (already enriched) series.
// The series must be non-empty; the caller validates that.
func NewPlaythrough(dungeonID string, bars []model.PriceBar, startingCash float64) *model.Playthrough {
	return &model.Playthrough{
		DungeonID:    dungeonID,
		CurrentDay:   0,
		TotalDays:    len(bars),
		Cash:         startingCash,
		Shares:       0,
		AvgPrice:     0,
		StockData:    bars,
		TradeHistory: []model.TradeRecord{},
	}
}

// Trade executes a buy or sell at the current day's close. Position sizing is
// full-or-nothing: a buy spends all cash (floored to whole shares), a sell
// liquidates the whole position. A buy that cannot afford one share and a
// sell with no shares are silently absorbed; both return nil with the state
// unchanged.
func Trade(p *model.Playthrough, action model.TradeAction) *model.TradeRecord {
	price := p.CurrentBar().Close

	switch action {
	case model.ActionBuy:
		if p.Cash <= 0 {
			return nil
		}
		sharesToBuy := int(math.Floor(p.Cash / price))
		if sharesToBuy == 0 {
			return nil
		}
		cost := float64(sharesToBuy) * price
		p.Cash -= cost
		if p.Shares > 0 {
			totalCost := p.AvgPrice*float64(p.Shares) + cost
			p.Shares += sharesToBuy
			p.AvgPrice = totalCost / float64(p.Shares)
		} else {
			p.Shares = sharesToBuy
			p.AvgPrice = price
		}
		rec := model.TradeRecord{
			Day:    p.CurrentDay,
			Action: model.ActionBuy,
			Price:  price,
			Shares: sharesToBuy,
		}
		p.TradeHistory = append(p.TradeHistory, rec)
		return &rec

	case model.ActionSell:
		if p.Shares <= 0 {
			return nil
		}
		proceeds := float64(p.Shares) * price
		p.Cash += proceeds
		rec := model.TradeRecord{
			Day:    p.CurrentDay,
			Action: model.ActionSell,
			Price:  price,
			Shares: p.Shares,
			Profit: (price - p.AvgPrice) * float64(p.Shares),
		}
		p.TradeHistory = append(p.TradeHistory, rec)
		p.Shares = 0
		p.AvgPrice = 0
		return &rec
	}

	return nil
}

// AdvanceDay moves the day cursor forward and reports whether the run has
// reached the end of the series. A finished run is eligible for settlement;
// settlement is not automatic so the caller can show a final-state screen.
func AdvanceDay(p *model.Playthrough) bool {
	p.CurrentDay++
	return p.Finished()
}

// Settle computes the terminal result of a playthrough. Any open position is
// liquidated at the final bar's close. Rewards scale with the profit
// percentage on a win; a loss still grants half the base XP as consolation
// but zero gold.
func Settle(p *model.Playthrough, dungeon model.Dungeon, startingCash float64) model.PlaythroughOutcome {
	finalClose := p.StockData[len(p.StockData)-1].Close
	finalValue := p.Cash + float64(p.Shares)*finalClose

	profitLoss := finalValue - startingCash
	profitLossPct := profitLoss / startingCash * 100

	var xpEarned, goldEarned int
	if profitLossPct > 0 {
		xpEarned = int(float64(dungeon.XPReward) * (1 + profitLossPct/100))
		goldEarned = int(float64(dungeon.GoldReward) * (1 + profitLossPct/100))
	} else {
		xpEarned = int(float64(dungeon.XPReward) * 0.5)
		goldEarned = 0
	}

	var winningSells, totalSells int
	for _, t := range p.TradeHistory {
		if t.Action == model.ActionSell {
			totalSells++
			if t.Profit > 0 {
				winningSells++
			}
		}
	}

	return model.PlaythroughOutcome{
		DungeonID:     p.DungeonID,
		FinalValue:    finalValue,
		ProfitLoss:    profitLoss,
		ProfitLossPct: profitLossPct,
		XPEarned:      xpEarned,
		GoldEarned:    goldEarned,
		TradeCount:    len(p.TradeHistory),
		WinningSells:  winningSells,
		TotalSells:    totalSells,
	}
}
