package series

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	"TimeTrader/internal/model"
)

// GenParams controls the random walk of a generated series.
type GenParams struct {
	Volatility float64
	Trend      float64
}

// ParamsFor returns the generation parameters tuned for a difficulty:
// easy drifts up gently, hard crashes, legendary churns sideways.
func ParamsFor(d model.Difficulty) GenParams {
	switch d {
	case model.DifficultyEasy:
		return GenParams{Volatility: 0.015, Trend: 0.003}
	case model.DifficultyNormal:
		return GenParams{Volatility: 0.025, Trend: 0.001}
	case model.DifficultyHard:
		return GenParams{Volatility: 0.05, Trend: -0.005}
	case model.DifficultyLegendary:
		return GenParams{Volatility: 0.04, Trend: 0}
	}
	return GenParams{Volatility: 0.02, Trend: 0}
}

// SyntheticProvider generates deterministic mock price series. The random
// walk is seeded from the symbol, so the same scenario always replays the
// same market.
type SyntheticProvider struct {
	BasePrice float64
	Params    map[string]GenParams // per-symbol overrides
}

// NewSyntheticProvider creates a provider with the given per-symbol
// generation parameters.
func NewSyntheticProvider(params map[string]GenParams) *SyntheticProvider {
	return &SyntheticProvider{
		BasePrice: 1000,
		Params:    params,
	}
}

func (p *SyntheticProvider) Name() string { return "synthetic" }

// Fetch generates daily bars for every weekday in [start, end]. Weekends are
// simply absent, like a real exchange calendar.
func (p *SyntheticProvider) Fetch(symbol string, start, end time.Time) ([]model.PriceBar, error) {
	params, ok := p.Params[symbol]
	if !ok {
		params = GenParams{Volatility: 0.02, Trend: 0}
	}

	rng := rand.New(rand.NewSource(seedFor(symbol)))
	bars := []model.PriceBar{}
	prevClose := p.BasePrice

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		change := (rng.Float64()-0.5)*2*params.Volatility + params.Trend
		open := prevClose * (1 + (rng.Float64()-0.5)*0.005)
		closePrice := open * (1 + change)
		high := math.Max(open, closePrice) * (1 + rng.Float64()*0.01)
		low := math.Min(open, closePrice) * (1 - rng.Float64()*0.01)
		volume := int64(1000000 + rng.Float64()*500000)

		bars = append(bars, model.PriceBar{
			Date:   day.Format(model.DateLayout),
			Open:   round2(open),
			High:   round2(high),
			Low:    round2(low),
			Close:  round2(closePrice),
			Volume: volume,
		})
		prevClose = closePrice
	}

	return bars, nil
}

func seedFor(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
