package indicator

import (
	"errors"
	"math"

	"TimeTrader/internal/model"
)

// Windows used by Enrich. The SMA pair matches the chart overlays the game
// unlocks; MACD and Bollinger use the conventional parameters.
const (
	smaShortPeriod  = 25
	smaLongPeriod   = 75
	rsiPeriod       = 14
	macdFastSpan    = 12
	macdSlowSpan    = 26
	macdSignalSpan  = 9
	bollingerPeriod = 20
	bollingerWidth  = 2.0
)

// SMA computes the per-bar simple moving average over the given period.
// Entries are nil until the window is filled (index < period-1).
func SMA(prices []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]*float64, len(prices))
	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= period {
			sum -= prices[i-period]
		}
		if i >= period-1 {
			out[i] = ref(sum / float64(period))
		}
	}
	return out, nil
}

// EMA computes the per-bar exponential moving average with smoothing factor
// 2/(span+1), seeded by the first value. Unlike SMA there is no warm-up
// period: the EMA is defined from index 0 onward.
func EMA(prices []float64, span int) ([]float64, error) {
	if span <= 0 {
		return nil, errors.New("span must be positive")
	}
	out := make([]float64, len(prices))
	if len(prices) == 0 {
		return out, nil
	}
	alpha := 2.0 / float64(span+1)
	out[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		out[i] = alpha*prices[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

// RSI computes the per-bar relative strength index over a trailing window of
// day-over-day close deltas, gains and losses averaged separately. Entries are
// nil for the first `period` bars. A window with zero average loss yields 100.
func RSI(prices []float64, period int) ([]*float64, error) {
	if period <= 0 {
		return nil, errors.New("period must be positive")
	}
	out := make([]*float64, len(prices))
	for i := period; i < len(prices); i++ {
		var gain, loss float64
		for j := i - period + 1; j <= i; j++ {
			change := prices[j] - prices[j-1]
			if change > 0 {
				gain += change
			} else {
				loss -= change // make positive
			}
		}
		avgGain := gain / float64(period)
		avgLoss := loss / float64(period)
		if avgLoss == 0 {
			out[i] = ref(100.0)
			continue
		}
		rs := avgGain / avgLoss
		out[i] = ref(100.0 - 100.0/(1.0+rs))
	}
	return out, nil
}

// MACD computes the MACD line (EMA12-EMA26), its EMA9 signal line and the
// histogram. All three are defined from index 0, following the EMA seeding.
func MACD(prices []float64) (macd, signal, hist []float64, err error) {
	fast, err := EMA(prices, macdFastSpan)
	if err != nil {
		return nil, nil, nil, err
	}
	slow, err := EMA(prices, macdSlowSpan)
	if err != nil {
		return nil, nil, nil, err
	}
	macd = make([]float64, len(prices))
	for i := range prices {
		macd[i] = fast[i] - slow[i]
	}
	signal, err = EMA(macd, macdSignalSpan)
	if err != nil {
		return nil, nil, nil, err
	}
	hist = make([]float64, len(prices))
	for i := range prices {
		hist[i] = macd[i] - signal[i]
	}
	return macd, signal, hist, nil
}

// Bollinger computes the middle (SMA), upper and lower bands over the given
// period, width standard deviations apart. The standard deviation is the
// population form (divide by N, not N-1), matching the middle band's window.
// Entries are nil until the window is filled.
func Bollinger(prices []float64, period int, width float64) (upper, middle, lower []*float64, err error) {
	middle, err = SMA(prices, period)
	if err != nil {
		return nil, nil, nil, err
	}
	upper = make([]*float64, len(prices))
	lower = make([]*float64, len(prices))
	for i := period - 1; i < len(prices); i++ {
		mean := *middle[i]
		var variance float64
		for j := i - period + 1; j <= i; j++ {
			d := prices[j] - mean
			variance += d * d
		}
		std := math.Sqrt(variance / float64(period))
		upper[i] = ref(mean + width*std)
		lower[i] = ref(mean - width*std)
	}
	return upper, middle, lower, nil
}

// Enrich annotates a price series with all derived indicator fields. The
// input must be ascending by date; gaps (weekends, holidays) are fine. Pure
// and deterministic: the returned slice is a fresh copy, inputs untouched.
func Enrich(bars []model.PriceBar) []model.PriceBar {
	out := make([]model.PriceBar, len(bars))
	copy(out, bars)
	if len(bars) == 0 {
		return out
	}

	closes := extractCloses(bars)

	// The fixed windows above make these errors unreachable.
	smaShort, _ := SMA(closes, smaShortPeriod)
	smaLong, _ := SMA(closes, smaLongPeriod)
	rsi, _ := RSI(closes, rsiPeriod)
	macd, signal, hist, _ := MACD(closes)
	bbUpper, bbMiddle, bbLower, _ := Bollinger(closes, bollingerPeriod, bollingerWidth)

	for i := range out {
		out[i].SMA25 = smaShort[i]
		out[i].SMA75 = smaLong[i]
		out[i].RSI14 = rsi[i]
		out[i].MACD = ref(macd[i])
		out[i].MACDSignal = ref(signal[i])
		out[i].MACDHist = ref(hist[i])
		out[i].BBUpper = bbUpper[i]
		out[i].BBMiddle = bbMiddle[i]
		out[i].BBLower = bbLower[i]
	}
	return out
}

func extractCloses(bars []model.PriceBar) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func ref(v float64) *float64 { return &v }
