package indicator

import (
	"math"
	"testing"

	"TimeTrader/internal/model"
)

func constSeries(price float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = price
	}
	return out
}

func barsFromCloses(closes []float64) []model.PriceBar {
	bars := make([]model.PriceBar, len(closes))
	for i, c := range closes {
		bars[i] = model.PriceBar{
			Date:   "2023-01-01",
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func TestSMA_ConstantSeries(t *testing.T) {
	prices := constSeries(500, 30)
	sma, err := SMA(prices, 25)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	for i := 0; i < 24; i++ {
		if sma[i] != nil {
			t.Errorf("index %d: expected unavailable before window fills, got %v", i, *sma[i])
		}
	}
	for i := 24; i < 30; i++ {
		if sma[i] == nil {
			t.Fatalf("index %d: expected SMA, got unavailable", i)
		}
		if *sma[i] != 500 {
			t.Errorf("index %d: constant series SMA should be exactly 500, got %v", i, *sma[i])
		}
	}
}

func TestSMA_WindowValues(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	sma, err := SMA(prices, 3)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	want := []float64{2, 3, 4} // windows (1,2,3), (2,3,4), (3,4,5)
	for i, w := range want {
		got := sma[i+2]
		if got == nil {
			t.Fatalf("index %d: expected value", i+2)
		}
		if math.Abs(*got-w) > 1e-9 {
			t.Errorf("index %d: expected %v, got %v", i+2, w, *got)
		}
	}
}

func TestSMA_InvalidPeriod(t *testing.T) {
	if _, err := SMA([]float64{1, 2}, 0); err == nil {
		t.Error("expected error for zero period")
	}
}

func TestEMA_DefinedFromFirstBar(t *testing.T) {
	prices := []float64{10, 20, 30}
	ema, err := EMA(prices, 9)
	if err != nil {
		t.Fatalf("EMA failed: %v", err)
	}
	if ema[0] != 10 {
		t.Errorf("EMA must be seeded by the first value, got %v", ema[0])
	}
	alpha := 2.0 / 10.0
	want := alpha*20 + (1-alpha)*10
	if math.Abs(ema[1]-want) > 1e-9 {
		t.Errorf("EMA[1]: expected %v, got %v", want, ema[1])
	}
}

func TestRSI_ShortSeriesUnavailable(t *testing.T) {
	for _, n := range []int{0, 1, 5, 13, 14} {
		rsi, err := RSI(constSeries(100, n), 14)
		if err != nil {
			t.Fatalf("RSI failed for n=%d: %v", n, err)
		}
		for i, v := range rsi {
			if v != nil {
				t.Errorf("n=%d index %d: expected unavailable, got %v", n, i, *v)
			}
		}
	}
}

func TestRSI_AllGainsClampsTo100(t *testing.T) {
	prices := make([]float64, 20)
	for i := range prices {
		prices[i] = 100 + float64(i)
	}
	rsi, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI failed: %v", err)
	}
	for i := 14; i < len(prices); i++ {
		if rsi[i] == nil {
			t.Fatalf("index %d: expected RSI", i)
		}
		if *rsi[i] != 100 {
			t.Errorf("index %d: zero average loss must yield RSI 100, got %v", i, *rsi[i])
		}
	}
}

func TestRSI_BalancedGainsAndLosses(t *testing.T) {
	// Alternating +1/-1 deltas: any 14-delta window has equal average gain
	// and loss, so RSI is exactly 50.
	prices := make([]float64, 20)
	prices[0] = 100
	for i := 1; i < len(prices); i++ {
		if i%2 == 1 {
			prices[i] = prices[i-1] + 1
		} else {
			prices[i] = prices[i-1] - 1
		}
	}
	rsi, err := RSI(prices, 14)
	if err != nil {
		t.Fatalf("RSI failed: %v", err)
	}
	for i := 14; i < len(prices); i++ {
		if rsi[i] == nil {
			t.Fatalf("index %d: expected RSI", i)
		}
		if math.Abs(*rsi[i]-50) > 1e-9 {
			t.Errorf("index %d: expected RSI 50, got %v", i, *rsi[i])
		}
	}
}

func TestMACD_HistogramConsistency(t *testing.T) {
	prices := []float64{100, 102, 101, 105, 110, 108, 112, 115, 111, 118}
	macd, signal, hist, err := MACD(prices)
	if err != nil {
		t.Fatalf("MACD failed: %v", err)
	}
	for i := range prices {
		if math.Abs(hist[i]-(macd[i]-signal[i])) > 1e-9 {
			t.Errorf("index %d: hist must equal macd-signal", i)
		}
	}
	// Constant series: fast and slow EMA coincide, MACD is zero everywhere.
	macd, _, hist, err = MACD(constSeries(42, 50))
	if err != nil {
		t.Fatalf("MACD failed: %v", err)
	}
	for i := range macd {
		if math.Abs(macd[i]) > 1e-9 || math.Abs(hist[i]) > 1e-9 {
			t.Errorf("index %d: constant series MACD should be 0, got macd=%v hist=%v", i, macd[i], hist[i])
		}
	}
}

func TestBollinger_ConstantSeries(t *testing.T) {
	upper, middle, lower, err := Bollinger(constSeries(250, 25), 20, 2)
	if err != nil {
		t.Fatalf("Bollinger failed: %v", err)
	}
	for i := 0; i < 19; i++ {
		if upper[i] != nil || middle[i] != nil || lower[i] != nil {
			t.Errorf("index %d: expected unavailable before window fills", i)
		}
	}
	for i := 19; i < 25; i++ {
		if upper[i] == nil || middle[i] == nil || lower[i] == nil {
			t.Fatalf("index %d: expected bands", i)
		}
		if *upper[i] != 250 || *middle[i] != 250 || *lower[i] != 250 {
			t.Errorf("index %d: zero-variance series should collapse all bands to 250", i)
		}
	}
}

func TestBollinger_BandOrdering(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 100 + float64(i%7)
	}
	upper, middle, lower, err := Bollinger(prices, 20, 2)
	if err != nil {
		t.Fatalf("Bollinger failed: %v", err)
	}
	for i := 19; i < len(prices); i++ {
		if !(*lower[i] < *middle[i] && *middle[i] < *upper[i]) {
			t.Errorf("index %d: expected lower < middle < upper, got %v %v %v",
				i, *lower[i], *middle[i], *upper[i])
		}
	}
}

func TestEnrich_AvailabilityPattern(t *testing.T) {
	closes := make([]float64, 80)
	for i := range closes {
		closes[i] = 1000 + float64(i)
	}
	out := Enrich(barsFromCloses(closes))
	if len(out) != 80 {
		t.Fatalf("expected 80 bars, got %d", len(out))
	}

	first := out[0]
	if first.MACD == nil || first.MACDSignal == nil || first.MACDHist == nil {
		t.Error("MACD family must be available from the first bar")
	}
	if first.SMA25 != nil || first.SMA75 != nil || first.RSI14 != nil || first.BBMiddle != nil {
		t.Error("windowed indicators must be unavailable on the first bar")
	}

	if out[23].SMA25 != nil || out[24].SMA25 == nil {
		t.Error("SMA25 must become available exactly at index 24")
	}
	if out[73].SMA75 != nil || out[74].SMA75 == nil {
		t.Error("SMA75 must become available exactly at index 74")
	}
	if out[13].RSI14 != nil || out[14].RSI14 == nil {
		t.Error("RSI14 must become available exactly at index 14")
	}
	if out[18].BBMiddle != nil || out[19].BBMiddle == nil {
		t.Error("Bollinger must become available exactly at index 19")
	}
}

func TestEnrich_PureAndEmpty(t *testing.T) {
	bars := barsFromCloses([]float64{100, 101, 102})
	_ = Enrich(bars)
	for i, b := range bars {
		if b.MACD != nil || b.SMA25 != nil {
			t.Errorf("index %d: Enrich must not mutate its input", i)
		}
	}

	if out := Enrich(nil); len(out) != 0 {
		t.Errorf("expected empty output for empty input, got %d bars", len(out))
	}
}
