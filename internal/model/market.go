package model

// DateLayout is the calendar-date format used throughout persisted state.
const DateLayout = "2006-01-02"

// PriceBar represents a single trading day's market data.
// Derived indicator fields are nil until enough preceding bars exist
// to fill the window; nil means "unavailable", never zero.
type PriceBar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`

	SMA25      *float64 `json:"sma_25,omitempty"`
	SMA75      *float64 `json:"sma_75,omitempty"`
	RSI14      *float64 `json:"rsi_14,omitempty"`
	MACD       *float64 `json:"macd,omitempty"`
	MACDSignal *float64 `json:"macd_signal,omitempty"`
	MACDHist   *float64 `json:"macd_hist,omitempty"`
	BBUpper    *float64 `json:"bb_upper,omitempty"`
	BBMiddle   *float64 `json:"bb_middle,omitempty"`
	BBLower    *float64 `json:"bb_lower,omitempty"`
}
