package model

// TradeAction is a discrete trading decision inside a playthrough.
type TradeAction string

const (
	ActionBuy  TradeAction = "buy"
	ActionSell TradeAction = "sell"
)

// TradeRecord is an immutable log entry for one executed trade.
// Profit is only meaningful on sell records.
type TradeRecord struct {
	Day    int         `json:"day"`
	Action TradeAction `json:"action"`
	Price  float64     `json:"price"`
	Shares int         `json:"shares"`
	Profit float64     `json:"profit,omitempty"`
}

// Playthrough is one in-progress attempt at a dungeon. At most one exists
// per session; it is created on dungeon entry and cleared at settlement.
type Playthrough struct {
	DungeonID    string        `json:"dungeon_id"`
	CurrentDay   int           `json:"current_day"`
	TotalDays    int           `json:"total_days"`
	Cash         float64       `json:"cash"`
	Shares       int           `json:"shares"`
	AvgPrice     float64       `json:"avg_price"`
	StockData    []PriceBar    `json:"stock_data"`
	TradeHistory []TradeRecord `json:"trade_history"`
}

// CurrentBar returns the bar the day cursor points at.
func (p *Playthrough) CurrentBar() PriceBar {
	return p.StockData[p.CurrentDay]
}

// Finished reports whether the day cursor has run past the series,
// making the playthrough eligible for settlement.
func (p *Playthrough) Finished() bool {
	return p.CurrentDay >= p.TotalDays
}

// PlaythroughOutcome is the settled result of a playthrough, consumed by the
// progression engine.
type PlaythroughOutcome struct {
	DungeonID     string
	FinalValue    float64
	ProfitLoss    float64
	ProfitLossPct float64
	XPEarned      int
	GoldEarned    int
	TradeCount    int
	WinningSells  int
	TotalSells    int
}
