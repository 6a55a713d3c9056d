package series

import (
	"time"

	"TimeTrader/internal/model"
)

// Provider supplies the raw OHLCV series for a scenario. An empty result
// means no trading days exist in the range; fetch failures are reported as
// errors and the caller must not start a run from either.
type Provider interface {
	Fetch(symbol string, start, end time.Time) ([]model.PriceBar, error)
	Name() string
}
