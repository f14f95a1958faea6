package currency

import "time"

// Config describes how prices are shown for one country.
type Config struct {
	CurrencyCode string `json:"currency_code"` // ISO 4217
	Symbol       string `json:"symbol"`
	DisplayName  string `json:"display_name"`
	Locale       string `json:"locale"` // BCP 47 tag used for digit grouping
}

// RateTable holds USD-based exchange rates: units of currency per 1 USD.
type RateTable struct {
	Rates     map[string]float64 `json:"rates"`
	Source    string             `json:"source"` // "live" or "fallback"
	FetchedAt time.Time          `json:"fetched_at"`
}

// Rate sources
const (
	SourceLive     = "live"
	SourceFallback = "fallback"
)

// RateFor returns the multiplier for an ISO currency code.
// Unknown currencies are treated as USD-equivalent (1.0), never an error.
func (t *RateTable) RateFor(code string) float64 {
	if t == nil {
		return 1.0
	}
	if rate, ok := t.Rates[code]; ok && rate > 0 {
		return rate
	}
	return 1.0
}

// Loaded reports whether the table carries any rates yet.
func (t *RateTable) Loaded() bool {
	return t != nil && len(t.Rates) > 0
}

// ConfigResponse is the API response for a resolved currency config
type ConfigResponse struct {
	Country string `json:"country"`
	Config  Config `json:"config"`
}

// RatesResponse is the API response for the active rate table
type RatesResponse struct {
	Base      string             `json:"base"`
	Source    string             `json:"source"`
	FetchedAt time.Time          `json:"fetched_at"`
	Rates     map[string]float64 `json:"rates"`
}

// PriceResponse is the API response for a formatted price
type PriceResponse struct {
	AmountUSD float64 `json:"amount_usd"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}
