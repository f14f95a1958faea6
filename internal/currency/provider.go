package currency

import (
	"context"
	"fmt"
	"time"

	"github.com/richxcame/agency-site/pkg/httpclient"
)

// RateProvider fetches a USD-based exchange rate table from a live source.
type RateProvider interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// ERAPIProvider fetches rates from open.er-api.com (free, no API key).
type ERAPIProvider struct {
	client *httpclient.Client
}

// NewERAPIProvider creates a provider for the given base URL
// (e.g. "https://open.er-api.com/v6/latest/USD").
func NewERAPIProvider(apiURL string, timeout time.Duration) *ERAPIProvider {
	return &ERAPIProvider{
		client: httpclient.NewClient(apiURL, timeout),
	}
}

// FetchRates implements RateProvider
func (p *ERAPIProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	var resp struct {
		Result string             `json:"result"`
		Rates  map[string]float64 `json:"rates"`
	}
	if err := p.client.GetJSON(ctx, "", nil, &resp); err != nil {
		return nil, err
	}
	if resp.Result != "success" {
		return nil, fmt.Errorf("rates API returned result %q", resp.Result)
	}
	if len(resp.Rates) == 0 {
		return nil, fmt.Errorf("rates API returned empty table")
	}
	return resp.Rates, nil
}
