package geoip

import (
	"context"
	"fmt"
	"time"

	"github.com/richxcame/agency-site/pkg/httpclient"
)

// Provider resolves an IP address to an ISO 3166-1 alpha-2 country code.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, ip string) (string, error)
}

// DefaultProviders returns the provider chain in priority order.
// The first one to answer with a usable country code wins.
func DefaultProviders(timeout time.Duration) []Provider {
	return []Provider{
		NewIPAPICo(timeout),
		NewIPAPICom(timeout),
		NewIPWhois(timeout),
	}
}

// IPAPICo uses ipapi.co.
type IPAPICo struct {
	client *httpclient.Client
}

// NewIPAPICo creates an ipapi.co provider
func NewIPAPICo(timeout time.Duration) *IPAPICo {
	return &IPAPICo{client: httpclient.NewClient("https://ipapi.co", timeout)}
}

// Name implements Provider
func (p *IPAPICo) Name() string { return "ipapi.co" }

// Lookup implements Provider
func (p *IPAPICo) Lookup(ctx context.Context, ip string) (string, error) {
	var resp struct {
		CountryCode string `json:"country_code"`
		Error       bool   `json:"error"`
		Reason      string `json:"reason"`
	}
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/%s/json/", ip), nil, &resp); err != nil {
		return "", err
	}
	if resp.Error {
		return "", fmt.Errorf("ipapi.co lookup failed: %s", resp.Reason)
	}
	return resp.CountryCode, nil
}

// IPAPICom uses ip-api.com (free tier, no API key).
type IPAPICom struct {
	client *httpclient.Client
}

// NewIPAPICom creates an ip-api.com provider
func NewIPAPICom(timeout time.Duration) *IPAPICom {
	return &IPAPICom{client: httpclient.NewClient("http://ip-api.com", timeout)}
}

// Name implements Provider
func (p *IPAPICom) Name() string { return "ip-api.com" }

// Lookup implements Provider
func (p *IPAPICom) Lookup(ctx context.Context, ip string) (string, error) {
	var resp struct {
		Status      string `json:"status"`
		CountryCode string `json:"countryCode"`
	}
	if err := p.client.GetJSON(ctx, fmt.Sprintf("/json/%s?fields=status,countryCode", ip), nil, &resp); err != nil {
		return "", err
	}
	if resp.Status != "success" {
		return "", fmt.Errorf("ip-api.com lookup failed for %s", ip)
	}
	return resp.CountryCode, nil
}

// IPWhois uses ipwho.is.
type IPWhois struct {
	client *httpclient.Client
}

// NewIPWhois creates an ipwho.is provider
func NewIPWhois(timeout time.Duration) *IPWhois {
	return &IPWhois{client: httpclient.NewClient("https://ipwho.is", timeout)}
}

// Name implements Provider
func (p *IPWhois) Name() string { return "ipwho.is" }

// Lookup implements Provider
func (p *IPWhois) Lookup(ctx context.Context, ip string) (string, error) {
	var resp struct {
		Success     bool   `json:"success"`
		CountryCode string `json:"country_code"`
	}
	if err := p.client.GetJSON(ctx, "/"+ip, nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("ipwho.is lookup failed for %s", ip)
	}
	return resp.CountryCode, nil
}
