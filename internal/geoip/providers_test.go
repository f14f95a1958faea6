package geoip

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/richxcame/agency-site/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPAPICo_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/8.8.8.8/json/", r.URL.Path)
		w.Write([]byte(`{"country_code":"US","country_name":"United States"}`))
	}))
	defer server.Close()

	p := &IPAPICo{client: httpclient.NewClient(server.URL, time.Second)}
	country, err := p.Lookup(context.Background(), "8.8.8.8")

	require.NoError(t, err)
	assert.Equal(t, "US", country)
}

func TestIPAPICo_Lookup_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":true,"reason":"RateLimited"}`))
	}))
	defer server.Close()

	p := &IPAPICo{client: httpclient.NewClient(server.URL, time.Second)}
	_, err := p.Lookup(context.Background(), "8.8.8.8")

	assert.Error(t, err)
}

func TestIPAPICom_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/json/1.1.1.1", r.URL.Path)
		assert.Equal(t, "status,countryCode", r.URL.Query().Get("fields"))
		w.Write([]byte(`{"status":"success","countryCode":"AU"}`))
	}))
	defer server.Close()

	p := &IPAPICom{client: httpclient.NewClient(server.URL, time.Second)}
	country, err := p.Lookup(context.Background(), "1.1.1.1")

	require.NoError(t, err)
	assert.Equal(t, "AU", country)
}

func TestIPAPICom_Lookup_FailStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"fail"}`))
	}))
	defer server.Close()

	p := &IPAPICom{client: httpclient.NewClient(server.URL, time.Second)}
	_, err := p.Lookup(context.Background(), "1.1.1.1")

	assert.Error(t, err)
}

func TestIPWhois_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2.2.2.2", r.URL.Path)
		w.Write([]byte(`{"success":true,"country_code":"FR"}`))
	}))
	defer server.Close()

	p := &IPWhois{client: httpclient.NewClient(server.URL, time.Second)}
	country, err := p.Lookup(context.Background(), "2.2.2.2")

	require.NoError(t, err)
	assert.Equal(t, "FR", country)
}

func TestIPWhois_Lookup_Unsuccessful(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	p := &IPWhois{client: httpclient.NewClient(server.URL, time.Second)}
	_, err := p.Lookup(context.Background(), "2.2.2.2")

	assert.Error(t, err)
}

func TestDefaultProviders_Order(t *testing.T) {
	providers := DefaultProviders(5 * time.Second)

	require.Len(t, providers, 3)
	assert.Equal(t, "ipapi.co", providers[0].Name())
	assert.Equal(t, "ip-api.com", providers[1].Name())
	assert.Equal(t, "ipwho.is", providers[2].Name())
}
