package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestERAPIProvider_FetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"USD":1,"EUR":0.92,"COP":4325}}`))
	}))
	defer server.Close()

	p := NewERAPIProvider(server.URL, time.Second)
	rates, err := p.FetchRates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0.92, rates["EUR"])
	assert.Equal(t, 4325.0, rates["COP"])
}

func TestERAPIProvider_FetchRates_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"upstream error result", `{"result":"error","error-type":"invalid-key"}`, http.StatusOK},
		{"empty rate table", `{"result":"success","rates":{}}`, http.StatusOK},
		{"server error", `oops`, http.StatusInternalServerError},
		{"malformed json", `{`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			p := NewERAPIProvider(server.URL, time.Second)
			_, err := p.FetchRates(context.Background())
			assert.Error(t, err)
		})
	}
}
