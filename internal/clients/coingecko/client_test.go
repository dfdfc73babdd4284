package coingecko

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestSimplePrice(t *testing.T) {
	t.Run("parses_quotes", func(t *testing.T) {
		var gotQuery string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/v3/simple/price" {
				t.Errorf("unexpected path %q", r.URL.Path)
			}
			gotQuery = r.URL.RawQuery
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"bitcoin":{"usd":95000.5,"usd_24h_change":1.25},"ethereum":{"usd":3400,"usd_24h_change":-0.8}}`))
		}))
		defer server.Close()

		client := NewClientWithBaseURL(server.URL)
		quotes, err := client.SimplePrice(context.Background(), []string{"bitcoin", "ethereum"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if quotes["bitcoin"].USD != 95000.5 {
			t.Errorf("expected bitcoin price 95000.5, got %f", quotes["bitcoin"].USD)
		}
		if quotes["ethereum"].USD24hChange != -0.8 {
			t.Errorf("expected ethereum change -0.8, got %f", quotes["ethereum"].USD24hChange)
		}

		values, err := url.ParseQuery(gotQuery)
		if err != nil {
			t.Fatalf("failed to parse query: %v", err)
		}
		if values.Get("ids") != "bitcoin,ethereum" {
			t.Errorf("expected comma-joined ids, got %q", values.Get("ids"))
		}
		if values.Get("vs_currencies") != "usd" || values.Get("include_24hr_change") != "true" {
			t.Errorf("unexpected query parameters: %q", gotQuery)
		}
	})

	t.Run("rate_limited", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := NewClientWithBaseURL(server.URL)
		_, err := client.SimplePrice(context.Background(), []string{"bitcoin"})
		if !errors.Is(err, ErrRateLimited) {
			t.Errorf("expected ErrRateLimited, got %v", err)
		}
	})

	t.Run("server_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		client := NewClientWithBaseURL(server.URL)
		_, err := client.SimplePrice(context.Background(), []string{"bitcoin"})
		if err == nil {
			t.Fatal("expected error for 500 response")
		}
		if errors.Is(err, ErrRateLimited) {
			t.Error("500 should not map to ErrRateLimited")
		}
	})

	t.Run("malformed_body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClientWithBaseURL(server.URL)
		_, err := client.SimplePrice(context.Background(), []string{"bitcoin"})
		if err == nil {
			t.Fatal("expected decode error for malformed body")
		}
	})
}
