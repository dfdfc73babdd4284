package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestTransactionAndAnalyticsFlow(t *testing.T) {
	app := setupApp(t)
	id := app.createPortfolio(t, `{"name":"Ledger"}`)
	base := fmt.Sprintf("/api/portfolios/%.0f", id)

	// Two buys and a sell against the same asset.
	for _, body := range []string{
		`{"asset_name":"Bitcoin","type":"buy","amount":100,"quantity":0.002,"date":"2024-01-01T00:00:00Z"}`,
		`{"asset_name":"Bitcoin","type":"buy","amount":50,"quantity":0.001,"date":"2024-02-01T00:00:00Z"}`,
		`{"asset_name":"Bitcoin","type":"sell","amount":30,"quantity":0.0005,"date":"2024-03-01T00:00:00Z"}`,
	} {
		rec := app.request("POST", base+"/transactions", body)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
		}
	}

	// Listing comes back newest date first.
	rec := app.request("GET", base+"/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list transactions failed: %d %s", rec.Code, rec.Body.String())
	}
	list := parseJSONArray(t, rec)
	if len(list) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(list))
	}
	newest := list[0].(map[string]interface{})
	if newest["type"] != "sell" {
		t.Errorf("expected the March sell first, got %v", newest["type"])
	}

	// Analytics reflect the asymmetric totals.
	rec = app.request("GET", base+"/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analytics failed: %d %s", rec.Code, rec.Body.String())
	}
	analytics := parseJSON(t, rec)
	if analytics["total_invested"] != float64(150) {
		t.Errorf("expected total invested 150, got %v", analytics["total_invested"])
	}
	assets := analytics["assets"].(map[string]interface{})
	bucket := assets["Bitcoin"].(map[string]interface{})
	if bucket["invested"] != float64(120) {
		t.Errorf("expected Bitcoin bucket 120, got %v", bucket["invested"])
	}
	if analytics["transaction_count"] != float64(3) {
		t.Errorf("expected transaction count 3, got %v", analytics["transaction_count"])
	}

	// Portfolio listing shows matching derived totals.
	rec = app.request("GET", "/api/portfolios", "")
	portfolios := parseJSONArray(t, rec)
	p := portfolios[0].(map[string]interface{})
	if p["total_invested"] != float64(150) {
		t.Errorf("expected listed total invested 150, got %v", p["total_invested"])
	}

	// Delete one transaction and confirm the analytics move.
	txID := newest["id"].(float64)
	rec = app.request("DELETE", fmt.Sprintf("/api/transactions/%.0f", txID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", base+"/analytics", "")
	analytics = parseJSON(t, rec)
	assets = analytics["assets"].(map[string]interface{})
	bucket = assets["Bitcoin"].(map[string]interface{})
	if bucket["invested"] != float64(150) {
		t.Errorf("expected bucket back to 150 after removing the sell, got %v", bucket["invested"])
	}
}

func TestTransactionValidation(t *testing.T) {
	app := setupApp(t)
	id := app.createPortfolio(t, `{"name":"Ledger"}`)
	base := fmt.Sprintf("/api/portfolios/%.0f", id)

	t.Run("missing_asset_name", func(t *testing.T) {
		rec := app.request("POST", base+"/transactions", `{"amount":100}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown_type", func(t *testing.T) {
		rec := app.request("POST", base+"/transactions", `{"asset_name":"Bitcoin","type":"stake","amount":100}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown_portfolio", func(t *testing.T) {
		rec := app.request("POST", "/api/portfolios/9999/transactions", `{"asset_name":"Bitcoin","amount":100}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("unknown_transaction_delete", func(t *testing.T) {
		rec := app.request("DELETE", "/api/transactions/9999", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}
