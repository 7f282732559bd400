package fees

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var qr QuoteRequest
		if err := json.NewDecoder(r.Body).Decode(&qr); err != nil {
			t.Fatalf("decode request failed: %v", err)
		}
		if qr.SenderCityCode != "01" || qr.WeightGram != 1200 {
			t.Errorf("unexpected quote request: %+v", qr)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]int64{"totalFee": 35000, "discountAmount": 5000},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Quote(context.Background(), QuoteRequest{
		SenderCityCode:    "01",
		RecipientCityCode: "79",
		WeightGram:        1200,
		ServiceType:       "STANDARD",
	})
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if result.TotalFee != 35000 || result.DiscountAmount != 5000 {
		t.Errorf("result = %+v, want 35000/5000", result)
	}
}

func TestQuoteServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "unsupported service type",
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Quote(context.Background(), QuoteRequest{ServiceType: "TELEPORT"})
	if err == nil || !strings.Contains(err.Error(), "unsupported service type") {
		t.Errorf("Quote() error = %v, want server message passed through", err)
	}
}
