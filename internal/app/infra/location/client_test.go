package location

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestResolveCityAndWard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var name string
		switch r.URL.Path {
		case "/cities/01":
			name = "Ha Noi"
		case "/cities/01/wards/00101":
			name = "Phuc Xa"
		default:
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"name": name},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)

	city, err := client.ResolveCity(context.Background(), "01")
	if err != nil {
		t.Fatalf("ResolveCity() error = %v", err)
	}
	if city != "Ha Noi" {
		t.Errorf("city = %q, want %q", city, "Ha Noi")
	}

	ward, err := client.ResolveWard(context.Background(), "01", "00101")
	if err != nil {
		t.Fatalf("ResolveWard() error = %v", err)
	}
	if ward != "Phuc Xa" {
		t.Errorf("ward = %q, want %q", ward, "Phuc Xa")
	}

	if _, err := client.ResolveCity(context.Background(), "99"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("ResolveCity(unknown) error = %v, want server message", err)
	}
}

func TestDirectionsURL(t *testing.T) {
	got := DirectionsURL("12 Hang Bac, Ha Noi", "45 Le Loi, Ho Chi Minh")
	if !strings.Contains(got, "google.com/maps") {
		t.Errorf("DirectionsURL() = %q, want a Google Maps link", got)
	}
	if !strings.Contains(got, "12+Hang+Bac") && !strings.Contains(got, "12%20Hang%20Bac") {
		t.Errorf("DirectionsURL() = %q, origin not encoded", got)
	}
}
