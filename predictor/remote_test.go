package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chayon20/Crop-Recommendation-System/models"
)

func TestRemote_Predict(t *testing.T) {
	var received map[string]float64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"predicted_crop": "coffee"})
	}))
	defer server.Close()

	remote, err := NewRemote(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}

	reading := models.FeatureVector{90, 42, 43, 20.8, 82, 6.5, 202.9}
	crop, err := remote.Predict(context.Background(), reading)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if crop != "coffee" {
		t.Errorf("expected coffee, got %q", crop)
	}
	if received["N"] != 90 || received["rainfall"] != 202.9 {
		t.Errorf("request payload mismatch: %v", received)
	}
}

func TestRemote_PredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	remote, err := NewRemote(server.URL, time.Second)
	if err != nil {
		t.Fatalf("NewRemote failed: %v", err)
	}
	if _, err := remote.Predict(context.Background(), models.FeatureVector{}); err == nil {
		t.Error("expected error for non-200 response")
	}
}

func TestRemote_PredictEmptyLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	remote, _ := NewRemote(server.URL, time.Second)
	if _, err := remote.Predict(context.Background(), models.FeatureVector{}); err == nil {
		t.Error("expected error for empty crop label")
	}
}

func TestNewRemote_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/path"} {
		if _, err := NewRemote(raw, time.Second); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}
