package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testLogger() zerolog.Logger {
	return zerolog.New(os.Stderr).Level(zerolog.Disabled)
}

func TestPredict_Success(t *testing.T) {
	var gotPath string
	var gotBody Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(Response{
			RiskScore:       42.5,
			RiskCategory:    "Moderate",
			ConfidenceScore: 91.2,
			Prediction:      0,
			FeatureImportance: map[string]float64{
				"glucose": 0.4,
				"bmi":     0.3,
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", 5*time.Second, testLogger())
	resp, err := c.Predict(context.Background(), &Request{Age: 45, Glucose: 95, BMI: 24.2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/predict" {
		t.Errorf("expected POST /predict, got %s", gotPath)
	}
	if gotBody.Age != 45 || gotBody.Glucose != 95 {
		t.Errorf("request body not forwarded: %+v", gotBody)
	}
	if resp.RiskScore != 42.5 || resp.RiskCategory != "Moderate" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestPredict_SendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		json.NewEncoder(w).Encode(Response{})
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", 5*time.Second, testLogger())
	if _, err := c.Predict(context.Background(), &Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "secret" {
		t.Errorf("expected X-API-Key header, got %q", gotKey)
	}
}

func TestPredict_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Model not loaded"})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second, testLogger())
	_, err := c.Predict(context.Background(), &Request{})
	if err == nil {
		t.Fatal("expected error from failing service")
	}
}

func TestPredict_NoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second, testLogger())
	if _, err := c.Predict(context.Background(), &Request{}); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected exactly one attempt, got %d", calls)
	}
}

func TestHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "model_loaded": true})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second, testLogger())
	if err := c.Healthy(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestHealthy_ModelNotLoaded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "model_loaded": false})
	}))
	defer srv.Close()

	c := New(srv.URL, "", 5*time.Second, testLogger())
	if err := c.Healthy(context.Background()); err == nil {
		t.Error("expected error when model not loaded")
	}
}
