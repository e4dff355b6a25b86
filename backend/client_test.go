package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRequest() *Request {
	return &Request{
		Message:   "what is a stop loss?",
		SessionID: "default",
		Profile: &UserProfile{
			Name:             "Trader",
			TradingLevel:     "beginner",
			LearningStyle:    "visual",
			RiskTolerance:    "medium",
			PreferredMarkets: "Stocks",
			TradingFrequency: "weekly",
		},
	}
}

func TestSendDecodesPayloadAndKeepsRaw(t *testing.T) {
	const body = `{"type":"educational","teaching_explanation":"A stop loss caps your downside.","extra_field":"kept in raw"}`

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != ChatPath {
			t.Errorf("request path = %q, want %q", r.URL.Path, ChatPath)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", 5*time.Second)
	payload, err := client.Send(context.Background(), ChatPath, testRequest())
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if payload.TeachingExplanation != "A stop loss caps your downside." {
		t.Fatalf("payload.TeachingExplanation = %q", payload.TeachingExplanation)
	}
	if string(payload.Raw) != body {
		t.Fatalf("payload.Raw = %q, want the undecoded body", payload.Raw)
	}
}

func TestSendEnvelopeShape(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(data, &captured); err != nil {
			t.Errorf("request body is not JSON: %v", err)
		}
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", 5*time.Second)
	if _, err := client.Send(context.Background(), ChatPath, testRequest()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if captured["message"] != "what is a stop loss?" {
		t.Fatalf("envelope message = %v", captured["message"])
	}
	if captured["session_id"] != "default" {
		t.Fatalf("envelope session_id = %v", captured["session_id"])
	}
	profile, ok := captured["user_profile"].(map[string]any)
	if !ok {
		t.Fatalf("envelope user_profile = %v", captured["user_profile"])
	}
	if profile["tradingLevel"] != "beginner" || profile["preferredMarkets"] != "Stocks" {
		t.Fatalf("profile fields = %v", profile)
	}
	if _, present := captured["trade_data"]; present {
		t.Fatal("trade_data should be absent when no trade is attached")
	}
}

func TestSendAttachesTradeData(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &captured)
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	req := testRequest()
	req.Trade = &TradeData{StockCode: "AAPL", Action: "sell", Units: "10"}

	client := NewHTTPClient(server.URL, "", 5*time.Second)
	if _, err := client.Send(context.Background(), ChatPath, req); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	trade, ok := captured["trade_data"].(map[string]any)
	if !ok {
		t.Fatalf("trade_data = %v, want object", captured["trade_data"])
	}
	if trade["stockCode"] != "AAPL" || trade["action"] != "sell" {
		t.Fatalf("trade_data fields = %v", trade)
	}
}

func TestSendBearerToken(t *testing.T) {
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		io.WriteString(w, `{}`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "secret-token", 5*time.Second)
	if _, err := client.Send(context.Background(), TherapyPath, testRequest()); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if auth != "Bearer secret-token" {
		t.Fatalf("Authorization = %q", auth)
	}
}

func TestSendNonSuccessStatusIsError(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusInternalServerError} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))
		client := NewHTTPClient(server.URL, "", 5*time.Second)
		if _, err := client.Send(context.Background(), ChatPath, testRequest()); err == nil {
			t.Errorf("Send() with status %d returned nil error", status)
		}
		server.Close()
	}
}

func TestSendTransportFailureIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewHTTPClient(server.URL, "", time.Second)
	if _, err := client.Send(context.Background(), ChatPath, testRequest()); err == nil {
		t.Fatal("Send() against a closed server returned nil error")
	}
}

func TestSendMalformedBodyIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `not json`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", 5*time.Second)
	if _, err := client.Send(context.Background(), ChatPath, testRequest()); err == nil {
		t.Fatal("Send() with a non-JSON body returned nil error")
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != HealthPath {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, `{"status":"ok"}`)
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, "", 5*time.Second)
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("Health() error = %v", err)
	}

	bad := NewHTTPClient(server.URL+"/missing", "", 5*time.Second)
	if err := bad.Health(context.Background()); err == nil {
		t.Fatal("Health() against a 404 returned nil error")
	}
}
