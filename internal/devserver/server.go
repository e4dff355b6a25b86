// Package devserver is a stub TradeLingo backend for local development: it
// serves the chat, therapy, and health endpoints with canned structured
// payloads so the mascot can be exercised without the real inference stack.
package devserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tradelingo/superbear/backend"
	"github.com/tradelingo/superbear/logger"
)

// NewHandler returns the stub API handler.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(backend.ChatPath, handleChat)
	mux.HandleFunc(backend.TherapyPath, handleTherapy)
	mux.HandleFunc(backend.HealthPath, handleHealth)
	return mux
}

// Run serves the stub API until ctx is cancelled.
func Run(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: NewHandler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("devserver listening", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("devserver: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, backend.Payload{
		Type:                "educational",
		Observation:         fmt.Sprintf("You asked: %q", req.Message),
		LearningConcept:     "risk management",
		WhyItMatters:        "Position sizing decides how long you stay in the game.",
		TeachingExplanation: "**Risk management 101**\n\nNever risk more than you can afford to lose on a single trade:\n\n- size positions as a fixed fraction of your account\n- set a stop-loss before you enter\n- review the trade afterwards, win or lose",
		ActionableTakeaway:  "Pick a maximum loss per trade and write it down.",
	})
}

func handleTherapy(w http.ResponseWriter, r *http.Request) {
	if _, ok := decodeRequest(w, r); !ok {
		return
	}
	writeJSON(w, backend.Payload{
		Type:                "wellness",
		EmotionalState:      "stressed",
		Acknowledgment:      "That sounds really frustrating, and it makes sense you feel this way.",
		Insight:             "Losses loom larger than wins; that is how every trader's brain is wired.",
		TherapeuticQuestion: "What was going through your mind right before you placed the trade?",
		CopingStrategy:      "step away from the screen for ten minutes and take a short walk",
		Encouragement:       "One trade never defines you. You're building judgment with every session.",
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, map[string]string{"status": "ok", "mode": "devserver"})
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (*backend.Request, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return nil, false
	}
	var req backend.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}
	if req.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return nil, false
	}
	logger.Debug("devserver request", "path", r.URL.Path, "sessionID", req.SessionID)
	return &req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("devserver encode error", "err", err)
	}
}
