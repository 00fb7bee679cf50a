package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/entrhq/browsergate/pkg/browser"
)

var errSessionNotFound = errors.New("session not found")

// actionResponse is the body of every action call that reached a live
// session. Screenshot is always present, possibly empty; Error is set only
// when the action failed.
type actionResponse struct {
	Observation string `json:"observation"`
	Error       string `json:"error,omitempty"`
	Screenshot  string `json:"screenshot"`
}

type sessionSummary struct {
	SessionID string    `json:"sessionId"`
	CreatedAt time.Time `json:"createdAt"`
	URL       string    `json:"url,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, map[string]any{
		"status":         "ok",
		"activeSessions": s.store.Len(),
	})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var creds browser.Credentials
	if err := decodeJSON(r, &creds); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if creds.APIKey == "" || creds.ProjectID == "" {
		respondError(w, http.StatusBadRequest, errors.New("apiKey and projectId are required"))
		return
	}

	sess, err := s.lifecycle.Create(creds)
	if err != nil {
		s.log.Error("session creation failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, err)
		return
	}

	sessionsCreated.Inc()
	respondJSON(w, map[string]string{"sessionId": sess.ID})
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	// No page exists for an unknown session, so no screenshot is attempted
	sess, ok := s.store.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, errSessionNotFound)
		return
	}

	var req browser.ActionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	if !browser.KnownAction(req.Kind) {
		respondError(w, http.StatusBadRequest, fmt.Errorf("unknown action: %s", req.Kind))
		return
	}

	actionsTotal.WithLabelValues(string(req.Kind)).Inc()

	observation, err := s.executor.Execute(sess.Page, req)
	// The page may still be reachable after a failed action; the screenshot
	// is attempted either way and its own failure yields an empty string
	screenshot := s.shots.Capture(sess.Page)

	if err != nil {
		actionFailures.Inc()
		s.log.Info("action failed",
			zap.String("session_id", id),
			zap.String("action", string(req.Kind)),
			zap.Error(err))
		respondJSON(w, actionResponse{
			Observation: "Action failed: " + err.Error(),
			Error:       err.Error(),
			Screenshot:  screenshot,
		})
		return
	}

	s.log.Info("action executed",
		zap.String("session_id", id),
		zap.String("action", string(req.Kind)))
	respondJSON(w, actionResponse{
		Observation: observation,
		Screenshot:  screenshot,
	})
}

func (s *Server) handleCloseSession(w http.ResponseWriter, r *http.Request) {
	s.lifecycle.Close(chi.URLParam(r, "id"))
	respondJSON(w, map[string]bool{"ok": true})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := s.store.List()

	summaries := make([]sessionSummary, 0, len(sessions))
	for _, sess := range sessions {
		summary := sessionSummary{
			SessionID: sess.ID,
			CreatedAt: sess.CreatedAt,
		}
		if sess.Page != nil {
			summary.URL = sess.Page.URL()
		}
		summaries = append(summaries, summary)
	}

	respondJSON(w, map[string]any{"sessions": summaries})
}
