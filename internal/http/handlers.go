package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"match-notify-service/internal/domain/matches"
	"match-notify-service/internal/poller"
	"match-notify-service/internal/tracker"
)

// Handler wires HTTP routes to the tracked match state.
type Handler struct {
	store    *tracker.Store
	statusFn func() poller.Status
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(store *tracker.Store, statusFn func() poller.Status, logger *slog.Logger) *Handler {
	return &Handler{
		store:    store,
		statusFn: statusFn,
		logger:   logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the poll loop has fetched recently.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "poller not wired")
		return
	}
	status := h.statusFn()
	payload := map[string]any{
		"ready":                status.IsReady(),
		"consecutive_failures": status.ConsecutiveFailures,
		"last_attempt":         status.LastAttempt,
		"last_success":         status.LastSuccess,
	}
	if status.LastError != "" {
		payload["last_error"] = status.LastError
	}
	code := nethttp.StatusOK
	if !status.IsReady() {
		code = nethttp.StatusServiceUnavailable
	}
	h.writeJSON(w, code, payload)
}

type trackedMatchResponse struct {
	ID         string    `json:"id"`
	Home       string    `json:"home"`
	Away       string    `json:"away"`
	Status     string    `json:"status"`
	GoalsHome  int       `json:"goalsHome"`
	GoalsAway  int       `json:"goalsAway"`
	EventsSeen int       `json:"eventsSeen"`
	HalfTime   bool      `json:"halfTime"`
	StartedAt  time.Time `json:"startedAt,omitempty"`
}

// Matches returns the current tracked state of every match.
func (h *Handler) Matches(w nethttp.ResponseWriter, r *nethttp.Request) {
	entries := h.store.List()
	payload := make([]trackedMatchResponse, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, trackedMatchResponse{
			ID:         string(entry.ID),
			Home:       entry.State.HomeCountry,
			Away:       entry.State.AwayCountry,
			Status:     entry.State.Status.String(),
			GoalsHome:  entry.State.GoalsHome,
			GoalsAway:  entry.State.GoalsAway,
			EventsSeen: len(entry.State.SeenEvents),
			HalfTime:   entry.State.HalfTimeAnnounced,
			StartedAt:  entry.State.StartedAt,
		})
	}
	h.writeJSON(w, nethttp.StatusOK, payload)
}

// MatchByID returns a single tracked match.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	// Expect path: /matches/{id}
	id := strings.TrimPrefix(r.URL.Path, "/matches/")
	if id == "" || id == "matches" {
		h.writeError(w, nethttp.StatusBadRequest, "missing match id")
		return
	}

	state, ok := h.store.Get(matches.MatchID(id))
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "match not tracked")
		return
	}

	h.writeJSON(w, nethttp.StatusOK, trackedMatchResponse{
		ID:         id,
		Home:       state.HomeCountry,
		Away:       state.AwayCountry,
		Status:     state.Status.String(),
		GoalsHome:  state.GoalsHome,
		GoalsAway:  state.GoalsAway,
		EventsSeen: len(state.SeenEvents),
		HalfTime:   state.HalfTimeAnnounced,
		StartedAt:  state.StartedAt,
	})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
