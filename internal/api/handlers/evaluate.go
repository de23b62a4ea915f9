package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/internal/scoring"
	"github.com/portalwatch/backend/internal/signals"
	"github.com/portalwatch/backend/pkg/logger"
	"github.com/portalwatch/backend/pkg/metrics"
)

// EvaluateHandler exposes the two core entry points over HTTP:
// aggregation+scoring and scoring of a caller-built record.
type EvaluateHandler struct {
	aggregator *signals.Aggregator
	scorer     *scoring.Scorer
	metrics    *metrics.Manager
	logger     *logger.Logger
}

// NewEvaluateHandler creates a new evaluate handler.
func NewEvaluateHandler(agg *signals.Aggregator, scorer *scoring.Scorer, m *metrics.Manager, log *logger.Logger) *EvaluateHandler {
	return &EvaluateHandler{
		aggregator: agg,
		scorer:     scorer,
		metrics:    m,
		logger:     log,
	}
}

// EvaluationResponse is the API shape for a scored evaluation.
type EvaluationResponse struct {
	Player      string                     `json:"player,omitempty"`
	Team        string                     `json:"team,omitempty"`
	Year        int                        `json:"year,omitempty"`
	Probability float64                    `json:"probability"`
	Breakdown   []contracts.BreakdownEntry `json:"breakdown"`
	Signals     *contracts.SignalRecord    `json:"signals,omitempty"`
}

// Evaluate aggregates signals for a player/team and scores them.
// GET /api/evaluate?year=2025&team=Akron&player=Marcus+Webb&nilScore=0.4
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	q := r.URL.Query()

	year, err := strconv.Atoi(q.Get("year"))
	if err != nil || year <= 0 {
		respondError(w, http.StatusBadRequest, "year is required and must be a positive integer")
		return
	}

	req := signals.Request{
		Year:   year,
		Team:   q.Get("team"),
		Player: q.Get("player"),
		Overrides: signals.Overrides{
			NILScore:              queryFloat(q.Get("nilScore")),
			SocialSentiment:       queryFloat(q.Get("socialSentiment")),
			DistanceFromHomeMiles: queryFloat(q.Get("distanceMiles")),
			PlayingTime:           queryFloat(q.Get("playingTime")),
		},
	}

	rec, err := h.aggregator.Aggregate(ctx, req)
	if err != nil {
		var inputErr *signals.InputError
		var resErr *signals.ResolutionError
		switch {
		case errors.As(err, &inputErr):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.As(err, &resErr):
			respondError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.WithError(err).Error("Aggregation failed")
			respondError(w, http.StatusInternalServerError, "aggregation failed")
		}
		return
	}

	result := h.scorer.Score(rec, nil)

	if h.metrics != nil {
		h.metrics.RecordEvaluation(time.Since(start))
	}

	respondJSON(w, http.StatusOK, EvaluationResponse{
		Player:      rec.Player,
		Team:        rec.Team,
		Year:        rec.Year,
		Probability: result.Probability,
		Breakdown:   result.Breakdown,
		Signals:     rec,
	})
}

// Score runs the scorer over a caller-supplied signal record.
// POST /api/score
func (h *EvaluateHandler) Score(w http.ResponseWriter, r *http.Request) {
	var rec contracts.SignalRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		respondError(w, http.StatusBadRequest, "request body must be a JSON signal record")
		return
	}

	result := h.scorer.Score(&rec, nil)

	respondJSON(w, http.StatusOK, EvaluationResponse{
		Player:      rec.Player,
		Team:        rec.Team,
		Year:        rec.Year,
		Probability: result.Probability,
		Breakdown:   result.Breakdown,
	})
}

// queryFloat parses an optional numeric query parameter; malformed
// values read as absent.
func queryFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
