package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/vanshika/finnet/internal/network"
	"github.com/vanshika/finnet/internal/pathfind"
	"github.com/vanshika/finnet/internal/service"
)

// APIHandlers exposes HTTP handlers for the network API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.NetworkService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.NetworkService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

func (h *APIHandlers) handleNetwork(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	respondJSON(w, http.StatusOK, h.service.Snapshot())
}

func (h *APIHandlers) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	top, err := parsePositiveInt(r.URL.Query().Get("top"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, "top must be a positive integer")
		return
	}

	summary, err := h.service.Summary(r.Context(), top)
	if err != nil {
		h.writeServiceError(w, r, "failed to summarize network", err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

func (h *APIHandlers) handlePaths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	q := r.URL.Query()
	algorithm, err := parseAlgorithm(q.Get("algorithm"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.FindPath(r.Context(), service.PathQuery{
		Algorithm: algorithm,
		From:      q.Get("from"),
		To:        q.Get("to"),
	})
	if err != nil {
		h.writeServiceError(w, r, "failed to find path", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type batchRequest struct {
	Queries []service.PathQuery `json:"queries"`
}

type batchResponse struct {
	Results []service.PathResult `json:"results"`
	Errors  []string             `json:"errors,omitempty"`
}

func (h *APIHandlers) handlePathBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	for i := range req.Queries {
		algorithm, err := parseAlgorithm(string(req.Queries[i].Algorithm))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		req.Queries[i].Algorithm = algorithm
	}

	results, err := h.service.FindPaths(r.Context(), req.Queries)
	resp := batchResponse{Results: results}
	if err != nil {
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			h.writeServiceError(w, r, "failed to run path batch", err)
			return
		}
		for _, e := range merr.Errors {
			resp.Errors = append(resp.Errors, e.Error())
		}
	}
	respondJSON(w, http.StatusOK, resp)
}

func (h *APIHandlers) handleShortestPaths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	q := r.URL.Query()
	source := strings.TrimSpace(q.Get("source"))
	target := strings.TrimSpace(q.Get("target"))

	switch {
	case source == "" && target != "":
		writeError(w, http.StatusBadRequest, "target requires source")
	case source == "":
		all, err := h.service.AllShortestPaths(r.Context())
		if err != nil {
			h.writeServiceError(w, r, "failed to compute shortest paths", err)
			return
		}
		respondJSON(w, http.StatusOK, all)
	case target == "":
		paths, err := h.service.ShortestPaths(r.Context(), source)
		if err != nil {
			h.writeServiceError(w, r, "failed to compute shortest paths", err)
			return
		}
		respondJSON(w, http.StatusOK, paths)
	default:
		route, err := h.service.ShortestPath(r.Context(), source, target)
		if err != nil {
			h.writeServiceError(w, r, "failed to compute shortest path", err)
			return
		}
		respondJSON(w, http.StatusOK, route)
	}
}

// writeServiceError maps service errors onto HTTP statuses. Caller mistakes
// echo the error text; anything else is logged and reported generically.
func (h *APIHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, network.ErrUnknownVertex):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		h.logger.Error(msg, "error", err, "requestId", RequestIDFromContext(r.Context()))
		writeError(w, http.StatusInternalServerError, msg)
	}
}

func parseAlgorithm(value string) (pathfind.Algorithm, error) {
	if strings.TrimSpace(value) == "" {
		return pathfind.AlgorithmBFS, nil
	}
	return pathfind.ParseAlgorithm(value)
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func parsePositiveInt(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, errors.New("must be positive")
	}
	return v, nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
