package http

import (
	"encoding/json"
	"net/http"

	"github.com/ugla-hub/proftafla/internal/application/query"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

type handler struct {
	svc *query.Service
	log *logger.Logger
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Error("write response failed", logger.Err(err))
	}
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) divisions(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Divisions())
}

func (h *handler) divisionBySlug(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	res, err := h.svc.GetTests(r.Context(), slug)
	if err != nil {
		h.log.Error("exam listing lookup failed", logger.Slug(slug), logger.Err(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "could not fetch exam listing"})
		return
	}
	if res == nil {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "division not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, res)
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		h.log.Error("stats aggregation failed", logger.Err(err))
		h.writeJSON(w, http.StatusBadGateway, errorResponse{Error: "could not aggregate stats"})
		return
	}

	h.writeJSON(w, http.StatusOK, stats)
}

func (h *handler) clearCache(w http.ResponseWriter, r *http.Request) {
	if ok := h.svc.ClearCache(r.Context()); !ok {
		h.writeJSON(w, http.StatusInternalServerError, map[string]bool{"cleared": false})
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
}
