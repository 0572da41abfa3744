package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	stderrors "quote-simulator/internal/common/errors"
	"quote-simulator/internal/common/logger"
	"quote-simulator/internal/common/metrics"
	"quote-simulator/internal/leads"
	"quote-simulator/internal/pricing"
	"quote-simulator/internal/questions"
	"quote-simulator/internal/wizard"
)

type handlers struct {
	engine   *pricing.Engine
	leads    *leads.Service
	sessions *wizard.Store
	log      logger.Logger
}

// quoteRequest is the shared payload of the quote endpoints.
type quoteRequest struct {
	Answers pricing.Answers `json:"answers"`
}

// sessionRequest is the payload of PUT /api/wizard/sessions/{id}.
type sessionRequest struct {
	Answers pricing.Answers `json:"answers"`
}

// errorResponse is the error envelope of every endpoint.
type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) questions(w http.ResponseWriter, r *http.Request) {
	projectType := r.URL.Query().Get("type")

	var list []questions.Question
	if projectType == "" {
		list = questions.All()
	} else {
		list = questions.ForProjectType(projectType)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": list,
	})
}

func (h *handlers) quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	metrics.QuotesComputed.WithLabelValues("flat").Inc()
	writeJSON(w, http.StatusOK, h.engine.Estimate(req.Answers))
}

func (h *handlers) quoteLots(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	metrics.QuotesComputed.WithLabelValues("lots").Inc()
	writeJSON(w, http.StatusOK, h.engine.EstimateLots(req.Answers))
}

func (h *handlers) submitLead(w http.ResponseWriter, r *http.Request) {
	var req leads.SubmitRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	resp, stdErr := h.leads.Submit(r.Context(), &req)
	if stdErr != nil {
		h.writeError(w, stdErr)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) createSession(w http.ResponseWriter, r *http.Request) {
	session, stdErr := h.sessions.Create(r.Context())
	if stdErr != nil {
		h.writeError(w, stdErr)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (h *handlers) saveSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decodeBody(w, r, &req) {
		return
	}

	session, stdErr := h.sessions.Save(r.Context(), chi.URLParam(r, "id"), req.Answers)
	if stdErr != nil {
		h.writeError(w, stdErr)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	session, stdErr := h.sessions.Load(r.Context(), chi.URLParam(r, "id"))
	if stdErr != nil {
		h.writeError(w, stdErr)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

// decodeBody parses the request body. Malformed JSON is an infrastructure
// failure at this boundary, not a caller validation error, and is reported
// without echoing any of the body back.
func (h *handlers) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.WithError(err).Warn("malformed request body", map[string]interface{}{
			"path": r.URL.Path,
		})
		h.writeError(w, stderrors.NewInternalError("request body could not be parsed"))
		return false
	}
	return true
}

func (h *handlers) writeError(w http.ResponseWriter, stdErr *stderrors.StandardError) {
	h.log.Debug("request failed", map[string]interface{}{
		"code":     string(stdErr.Code),
		"category": stderrors.GetErrorCategory(stdErr.Code),
	})
	writeJSON(w, stderrors.HTTPStatus(stdErr.Code), errorResponse{
		OK:      false,
		Error:   string(stdErr.Code),
		Message: stdErr.Message,
		Details: stdErr.Details,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
