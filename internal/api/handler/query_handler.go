package handler

import (
	"context"
	"encoding/json"
	"errors"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"go-bikeshare/internal/source"
	"log/slog"
	"net/http"
	"strconv"
)

// QueryRequest is the body of POST /queries. Blank month or day means "all".
type QueryRequest struct {
	City  string `json:"city" example:"chicago"`
	Month string `json:"month" example:"june"`
	Day   string `json:"day" example:"all"`
}

// Querier is the part of pipeline.Service the handlers use
type Querier interface {
	Run(ctx context.Context, spec model.FilterSpec) (*model.Report, error)
	Page(ctx context.Context, spec model.FilterSpec, cursor int) (*model.Page, error)
	Cities(ctx context.Context) ([]model.CityInfo, error)
}

var _ Querier = (*pipeline.Service)(nil)

// Handler serves the query API
type Handler struct {
	svc    Querier
	logger *slog.Logger
}

// New creates a Handler over svc
func New(svc Querier, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{svc: svc, logger: logger}
}

// CreateQuery computes descriptive statistics for one filter
// @Summary Run a stats query
// @Description Filter a city's trips by month and weekday and compute time, station, duration and user statistics
// @Tags queries
// @Accept json
// @Produce json
// @Param query body QueryRequest true "City, month and day filter"
// @Success 200 {object} model.Report "Query report; empty is true when no trip matched"
// @Failure 400 {string} string "Invalid filter"
// @Failure 404 {string} string "Dataset not found"
// @Failure 422 {string} string "Malformed dataset"
// @Failure 500 {string} string "Internal server error"
// @Router /queries [post]
func (h *Handler) CreateQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	spec, err := model.ParseFilterSpec(req.City, req.Month, req.Day)
	if err != nil {
		h.writeError(w, err)
		return
	}

	report, err := h.svc.Run(r.Context(), spec)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, report)
}

// GetRows pages through the raw filtered trips
// @Summary Page raw trips
// @Description Return up to five filtered trips starting at cursor; follow next_cursor until done
// @Tags queries
// @Produce json
// @Param city query string true "City name or slug"
// @Param month query string false "Month name or all"
// @Param day query string false "Day name or all"
// @Param cursor query int false "Row offset" default(0)
// @Success 200 {object} model.Page "Page of trips"
// @Failure 400 {string} string "Invalid filter or cursor"
// @Failure 404 {string} string "Dataset not found"
// @Failure 422 {string} string "Malformed dataset"
// @Router /rows [get]
func (h *Handler) GetRows(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	spec, err := model.ParseFilterSpec(q.Get("city"), q.Get("month"), q.Get("day"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	cursor := 0
	if raw := q.Get("cursor"); raw != "" {
		cursor, err = strconv.Atoi(raw)
		if err != nil || cursor < 0 {
			http.Error(w, "cursor must be a non-negative integer", http.StatusBadRequest)
			return
		}
	}

	page, err := h.svc.Page(r.Context(), spec, cursor)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, page)
}

// ListCities lists the supported cities and their data sources
// @Summary List cities
// @Description List every supported city with its source, row count and optional columns
// @Tags cities
// @Produce json
// @Success 200 {array} model.CityInfo "Cities"
// @Failure 500 {string} string "Internal server error"
// @Router /cities [get]
func (h *Handler) ListCities(w http.ResponseWriter, r *http.Request) {
	infos, err := h.svc.Cities(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, infos)
}

// Health reports liveness
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err)
		http.Error(w, "Internal server error", status)
		return
	}
	h.logger.Debug("request rejected", "status", status, "error", err)
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidFilter):
		return http.StatusBadRequest
	case errors.Is(err, source.ErrSourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrMalformedTimestamp),
		errors.Is(err, source.ErrMalformedRow),
		errors.Is(err, source.ErrMissingColumn):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
