package analytics

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	"github.com/MrJamesThe3rd/pledger/internal/http/response"
)

type Handler struct {
	svc         *analytics.Service
	defaultDays int
}

func NewHandler(svc *analytics.Service, defaultDays int) *Handler {
	return &Handler{svc: svc, defaultDays: defaultDays}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.report)
}

func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := analytics.ParseRange(analytics.RangeQuery{
		TimeRange:    q.Get("timeRange"),
		FromDate:     q.Get("fromDate"),
		ToDate:       q.Get("toDate"),
		InitiativeID: q.Get("initiativeId"),
	}, h.svc.Now(), h.defaultDays)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidRange) {
			response.Error(w, http.StatusBadRequest, response.CodeInvalidRange, err.Error())
			return
		}

		response.Internal(w)

		return
	}

	report, err := h.svc.Report(r.Context(), filter)
	if err != nil {
		slog.Error("failed to build pledge analytics", "from", filter.From, "to", filter.To, "error", err)
		response.Internal(w)

		return
	}

	response.JSON(w, http.StatusOK, toResponse(report))
}
