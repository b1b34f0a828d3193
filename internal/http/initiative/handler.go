package initiative

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/auth"
	"github.com/MrJamesThe3rd/pledger/internal/http/request"
	"github.com/MrJamesThe3rd/pledger/internal/http/response"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

type Handler struct {
	svc *initiative.Service
}

func NewHandler(svc *initiative.Service) *Handler {
	return &Handler{svc: svc}
}

// PublicRoutes expose initiatives that are open or finished. Drafts stay hidden.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/", h.listPublic)
	r.Get("/{id}", h.getPublic)
}

// AdminRoutes expect auth and role middleware to be applied by the caller.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}/status", h.updateStatus)
}

type createInitiativeRequest struct {
	Title              string           `json:"title" validate:"required,max=200"`
	Description        string           `json:"description" validate:"max=5000"`
	TargetAmount       *decimal.Decimal `json:"targetAmount" validate:"required"`
	TargetParticipants int              `json:"targetParticipants"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInitiativeRequest
	if err := request.Decode(w, r, &req); err != nil {
		request.WriteError(w, err)
		return
	}

	params := initiative.CreateParams{
		Title:              req.Title,
		Description:        req.Description,
		TargetAmount:       *req.TargetAmount,
		TargetParticipants: req.TargetParticipants,
	}

	if caller, ok := auth.FromContext(r.Context()); ok {
		params.CreatedBy = &caller.UserID
	}

	in, err := h.svc.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, toResponse(in))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, false)
}

func (h *Handler) listPublic(w http.ResponseWriter, r *http.Request) {
	h.writeList(w, r, true)
}

func (h *Handler) writeList(w http.ResponseWriter, r *http.Request, hideDrafts bool) {
	filter := initiative.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Status = new(initiative.Status(s))
	}

	ins, err := h.svc.List(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]initiativeResponse, 0, len(ins))

	for _, in := range ins {
		if hideDrafts && in.Status == initiative.StatusDraft {
			continue
		}

		out = append(out, toResponse(in))
	}

	response.JSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	h.writeOne(w, r, false)
}

func (h *Handler) getPublic(w http.ResponseWriter, r *http.Request) {
	h.writeOne(w, r, true)
}

func (h *Handler) writeOne(w http.ResponseWriter, r *http.Request, hideDrafts bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidID, "invalid initiative id")
		return
	}

	in, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	if hideDrafts && in.Status == initiative.StatusDraft {
		writeError(w, initiative.ErrNotFound)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(in))
}

type updateStatusRequest struct {
	Status initiative.Status `json:"status" validate:"required"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidID, "invalid initiative id")
		return
	}

	var req updateStatusRequest
	if err := request.Decode(w, r, &req); err != nil {
		request.WriteError(w, err)
		return
	}

	in, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(in))
}

func writeError(w http.ResponseWriter, err error) {
	var invalid *initiative.InvalidError

	switch {
	case errors.As(err, &invalid):
		fields := make([]response.FieldError, 0, len(invalid.Problems))
		for _, field := range slices.Sorted(maps.Keys(invalid.Problems)) {
			fields = append(fields, response.FieldError{Field: field, Message: invalid.Problems[field]})
		}

		response.Fields(w, http.StatusBadRequest, response.CodeValidationFailed, "invalid initiative", fields)
	case errors.Is(err, initiative.ErrNotFound):
		response.Error(w, http.StatusNotFound, response.CodeNotFound, "initiative not found")
	case errors.Is(err, initiative.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, response.CodeInvalidTransition, err.Error())
	default:
		slog.Error("initiative request failed", "error", err)
		response.Internal(w)
	}
}
