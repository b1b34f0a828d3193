package pledge

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MrJamesThe3rd/pledger/internal/auth"
	"github.com/MrJamesThe3rd/pledger/internal/http/request"
	"github.com/MrJamesThe3rd/pledger/internal/http/response"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

type Handler struct {
	svc     *pledge.Service
	printer *message.Printer
}

func NewHandler(svc *pledge.Service) *Handler {
	return &Handler{
		svc:     svc,
		printer: message.NewPrinter(language.English),
	}
}

// Routes mounts under /initiatives/{id}/pledges. Submitting requires authMW;
// reading is public.
func (h *Handler) Routes(authMW func(http.Handler) http.Handler) func(chi.Router) {
	return func(r chi.Router) {
		r.Get("/", h.overview)
		r.With(authMW).Post("/", h.submit)
	}
}

type additionalPledgeRequest struct {
	Name         string           `json:"name" validate:"required,max=200"`
	Relationship string           `json:"relationship" validate:"required,max=50"`
	Amount       *decimal.Decimal `json:"amount" validate:"required"`
	Region       string           `json:"region" validate:"max=100"`
	Gender       string           `json:"gender" validate:"required,oneof=male female other"`
}

type submitRequest struct {
	Amount            *decimal.Decimal          `json:"amount" validate:"required"`
	Region            string                    `json:"region" validate:"max=100"`
	Gender            string                    `json:"gender" validate:"omitempty,oneof=male female other"`
	AdditionalPledges []additionalPledgeRequest `json:"additionalPledges" validate:"dive"`
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	initiativeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidID, "invalid initiative id")
		return
	}

	caller, ok := auth.FromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, response.CodeUnauthorized, "authentication required")
		return
	}

	var req submitRequest
	if err := request.Decode(w, r, &req); err != nil {
		request.WriteError(w, err)
		return
	}

	params := pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter: pledge.Submitter{
			ID:     caller.UserID,
			Name:   caller.Name,
			Region: caller.Region,
		},
		Primary: pledge.PrimaryPledge{
			Amount: *req.Amount,
			Region: req.Region,
			Gender: pledge.Gender(req.Gender),
		},
		Dependents: make([]pledge.DependentPledge, len(req.AdditionalPledges)),
	}

	for i, ap := range req.AdditionalPledges {
		params.Dependents[i] = pledge.DependentPledge{
			Name:         ap.Name,
			Relationship: ap.Relationship,
			Amount:       *ap.Amount,
			Region:       ap.Region,
			Gender:       pledge.Gender(ap.Gender),
		}
	}

	receipt, err := h.svc.Submit(r.Context(), params)
	if err != nil {
		h.writeSubmitError(w, err, initiativeID, caller.UserID)
		return
	}

	response.JSON(w, http.StatusCreated, submitResponse{
		Message: h.printer.Sprintf("Pledge of %s recorded for %d participants",
			pledge.FormatAmount(h.printer, receipt.TotalAmount), receipt.TotalPledges),
		Pledge: toReceiptResponse(receipt),
	})
}

func (h *Handler) writeSubmitError(w http.ResponseWriter, err error, initiativeID, userID uuid.UUID) {
	var verr *pledge.ValidationError

	switch {
	case errors.As(err, &verr):
		code := response.CodeValidationFailed
		if errors.Is(verr.Kind, pledge.ErrInvalidAmount) {
			code = response.CodeInvalidAmount
		}

		fields := make([]response.FieldError, len(verr.Fields))
		for i, f := range verr.Fields {
			fields[i] = response.FieldError{Field: f.Field, Message: f.Message}
		}

		response.Fields(w, http.StatusBadRequest, code, verr.Kind.Error(), fields)
	case errors.Is(err, pledge.ErrInitiativeNotAvailable):
		response.Error(w, http.StatusNotFound, response.CodeInitiativeUnavailable, "initiative is not open for pledges")
	case errors.Is(err, pledge.ErrDuplicateSubmission):
		response.Error(w, http.StatusConflict, response.CodeDuplicateSubmission, "you have already pledged to this initiative")
	default:
		slog.Error("failed to submit pledge", "initiative_id", initiativeID, "user_id", userID, "error", err)
		response.Internal(w)
	}
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	initiativeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, response.CodeInvalidID, "invalid initiative id")
		return
	}

	ov, err := h.svc.Overview(r.Context(), initiativeID)
	if err != nil {
		if errors.Is(err, initiative.ErrNotFound) {
			response.Error(w, http.StatusNotFound, response.CodeNotFound, "initiative not found")
			return
		}

		slog.Error("failed to load pledge overview", "initiative_id", initiativeID, "error", err)
		response.Internal(w)

		return
	}

	response.JSON(w, http.StatusOK, toOverviewResponse(ov))
}
