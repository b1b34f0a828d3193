package initiative

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=initiative
type Repository interface {
	CreateInitiative(ctx context.Context, in *Initiative) error
	GetInitiative(ctx context.Context, id uuid.UUID) (*Initiative, error)
	ListInitiatives(ctx context.Context, filter ListFilter) ([]*Initiative, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) (*Initiative, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Title              string
	Description        string
	TargetAmount       decimal.Decimal
	TargetParticipants int
	CreatedBy          *uuid.UUID
}

type ListFilter struct {
	Status *Status
}

// Create stores a new initiative in draft with zeroed aggregates.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Initiative, error) {
	problems := map[string]string{}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		problems["title"] = "is required"
	}

	if params.TargetAmount.IsNegative() {
		problems["targetAmount"] = "must not be negative"
	}

	if params.TargetParticipants < 1 {
		problems["targetParticipants"] = "must be at least 1"
	}

	if len(problems) > 0 {
		return nil, &InvalidError{Problems: problems}
	}

	in := &Initiative{
		Title:              title,
		Description:        strings.TrimSpace(params.Description),
		Status:             StatusDraft,
		TargetAmount:       params.TargetAmount,
		TargetParticipants: params.TargetParticipants,
		CurrentAmount:      decimal.Zero,
		CreatedBy:          params.CreatedBy,
	}

	if err := s.repo.CreateInitiative(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Initiative, error) {
	return s.repo.GetInitiative(ctx, id)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Initiative, error) {
	return s.repo.ListInitiatives(ctx, filter)
}

// UpdateStatus moves the initiative along its lifecycle. Pledges already
// recorded are kept whatever the target status.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, next Status) (*Initiative, error) {
	if !next.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	current, err := s.repo.GetInitiative(ctx, id)
	if err != nil {
		return nil, err
	}

	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, next)
	}

	return s.repo.UpdateStatus(ctx, id, current.Status, next)
}
