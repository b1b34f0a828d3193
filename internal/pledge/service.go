package pledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=pledge
type Repository interface {
	GetInitiative(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error)
	FindSubmission(ctx context.Context, initiativeID, contributorID uuid.UUID) ([]*Pledge, error)
	StatsFor(ctx context.Context, initiativeID uuid.UUID) (*Stats, error)
	RegionBreakdown(ctx context.Context, initiativeID uuid.UUID) ([]RegionTotal, error)

	BeginSubmission(ctx context.Context) (SubmissionTx, error)
}

// SubmissionTx is one atomic unit of work. Nothing written through it is
// visible to other sessions until Commit; Rollback after Commit is a no-op.
type SubmissionTx interface {
	LockInitiative(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error)
	FindSubmission(ctx context.Context, initiativeID, contributorID uuid.UUID) ([]*Pledge, error)
	InsertBatch(ctx context.Context, rows []*Pledge) error
	IncrementAggregates(ctx context.Context, initiativeID uuid.UUID, amount decimal.Decimal, participants int) (*initiative.Initiative, error)
	Commit() error
	Rollback() error
}

// DefaultMinimumAmount is the smallest pledge accepted unless overridden.
var DefaultMinimumAmount = decimal.NewFromInt(1200)

type Service struct {
	repo    Repository
	minimum decimal.Decimal
}

type Option func(*Service)

// WithMinimumAmount overrides the minimum accepted amount per pledge row.
func WithMinimumAmount(d decimal.Decimal) Option {
	return func(s *Service) {
		if !d.IsNegative() {
			s.minimum = d
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	svc := &Service{
		repo:    repo,
		minimum: DefaultMinimumAmount,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

func (s *Service) MinimumAmount() decimal.Decimal {
	return s.minimum
}

// Submitter is the authenticated caller, as resolved by the access gate.
type Submitter struct {
	ID     uuid.UUID
	Name   string
	Region string
}

type PrimaryPledge struct {
	Amount decimal.Decimal
	Region string
	Gender Gender
}

type DependentPledge struct {
	Name         string
	Relationship string
	Amount       decimal.Decimal
	Region       string
	Gender       Gender
}

type SubmitParams struct {
	InitiativeID uuid.UUID
	Submitter    Submitter
	Primary      PrimaryPledge
	Dependents   []DependentPledge
}

// Submit records the submitter's pledge plus any dependent pledges and moves
// the initiative's aggregates by their total, all in one transaction. A
// submitter gets exactly one submission per initiative.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Receipt, error) {
	params = params.normalize()

	if err := params.validate(s.minimum); err != nil {
		return nil, err
	}

	// Fail fast outside the transaction; the same checks are repeated under the row lock.
	if err := s.precheck(ctx, params); err != nil {
		return nil, err
	}

	stx, err := s.repo.BeginSubmission(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin submission: %w", err)
	}
	defer stx.Rollback()

	locked, err := stx.LockInitiative(ctx, params.InitiativeID)
	if err != nil {
		return nil, notAvailable(err)
	}

	if !locked.Status.AcceptsPledges() {
		return nil, ErrInitiativeNotAvailable
	}

	existing, err := stx.FindSubmission(ctx, params.InitiativeID, params.Submitter.ID)
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}

	if len(existing) > 0 {
		return nil, ErrDuplicateSubmission
	}

	rows := buildRows(params)
	if err := stx.InsertBatch(ctx, rows); err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			return nil, err
		}

		return nil, fmt.Errorf("insert pledges: %w", err)
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Amount)
	}

	updated, err := stx.IncrementAggregates(ctx, params.InitiativeID, total, len(rows))
	if err != nil {
		return nil, fmt.Errorf("increment aggregates: %w", err)
	}

	if err := stx.Commit(); err != nil {
		return nil, fmt.Errorf("commit submission: %w", err)
	}

	return &Receipt{
		PrimaryID:    rows[0].ID,
		TotalAmount:  total,
		TotalPledges: len(rows),
		Pledges:      rows,
		Initiative:   updated,
	}, nil
}

func (s *Service) precheck(ctx context.Context, params SubmitParams) error {
	in, err := s.repo.GetInitiative(ctx, params.InitiativeID)
	if err != nil {
		return notAvailable(err)
	}

	if !in.Status.AcceptsPledges() {
		return ErrInitiativeNotAvailable
	}

	existing, err := s.repo.FindSubmission(ctx, params.InitiativeID, params.Submitter.ID)
	if err != nil {
		return fmt.Errorf("find submission: %w", err)
	}

	if len(existing) > 0 {
		return ErrDuplicateSubmission
	}

	return nil
}

func notAvailable(err error) error {
	if errors.Is(err, initiative.ErrNotFound) {
		return ErrInitiativeNotAvailable
	}

	return fmt.Errorf("get initiative: %w", err)
}

// buildRows returns the submitter's own row first, followed by one row per dependent.
func buildRows(params SubmitParams) []*Pledge {
	rows := make([]*Pledge, 0, len(params.Dependents)+1)

	rows = append(rows, &Pledge{
		InitiativeID:    params.InitiativeID,
		ContributorID:   params.Submitter.ID,
		ContributorName: params.Submitter.Name,
		Beneficiary:     Self{Name: params.Submitter.Name, Gender: params.Primary.Gender},
		Amount:          params.Primary.Amount,
		Region:          params.Primary.Region,
	})

	for _, d := range params.Dependents {
		rows = append(rows, &Pledge{
			InitiativeID:    params.InitiativeID,
			ContributorID:   params.Submitter.ID,
			ContributorName: params.Submitter.Name,
			Beneficiary:     Dependent{Name: d.Name, Relation: d.Relationship, Gender: d.Gender},
			Amount:          d.Amount,
			Region:          d.Region,
		})
	}

	return rows
}

// Overview returns the initiative with its ledger stats and regional split.
func (s *Service) Overview(ctx context.Context, initiativeID uuid.UUID) (*Overview, error) {
	in, err := s.repo.GetInitiative(ctx, initiativeID)
	if err != nil {
		return nil, err
	}

	// Drafts are not public yet.
	if in.Status == initiative.StatusDraft {
		return nil, initiative.ErrNotFound
	}

	stats, err := s.repo.StatsFor(ctx, initiativeID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	regions, err := s.repo.RegionBreakdown(ctx, initiativeID)
	if err != nil {
		return nil, fmt.Errorf("region breakdown: %w", err)
	}

	return &Overview{Initiative: in, Stats: stats, Regions: regions}, nil
}
