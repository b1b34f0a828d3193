package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/database"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

// Store persists initiatives. It runs against either the pool or an open
// transaction, so the pledge ledger can lock and bump aggregates inside its
// own unit of work.
type Store struct {
	db database.DBTX
}

func New(db database.DBTX) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order matches selectColumns.
func scanInitiative(s scanner) (*initiative.Initiative, error) {
	var in initiative.Initiative

	var status string

	if err := s.Scan(
		&in.ID, &in.Title, &in.Description, &status,
		&in.TargetAmount, &in.TargetParticipants, &in.CurrentAmount, &in.CurrentParticipants,
		&in.CreatedBy, &in.CreatedAt, &in.UpdatedAt,
	); err != nil {
		return nil, err
	}

	in.Status = initiative.Status(status)

	return &in, nil
}

const selectColumns = `
	id, title, description, status, target_amount, target_participants,
	current_amount, current_participants, created_by, created_at, updated_at
`

func (s *Store) CreateInitiative(ctx context.Context, in *initiative.Initiative) error {
	query := `
		INSERT INTO initiatives (title, description, status, target_amount, target_participants, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, current_amount, current_participants, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		in.Title,
		in.Description,
		in.Status,
		in.TargetAmount,
		in.TargetParticipants,
		in.CreatedBy,
	).Scan(&in.ID, &in.CurrentAmount, &in.CurrentParticipants, &in.CreatedAt, &in.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating initiative: %w", err)
	}

	return nil
}

func (s *Store) GetInitiative(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error) {
	query := `SELECT ` + selectColumns + ` FROM initiatives WHERE id = $1`

	return s.getOne(ctx, query, id)
}

// GetForUpdate reads the initiative and takes a row lock held until the
// surrounding transaction ends. Submissions against the same initiative queue
// here; other initiatives are unaffected.
func (s *Store) GetForUpdate(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error) {
	query := `SELECT ` + selectColumns + ` FROM initiatives WHERE id = $1 FOR UPDATE`

	return s.getOne(ctx, query, id)
}

func (s *Store) getOne(ctx context.Context, query string, id uuid.UUID) (*initiative.Initiative, error) {
	in, err := scanInitiative(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, initiative.ErrNotFound
		}

		return nil, fmt.Errorf("getting initiative: %w", err)
	}

	return in, nil
}

func (s *Store) ListInitiatives(ctx context.Context, filter initiative.ListFilter) ([]*initiative.Initiative, error) {
	query := `SELECT ` + selectColumns + ` FROM initiatives`

	var args []any

	if filter.Status != nil {
		query += " WHERE status = $1"

		args = append(args, *filter.Status)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing initiatives: %w", err)
	}
	defer rows.Close()

	var out []*initiative.Initiative

	for rows.Next() {
		in, err := scanInitiative(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning initiative: %w", err)
		}

		out = append(out, in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating initiatives: %w", err)
	}

	return out, nil
}

// UpdateStatus only applies when the stored status still equals from, so two
// admins racing on the same initiative cannot skip a lifecycle step.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to initiative.Status) (*initiative.Initiative, error) {
	query := `
		UPDATE initiatives
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + selectColumns

	in, err := scanInitiative(s.db.QueryRowContext(ctx, query, to, id, from))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: status changed concurrently", initiative.ErrInvalidTransition)
		}

		return nil, fmt.Errorf("updating initiative status: %w", err)
	}

	return in, nil
}

// IncrementAggregates adds the deltas to the stored counters in a single
// relative UPDATE and returns the new snapshot. The arithmetic happens in
// Postgres against the current row, never against a value read earlier.
func (s *Store) IncrementAggregates(ctx context.Context, id uuid.UUID, amount decimal.Decimal, participants int) (*initiative.Initiative, error) {
	query := `
		UPDATE initiatives
		SET current_amount = current_amount + $1,
			current_participants = current_participants + $2,
			updated_at = NOW()
		WHERE id = $3
		RETURNING ` + selectColumns

	in, err := scanInitiative(s.db.QueryRowContext(ctx, query, amount, participants, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, initiative.ErrNotFound
		}

		return nil, fmt.Errorf("incrementing aggregates: %w", err)
	}

	return in, nil
}
