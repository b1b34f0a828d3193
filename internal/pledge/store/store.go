package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/database"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	initiativestore "github.com/MrJamesThe3rd/pledger/internal/initiative/store"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

const submissionConstraint = "uq_pledges_one_submission"

type Store struct {
	db          *sql.DB
	initiatives *initiativestore.Store
}

func New(db *sql.DB) *Store {
	return &Store{
		db:          db,
		initiatives: initiativestore.New(db),
	}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order matches selectPledgeColumns.
func scanPledge(s scanner) (*pledge.Pledge, error) {
	var (
		p            pledge.Pledge
		kind         string
		name         string
		relationship string
		gender       sql.NullString
	)

	if err := s.Scan(
		&p.ID, &p.InitiativeID, &p.ContributorID, &p.ContributorName,
		&kind, &name, &relationship, &gender,
		&p.Amount, &p.Region, &p.CreatedAt,
	); err != nil {
		return nil, err
	}

	g := pledge.Gender(gender.String)

	if pledge.Kind(kind) == pledge.KindSelf {
		p.Beneficiary = pledge.Self{Name: name, Gender: g}
	} else {
		p.Beneficiary = pledge.Dependent{Name: name, Relation: relationship, Gender: g}
	}

	return &p, nil
}

const selectPledgeColumns = `
	id, initiative_id, contributor_id, contributor_name, kind, beneficiary_name,
	beneficiary_relationship, beneficiary_gender, amount, region, created_at
`

func (s *Store) GetInitiative(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error) {
	return s.initiatives.GetInitiative(ctx, id)
}

func (s *Store) FindSubmission(ctx context.Context, initiativeID, contributorID uuid.UUID) ([]*pledge.Pledge, error) {
	return findSubmission(ctx, s.db, initiativeID, contributorID)
}

// findSubmission returns every row the contributor wrote against the
// initiative, the self row first.
func findSubmission(ctx context.Context, db database.DBTX, initiativeID, contributorID uuid.UUID) ([]*pledge.Pledge, error) {
	query := `SELECT ` + selectPledgeColumns + `
		FROM pledges
		WHERE initiative_id = $1 AND contributor_id = $2
		ORDER BY (kind = 'self') DESC, created_at ASC, id ASC`

	rows, err := db.QueryContext(ctx, query, initiativeID, contributorID)
	if err != nil {
		return nil, fmt.Errorf("finding submission: %w", err)
	}
	defer rows.Close()

	var out []*pledge.Pledge

	for rows.Next() {
		p, err := scanPledge(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pledge: %w", err)
		}

		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pledges: %w", err)
	}

	return out, nil
}

func (s *Store) StatsFor(ctx context.Context, initiativeID uuid.UUID) (*pledge.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COUNT(DISTINCT contributor_id),
			COUNT(*) FILTER (WHERE beneficiary_gender = 'male'),
			COUNT(*) FILTER (WHERE beneficiary_gender = 'female'),
			COUNT(*) FILTER (WHERE beneficiary_gender = 'other'),
			COUNT(*) FILTER (WHERE beneficiary_gender IS NULL)
		FROM pledges
		WHERE initiative_id = $1
	`

	var st pledge.Stats

	err := s.db.QueryRowContext(ctx, query, initiativeID).Scan(
		&st.Count, &st.Total, &st.Contributors,
		&st.Genders.Male, &st.Genders.Female, &st.Genders.Other, &st.Genders.Unspecified,
	)
	if err != nil {
		return nil, fmt.Errorf("computing pledge stats: %w", err)
	}

	return &st, nil
}

func (s *Store) RegionBreakdown(ctx context.Context, initiativeID uuid.UUID) ([]pledge.RegionTotal, error) {
	query := `
		SELECT region, COUNT(*), SUM(amount)
		FROM pledges
		WHERE initiative_id = $1
		GROUP BY region
		ORDER BY SUM(amount) DESC, region ASC
	`

	rows, err := s.db.QueryContext(ctx, query, initiativeID)
	if err != nil {
		return nil, fmt.Errorf("region breakdown: %w", err)
	}
	defer rows.Close()

	var out []pledge.RegionTotal

	for rows.Next() {
		var rt pledge.RegionTotal
		if err := rows.Scan(&rt.Region, &rt.Count, &rt.Total); err != nil {
			return nil, fmt.Errorf("scanning region total: %w", err)
		}

		out = append(out, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating region totals: %w", err)
	}

	return out, nil
}

type submissionTx struct {
	tx          *sql.Tx
	initiatives *initiativestore.Store
}

// BeginSubmission opens a read-committed transaction. Serialisation between
// submissions comes from the initiative row lock taken in LockInitiative.
func (s *Store) BeginSubmission(ctx context.Context) (pledge.SubmissionTx, error) {
	dbTx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("beginning submission tx: %w", err)
	}

	return &submissionTx{
		tx:          dbTx,
		initiatives: initiativestore.New(dbTx),
	}, nil
}

func (stx *submissionTx) Commit() error   { return stx.tx.Commit() }
func (stx *submissionTx) Rollback() error { return stx.tx.Rollback() }

func (stx *submissionTx) LockInitiative(ctx context.Context, id uuid.UUID) (*initiative.Initiative, error) {
	return stx.initiatives.GetForUpdate(ctx, id)
}

func (stx *submissionTx) FindSubmission(ctx context.Context, initiativeID, contributorID uuid.UUID) ([]*pledge.Pledge, error) {
	return findSubmission(ctx, stx.tx, initiativeID, contributorID)
}

func (stx *submissionTx) IncrementAggregates(ctx context.Context, initiativeID uuid.UUID, amount decimal.Decimal, participants int) (*initiative.Initiative, error) {
	return stx.initiatives.IncrementAggregates(ctx, initiativeID, amount, participants)
}

func (stx *submissionTx) InsertBatch(ctx context.Context, rows []*pledge.Pledge) error {
	query := `
		INSERT INTO pledges (initiative_id, contributor_id, contributor_name, kind, beneficiary_name,
			beneficiary_relationship, beneficiary_gender, amount, region)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	for _, p := range rows {
		var gender any
		if g := p.Beneficiary.BeneficiaryGender(); g != pledge.GenderUnspecified {
			gender = string(g)
		}

		err := stx.tx.QueryRowContext(ctx, query,
			p.InitiativeID,
			p.ContributorID,
			p.ContributorName,
			string(p.Beneficiary.Kind()),
			p.Beneficiary.BeneficiaryName(),
			p.Beneficiary.Relationship(),
			gender,
			p.Amount,
			p.Region,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			if database.IsUniqueViolation(err, submissionConstraint) {
				return pledge.ErrDuplicateSubmission
			}

			return fmt.Errorf("inserting pledge: %w", err)
		}
	}

	return nil
}
