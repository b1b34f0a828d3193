package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

// Store runs the dashboard aggregations. Every query is a plain read at the
// database's default read-committed isolation and takes no row locks, so it
// never waits on an in-flight submission.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// where renders the shared ledger filter. Placeholders start at $1.
func where(f analytics.Filter) (string, []any) {
	clause := "created_at >= $1 AND created_at < $2"
	args := []any{f.From, f.To}

	if f.InitiativeID != nil {
		clause += " AND initiative_id = $3"

		args = append(args, *f.InitiativeID)
	}

	return clause, args
}

func (s *Store) Overall(ctx context.Context, f analytics.Filter) (*pledge.Stats, error) {
	clause, args := where(f)

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
		WHERE ` + clause

	var st pledge.Stats

	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&st.Count, &st.Total, &st.Contributors,
		&st.Genders.Male, &st.Genders.Female, &st.Genders.Other, &st.Genders.Unspecified,
	)
	if err != nil {
		return nil, fmt.Errorf("computing overall stats: %w", err)
	}

	return &st, nil
}

// Initiatives lists every non-draft initiative with its current aggregates.
// Progress is cumulative and ignores the date range.
func (s *Store) Initiatives(ctx context.Context, f analytics.Filter) ([]*initiative.Initiative, error) {
	query := `
		SELECT id, title, status, target_amount, target_participants, current_amount, current_participants
		FROM initiatives
		WHERE status <> 'draft'`

	var args []any

	if f.InitiativeID != nil {
		query += " AND id = $1"

		args = append(args, *f.InitiativeID)
	}

	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing initiative progress: %w", err)
	}
	defer rows.Close()

	var out []*initiative.Initiative

	for rows.Next() {
		var (
			in     initiative.Initiative
			status string
		)

		if err := rows.Scan(
			&in.ID, &in.Title, &status, &in.TargetAmount, &in.TargetParticipants,
			&in.CurrentAmount, &in.CurrentParticipants,
		); err != nil {
			return nil, fmt.Errorf("scanning initiative progress: %w", err)
		}

		in.Status = initiative.Status(status)
		out = append(out, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating initiative progress: %w", err)
	}

	return out, nil
}

func (s *Store) Regions(ctx context.Context, f analytics.Filter) ([]pledge.RegionTotal, error) {
	clause, args := where(f)

	query := `
		SELECT region, COUNT(*), SUM(amount)
		FROM pledges
		WHERE ` + clause + `
		GROUP BY region
		ORDER BY SUM(amount) DESC, region ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("region stats: %w", err)
	}
	defer rows.Close()

	var out []pledge.RegionTotal

	for rows.Next() {
		var rt pledge.RegionTotal
		if err := rows.Scan(&rt.Region, &rt.Count, &rt.Total); err != nil {
			return nil, fmt.Errorf("scanning region stats: %w", err)
		}

		out = append(out, rt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating region stats: %w", err)
	}

	return out, nil
}

func (s *Store) DailyTotals(ctx context.Context, f analytics.Filter) ([]analytics.DayTotal, error) {
	clause, args := where(f)

	query := `
		SELECT date_trunc('day', created_at AT TIME ZONE 'UTC') AS day, COUNT(*), SUM(amount)
		FROM pledges
		WHERE ` + clause + `
		GROUP BY day
		ORDER BY day ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	defer rows.Close()

	var out []analytics.DayTotal

	for rows.Next() {
		var d analytics.DayTotal
		if err := rows.Scan(&d.Day, &d.Count, &d.Total); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}

		out = append(out, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating daily totals: %w", err)
	}

	return out, nil
}

func (s *Store) AmountHistogram(ctx context.Context, f analytics.Filter, upper []decimal.Decimal) ([]analytics.BucketCount, error) {
	clause, args := where(f)

	var bucket strings.Builder

	bucket.WriteString("CASE")

	for i, edge := range upper {
		args = append(args, edge)
		fmt.Fprintf(&bucket, " WHEN amount < $%d THEN %d", len(args), i)
	}

	fmt.Fprintf(&bucket, " ELSE %d END", len(upper))

	query := `
		SELECT ` + bucket.String() + ` AS bucket, COUNT(*), SUM(amount)
		FROM pledges
		WHERE ` + clause + `
		GROUP BY bucket
		ORDER BY bucket ASC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("amount histogram: %w", err)
	}
	defer rows.Close()

	var out []analytics.BucketCount

	for rows.Next() {
		var b analytics.BucketCount
		if err := rows.Scan(&b.Index, &b.Count, &b.Total); err != nil {
			return nil, fmt.Errorf("scanning histogram bucket: %w", err)
		}

		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating histogram: %w", err)
	}

	return out, nil
}

// Leaderboard ranks contributors by total pledged, earliest first pledge
// winning ties.
func (s *Store) Leaderboard(ctx context.Context, f analytics.Filter, limit int) ([]analytics.LeaderboardEntry, error) {
	clause, args := where(f)
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT contributor_id, MAX(contributor_name), SUM(amount), COUNT(*), MIN(created_at)
		FROM pledges
		WHERE %s
		GROUP BY contributor_id
		ORDER BY SUM(amount) DESC, MIN(created_at) ASC, contributor_id ASC
		LIMIT $%d`, clause, len(args))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	defer rows.Close()

	var out []analytics.LeaderboardEntry

	for rows.Next() {
		var e analytics.LeaderboardEntry
		if err := rows.Scan(&e.ContributorID, &e.Name, &e.Total, &e.Pledges, &e.FirstPledgedAt); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}

		out = append(out, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard: %w", err)
	}

	return out, nil
}
