package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/pledger/internal/clock"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

// BucketCount is the ledger total for histogram bucket Index.
type BucketCount struct {
	Index int
	Count int
	Total decimal.Decimal
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=analytics
type Repository interface {
	Overall(ctx context.Context, f Filter) (*pledge.Stats, error)
	Initiatives(ctx context.Context, f Filter) ([]*initiative.Initiative, error)
	Regions(ctx context.Context, f Filter) ([]pledge.RegionTotal, error)
	DailyTotals(ctx context.Context, f Filter) ([]DayTotal, error)
	// AmountHistogram counts rows per bucket, where bucket i holds amounts
	// below upper[i] and at or above upper[i-1]; bucket len(upper) is open.
	AmountHistogram(ctx context.Context, f Filter, upper []decimal.Decimal) ([]BucketCount, error)
	Leaderboard(ctx context.Context, f Filter, limit int) ([]LeaderboardEntry, error)
}

// Cache stores finished reports. Implementations report a miss as (nil, nil).
type Cache interface {
	Get(ctx context.Context, key string) (*Report, error)
	Set(ctx context.Context, key string, r *Report, ttl time.Duration) error
}

// Upper edges of the fixed histogram buckets. The first bucket starts at the
// minimum pledge amount.
var bucketEdges = []decimal.Decimal{
	decimal.NewFromInt(2000),
	decimal.NewFromInt(5000),
	decimal.NewFromInt(10000),
	decimal.NewFromInt(25000),
	decimal.NewFromInt(50000),
}

const (
	defaultTrendWindowDays = 30
	defaultLeaderboardSize = 10
)

type Service struct {
	repo            Repository
	clock           clock.Clock
	cache           Cache
	cacheTTL        time.Duration
	minimum         decimal.Decimal
	trendWindowDays int
	leaderboardSize int
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

func WithCache(c Cache, ttl time.Duration) Option {
	return func(s *Service) {
		s.cache = c
		s.cacheTTL = ttl
	}
}

func WithMinimumAmount(d decimal.Decimal) Option {
	return func(s *Service) { s.minimum = d }
}

func WithTrendWindow(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.trendWindowDays = days
		}
	}
}

func WithLeaderboardSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.leaderboardSize = n
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	svc := &Service{
		repo:            repo,
		clock:           clock.NewSystem(),
		minimum:         pledge.DefaultMinimumAmount,
		trendWindowDays: defaultTrendWindowDays,
		leaderboardSize: defaultLeaderboardSize,
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc
}

// Now is the service clock, used by callers to resolve relative ranges.
func (s *Service) Now() time.Time {
	return s.clock.Now()
}

// Report builds the dashboard for f. Sections are queried concurrently and
// each reads committed data only, so a report never includes a partially
// written submission.
func (s *Service) Report(ctx context.Context, f Filter) (*Report, error) {
	key := f.cacheKey(s.minimum.String())

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("analytics cache read failed", "key", key, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	report := &Report{Filter: f}
	edges := s.bucketEdges()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.repo.Overall(gctx, f)
		if err != nil {
			return fmt.Errorf("overall stats: %w", err)
		}

		report.Overall = *stats

		return nil
	})

	g.Go(func() error {
		initiatives, err := s.repo.Initiatives(gctx, f)
		if err != nil {
			return fmt.Errorf("initiative progress: %w", err)
		}

		report.Initiatives = progressOf(initiatives)

		return nil
	})

	g.Go(func() error {
		regions, err := s.repo.Regions(gctx, f)
		if err != nil {
			return fmt.Errorf("region stats: %w", err)
		}

		report.Regions = regions

		return nil
	})

	g.Go(func() error {
		tf := s.trendFilter(f)

		days, err := s.repo.DailyTotals(gctx, tf)
		if err != nil {
			return fmt.Errorf("daily trend: %w", err)
		}

		report.Trend = fillDays(tf, days)

		return nil
	})

	g.Go(func() error {
		counts, err := s.repo.AmountHistogram(gctx, f, edges[1:])
		if err != nil {
			return fmt.Errorf("amount histogram: %w", err)
		}

		report.Buckets = fillBuckets(edges, counts)

		return nil
	})

	g.Go(func() error {
		leaders, err := s.repo.Leaderboard(gctx, f, s.leaderboardSize)
		if err != nil {
			return fmt.Errorf("leaderboard: %w", err)
		}

		report.Leaderboard = leaders

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, report, s.cacheTTL); err != nil {
			slog.Warn("analytics cache write failed", "key", key, "error", err)
		}
	}

	return report, nil
}

// bucketEdges returns the lower edge of every bucket: the minimum, then each
// fixed edge above it.
func (s *Service) bucketEdges() []decimal.Decimal {
	edges := []decimal.Decimal{s.minimum}

	for _, e := range bucketEdges {
		if e.GreaterThan(s.minimum) {
			edges = append(edges, e)
		}
	}

	return edges
}

// trendFilter narrows f to at most trendWindowDays days ending at f.To.
func (s *Service) trendFilter(f Filter) Filter {
	earliest := f.To.AddDate(0, 0, -s.trendWindowDays)
	if f.From.Before(earliest) {
		f.From = earliest
	}

	return f
}

func progressOf(initiatives []*initiative.Initiative) []InitiativeProgress {
	out := make([]InitiativeProgress, 0, len(initiatives))

	for _, in := range initiatives {
		out = append(out, InitiativeProgress{
			ID:                  in.ID,
			Title:               in.Title,
			Status:              in.Status,
			TargetAmount:        in.TargetAmount,
			TargetParticipants:  in.TargetParticipants,
			CurrentAmount:       in.CurrentAmount,
			CurrentParticipants: in.CurrentParticipants,
			Progress:            in.Progress(),
		})
	}

	return out
}

// fillDays returns one entry per UTC day in [f.From, f.To), zero where the
// ledger has nothing.
func fillDays(f Filter, days []DayTotal) []DayTotal {
	byDay := make(map[string]DayTotal, len(days))
	for _, d := range days {
		byDay[d.Day.UTC().Format(dateLayout)] = d
	}

	var out []DayTotal

	for day := startOfDay(f.From); day.Before(f.To); day = day.AddDate(0, 0, 1) {
		d, ok := byDay[day.Format(dateLayout)]
		if !ok {
			d = DayTotal{Total: decimal.Zero}
		}

		d.Day = day
		out = append(out, d)
	}

	return out
}

func fillBuckets(edges []decimal.Decimal, counts []BucketCount) []Bucket {
	out := make([]Bucket, len(edges))

	for i, lo := range edges {
		out[i] = Bucket{Min: lo, Total: decimal.Zero}

		if i+1 < len(edges) {
			hi := edges[i+1]
			out[i].Max = &hi
		}
	}

	for _, c := range counts {
		if c.Index < 0 || c.Index >= len(out) {
			continue
		}

		out[c.Index].Count = c.Count
		out[c.Index].Total = c.Total
	}

	return out
}
