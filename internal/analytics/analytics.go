package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

// Filter selects ledger rows created in [From, To), optionally for a single
// initiative.
type Filter struct {
	From         time.Time
	To           time.Time
	InitiativeID *uuid.UUID
}

// InitiativeProgress is an initiative's running aggregates against its targets.
// Percentages are raw and exceed 100 when over-subscribed.
type InitiativeProgress struct {
	ID                  uuid.UUID
	Title               string
	Status              initiative.Status
	TargetAmount        decimal.Decimal
	TargetParticipants  int
	CurrentAmount       decimal.Decimal
	CurrentParticipants int
	Progress            initiative.Progress
}

type DayTotal struct {
	Day   time.Time
	Count int
	Total decimal.Decimal
}

// Bucket is one histogram bar covering [Min, Max). Max is nil for the open
// top bucket.
type Bucket struct {
	Min   decimal.Decimal
	Max   *decimal.Decimal
	Count int
	Total decimal.Decimal
}

func (b Bucket) Label() string {
	if b.Max == nil {
		return b.Min.String() + "+"
	}

	return b.Min.String() + "-" + b.Max.String()
}

type LeaderboardEntry struct {
	ContributorID  uuid.UUID
	Name           string
	Total          decimal.Decimal
	Pledges        int
	FirstPledgedAt time.Time
}

// Report is the admin dashboard view of the ledger for one filter.
type Report struct {
	Filter      Filter
	Overall     pledge.Stats
	Initiatives []InitiativeProgress
	Regions     []pledge.RegionTotal
	Trend       []DayTotal
	Buckets     []Bucket
	Leaderboard []LeaderboardEntry
}
