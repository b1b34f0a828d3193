package initiative

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the lifecycle state of an initiative.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed, StatusCompleted:
		return true
	}

	return false
}

// AcceptsPledges reports whether new pledge submissions may be recorded.
func (s Status) AcceptsPledges() bool {
	return s == StatusActive
}

var transitions = map[Status][]Status{
	StatusDraft:  {StatusActive},
	StatusActive: {StatusClosed, StatusCompleted},
	StatusClosed: {StatusActive, StatusCompleted},
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Initiative is a fundraising campaign. CurrentAmount and CurrentParticipants
// mirror the sum and count of the initiative's pledge rows and are only ever
// moved by a pledge submission.
type Initiative struct {
	ID                  uuid.UUID
	Title               string
	Description         string
	Status              Status
	TargetAmount        decimal.Decimal
	TargetParticipants  int
	CurrentAmount       decimal.Decimal
	CurrentParticipants int
	CreatedBy           *uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Progress is the raw completion percentage of both targets. Values above 100
// mean the initiative is over-subscribed.
type Progress struct {
	AmountPercent      float64
	ParticipantPercent float64
}

func (i *Initiative) Progress() Progress {
	return ComputeProgress(i.CurrentAmount, i.TargetAmount, i.CurrentParticipants, i.TargetParticipants)
}

// ComputeProgress returns sum/target*100 and count/target*100. A zero target
// yields zero rather than dividing by zero.
func ComputeProgress(amount, targetAmount decimal.Decimal, participants, targetParticipants int) Progress {
	var p Progress

	if targetAmount.IsPositive() {
		p.AmountPercent = amount.Div(targetAmount).Mul(decimal.NewFromInt(100)).InexactFloat64()
	}

	if targetParticipants > 0 {
		p.ParticipantPercent = float64(participants) / float64(targetParticipants) * 100
	}

	return p
}
