package pledge

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

// Gender of a pledge beneficiary. The zero value means unspecified, which is
// only allowed on the contributor's own row.
type Gender string

const (
	GenderUnspecified Gender = ""
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}

	return false
}

// Kind tags a ledger row as the contributor's own pledge or a dependent's.
type Kind string

const (
	KindSelf      Kind = "self"
	KindDependent Kind = "dependent"
)

// RelationshipSelf is the relationship recorded on the contributor's own row.
const RelationshipSelf = "self"

// Beneficiary is whom a pledge row is made on behalf of: either Self or a
// Dependent. Every submission holds exactly one Self row.
type Beneficiary interface {
	Kind() Kind
	BeneficiaryName() string
	Relationship() string
	BeneficiaryGender() Gender
}

// Self is the contributing user pledging for themselves.
type Self struct {
	Name   string
	Gender Gender
}

func (Self) Kind() Kind                  { return KindSelf }
func (s Self) BeneficiaryName() string   { return s.Name }
func (Self) Relationship() string        { return RelationshipSelf }
func (s Self) BeneficiaryGender() Gender { return s.Gender }

// Dependent is a named person the contributor pledges on behalf of.
type Dependent struct {
	Name     string
	Relation string
	Gender   Gender
}

func (Dependent) Kind() Kind                  { return KindDependent }
func (d Dependent) BeneficiaryName() string   { return d.Name }
func (d Dependent) Relationship() string      { return d.Relation }
func (d Dependent) BeneficiaryGender() Gender { return d.Gender }

// Pledge is one immutable ledger row.
type Pledge struct {
	ID              uuid.UUID
	InitiativeID    uuid.UUID
	ContributorID   uuid.UUID
	ContributorName string
	Beneficiary     Beneficiary
	Amount          decimal.Decimal
	Region          string
	CreatedAt       time.Time
}

// Receipt summarises a committed submission.
type Receipt struct {
	PrimaryID    uuid.UUID
	TotalAmount  decimal.Decimal
	TotalPledges int
	Pledges      []*Pledge
	Initiative   *initiative.Initiative
}

// GenderCounts breaks ledger rows down by beneficiary gender.
type GenderCounts struct {
	Male        int
	Female      int
	Other       int
	Unspecified int
}

// Stats aggregates the ledger rows of one initiative.
type Stats struct {
	Count        int
	Total        decimal.Decimal
	Contributors int
	Genders      GenderCounts
}

// Average is the mean pledge amount rounded to cents, zero for an empty ledger.
func (s *Stats) Average() decimal.Decimal {
	if s.Count == 0 {
		return decimal.Zero
	}

	return s.Total.Div(decimal.NewFromInt(int64(s.Count))).Round(2)
}

type RegionTotal struct {
	Region string
	Count  int
	Total  decimal.Decimal
}

// Overview is the public read model of an initiative's ledger.
type Overview struct {
	Initiative *initiative.Initiative
	Stats      *Stats
	Regions    []RegionTotal
}
