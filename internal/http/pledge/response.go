package pledge

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

type submitResponse struct {
	Message string          `json:"message"`
	Pledge  receiptResponse `json:"pledge"`
}

type receiptResponse struct {
	ID           uuid.UUID               `json:"id"`
	TotalAmount  decimal.Decimal         `json:"totalAmount"`
	TotalPledges int                     `json:"totalPledges"`
	Initiative   receiptInitiativeResult `json:"initiative"`
}

type receiptInitiativeResult struct {
	ID                     uuid.UUID       `json:"id"`
	Title                  string          `json:"title"`
	NewCurrentAmount       decimal.Decimal `json:"newCurrentAmount"`
	NewCurrentParticipants int             `json:"newCurrentParticipants"`
}

func toReceiptResponse(r *pledge.Receipt) receiptResponse {
	return receiptResponse{
		ID:           r.PrimaryID,
		TotalAmount:  r.TotalAmount,
		TotalPledges: r.TotalPledges,
		Initiative: receiptInitiativeResult{
			ID:                     r.Initiative.ID,
			Title:                  r.Initiative.Title,
			NewCurrentAmount:       r.Initiative.CurrentAmount,
			NewCurrentParticipants: r.Initiative.CurrentParticipants,
		},
	}
}

type overviewResponse struct {
	Initiative initiativeResponse `json:"initiative"`
	Stats      statsResponse      `json:"stats"`
	Regions    []regionResponse   `json:"regions"`
}

type initiativeResponse struct {
	ID                  uuid.UUID         `json:"id"`
	Title               string            `json:"title"`
	Status              initiative.Status `json:"status"`
	TargetAmount        decimal.Decimal   `json:"targetAmount"`
	TargetParticipants  int               `json:"targetParticipants"`
	CurrentAmount       decimal.Decimal   `json:"currentAmount"`
	CurrentParticipants int               `json:"currentParticipants"`
	AmountProgress      float64           `json:"amountProgress"`
	ParticipantProgress float64           `json:"participantProgress"`
}

type statsResponse struct {
	Count        int             `json:"count"`
	Sum          decimal.Decimal `json:"sum"`
	Contributors int             `json:"contributors"`
	Average      decimal.Decimal `json:"average"`
	Genders      gendersResponse `json:"genders"`
}

type gendersResponse struct {
	Male        int `json:"male"`
	Female      int `json:"female"`
	Other       int `json:"other"`
	Unspecified int `json:"unspecified"`
}

type regionResponse struct {
	Region string          `json:"region"`
	Count  int             `json:"count"`
	Sum    decimal.Decimal `json:"sum"`
}

func toOverviewResponse(ov *pledge.Overview) overviewResponse {
	progress := ov.Initiative.Progress()

	regions := make([]regionResponse, len(ov.Regions))
	for i, rt := range ov.Regions {
		regions[i] = regionResponse{Region: rt.Region, Count: rt.Count, Sum: rt.Total}
	}

	return overviewResponse{
		Initiative: initiativeResponse{
			ID:                  ov.Initiative.ID,
			Title:               ov.Initiative.Title,
			Status:              ov.Initiative.Status,
			TargetAmount:        ov.Initiative.TargetAmount,
			TargetParticipants:  ov.Initiative.TargetParticipants,
			CurrentAmount:       ov.Initiative.CurrentAmount,
			CurrentParticipants: ov.Initiative.CurrentParticipants,
			AmountProgress:      progress.AmountPercent,
			ParticipantProgress: progress.ParticipantPercent,
		},
		Stats: statsResponse{
			Count:        ov.Stats.Count,
			Sum:          ov.Stats.Total,
			Contributors: ov.Stats.Contributors,
			Average:      ov.Stats.Average(),
			Genders: gendersResponse{
				Male:        ov.Stats.Genders.Male,
				Female:      ov.Stats.Genders.Female,
				Other:       ov.Stats.Genders.Other,
				Unspecified: ov.Stats.Genders.Unspecified,
			},
		},
		Regions: regions,
	}
}
