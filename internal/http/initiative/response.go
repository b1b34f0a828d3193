package initiative

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

type initiativeResponse struct {
	ID                  uuid.UUID         `json:"id"`
	Title               string            `json:"title"`
	Description         string            `json:"description,omitempty"`
	Status              initiative.Status `json:"status"`
	TargetAmount        decimal.Decimal   `json:"targetAmount"`
	TargetParticipants  int               `json:"targetParticipants"`
	CurrentAmount       decimal.Decimal   `json:"currentAmount"`
	CurrentParticipants int               `json:"currentParticipants"`
	AmountProgress      float64           `json:"amountProgress"`
	ParticipantProgress float64           `json:"participantProgress"`
	CreatedBy           *uuid.UUID        `json:"createdBy,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}

func toResponse(in *initiative.Initiative) initiativeResponse {
	progress := in.Progress()

	return initiativeResponse{
		ID:                  in.ID,
		Title:               in.Title,
		Description:         in.Description,
		Status:              in.Status,
		TargetAmount:        in.TargetAmount,
		TargetParticipants:  in.TargetParticipants,
		CurrentAmount:       in.CurrentAmount,
		CurrentParticipants: in.CurrentParticipants,
		AmountProgress:      progress.AmountPercent,
		ParticipantProgress: progress.ParticipantPercent,
		CreatedBy:           in.CreatedBy,
		CreatedAt:           in.CreatedAt,
		UpdatedAt:           in.UpdatedAt,
	}
}
