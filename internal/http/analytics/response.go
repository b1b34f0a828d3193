package analytics

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/pledger/internal/analytics"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
)

type reportResponse struct {
	Range       rangeResponse         `json:"range"`
	Overall     overallResponse       `json:"overall"`
	Initiatives []initiativeProgress  `json:"initiatives"`
	Regions     []regionResponse      `json:"regions"`
	Trend       []dayResponse         `json:"trend"`
	Buckets     []bucketResponse      `json:"amountDistribution"`
	Leaderboard []leaderboardResponse `json:"leaderboard"`
}

type rangeResponse struct {
	From         string     `json:"fromDate"`
	To           string     `json:"toDate"`
	InitiativeID *uuid.UUID `json:"initiativeId,omitempty"`
}

type overallResponse struct {
	Count        int             `json:"count"`
	Sum          decimal.Decimal `json:"sum"`
	Contributors int             `json:"contributors"`
	Average      decimal.Decimal `json:"average"`
	Genders      map[string]int  `json:"genders"`
}

type initiativeProgress struct {
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

type regionResponse struct {
	Region string          `json:"region"`
	Count  int             `json:"count"`
	Sum    decimal.Decimal `json:"sum"`
}

type dayResponse struct {
	Date  string          `json:"date"`
	Count int             `json:"count"`
	Sum   decimal.Decimal `json:"sum"`
}

type bucketResponse struct {
	Label string           `json:"label"`
	Min   decimal.Decimal  `json:"min"`
	Max   *decimal.Decimal `json:"max"`
	Count int              `json:"count"`
	Sum   decimal.Decimal  `json:"sum"`
}

type leaderboardResponse struct {
	Rank           int             `json:"rank"`
	ContributorID  uuid.UUID       `json:"contributorId"`
	Name           string          `json:"name"`
	Total          decimal.Decimal `json:"total"`
	Pledges        int             `json:"pledges"`
	FirstPledgedAt time.Time       `json:"firstPledgedAt"`
}

func toResponse(r *analytics.Report) reportResponse {
	resp := reportResponse{
		Range: rangeResponse{
			From:         r.Filter.From.Format(time.DateOnly),
			To:           r.Filter.To.AddDate(0, 0, -1).Format(time.DateOnly),
			InitiativeID: r.Filter.InitiativeID,
		},
		Overall: overallResponse{
			Count:        r.Overall.Count,
			Sum:          r.Overall.Total,
			Contributors: r.Overall.Contributors,
			Average:      r.Overall.Average(),
			Genders: map[string]int{
				"male":        r.Overall.Genders.Male,
				"female":      r.Overall.Genders.Female,
				"other":       r.Overall.Genders.Other,
				"unspecified": r.Overall.Genders.Unspecified,
			},
		},
		Initiatives: make([]initiativeProgress, len(r.Initiatives)),
		Regions:     make([]regionResponse, len(r.Regions)),
		Trend:       make([]dayResponse, len(r.Trend)),
		Buckets:     make([]bucketResponse, len(r.Buckets)),
		Leaderboard: make([]leaderboardResponse, len(r.Leaderboard)),
	}

	for i, p := range r.Initiatives {
		resp.Initiatives[i] = initiativeProgress{
			ID:                  p.ID,
			Title:               p.Title,
			Status:              p.Status,
			TargetAmount:        p.TargetAmount,
			TargetParticipants:  p.TargetParticipants,
			CurrentAmount:       p.CurrentAmount,
			CurrentParticipants: p.CurrentParticipants,
			AmountProgress:      p.Progress.AmountPercent,
			ParticipantProgress: p.Progress.ParticipantPercent,
		}
	}

	for i, rt := range r.Regions {
		resp.Regions[i] = regionResponse{Region: rt.Region, Count: rt.Count, Sum: rt.Total}
	}

	for i, d := range r.Trend {
		resp.Trend[i] = dayResponse{Date: d.Day.Format(time.DateOnly), Count: d.Count, Sum: d.Total}
	}

	for i, b := range r.Buckets {
		resp.Buckets[i] = bucketResponse{Label: b.Label(), Min: b.Min, Max: b.Max, Count: b.Count, Sum: b.Total}
	}

	for i, e := range r.Leaderboard {
		resp.Leaderboard[i] = leaderboardResponse{
			Rank:           i + 1,
			ContributorID:  e.ContributorID,
			Name:           e.Name,
			Total:          e.Total,
			Pledges:        e.Pledges,
			FirstPledgedAt: e.FirstPledgedAt,
		}
	}

	return resp
}
