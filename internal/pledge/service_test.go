package pledge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

var (
	initiativeID = uuid.MustParse("6f1c1d52-58f6-4e43-9a1b-0f5b4f3c2a10")
	submitter    = pledge.Submitter{
		ID:     uuid.MustParse("0a7d2a8e-3b61-4f0c-8d8c-3b0f7e2b9c01"),
		Name:   "Thandi M",
		Region: "Gauteng",
	}
)

func activeInitiative(amount int64, participants int) *initiative.Initiative {
	return &initiative.Initiative{
		ID:                  initiativeID,
		Title:               "Community Fund",
		Status:              initiative.StatusActive,
		TargetAmount:        decimal.NewFromInt(50000000),
		TargetParticipants:  1000,
		CurrentAmount:       decimal.NewFromInt(amount),
		CurrentParticipants: participants,
	}
}

// expectCommittedSubmission wires a transaction that accepts every write and
// reports the aggregates the caller passes on top of the starting snapshot.
func expectCommittedSubmission(repo *pledge.MockRepository, itx *pledge.MockSubmissionTx, start *initiative.Initiative, inserted *[]*pledge.Pledge) {
	repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(start, nil)
	repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
	repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)

	itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(start, nil)
	itx.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
	itx.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*pledge.Pledge) error {
			for _, r := range rows {
				r.ID = uuid.New()
			}

			*inserted = rows

			return nil
		})
	itx.EXPECT().
		IncrementAggregates(gomock.Any(), initiativeID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, amount decimal.Decimal, participants int) (*initiative.Initiative, error) {
			next := *start
			next.CurrentAmount = start.CurrentAmount.Add(amount)
			next.CurrentParticipants = start.CurrentParticipants + participants

			return &next, nil
		})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)
}

func TestService_Submit_PrimaryOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pledge.NewMockRepository(ctrl)
	itx := pledge.NewMockSubmissionTx(ctrl)

	var inserted []*pledge.Pledge

	expectCommittedSubmission(repo, itx, activeInitiative(0, 0), &inserted)

	receipt, err := pledge.NewService(repo).Submit(context.Background(), pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(1500), Region: "gauteng"},
		Dependents:   []pledge.DependentPledge{},
	})
	require.NoError(t, err)

	require.Len(t, inserted, 1)
	assert.True(t, receipt.TotalAmount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 1, receipt.TotalPledges)
	assert.Equal(t, inserted[0].ID, receipt.PrimaryID)
	assert.True(t, receipt.Initiative.CurrentAmount.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 1, receipt.Initiative.CurrentParticipants)

	assert.Equal(t, pledge.KindSelf, inserted[0].Beneficiary.Kind())
	assert.Equal(t, pledge.RelationshipSelf, inserted[0].Beneficiary.Relationship())
	assert.Equal(t, submitter.ID, inserted[0].ContributorID)
}

func TestService_Submit_CentAmountsSumExactly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pledge.NewMockRepository(ctrl)
	itx := pledge.NewMockSubmissionTx(ctrl)

	var inserted []*pledge.Pledge

	expectCommittedSubmission(repo, itx, activeInitiative(0, 0), &inserted)

	receipt, err := pledge.NewService(repo).Submit(context.Background(), pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.RequireFromString("1200.01"), Region: "gauteng"},
		Dependents: []pledge.DependentPledge{
			{Name: "Sipho", Relationship: "child", Amount: decimal.RequireFromString("1200.10"), Gender: pledge.GenderMale},
		},
	})
	require.NoError(t, err)
	require.Len(t, inserted, 2)

	rowSum := inserted[0].Amount.Add(inserted[1].Amount)
	assert.Equal(t, "2400.11", receipt.TotalAmount.StringFixed(2))
	assert.True(t, receipt.TotalAmount.Equal(rowSum))
	assert.True(t, receipt.Initiative.CurrentAmount.Equal(rowSum))
}

func TestService_Submit_ZeroMinimumStillRequiresPositiveAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := pledge.NewService(pledge.NewMockRepository(ctrl), pledge.WithMinimumAmount(decimal.Zero))

	_, err := svc.Submit(context.Background(), pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.Zero, Region: "gauteng"},
	})
	require.ErrorIs(t, err, pledge.ErrInvalidAmount)

	var verr *pledge.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "must be greater than 0", verr.Fields[0].Message)
}

func TestService_Submit_WithDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pledge.NewMockRepository(ctrl)
	itx := pledge.NewMockSubmissionTx(ctrl)

	var inserted []*pledge.Pledge

	expectCommittedSubmission(repo, itx, activeInitiative(1500, 1), &inserted)

	receipt, err := pledge.NewService(repo).Submit(context.Background(), pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(2000), Region: "western-cape"},
		Dependents: []pledge.DependentPledge{
			{Name: " Jane Doe ", Relationship: "Spouse", Amount: decimal.NewFromInt(1800), Region: "western-cape", Gender: pledge.GenderFemale},
		},
	})
	require.NoError(t, err)

	assert.True(t, receipt.TotalAmount.Equal(decimal.NewFromInt(3800)))
	assert.Equal(t, 2, receipt.TotalPledges)
	assert.True(t, receipt.Initiative.CurrentAmount.Equal(decimal.NewFromInt(5300)))
	assert.Equal(t, 3, receipt.Initiative.CurrentParticipants)

	require.Len(t, inserted, 2)

	dep := inserted[1]
	assert.Equal(t, pledge.KindDependent, dep.Beneficiary.Kind())
	assert.Equal(t, "Jane Doe", dep.Beneficiary.BeneficiaryName())
	assert.Equal(t, "spouse", dep.Beneficiary.Relationship())
	assert.Equal(t, pledge.GenderFemale, dep.Beneficiary.BeneficiaryGender())
	assert.Equal(t, submitter.ID, dep.ContributorID, "all rows carry the submitter")
}

func TestService_Submit_RegionDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pledge.NewMockRepository(ctrl)
	itx := pledge.NewMockSubmissionTx(ctrl)

	var inserted []*pledge.Pledge

	expectCommittedSubmission(repo, itx, activeInitiative(0, 0), &inserted)

	_, err := pledge.NewService(repo).Submit(context.Background(), pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(1200)},
		Dependents: []pledge.DependentPledge{
			{Name: "Sipho", Relationship: "child", Amount: decimal.NewFromInt(1200), Gender: pledge.GenderMale},
		},
	})
	require.NoError(t, err)

	require.Len(t, inserted, 2)
	assert.Equal(t, "gauteng", inserted[0].Region)
	assert.Equal(t, "gauteng", inserted[1].Region)
}

func TestService_Submit_ValidationFailsBeforeAnyStorageCall(t *testing.T) {
	type testCase struct {
		name      string
		minimum   decimal.Decimal
		params    pledge.SubmitParams
		wantKind  error
		wantField string
	}

	valid := func(mutate func(p *pledge.SubmitParams)) pledge.SubmitParams {
		p := pledge.SubmitParams{
			InitiativeID: initiativeID,
			Submitter:    pledge.Submitter{ID: submitter.ID, Name: submitter.Name},
			Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(1500), Region: "gauteng"},
		}
		mutate(&p)

		return p
	}

	tests := []testCase{
		{
			name:      "BelowMinimum",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Amount = decimal.NewFromInt(1000) }),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "OneUnitBelowMinimum",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Amount = decimal.NewFromInt(1199) }),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name: "DependentBelowMinimum",
			params: valid(func(p *pledge.SubmitParams) {
				p.Dependents = []pledge.DependentPledge{{Name: "A", Relationship: "child", Amount: decimal.NewFromInt(50), Region: "x", Gender: pledge.GenderMale}}
			}),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "additionalPledges[0].amount",
		},
		{
			name:      "CustomMinimum",
			minimum:   decimal.NewFromInt(5000),
			params:    valid(func(p *pledge.SubmitParams) {}),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "SubCentPrimary",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Amount = decimal.RequireFromString("1200.004") }),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name: "SubCentDependent",
			params: valid(func(p *pledge.SubmitParams) {
				p.Dependents = []pledge.DependentPledge{{Name: "A", Relationship: "child", Amount: decimal.RequireFromString("1200.004"), Region: "x", Gender: pledge.GenderFemale}}
			}),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "additionalPledges[0].amount",
		},
		{
			name:      "AboveMaximum",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Amount = decimal.RequireFromString("1e13") }),
			wantKind:  pledge.ErrInvalidAmount,
			wantField: "amount",
		},
		{
			name:      "MissingRegionWithoutDefault",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Region = "  " }),
			wantKind:  pledge.ErrInvalidSubmission,
			wantField: "region",
		},
		{
			name: "DependentMissingGender",
			params: valid(func(p *pledge.SubmitParams) {
				p.Dependents = []pledge.DependentPledge{{Name: "A", Relationship: "child", Amount: decimal.NewFromInt(1500)}}
			}),
			wantKind:  pledge.ErrInvalidSubmission,
			wantField: "additionalPledges[0].gender",
		},
		{
			name: "DependentMissingName",
			params: valid(func(p *pledge.SubmitParams) {
				p.Dependents = []pledge.DependentPledge{{Relationship: "child", Amount: decimal.NewFromInt(1500), Gender: pledge.GenderOther}}
			}),
			wantKind:  pledge.ErrInvalidSubmission,
			wantField: "additionalPledges[0].name",
		},
		{
			name: "DependentClaimsSelf",
			params: valid(func(p *pledge.SubmitParams) {
				p.Dependents = []pledge.DependentPledge{{Name: "Me", Relationship: "Self", Amount: decimal.NewFromInt(1500), Gender: pledge.GenderOther}}
			}),
			wantKind:  pledge.ErrInvalidSubmission,
			wantField: "additionalPledges[0].relationship",
		},
		{
			name:      "PrimaryUnknownGender",
			params:    valid(func(p *pledge.SubmitParams) { p.Primary.Gender = "robot" }),
			wantKind:  pledge.ErrInvalidSubmission,
			wantField: "gender",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No expectations: any storage call fails the test.
			repo := pledge.NewMockRepository(ctrl)

			var opts []pledge.Option
			if !tt.minimum.IsZero() {
				opts = append(opts, pledge.WithMinimumAmount(tt.minimum))
			}

			receipt, err := pledge.NewService(repo, opts...).Submit(context.Background(), tt.params)
			assert.Nil(t, receipt)
			require.ErrorIs(t, err, tt.wantKind)

			var verr *pledge.ValidationError
			require.ErrorAs(t, err, &verr)

			fields := make([]string, len(verr.Fields))
			for i, f := range verr.Fields {
				fields[i] = f.Field
			}

			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestService_Submit_StateErrors(t *testing.T) {
	params := pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(1500), Region: "gauteng"},
	}

	type testCase struct {
		name      string
		setupMock func(repo *pledge.MockRepository, itx *pledge.MockSubmissionTx)
		wantErr   error
	}

	closed := activeInitiative(0, 0)
	closed.Status = initiative.StatusClosed

	tests := []testCase{
		{
			name: "NotFound",
			setupMock: func(repo *pledge.MockRepository, _ *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(nil, initiative.ErrNotFound)
			},
			wantErr: pledge.ErrInitiativeNotAvailable,
		},
		{
			name: "NotActive",
			setupMock: func(repo *pledge.MockRepository, _ *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(closed, nil)
			},
			wantErr: pledge.ErrInitiativeNotAvailable,
		},
		{
			name: "AlreadyPledged",
			setupMock: func(repo *pledge.MockRepository, _ *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(1500, 1), nil)
				repo.EXPECT().
					FindSubmission(gomock.Any(), initiativeID, submitter.ID).
					Return([]*pledge.Pledge{{ID: uuid.New()}}, nil)
			},
			wantErr: pledge.ErrDuplicateSubmission,
		},
		{
			name: "ClosedWhileWaitingForLock",
			setupMock: func(repo *pledge.MockRepository, itx *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
				repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
				repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)
				itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(closed, nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantErr: pledge.ErrInitiativeNotAvailable,
		},
		{
			name: "ConcurrentDuplicateSeenUnderLock",
			setupMock: func(repo *pledge.MockRepository, itx *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
				repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
				repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)
				itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(activeInitiative(1500, 1), nil)
				itx.EXPECT().
					FindSubmission(gomock.Any(), initiativeID, submitter.ID).
					Return([]*pledge.Pledge{{ID: uuid.New()}}, nil)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantErr: pledge.ErrDuplicateSubmission,
		},
		{
			name: "UniqueIndexRejectsInsert",
			setupMock: func(repo *pledge.MockRepository, itx *pledge.MockSubmissionTx) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
				repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
				repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)
				itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
				itx.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
				itx.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(pledge.ErrDuplicateSubmission)
				itx.EXPECT().Rollback().Return(nil)
			},
			wantErr: pledge.ErrDuplicateSubmission,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pledge.NewMockRepository(ctrl)
			itx := pledge.NewMockSubmissionTx(ctrl)
			tt.setupMock(repo, itx)

			receipt, err := pledge.NewService(repo).Submit(context.Background(), params)
			assert.Nil(t, receipt)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Submit_StorageFailureNeverCommits(t *testing.T) {
	params := pledge.SubmitParams{
		InitiativeID: initiativeID,
		Submitter:    submitter,
		Primary:      pledge.PrimaryPledge{Amount: decimal.NewFromInt(1500), Region: "gauteng"},
	}

	type testCase struct {
		name      string
		setupMock func(itx *pledge.MockSubmissionTx)
	}

	tests := []testCase{
		{
			name: "InsertFails",
			setupMock: func(itx *pledge.MockSubmissionTx) {
				itx.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
		},
		{
			name: "IncrementFails",
			setupMock: func(itx *pledge.MockSubmissionTx) {
				itx.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
				itx.EXPECT().
					IncrementAggregates(gomock.Any(), initiativeID, gomock.Any(), 1).
					Return(nil, errors.New("connection reset"))
			},
		},
		{
			name: "CommitFails",
			setupMock: func(itx *pledge.MockSubmissionTx) {
				itx.EXPECT().InsertBatch(gomock.Any(), gomock.Any()).Return(nil)
				itx.EXPECT().
					IncrementAggregates(gomock.Any(), initiativeID, gomock.Any(), 1).
					Return(activeInitiative(1500, 1), nil)
				itx.EXPECT().Commit().Return(errors.New("connection reset"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pledge.NewMockRepository(ctrl)
			itx := pledge.NewMockSubmissionTx(ctrl)

			repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
			repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
			repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)
			itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(activeInitiative(0, 0), nil)
			itx.EXPECT().FindSubmission(gomock.Any(), initiativeID, submitter.ID).Return(nil, nil)
			itx.EXPECT().Rollback().Return(nil)
			tt.setupMock(itx)

			receipt, err := pledge.NewService(repo).Submit(context.Background(), params)
			assert.Error(t, err)
			assert.Nil(t, receipt)
			assert.NotErrorIs(t, err, pledge.ErrDuplicateSubmission)
		})
	}
}

func TestService_Overview(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := pledge.NewMockRepository(ctrl)
		repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(activeInitiative(5300, 3), nil)
		repo.EXPECT().StatsFor(gomock.Any(), initiativeID).Return(&pledge.Stats{
			Count:        3,
			Total:        decimal.NewFromInt(5300),
			Contributors: 2,
		}, nil)
		repo.EXPECT().RegionBreakdown(gomock.Any(), initiativeID).Return([]pledge.RegionTotal{
			{Region: "western-cape", Count: 2, Total: decimal.NewFromInt(3800)},
			{Region: "gauteng", Count: 1, Total: decimal.NewFromInt(1500)},
		}, nil)

		got, err := pledge.NewService(repo).Overview(context.Background(), initiativeID)
		require.NoError(t, err)
		assert.Equal(t, "1766.67", got.Stats.Average().StringFixed(2))
		assert.Len(t, got.Regions, 2)
	})

	t.Run("DraftHidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := activeInitiative(0, 0)
		draft.Status = initiative.StatusDraft

		repo := pledge.NewMockRepository(ctrl)
		repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(draft, nil)

		_, err := pledge.NewService(repo).Overview(context.Background(), initiativeID)
		assert.ErrorIs(t, err, initiative.ErrNotFound)
	})
}

func TestStats_AverageEmpty(t *testing.T) {
	s := &pledge.Stats{}
	assert.True(t, s.Average().IsZero())
}
