package pledge_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/pledger/internal/auth"
	pledgehttp "github.com/MrJamesThe3rd/pledger/internal/http/pledge"
	"github.com/MrJamesThe3rd/pledger/internal/initiative"
	"github.com/MrJamesThe3rd/pledger/internal/pledge"
)

var (
	initiativeID = uuid.MustParse("6f1c1d52-58f6-4e43-9a1b-0f5b4f3c2a10")
	member       = auth.Identity{UserID: uuid.New(), Name: "Thandi", Region: "gauteng", Role: auth.RoleMember}
)

func active() *initiative.Initiative {
	return &initiative.Initiative{
		ID:                 initiativeID,
		Title:              "Community Fund",
		Status:             initiative.StatusActive,
		TargetAmount:       decimal.NewFromInt(50000000),
		TargetParticipants: 1000,
		CurrentAmount:      decimal.NewFromInt(1500),
	}
}

func newServer(t *testing.T, repo pledge.Repository) (http.Handler, string) {
	t.Helper()

	verifier := auth.NewVerifier("secret", "")

	token, err := verifier.Issue(member, time.Hour)
	require.NoError(t, err)

	h := pledgehttp.NewHandler(pledge.NewService(repo))

	r := chi.NewRouter()
	r.Route("/initiatives/{id}/pledges", h.Routes(verifier.Middleware))

	return r, token
}

type errorBody struct {
	Code   string `json:"code"`
	Fields []struct {
		Field string `json:"field"`
	} `json:"fields"`
}

func post(t *testing.T, srv http.Handler, token, id, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/initiatives/"+id+"/pledges/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	return rec
}

func TestHandler_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := pledge.NewMockRepository(ctrl)
	itx := pledge.NewMockSubmissionTx(ctrl)

	repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(active(), nil)
	repo.EXPECT().FindSubmission(gomock.Any(), initiativeID, member.UserID).Return(nil, nil)
	repo.EXPECT().BeginSubmission(gomock.Any()).Return(itx, nil)
	itx.EXPECT().LockInitiative(gomock.Any(), initiativeID).Return(active(), nil)
	itx.EXPECT().FindSubmission(gomock.Any(), initiativeID, member.UserID).Return(nil, nil)
	itx.EXPECT().
		InsertBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []*pledge.Pledge) error {
			assert.Len(t, rows, 2)
			assert.Equal(t, "gauteng", rows[0].Region, "primary region falls back to the caller's")
			assert.Equal(t, "Thandi", rows[0].Beneficiary.BeneficiaryName())

			for _, r := range rows {
				r.ID = uuid.New()
			}

			return nil
		})
	itx.EXPECT().
		IncrementAggregates(gomock.Any(), initiativeID, gomock.Any(), 2).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, amount decimal.Decimal, n int) (*initiative.Initiative, error) {
			in := active()
			in.CurrentAmount = in.CurrentAmount.Add(amount)
			in.CurrentParticipants += n

			return in, nil
		})
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	srv, token := newServer(t, repo)

	rec := post(t, srv, token, initiativeID.String(), `{
		"amount": 2000,
		"additionalPledges": [
			{"name": "Jane Doe", "relationship": "spouse", "amount": "1800", "region": "western-cape", "gender": "female"}
		]
	}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body struct {
		Message string `json:"message"`
		Pledge  struct {
			ID           uuid.UUID       `json:"id"`
			TotalAmount  decimal.Decimal `json:"totalAmount"`
			TotalPledges int             `json:"totalPledges"`
			Initiative   struct {
				ID                     uuid.UUID       `json:"id"`
				NewCurrentAmount       decimal.Decimal `json:"newCurrentAmount"`
				NewCurrentParticipants int             `json:"newCurrentParticipants"`
			} `json:"initiative"`
		} `json:"pledge"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "Pledge of 3,800.00 recorded for 2 participants", body.Message)
	assert.NotEqual(t, uuid.Nil, body.Pledge.ID)
	assert.True(t, body.Pledge.TotalAmount.Equal(decimal.NewFromInt(3800)))
	assert.Equal(t, 2, body.Pledge.TotalPledges)
	assert.Equal(t, initiativeID, body.Pledge.Initiative.ID)
	assert.True(t, body.Pledge.Initiative.NewCurrentAmount.Equal(decimal.NewFromInt(5300)))
	assert.Equal(t, 2, body.Pledge.Initiative.NewCurrentParticipants)
}

func TestHandler_Submit_Errors(t *testing.T) {
	type testCase struct {
		name       string
		id         string
		noToken    bool
		body       string
		setupMock  func(repo *pledge.MockRepository)
		wantStatus int
		wantCode   string
		wantField  string
	}

	tests := []testCase{
		{
			name:       "Unauthenticated",
			noToken:    true,
			body:       `{"amount": 1500}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   "unauthorized",
		},
		{
			name:       "InvalidID",
			id:         "nope",
			body:       `{"amount": 1500}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_id",
		},
		{
			name:       "MalformedJSON",
			body:       `{"amount": `,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_request_body",
		},
		{
			name:       "MissingAmount",
			body:       `{"region": "gauteng"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
			wantField:  "amount",
		},
		{
			name:       "DependentWithoutGender",
			body:       `{"amount": 1500, "additionalPledges": [{"name": "A", "relationship": "child", "amount": 1500}]}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
			wantField:  "additionalPledges[0].gender",
		},
		{
			name:       "BelowMinimum",
			body:       `{"amount": 1000, "region": "gauteng"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_amount",
			wantField:  "amount",
		},
		{
			name: "NotAvailable",
			body: `{"amount": 1500}`,
			setupMock: func(repo *pledge.MockRepository) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(nil, initiative.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "initiative_not_available",
		},
		{
			name: "Duplicate",
			body: `{"amount": 1500}`,
			setupMock: func(repo *pledge.MockRepository) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(active(), nil)
				repo.EXPECT().
					FindSubmission(gomock.Any(), initiativeID, member.UserID).
					Return([]*pledge.Pledge{{ID: uuid.New()}}, nil)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "duplicate_submission",
		},
		{
			name: "StorageFailure",
			body: `{"amount": 1500}`,
			setupMock: func(repo *pledge.MockRepository) {
				repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := pledge.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			srv, token := newServer(t, repo)
			if tt.noToken {
				token = ""
			}

			id := tt.id
			if id == "" {
				id = initiativeID.String()
			}

			rec := post(t, srv, token, id, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			var body errorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)

			if tt.wantField != "" {
				var fields []string
				for _, f := range body.Fields {
					fields = append(fields, f.Field)
				}

				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestHandler_Overview(t *testing.T) {
	t.Run("Public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := pledge.NewMockRepository(ctrl)
		repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(active(), nil)
		repo.EXPECT().StatsFor(gomock.Any(), initiativeID).Return(&pledge.Stats{
			Count: 1, Total: decimal.NewFromInt(1500), Contributors: 1,
			Genders: pledge.GenderCounts{Unspecified: 1},
		}, nil)
		repo.EXPECT().RegionBreakdown(gomock.Any(), initiativeID).Return([]pledge.RegionTotal{
			{Region: "gauteng", Count: 1, Total: decimal.NewFromInt(1500)},
		}, nil)

		srv, _ := newServer(t, repo)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/initiatives/"+initiativeID.String()+"/pledges/", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Stats struct {
				Count   int             `json:"count"`
				Average decimal.Decimal `json:"average"`
			} `json:"stats"`
			Regions []struct {
				Region string `json:"region"`
			} `json:"regions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Stats.Count)
		assert.True(t, body.Stats.Average.Equal(decimal.NewFromInt(1500)))
		require.Len(t, body.Regions, 1)
		assert.Equal(t, "gauteng", body.Regions[0].Region)
	})

	t.Run("DraftNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		draft := active()
		draft.Status = initiative.StatusDraft

		repo := pledge.NewMockRepository(ctrl)
		repo.EXPECT().GetInitiative(gomock.Any(), initiativeID).Return(draft, nil)

		srv, _ := newServer(t, repo)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/initiatives/"+initiativeID.String()+"/pledges/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
