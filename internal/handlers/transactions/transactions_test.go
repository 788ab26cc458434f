package transactions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/ledgerservice"
	"github.com/Stiofain-MacMathuna/airgead/pkg/auth"
)

var testAccountID = uuid.MustParse("3a0c3fd7-1df8-4b0f-9c55-1a2867a2e8f7")

func newTestRouter(t *testing.T) (chi.Router, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), auth.UsernameKey, "alice")
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/api/transactions/deposit", handler.Deposit)
	r.Post("/api/transactions/withdraw", handler.Withdraw)
	r.Get("/api/transactions/{accountID}", handler.GetTransactions)
	return r, service
}

func TestDeposit(t *testing.T) {
	router, service := newTestRouter(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful deposit",
			body: `{"account_id":"` + testAccountID.String() + `","amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), "alice", testAccountID, decimal.NewFromInt(50)).
					Return(&domain.Transaction{
						ID:        uuid.New(),
						AccountID: testAccountID,
						Kind:      domain.KindDeposit,
						Amount:    decimal.NewFromInt(50),
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid request body",
			body:           `{invalid`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid account id",
			body:           `{"account_id":"not-a-uuid","amount":50}`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"account_id":"` + testAccountID.String() + `","amount":0}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), "alice", testAccountID, gomock.Any()).
					Return(nil, ledgerservice.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing account",
			body: `{"account_id":"` + testAccountID.String() + `","amount":50}`,
			prepareMock: func() {
				service.EXPECT().
					Deposit(gomock.Any(), "alice", testAccountID, gomock.Any()).
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/transactions/deposit", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestWithdraw(t *testing.T) {
	router, service := newTestRouter(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful withdrawal",
			body: `{"account_id":"` + testAccountID.String() + `","amount":30}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "alice", testAccountID, decimal.NewFromInt(30)).
					Return(&domain.Transaction{
						ID:        uuid.New(),
						AccountID: testAccountID,
						Kind:      domain.KindWithdraw,
						Amount:    decimal.NewFromInt(30),
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Insufficient funds",
			body: `{"account_id":"` + testAccountID.String() + `","amount":1000}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "alice", testAccountID, gomock.Any()).
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Missing account",
			body: `{"account_id":"` + testAccountID.String() + `","amount":30}`,
			prepareMock: func() {
				service.EXPECT().
					Withdraw(gomock.Any(), "alice", testAccountID, gomock.Any()).
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid request body",
			body:           `{invalid`,
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/transactions/withdraw", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestGetTransactions(t *testing.T) {
	router, service := newTestRouter(t)

	tests := []struct {
		name           string
		url            string
		prepareMock    func()
		expectedStatus int
	}{
		{
			name: "Successful listing",
			url:  "/api/transactions/" + testAccountID.String(),
			prepareMock: func() {
				service.EXPECT().
					GetTransactions(gomock.Any(), "alice", testAccountID).
					Return([]domain.Transaction{
						{ID: uuid.New(), AccountID: testAccountID, Kind: domain.KindDeposit, Amount: decimal.NewFromInt(100)},
						{ID: uuid.New(), AccountID: testAccountID, Kind: domain.KindWithdraw, Amount: decimal.NewFromInt(40)},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid account id",
			url:            "/api/transactions/not-a-uuid",
			prepareMock:    func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Missing account",
			url:  "/api/transactions/" + testAccountID.String(),
			prepareMock: func() {
				service.EXPECT().
					GetTransactions(gomock.Any(), "alice", testAccountID).
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
