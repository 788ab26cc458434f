package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/internal/dto"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/ledgerservice"
	"github.com/Stiofain-MacMathuna/airgead/pkg/auth"
	"github.com/Stiofain-MacMathuna/airgead/pkg/utils"
)

//go:generate mockgen -source=transactions.go -destination=mock_transactions.go -package=transactions

type Service interface {
	Deposit(ctx context.Context, username string, accountID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error)
	Withdraw(ctx context.Context, username string, accountID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, username string, accountID uuid.UUID) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit funds
//	@Description	Add a positive amount to an account balance and record a DEPOSIT transaction
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Deposit request body"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/deposit [post]
func (h *TransactionHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	req, accountID, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Deposit(r.Context(), username, accountID, req.Amount)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// Withdraw godoc
//
//	@Summary		Withdraw funds
//	@Description	Subtract a positive amount from an account balance and record a WITHDRAW transaction
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Withdraw request body"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Account not found"
//	@Failure		409		{object}	utils.Response	"Insufficient funds"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	req, accountID, ok := decodeRequest(w, r)
	if !ok {
		return
	}

	txn, err := h.ledgerService.Withdraw(r.Context(), username, accountID, req.Amount)
	if err != nil {
		respondOperationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(txn))
}

// GetTransactions godoc
//
//	@Summary		List transactions
//	@Description	List all transactions recorded against an account owned by the authenticated user
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			accountID	path		string	true	"Account ID"
//	@Success		200			{array}		dto.TransactionResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		401			{object}	utils.Response	"User not authorized"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/transactions/{accountID} [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	accountID, err := uuid.Parse(chi.URLParam(r, "accountID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	txns, err := h.ledgerService.GetTransactions(r.Context(), username, accountID)
	if err != nil {
		respondOperationError(w, err)
		return
	}

	response := make([]dto.TransactionResponseDTO, len(txns))
	for i, txn := range txns {
		response[i] = toTransactionDTO(&txn)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (dto.TransactionRequestDTO, uuid.UUID, bool) {
	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return req, uuid.Nil, false
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return req, uuid.Nil, false
	}
	return req, accountID, true
}

func respondOperationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInvalidAmount):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ledgerservice.ErrUserNotFound), errors.Is(err, ledgerservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toTransactionDTO(txn *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:        txn.ID.String(),
		AccountID: txn.AccountID.String(),
		Kind:      txn.Kind,
		Amount:    txn.Amount,
		CreatedAt: txn.CreatedAt,
	}
}
