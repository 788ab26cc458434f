package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/internal/dto"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/ledgerservice"
	"github.com/Stiofain-MacMathuna/airgead/pkg/auth"
	"github.com/Stiofain-MacMathuna/airgead/pkg/utils"
)

//go:generate mockgen -source=accounts.go -destination=mock_accounts.go -package=accounts

type Service interface {
	CreateAccount(ctx context.Context, username, name string) (*domain.Account, error)
	GetAccounts(ctx context.Context, username string) ([]domain.Account, error)
	GetAccount(ctx context.Context, username string, id uuid.UUID) (*domain.Account, error)
	DeleteAccount(ctx context.Context, username string, id uuid.UUID) error
}

type AccountHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

// CreateAccount godoc
//
//	@Summary		Create an account
//	@Description	Create a named account with zero balance for the authenticated user
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AccountCreateRequestDTO	true	"Account create request body"
//	@Success		201		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"User not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	var req dto.AccountCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	account, err := h.ledgerService.CreateAccount(r.Context(), username, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrEmptyAccountName):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toAccountDTO(account))
}

// GetAccounts godoc
//
//	@Summary		List accounts
//	@Description	List all accounts owned by the authenticated user
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"User not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts [get]
func (h *AccountHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	accounts, err := h.ledgerService.GetAccounts(r.Context(), username)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.AccountResponseDTO, len(accounts))
	for i, account := range accounts {
		response[i] = toAccountDTO(&account)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetAccount godoc
//
//	@Summary		Get an account
//	@Description	Get a single account owned by the authenticated user
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Account ID"
//	@Success		200	{object}	dto.AccountResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.ledgerService.GetAccount(r.Context(), username, id)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrUserNotFound), errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(account))
}

// DeleteAccount godoc
//
//	@Summary		Delete an account
//	@Description	Delete an account with zero balance together with its transaction history
//	@Tags			Accounts
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Account ID"
//	@Success		204
//	@Failure		400	{object}	utils.Response	"Invalid account id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		409	{object}	utils.Response	"Account balance is not zero"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	username := r.Context().Value(auth.UsernameKey).(string)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	err = h.ledgerService.DeleteAccount(r.Context(), username, id)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrUserNotFound), errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ledgerservice.ErrNonZeroBalance):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toAccountDTO(account *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:        account.ID.String(),
		Name:      account.Name,
		Balance:   account.Balance,
		CreatedAt: account.CreatedAt,
	}
}
