package ledgerservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=mock_ledgerservice.go -package=ledgerservice

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	LockByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
	UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type TransactionRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error)
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error
}

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrNonZeroBalance    = errors.New("account balance must be zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrEmptyAccountName  = errors.New("account name must not be empty")
)

// Service owns account balances and their transaction history. Every
// operation takes the authenticated username explicitly and every balance
// mutation runs inside a transaction holding a row lock on the account, so
// the balance check, balance write and ledger append are a single atomic
// unit per account.
type Service struct {
	userRepo        UserRepo
	accountRepo     AccountRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(userRepo UserRepo, accountRepo AccountRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

func (s *Service) CreateAccount(ctx context.Context, username, name string) (*domain.Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyAccountName
	}
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		UserID: user.ID,
		Name:   name,
	}
	account, err = s.accountRepo.Create(ctx, account)
	if err != nil {
		zap.L().Error("can't create account", zap.Error(err))
		return nil, err
	}
	zap.L().Info("account created", zap.String("username", username), zap.String("account_id", account.ID.String()))
	return account, nil
}

func (s *Service) GetAccounts(ctx context.Context, username string) ([]domain.Account, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (s *Service) GetAccount(ctx context.Context, username string, id uuid.UUID) (*domain.Account, error) {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Foreign accounts read as missing so their existence is not leaked.
	if account == nil || account.UserID != user.ID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *Service) DeleteAccount(ctx context.Context, username string, id uuid.UUID) error {
	user, err := s.findUser(ctx, username)
	if err != nil {
		return err
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.LockByID(ctx, id)
		if err != nil {
			return err
		}
		if account == nil || account.UserID != user.ID {
			return ErrAccountNotFound
		}
		if !account.Balance.IsZero() {
			return ErrNonZeroBalance
		}
		if err := s.transactionRepo.DeleteByAccountID(ctx, id); err != nil {
			return err
		}
		return s.accountRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	zap.L().Info("account deleted", zap.String("account_id", id.String()))
	return nil
}

func (s *Service) Deposit(ctx context.Context, username string, accountID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var txn *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.LockByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil || account.UserID != user.ID {
			return ErrAccountNotFound
		}
		if err := s.accountRepo.UpdateBalance(ctx, accountID, account.Balance.Add(amount)); err != nil {
			return err
		}
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			AccountID: accountID,
			Kind:      domain.KindDeposit,
			Amount:    amount,
			CreatedAt: time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) Withdraw(ctx context.Context, username string, accountID uuid.UUID, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	user, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var txn *domain.Transaction
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.accountRepo.LockByID(ctx, accountID)
		if err != nil {
			return err
		}
		if account == nil || account.UserID != user.ID {
			return ErrAccountNotFound
		}
		if account.Balance.LessThan(amount) {
			return ErrInsufficientFunds
		}
		if err := s.accountRepo.UpdateBalance(ctx, accountID, account.Balance.Sub(amount)); err != nil {
			return err
		}
		txn, err = s.transactionRepo.Create(ctx, &domain.Transaction{
			AccountID: accountID,
			Kind:      domain.KindWithdraw,
			Amount:    amount,
			CreatedAt: time.Now(),
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Service) GetTransactions(ctx context.Context, username string, accountID uuid.UUID) ([]domain.Transaction, error) {
	if _, err := s.GetAccount(ctx, username, accountID); err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.FindByAccountID(ctx, accountID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

func (s *Service) findUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
