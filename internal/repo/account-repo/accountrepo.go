package accountrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Stiofain-MacMathuna/airgead/internal/domain"
	"github.com/Stiofain-MacMathuna/airgead/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	query := `
		INSERT INTO accounts (user_id, name, balance)
		VALUES ($1, $2, 0)
		RETURNING id, balance, created_at
	`
	err := r.db.QueryRow(ctx, query, account.UserID, account.Name).Scan(&account.ID, &account.Balance, &account.CreatedAt)
	if err != nil {
		zap.L().Error("can't save account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT id, user_id, name, balance, created_at
        FROM accounts
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// LockByID reads the account with a row-level exclusive lock. It must be
// called inside a transaction; the lock is held until commit or rollback, so
// concurrent balance mutations on the same account serialize here.
func (r *Repository) LockByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `
        SELECT id, user_id, name, balance, created_at
        FROM accounts
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.UserID, &account.Name, &account.Balance, &account.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return &account, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	query := `
        SELECT id, user_id, name, balance, created_at
        FROM accounts
        WHERE user_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		err := rows.Scan(&account.ID, &account.UserID, &account.Name, &account.Balance, &account.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $1
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, balance, id)
	if err != nil {
		zap.L().Error("can't update account balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM accounts
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete account", zap.Error(err))
		return err
	}
	return nil
}
