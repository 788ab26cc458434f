package transactionrepo

import (
	"context"

	"github.com/google/uuid"
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

func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, kind, amount, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, txn.AccountID, txn.Kind, txn.Amount, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]domain.Transaction, error) {
	query := `
        SELECT id, account_id, kind, amount, created_at
        FROM transactions
        WHERE account_id = $1
        ORDER BY created_at ASC
    `
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Kind, &txn.Amount, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func (r *Repository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	query := `
		DELETE FROM transactions
		WHERE account_id = $1
	`
	_, err := r.db.Exec(ctx, query, accountID)
	if err != nil {
		zap.L().Error("can't delete transactions", zap.Error(err))
		return err
	}
	return nil
}
