package repo

import (
	"github.com/Stiofain-MacMathuna/airgead/internal/pg"
	accountrepo "github.com/Stiofain-MacMathuna/airgead/internal/repo/account-repo"
	transactionrepo "github.com/Stiofain-MacMathuna/airgead/internal/repo/transaction-repo"
	userrepo "github.com/Stiofain-MacMathuna/airgead/internal/repo/user-repo"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/authservice"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/ledgerservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	AccountRepo     ledgerservice.AccountRepo
	TransactionRepo ledgerservice.TransactionRepo
}

func New(conn pg.Database) *Repositories {
	userRepo := userrepo.New(conn)
	accountRepo := accountrepo.New(conn)
	transactionRepo := transactionrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
	}
}
