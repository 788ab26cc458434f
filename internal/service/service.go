package service

import (
	"github.com/Stiofain-MacMathuna/airgead/internal/handlers/accounts"
	"github.com/Stiofain-MacMathuna/airgead/internal/handlers/auth"
	"github.com/Stiofain-MacMathuna/airgead/internal/handlers/transactions"

	pkgauth "github.com/Stiofain-MacMathuna/airgead/pkg/auth"

	"github.com/Stiofain-MacMathuna/airgead/internal/pg"
	"github.com/Stiofain-MacMathuna/airgead/internal/repo"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/authservice"
	"github.com/Stiofain-MacMathuna/airgead/internal/service/ledgerservice"
)

type Services struct {
	AuthService        auth.Service
	AccountService     accounts.Service
	TransactionService transactions.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	ledgerService := ledgerservice.New(repo.UserRepo, repo.AccountRepo, repo.TransactionRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:        authService,
		AccountService:     ledgerService,
		TransactionService: ledgerService,
	}
}
