package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Stiofain-MacMathuna/airgead/docs"
	accounthandlers "github.com/Stiofain-MacMathuna/airgead/internal/handlers/accounts"
	authhandlers "github.com/Stiofain-MacMathuna/airgead/internal/handlers/auth"
	transactionhandlers "github.com/Stiofain-MacMathuna/airgead/internal/handlers/transactions"
	"github.com/Stiofain-MacMathuna/airgead/internal/service"
	"github.com/Stiofain-MacMathuna/airgead/pkg/auth"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AccountHandler interface {
	CreateAccount(w http.ResponseWriter, r *http.Request)
	GetAccounts(w http.ResponseWriter, r *http.Request)
	GetAccount(w http.ResponseWriter, r *http.Request)
	DeleteAccount(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	AccountHandler     AccountHandler
	TransactionHandler TransactionHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		AccountHandler:     accounthandlers.New(s.AccountService),
		TransactionHandler: transactionhandlers.New(s.TransactionService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/accounts", func(r chi.Router) {
				r.Post("/", h.AccountHandler.CreateAccount)
				r.Get("/", h.AccountHandler.GetAccounts)
				r.Get("/{id}", h.AccountHandler.GetAccount)
				r.Delete("/{id}", h.AccountHandler.DeleteAccount)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Post("/deposit", h.TransactionHandler.Deposit)
				r.Post("/withdraw", h.TransactionHandler.Withdraw)
				r.Get("/{accountID}", h.TransactionHandler.GetTransactions)
			})
		})
	})

	return r
}
