package app

import (
	"context"

	"github.com/pkondrashkov/accountd/internal/domain/model"
	"github.com/pkondrashkov/accountd/internal/usecase"
)

// AccountServiceFacade is the single entry point the HTTP layer talks to.
type AccountServiceFacade struct {
	account *usecase.AccountUseCase
}

// NewAccountServiceFacade constructs the facade over account use cases.
func NewAccountServiceFacade(account *usecase.AccountUseCase) *AccountServiceFacade {
	return &AccountServiceFacade{account: account}
}

// Profile returns the caller's own user record.
func (f *AccountServiceFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.account.Profile(ctx, userID)
}

// CreateFromCaller persists a new user built from the caller's fields.
func (f *AccountServiceFacade) CreateFromCaller(ctx context.Context, callerID int64) (*model.User, error) {
	return f.account.CreateFromCaller(ctx, callerID)
}

// Login exchanges credentials for the user's opaque token key.
func (f *AccountServiceFacade) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.account.Login(ctx, username, password)
}

// Authenticate resolves a token key to a user identifier.
func (f *AccountServiceFacade) Authenticate(ctx context.Context, key string) (int64, error) {
	return f.account.Authenticate(ctx, key)
}
