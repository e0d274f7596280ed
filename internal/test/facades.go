package test

import (
	"context"

	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// AccountFacadeStub simulates profile and creation operations.
type AccountFacadeStub struct {
	ProfileFn func(context.Context, int64) (*model.User, error)
	CreateFn  func(context.Context, int64) (*model.User, error)
}

// Profile returns stub user or delegates to override.
func (s AccountFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return DefaultStubUser(userID), nil
}

// CreateFromCaller returns stub user or delegates to override.
func (s AccountFacadeStub) CreateFromCaller(ctx context.Context, callerID int64) (*model.User, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, callerID)
	}
	return DefaultStubUser(callerID + 1), nil
}

// TokenFacadeStub simulates the login operation.
type TokenFacadeStub struct {
	LoginFn func(context.Context, string, string) (*model.User, string, error)
}

// Login delegates to override or returns a fixed user and key.
func (s TokenFacadeStub) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "stub-key", nil
}

// ServiceFacadeStub aggregates facade dependencies for HTTP layer tests.
type ServiceFacadeStub struct {
	AccountFacadeStub
	TokenFacadeStub
	TokenAuthenticatorStub
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(ctx context.Context) error {
	return s.Err
}
