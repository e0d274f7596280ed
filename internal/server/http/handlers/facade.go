package handlers

import (
	"context"

	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// AccountFacade describes profile capabilities required by handlers.
type AccountFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	CreateFromCaller(ctx context.Context, callerID int64) (*model.User, error)
}

// TokenFacade exposes the credential-to-token exchange.
type TokenFacade interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
}

// ServiceFacade aggregates the full set of operations used across handlers
// and the token middleware.
type ServiceFacade interface {
	AccountFacade
	TokenFacade
	Authenticate(ctx context.Context, key string) (int64, error)
}

// Pinger reports backing store health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}
