package repository

import (
	"context"

	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// TokenRepository manages opaque auth tokens. GetOrCreate must be atomic:
// concurrent first logins for the same user converge on a single key.
type TokenRepository interface {
	GetOrCreate(ctx context.Context, userID int64, key string) (*model.Token, bool, error)
	GetByKey(ctx context.Context, key string) (*model.Token, error)
}
