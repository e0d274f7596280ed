package repository

import (
	"context"
	"time"

	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	TouchLastLogin(ctx context.Context, id int64) (time.Time, error)
}
