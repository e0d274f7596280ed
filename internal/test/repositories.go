package test

import (
	"context"
	"time"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
	Now   time.Time
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
		Now:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Create registers user unless the username is taken or the stub has an
// explicit error configured.
func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[user.Username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	stored := *user
	stored.ID = s.Next
	stored.LastLogin = nil
	stored.CreatedAt = s.Now
	s.Next++
	s.Users[stored.Username] = &stored
	s.ByID[stored.ID] = &stored
	return &stored, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// TouchLastLogin stamps the stub clock onto the stored user.
func (s *UserRepositoryStub) TouchLastLogin(ctx context.Context, id int64) (time.Time, error) {
	if s.Err != nil {
		return time.Time{}, s.Err
	}
	user, ok := s.ByID[id]
	if !ok {
		return time.Time{}, domainErrors.ErrNotFound
	}
	ts := s.Now
	user.LastLogin = &ts
	return ts, nil
}

// TokenRepositoryStub keeps one token per user, mirroring the store contract.
type TokenRepositoryStub struct {
	ByUser map[int64]*model.Token
	ByKey  map[string]*model.Token
	Err    error
}

// NewTokenRepositoryStub constructs stub token repository.
func NewTokenRepositoryStub() *TokenRepositoryStub {
	return &TokenRepositoryStub{
		ByUser: make(map[int64]*model.Token),
		ByKey:  make(map[string]*model.Token),
	}
}

// GetOrCreate reuses the stored token or records the candidate key.
func (s *TokenRepositoryStub) GetOrCreate(ctx context.Context, userID int64, key string) (*model.Token, bool, error) {
	if s.Err != nil {
		return nil, false, s.Err
	}
	if token, ok := s.ByUser[userID]; ok {
		return token, false, nil
	}
	token := &model.Token{UserID: userID, Key: key}
	s.ByUser[userID] = token
	s.ByKey[key] = token
	return token, true, nil
}

// GetByKey resolves a token by its key.
func (s *TokenRepositoryStub) GetByKey(ctx context.Context, key string) (*model.Token, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if token, ok := s.ByKey[key]; ok {
		return token, nil
	}
	return nil, domainErrors.ErrNotFound
}
