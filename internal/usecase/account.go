package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/pkondrashkov/accountd/internal/domain/errors"
	"github.com/pkondrashkov/accountd/internal/domain/model"
	"github.com/pkondrashkov/accountd/internal/domain/repository"
	pkgAuth "github.com/pkondrashkov/accountd/internal/pkg/auth"
)

// AccountUseCase handles profile access, user creation and token issuance.
type AccountUseCase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	hasher pkgAuth.PasswordHasher
	keys   pkgAuth.KeyGenerator
}

// NewAccountUseCase constructs AccountUseCase.
func NewAccountUseCase(users repository.UserRepository, tokens repository.TokenRepository, hasher pkgAuth.PasswordHasher, keys pkgAuth.KeyGenerator) *AccountUseCase {
	return &AccountUseCase{users: users, tokens: tokens, hasher: hasher, keys: keys}
}

// Profile fetches the caller's own user record.
func (u *AccountUseCase) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return u.users.GetByID(ctx, userID)
}

// CreateFromCaller persists a new user carrying the caller's own fields,
// password hash included. The caller's username travels with the copy, so the
// unique constraint rejects the insert whenever the caller still exists.
func (u *AccountUseCase) CreateFromCaller(ctx context.Context, callerID int64) (*model.User, error) {
	caller, err := u.users.GetByID(ctx, callerID)
	if err != nil {
		return nil, err
	}

	return u.users.Create(ctx, &model.User{
		Username:     caller.Username,
		FirstName:    caller.FirstName,
		LastName:     caller.LastName,
		Email:        caller.Email,
		PasswordHash: caller.PasswordHash,
	})
}

// Login validates credentials and returns the user together with its token
// key. Blank fields map to ErrMalformedInput; an unknown username and a wrong
// password both map to ErrInvalidCredentials. The HTTP layer collapses the
// two into one generic response, the distinction exists for tests only.
func (u *AccountUseCase) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrMalformedInput
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	key, err := u.keys.Generate()
	if err != nil {
		return nil, "", err
	}

	token, _, err := u.tokens.GetOrCreate(ctx, usr.ID, key)
	if err != nil {
		return nil, "", err
	}

	lastLogin, err := u.users.TouchLastLogin(ctx, usr.ID)
	if err != nil {
		return nil, "", err
	}
	usr.LastLogin = &lastLogin

	return usr, token.Key, nil
}

// Authenticate resolves a presented token key to the owning user identifier.
func (u *AccountUseCase) Authenticate(ctx context.Context, key string) (int64, error) {
	if key == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	token, err := u.tokens.GetByKey(ctx, key)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return 0, pkgAuth.ErrInvalidToken
		}
		return 0, err
	}
	return token.UserID, nil
}
