package test

import (
	"context"
	"errors"

	"github.com/pkondrashkov/accountd/internal/domain/model"
	pkgAuth "github.com/pkondrashkov/accountd/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// KeyGeneratorStub returns deterministic token keys.
type KeyGeneratorStub struct {
	Keys       []string
	GenerateFn func() (string, error)
	calls      int
}

// Generate yields configured keys in order, then repeats the last one.
func (g *KeyGeneratorStub) Generate() (string, error) {
	if g.GenerateFn != nil {
		return g.GenerateFn()
	}
	if len(g.Keys) == 0 {
		return "stub-key", nil
	}
	idx := g.calls
	if idx >= len(g.Keys) {
		idx = len(g.Keys) - 1
	}
	g.calls++
	return g.Keys[idx], nil
}

// TokenAuthenticatorStub implements middleware token resolution contract.
type TokenAuthenticatorStub struct {
	ID             int64
	Err            error
	AuthenticateFn func(context.Context, string) (int64, error)
}

// Authenticate either delegates to override or returns predefined result.
func (s TokenAuthenticatorStub) Authenticate(ctx context.Context, key string) (int64, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, key)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return s.ID, nil
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.KeyGenerator = (*KeyGeneratorStub)(nil)

// DefaultStubUser is handed out by facade stubs when no override is set.
func DefaultStubUser(id int64) *model.User {
	return &model.User{ID: id, Username: "alice"}
}
