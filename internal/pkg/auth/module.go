package auth

import (
	"go.uber.org/fx"

	"github.com/pkondrashkov/accountd/internal/config"
)

// Module provides authentication primitives via fx.
var Module = fx.Options(
	fx.Provide(newPasswordHasher),
	fx.Provide(newKeyGenerator),
)

type primitivesParams struct {
	fx.In

	Config *config.Config
}

func newPasswordHasher(p primitivesParams) PasswordHasher {
	return NewBcryptHasher(p.Config.BcryptCost)
}

func newKeyGenerator(p primitivesParams) KeyGenerator {
	return NewRandomKeyGenerator(p.Config.TokenKeyLength)
}
