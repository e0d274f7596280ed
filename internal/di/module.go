package di

import (
	"go.uber.org/fx"

	"github.com/pkondrashkov/accountd/internal/app"
	"github.com/pkondrashkov/accountd/internal/config"
	"github.com/pkondrashkov/accountd/internal/logger"
	"github.com/pkondrashkov/accountd/internal/pkg/auth"
	"github.com/pkondrashkov/accountd/internal/server/http/handlers"
	"github.com/pkondrashkov/accountd/internal/server/http/router"
	"github.com/pkondrashkov/accountd/internal/storage/postgres"
	"github.com/pkondrashkov/accountd/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		usecase.Module,
		fx.Provide(
			func(f *app.AccountServiceFacade) handlers.ServiceFacade { return f },
			func(s *postgres.Storage) handlers.Pinger { return s },
		),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
