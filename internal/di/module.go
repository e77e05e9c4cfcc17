package di

import (
	"go.uber.org/fx"

	"github.com/vkravets/chairshop/internal/adapter/novaposhta"
	"github.com/vkravets/chairshop/internal/adapter/telegram"
	"github.com/vkravets/chairshop/internal/app"
	"github.com/vkravets/chairshop/internal/config"
	"github.com/vkravets/chairshop/internal/logger"
	"github.com/vkravets/chairshop/internal/server/http/handlers"
	"github.com/vkravets/chairshop/internal/server/http/router"
	"github.com/vkravets/chairshop/internal/storage/postgres"
	"github.com/vkravets/chairshop/internal/usecase"
	"github.com/vkravets/chairshop/internal/worker"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		novaposhta.Module,
		telegram.Module,
		usecase.Module,
		fx.Provide(func(d *worker.NotifyDispatcher) app.OrderNotifier { return d }),
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
