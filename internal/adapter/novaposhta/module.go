package novaposhta

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vkravets/chairshop/internal/config"
)

// Module exposes the carrier client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.NovaPoshtaAPIURL, p.Config.NovaPoshtaAPIKey, p.Logger)
}
