package telegram

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vkravets/chairshop/internal/config"
)

// Module exposes the Telegram notifier to the fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newNotifier(p notifierParams) Notifier {
	if !p.Config.NotificationsConfigured() {
		p.Logger.Info("TG_BOT_TOKEN or TG_CHAT_ID not set, operator notifications disabled")
	}
	return NewBotNotifier(DefaultBaseURL, p.Config.TelegramBotToken, p.Config.TelegramChatID, p.Logger)
}
