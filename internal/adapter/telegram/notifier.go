package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/vkravets/chairshop/internal/domain/model"
)

// DefaultBaseURL is the Telegram Bot API host.
const DefaultBaseURL = "https://api.telegram.org"

// Notifier delivers operator notifications about new orders.
type Notifier interface {
	NotifyNewOrder(ctx context.Context, order model.Order) error
}

// BotNotifier sends messages to an operator chat via the Bot API.
// With empty credentials it acts as a configured-off no-op.
type BotNotifier struct {
	baseURL    string
	token      string
	chatID     string
	httpClient *http.Client
	logger     *slog.Logger
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// NewBotNotifier creates a notifier with default timeout.
func NewBotNotifier(baseURL, token, chatID string, logger *slog.Logger) *BotNotifier {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &BotNotifier{
		baseURL: baseURL,
		token:   token,
		chatID:  chatID,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether bot credentials are configured.
func (n *BotNotifier) Enabled() bool {
	return n.token != "" && n.chatID != ""
}

// NotifyNewOrder sends the fixed new-order message to the operator chat.
func (n *BotNotifier) NotifyNewOrder(ctx context.Context, order model.Order) error {
	if !n.Enabled() {
		n.logger.Info("telegram notifications disabled, skipping", slog.Int64("order_id", order.ID))
		return nil
	}

	payload, err := json.Marshal(sendMessageRequest{
		ChatID:                n.chatID,
		Text:                  formatNewOrder(order),
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("telegram api error: status %d: %s", resp.StatusCode, string(body))
	}

	n.logger.Info("new order notification sent", slog.Int64("order_id", order.ID))
	return nil
}

func formatNewOrder(order model.Order) string {
	return fmt.Sprintf(`🛒 *NEW ORDER №%d!*
---
*🧑 Customer:* %s
*📞 Phone:* [%s](tel:%s)
*📍 City:* %s
*📦 Warehouse:* %s
*🪑 Product:* %s (%s)
`, order.ID, order.Name, order.Phone, order.Phone, order.City, order.Warehouse, order.Chair, order.Size)
}
