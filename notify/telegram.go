package notify

import (
	"fmt"
	"strings"

	"aland-offers/aggregator"
	"aland-offers/config"
	"aland-offers/render"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier sends a short run summary to one chat
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramNotifier authorizes the bot. An empty apiEndpoint uses the public Bot API.
func NewTelegramNotifier(cfg config.TelegramConfig, apiEndpoint string) (*TelegramNotifier, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("telegram: bot_token and chat_id must be configured")
	}
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(cfg.BotToken, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    bot,
		chatID: cfg.ChatID,
	}, nil
}

// Notify sends the summary of result
func (n *TelegramNotifier) Notify(result aggregator.Result) error {
	if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, Summary(result))); err != nil {
		return fmt.Errorf("failed to send summary: %w", err)
	}
	return nil
}

// Summary formats a run result for a chat message
func Summary(result aggregator.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 Offers updated %s\n\n", result.CollectedAt.Format(render.TimestampLayout))
	for _, src := range result.Sources {
		if src.Err != nil {
			fmt.Fprintf(&b, "❌ %s: %v\n", src.Name, src.Err)
			continue
		}
		fmt.Fprintf(&b, "✅ %s: %d offers\n", src.Name, src.Offers)
	}

	b.WriteString("\n")
	if result.UsedFallback {
		fmt.Fprintf(&b, "⚠️ Only %d offers scraped, published %d example offers", result.RealCount, len(result.Offers))
	} else {
		fmt.Fprintf(&b, "Published %d offers", len(result.Offers))
	}
	return b.String()
}
