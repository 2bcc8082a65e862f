package notify

import (
	"fmt"
	"os"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends study reminders to a single chat
type Telegram struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram creates a notifier from TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID.
func NewTelegram() (*Telegram, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	chatID, err := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TELEGRAM_CHAT_ID: %v", err)
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %v", err)
	}

	return &Telegram{bot: bot, chatID: chatID}, nil
}

// SendReminder tells the user how many cards are waiting
func (t *Telegram) SendReminder(count int) error {
	text := fmt.Sprintf("📚 You have %d cards due for review. Time to study!", count)
	if count == 1 {
		text = "📚 You have 1 card due for review. Time to study!"
	}
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send reminder: %v", err)
	}
	return nil
}
