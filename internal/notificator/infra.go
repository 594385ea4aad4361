package notificator

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type Infra struct {
	bot     *tgbotapi.BotAPI
	chatIDs []int64
}

func NewInfra(bot *tgbotapi.BotAPI, chatIDs []int64) *Infra {
	return &Infra{bot: bot, chatIDs: chatIDs}
}

// NewTelegramInfra logs the alert bot in. apiEndpoint may be empty for the
// public Telegram API.
func NewTelegramInfra(token, apiEndpoint string, chatIDs []int64) (*Infra, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("telegram alert bot: %w", err)
	}
	return NewInfra(bot, chatIDs), nil
}

func (i *Infra) Notify(ctx context.Context, source string, err error, details string) error {
	if i.bot == nil {
		return fmt.Errorf("alert bot not initialised")
	}

	text := fmt.Sprintf(
		"❗ Provider failure (%s)\n\nError: %v\n\nDetails: %s",
		source,
		err,
		details,
	)

	for _, chatID := range i.chatIDs {
		_, sendErr := i.bot.Send(tgbotapi.NewMessage(chatID, text))
		if sendErr != nil {
			log.Printf("[notificator] send fail to %d: %v", chatID, sendErr)
			return sendErr
		}
	}

	return nil
}
