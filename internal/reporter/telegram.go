package reporter

import (
	"fmt"

	"go-konkurs-assistant/internal/config"
	"go-konkurs-assistant/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramReporter builds the optional contest notifier. Returns nil when
// the token or chat id is not configured, callers treat a nil reporter as
// notifications disabled.
func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
		return nil, nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendContest(row models.ResultRow) error {
	deadline := row.Deadline
	if deadline == "" {
		deadline = "brak terminu"
	}
	venue := row.Venue
	if venue == "" {
		venue = "nie podano"
	}

	text := fmt.Sprintf(
		"🎁 <b>Nowy konkurs!</b>\n"+
			"📝 %s\n"+
			"📍 %s\n"+
			"📅 %s\n"+
			"🔗 <a href=\"%s\">Zobacz post</a>",
		row.Task,
		venue,
		deadline,
		row.Link,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>Asystent Konkursów</b>:\n%v", errReq))
}
