package bot

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/locale"
	"telecloud_bot/internal/pkg/state"
)

func (b *Bot) handleSettings(chatID, userID int64, lang string) {
	token := b.userToken(userID)
	if token == "" {
		token = locale.Message("token_not_set", lang)
	}

	reply := tgbotapi.NewMessage(chatID, fmt.Sprintf(locale.Message("settings", lang), token))
	reply.ReplyMarkup = settingsKeyboard(lang)
	b.Api.Send(reply)
}

func (b *Bot) handleSetTokenPrompt(chatID, userID int64, lang string) {
	b.states.Set(userID, state.AwaitingToken)
	b.sendText(chatID, locale.Message("set_token_prompt", lang))
}

// handleTokenInput проверяет присланный токен. Одна попытка:
// режим ожидания снимается в любом исходе.
func (b *Bot) handleTokenInput(msg *tgbotapi.Message, lang string) {
	candidate := strings.TrimSpace(msg.Text)
	if candidate == "" {
		b.states.Clear(msg.From.ID)
		b.sendText(msg.Chat.ID, locale.Message("invalid_token", lang))
		return
	}

	if err := b.tokens.Validate(context.Background(), msg.From.ID, candidate); err != nil {
		log.Printf("Token validation error for user %d: %v", msg.From.ID, err)
		b.sendText(msg.Chat.ID, locale.Message("invalid_token", lang))
		return
	}

	b.sendText(msg.Chat.ID, locale.Message("token_set_success", lang))
}

// handleGenerateToken выпускает анонимный токен в фоне, чтобы не
// держать цикл обновлений на внешнем вызове.
func (b *Bot) handleGenerateToken(cb *tgbotapi.CallbackQuery, lang string) {
	b.answerCallback(cb.ID, "")

	chatID := cb.Message.Chat.ID
	userID := cb.From.ID
	status, _ := b.sendText(chatID, locale.Message("generating_token", lang))

	b.runner.Go(userID, func() error {
		minted, err := b.tokens.Generate(context.Background(), userID)
		b.deleteMessage(chatID, status.MessageID)
		if err != nil {
			b.sendText(chatID, locale.Message("token_generated_failure", lang))
			return err
		}

		b.sendText(chatID, fmt.Sprintf(locale.Message("token_generated_success", lang), minted))
		return nil
	})
}
