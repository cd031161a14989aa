package bot

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/locale"
)

func (b *Bot) handleStart(msg *tgbotapi.Message, lang string) {
	if _, err := b.users.EnsureUser(msg.From.ID); err != nil {
		log.Printf("Error ensuring user %d: %v", msg.From.ID, err)
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, locale.Message("start", lang))
	reply.ReplyMarkup = welcomeKeyboard(lang)
	b.Api.Send(reply)
}

// handleMenu возвращает пользователя на стартовый экран, редактируя
// сообщение с клавиатурой на месте.
func (b *Bot) handleMenu(cb *tgbotapi.CallbackQuery, lang string) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		locale.Message("start", lang),
		welcomeKeyboard(lang),
	)
	if _, err := b.Api.Send(edit); err != nil {
		log.Printf("Error editing menu message: %v", err)
	}
}
