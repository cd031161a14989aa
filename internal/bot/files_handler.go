package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/locale"
)

// userToken возвращает сохранённый токен пользователя или пустую
// строку, если токена нет.
func (b *Bot) userToken(userID int64) string {
	user, err := b.users.GetUser(userID)
	if err != nil {
		log.Printf("Error loading user %d: %v", userID, err)
		return ""
	}
	if !user.HasToken() {
		return ""
	}
	return user.UserToken
}

func (b *Bot) handleMyFiles(chatID, userID int64, lang string) {
	token := b.userToken(userID)
	if token == "" {
		// Без токена к облаку не ходим.
		b.sendText(chatID, locale.Message("no_token", lang))
		return
	}

	b.sendText(chatID, locale.Message("fetching_files", lang))

	files, err := b.cloud.ListFiles(context.Background(), token)
	if err != nil {
		log.Printf("Error fetching files for user %d: %v", userID, err)
		b.sendText(chatID, locale.Message("file_list_failure", lang))
		return
	}

	if len(files) == 0 {
		b.sendText(chatID, locale.Message("no_files", lang))
		return
	}

	reply := tgbotapi.NewMessage(chatID, locale.Message("files", lang))
	reply.ReplyMarkup = filesKeyboard(files, 1, lang)
	b.Api.Send(reply)
}

// handlePage листает список файлов. Каталог запрашивается заново на
// каждом перелистывании: свежесть важнее лишнего запроса.
func (b *Bot) handlePage(cb *tgbotapi.CallbackQuery, pageData, lang string) {
	page, err := strconv.Atoi(pageData)
	if err != nil || page < 1 {
		b.answerCallback(cb.ID, "")
		return
	}

	token := b.userToken(cb.From.ID)
	if token == "" {
		b.answerCallback(cb.ID, "")
		return
	}

	files, err := b.cloud.ListFiles(context.Background(), token)
	if err != nil {
		log.Printf("Pagination error for user %d: %v", cb.From.ID, err)
		b.answerCallback(cb.ID, "Error")
		return
	}

	edit := tgbotapi.NewEditMessageReplyMarkup(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		filesKeyboard(files, page, lang),
	)
	if _, err := b.Api.Send(edit); err != nil {
		log.Printf("Error updating files keyboard: %v", err)
	}
	b.answerCallback(cb.ID, "")
}

func (b *Bot) handleFileInfo(cb *tgbotapi.CallbackQuery, fileID, lang string) {
	token := b.userToken(cb.From.ID)
	if token == "" {
		b.answerCallback(cb.ID, "")
		return
	}

	file, err := b.cloud.GetFile(context.Background(), token, fileID)
	if errors.Is(err, cloud.ErrNotFound) {
		b.answerCallback(cb.ID, locale.Message("file_not_found", lang))
		return
	}
	if err != nil {
		log.Printf("Error getting file info %s: %v", fileID, err)
		b.answerCallback(cb.ID, locale.Message("file_list_failure", lang))
		return
	}

	text := fmt.Sprintf(
		locale.Message("file_details", lang),
		file.Name,
		file.Views,
		file.Unique,
		b.cloud.FileURL(file.ID),
		b.cloud.DownloadURL(file.ID),
		b.cloud.ViewURL(file.ID),
	)
	keyboard := fileActionKeyboard(file.ID, lang)

	edit := tgbotapi.NewEditMessageTextAndMarkup(cb.Message.Chat.ID, cb.Message.MessageID, text, keyboard)
	if _, err := b.Api.Send(edit); err != nil {
		// Сообщение могло не измениться или быть слишком старым.
		reply := tgbotapi.NewMessage(cb.Message.Chat.ID, text)
		reply.ReplyMarkup = keyboard
		b.Api.Send(reply)
	}
	b.answerCallback(cb.ID, "")
}

func (b *Bot) handleDeleteFile(cb *tgbotapi.CallbackQuery, fileID, lang string) {
	token := b.userToken(cb.From.ID)
	if token == "" {
		b.answerCallback(cb.ID, "")
		return
	}

	err := b.cloud.DeleteFile(context.Background(), token, fileID)
	if errors.Is(err, cloud.ErrOwnerKeyMissing) {
		b.answerCallback(cb.ID, locale.Message("owner_key_missing", lang))
		return
	}
	if err != nil {
		log.Printf("Delete error for file %s: %v", fileID, err)
		b.answerCallback(cb.ID, "")
		b.sendText(cb.Message.Chat.ID, locale.Message("file_delete_failure", lang))
		return
	}

	b.answerCallback(cb.ID, "")
	edit := tgbotapi.NewEditMessageTextAndMarkup(
		cb.Message.Chat.ID,
		cb.Message.MessageID,
		locale.Message("file_delete_success", lang),
		menuKeyboard(lang),
	)
	if _, err := b.Api.Send(edit); err != nil {
		log.Printf("Error editing delete confirmation: %v", err)
	}
}
