package bot

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/locale"
	"telecloud_bot/internal/pkg/state"
	"telecloud_bot/internal/pkg/transfer"
)

// handleFileDownload отвечает на кнопку скачивания: показывает
// индикатор и уводит перенос в фон.
func (b *Bot) handleFileDownload(cb *tgbotapi.CallbackQuery, fileID, lang string) {
	token := b.userToken(cb.From.ID)
	if token == "" {
		b.answerCallback(cb.ID, "")
		return
	}

	b.answerCallback(cb.ID, "")
	chatID := cb.Message.Chat.ID
	status, _ := b.sendText(chatID, locale.Message("downloading_file", lang))

	b.runner.Go(cb.From.ID, func() error {
		err := b.transfers.Download(context.Background(), chatID, token, fileID, status.MessageID)
		if err != nil {
			b.sendText(chatID, locale.Message("file_download_failure", lang))
		}
		return err
	})
}

func (b *Bot) handleUploadPrompt(chatID, userID int64, lang string) {
	if b.userToken(userID) == "" {
		b.sendText(chatID, locale.Message("no_token", lang))
		return
	}

	b.states.Set(userID, state.AwaitingFile)
	b.sendText(chatID, locale.Message("upload_prompt", lang))
}

// handleFileUpload принимает вложение, присланное в режиме ожидания
// файла. Режим снимается сразу при постановке задачи, а не по её
// завершении: следующее вложение — уже новое событие.
func (b *Bot) handleFileUpload(msg *tgbotapi.Message, lang string) {
	userID := msg.From.ID
	chatID := msg.Chat.ID

	b.states.Clear(userID)

	token := b.userToken(userID)
	if token == "" {
		b.sendText(chatID, locale.Message("no_token", lang))
		return
	}

	att, ok := extractAttachment(msg)
	if !ok {
		b.sendText(chatID, locale.Message("upload_failure", lang))
		return
	}

	status, _ := b.sendText(chatID, locale.Message("uploading_file", lang))

	b.runner.Go(userID, func() error {
		sourceURL, err := b.Api.GetFileDirectURL(att.fileID)
		if err != nil {
			b.deleteMessage(chatID, status.MessageID)
			b.sendText(chatID, locale.Message("upload_failure", lang))
			return fmt.Errorf("failed to resolve attachment %s: %w", att.fileID, err)
		}

		result, err := b.transfers.Upload(
			context.Background(),
			chatID,
			token,
			transfer.Attachment{Name: att.name, SourceURL: sourceURL},
			status.MessageID,
		)
		if err != nil {
			b.sendText(chatID, locale.Message("upload_failure", lang))
			return err
		}

		log.Printf("User %d uploaded file %s", userID, result.URL)

		text := fmt.Sprintf(
			locale.Message("upload_success", lang),
			cloud.FileIDFromURL(result.URL),
			result.URL,
			result.URL+"?mode=dl",
			result.URL+"?mode=view",
		)
		b.sendText(chatID, text)
		return nil
	})
}
