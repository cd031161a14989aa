package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/locale"
	"telecloud_bot/internal/pkg/state"
)

// handleMessage разбирает входящее сообщение: команды, вложения в
// режиме ожидания файла и текст в режиме ожидания токена. Всё
// остальное игнорируется.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	lang := languageOf(msg.From)

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.handleStart(msg, lang)
		default:
			b.sendText(msg.Chat.ID, locale.Message("unknown_command", lang))
		}
		return
	}

	if hasAttachment(msg) {
		if b.states.Get(msg.From.ID) == state.AwaitingFile {
			b.handleFileUpload(msg, lang)
		}
		return
	}

	if msg.Text != "" && b.states.Get(msg.From.ID) == state.AwaitingToken {
		b.handleTokenInput(msg, lang)
	}
}

func (b *Bot) handleCallback(cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil || cb.From == nil {
		b.answerCallback(cb.ID, "")
		return
	}
	lang := languageOf(cb.From)

	switch data := cb.Data; {
	case data == "menu":
		b.answerCallback(cb.ID, "")
		b.handleMenu(cb, lang)
	case data == "upload":
		b.answerCallback(cb.ID, "")
		b.handleUploadPrompt(cb.Message.Chat.ID, cb.From.ID, lang)
	case data == "myfiles":
		b.answerCallback(cb.ID, "")
		b.handleMyFiles(cb.Message.Chat.ID, cb.From.ID, lang)
	case data == "settings":
		b.answerCallback(cb.ID, "")
		b.handleSettings(cb.Message.Chat.ID, cb.From.ID, lang)
	case data == "settoken":
		b.answerCallback(cb.ID, "")
		b.handleSetTokenPrompt(cb.Message.Chat.ID, cb.From.ID, lang)
	case data == "generate_token":
		b.handleGenerateToken(cb, lang)
	case strings.HasPrefix(data, "page_"):
		b.handlePage(cb, strings.TrimPrefix(data, "page_"), lang)
	case strings.HasPrefix(data, "file_"):
		b.handleFileInfo(cb, strings.TrimPrefix(data, "file_"), lang)
	case strings.HasPrefix(data, "delete_"):
		b.handleDeleteFile(cb, strings.TrimPrefix(data, "delete_"), lang)
	case strings.HasPrefix(data, "download_"):
		b.handleFileDownload(cb, strings.TrimPrefix(data, "download_"), lang)
	default:
		// do_nothing и незнакомые данные
		b.answerCallback(cb.ID, "")
	}
}
