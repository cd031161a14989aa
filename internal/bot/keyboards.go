package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/locale"
)

func welcomeKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("upload", lang), "upload"),
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("my_files", lang), "myfiles"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("settings", lang), "settings"),
		),
	)
}

// filesKeyboard строит страницу списка файлов: по кнопке на файл,
// строка перелистывания и возврат в меню.
func filesKeyboard(files []cloud.File, page int, lang string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	for _, file := range cloud.Page(files, page) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(file.Name, "file_"+file.ID),
		))
	}

	totalPages := cloud.TotalPages(len(files))

	var pagination []tgbotapi.InlineKeyboardButton
	if page > 1 {
		pagination = append(pagination, tgbotapi.NewInlineKeyboardButtonData(
			locale.Button("previous_page", lang), fmt.Sprintf("page_%d", page-1)))
	}
	pagination = append(pagination, tgbotapi.NewInlineKeyboardButtonData(
		fmt.Sprintf("📄 %d/%d 📄", page, totalPages), "do_nothing"))
	if page < totalPages {
		pagination = append(pagination, tgbotapi.NewInlineKeyboardButtonData(
			locale.Button("next_page", lang), fmt.Sprintf("page_%d", page+1)))
	}
	rows = append(rows, pagination)

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(locale.Button("menu", lang), "menu"),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func settingsKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("set_token", lang), "settoken"),
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("generate_token", lang), "generate_token"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("menu", lang), "menu"),
		),
	)
}

func fileActionKeyboard(fileID, lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("download", lang), "download_"+fileID),
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("delete", lang), "delete_"+fileID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("menu", lang), "menu"),
		),
	)
}

func menuKeyboard(lang string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(locale.Button("menu", lang), "menu"),
		),
	)
}
