package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// chatNotifier доставляет результаты фоновых переносов через Bot API.
type chatNotifier struct {
	api *tgbotapi.BotAPI
}

func (n *chatNotifier) SendText(chatID int64, text string) error {
	_, err := n.api.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (n *chatNotifier) SendDocument(chatID int64, localPath string) error {
	_, err := n.api.Send(tgbotapi.NewDocument(chatID, tgbotapi.FilePath(localPath)))
	return err
}

func (n *chatNotifier) DeleteMessage(chatID int64, messageID int) error {
	_, err := n.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}
