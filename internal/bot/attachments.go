package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type inboundAttachment struct {
	fileID string
	name   string
}

// extractAttachment достаёт вложение из сообщения: документ, видео,
// аудио или самый крупный вариант фото. Имени у фото нет, оно
// будет сгенерировано при переносе.
func extractAttachment(msg *tgbotapi.Message) (inboundAttachment, bool) {
	switch {
	case msg.Document != nil:
		return inboundAttachment{fileID: msg.Document.FileID, name: msg.Document.FileName}, true
	case msg.Video != nil:
		return inboundAttachment{fileID: msg.Video.FileID, name: msg.Video.FileName}, true
	case msg.Audio != nil:
		return inboundAttachment{fileID: msg.Audio.FileID, name: msg.Audio.FileName}, true
	case len(msg.Photo) > 0:
		photo := msg.Photo[len(msg.Photo)-1]
		return inboundAttachment{fileID: photo.FileID}, true
	}
	return inboundAttachment{}, false
}

func hasAttachment(msg *tgbotapi.Message) bool {
	_, ok := extractAttachment(msg)
	return ok
}
