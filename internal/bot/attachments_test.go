package bot

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAttachmentDocument(t *testing.T) {
	msg := &tgbotapi.Message{
		Document: &tgbotapi.Document{FileID: "doc-1", FileName: "report.pdf"},
	}

	att, ok := extractAttachment(msg)
	require.True(t, ok)
	assert.Equal(t, "doc-1", att.fileID)
	assert.Equal(t, "report.pdf", att.name)
}

func TestExtractAttachmentVideo(t *testing.T) {
	msg := &tgbotapi.Message{
		Video: &tgbotapi.Video{FileID: "vid-1", FileName: "clip.mp4"},
	}

	att, ok := extractAttachment(msg)
	require.True(t, ok)
	assert.Equal(t, "vid-1", att.fileID)
	assert.Equal(t, "clip.mp4", att.name)
}

func TestExtractAttachmentAudio(t *testing.T) {
	msg := &tgbotapi.Message{
		Audio: &tgbotapi.Audio{FileID: "aud-1", FileName: "song.mp3"},
	}

	att, ok := extractAttachment(msg)
	require.True(t, ok)
	assert.Equal(t, "aud-1", att.fileID)
}

func TestExtractAttachmentPhotoPicksLargest(t *testing.T) {
	msg := &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90},
			{FileID: "medium", Width: 320},
			{FileID: "large", Width: 1280},
		},
	}

	att, ok := extractAttachment(msg)
	require.True(t, ok)
	assert.Equal(t, "large", att.fileID)
	assert.Empty(t, att.name)
}

func TestExtractAttachmentNone(t *testing.T) {
	msg := &tgbotapi.Message{Text: "just text"}

	_, ok := extractAttachment(msg)
	assert.False(t, ok)
	assert.False(t, hasAttachment(msg))
}
