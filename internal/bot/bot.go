package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/state"
	"telecloud_bot/internal/pkg/token"
	"telecloud_bot/internal/pkg/transfer"
	"telecloud_bot/internal/pkg/user/repository"
)

type Bot struct {
	Api       *tgbotapi.BotAPI
	users     repository.UserRepository
	states    state.Store
	cloud     *cloud.Client
	tokens    *token.Manager
	transfers *transfer.Orchestrator
	runner    *transfer.Runner
	notify    *chatNotifier
}

// New собирает бота и все компоненты вокруг него. apiEndpoint
// оставляйте пустым, если не используется локальный Bot API сервер.
func New(telegramToken, apiEndpoint string, users repository.UserRepository, cloudClient *cloud.Client, tempDir string) *Bot {
	var api *tgbotapi.BotAPI
	var err error
	if apiEndpoint != "" {
		api, err = tgbotapi.NewBotAPIWithAPIEndpoint(telegramToken, apiEndpoint)
	} else {
		api, err = tgbotapi.NewBotAPI(telegramToken)
	}
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	states := state.NewMemoryStore()
	notify := &chatNotifier{api: api}

	return &Bot{
		Api:       api,
		users:     users,
		states:    states,
		cloud:     cloudClient,
		tokens:    token.NewManager(cloudClient, users, states),
		transfers: transfer.NewOrchestrator(cloudClient, notify, tempDir),
		runner:    transfer.NewRunner(),
		notify:    notify,
	}
}

// Start крутит цикл обновлений до отмены ctx. Каждое обновление
// обрабатывается в своей горутине: медленный внешний вызов одного
// пользователя не задерживает остальных.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.Api.GetUpdatesChan(u)

	log.Printf("Authorized on account %s", b.Api.Self.UserName)

	go func() {
		<-ctx.Done()
		b.Api.StopReceivingUpdates()
	}()

	for update := range updates {
		go b.dispatch(update)
	}
}

func (b *Bot) dispatch(update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(update.Message)
	}
}

func languageOf(from *tgbotapi.User) string {
	if from == nil || from.LanguageCode == "" {
		return "en"
	}
	return from.LanguageCode
}

func (b *Bot) sendText(chatID int64, text string) (tgbotapi.Message, error) {
	sent, err := b.Api.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		log.Printf("Error sending message to chat %d: %v", chatID, err)
	}
	return sent, err
}

func (b *Bot) deleteMessage(chatID int64, messageID int) {
	if _, err := b.Api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		log.Printf("Error deleting message %d: %v", messageID, err)
	}
}

func (b *Bot) answerCallback(callbackID, text string) {
	if _, err := b.Api.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		log.Printf("Error answering callback: %v", err)
	}
}
