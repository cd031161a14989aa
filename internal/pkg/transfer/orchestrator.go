package transfer

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"telecloud_bot/internal/pkg/cloud"
)

const attachmentTimeout = 300 * time.Second

// Notifier доставляет результаты переноса в чат.
type Notifier interface {
	SendText(chatID int64, text string) error
	SendDocument(chatID int64, localPath string) error
	DeleteMessage(chatID int64, messageID int) error
}

// Attachment — входящий файл, уже разрешённый транспортом
// в прямую ссылку на скачивание.
type Attachment struct {
	Name      string // объявленное имя, может быть пустым
	SourceURL string
}

// Orchestrator выполняет переносы файлов между чатом, локальным
// диском и облаком. Временный файл живёт только внутри одного
// переноса и удаляется на любом исходе.
type Orchestrator struct {
	cloud   *cloud.Client
	notify  Notifier
	tempDir string
	client  *http.Client
}

func NewOrchestrator(cloudClient *cloud.Client, notify Notifier, tempDir string) *Orchestrator {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &Orchestrator{
		cloud:   cloudClient,
		notify:  notify,
		tempDir: tempDir,
		client:  &http.Client{},
	}
}

// Download скачивает файл из облака и отправляет его в чат документом.
func (o *Orchestrator) Download(ctx context.Context, chatID int64, token, fileID string, statusMessageID int) error {
	defer o.removeStatus(chatID, statusMessageID)

	file, err := o.cloud.GetFile(ctx, token, fileID)
	if err != nil {
		return err
	}

	jobDir, err := os.MkdirTemp(o.tempDir, "transfer-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer o.removeTempDir(jobDir)

	localPath := filepath.Join(jobDir, safeName(file.Name))
	if err := o.cloud.Download(ctx, token, fileID, localPath); err != nil {
		return err
	}

	if err := o.notify.SendDocument(chatID, localPath); err != nil {
		return fmt.Errorf("failed to deliver %s: %w", file.Name, err)
	}
	return nil
}

// Upload принимает вложение из чата, сохраняет во временный файл
// и отправляет в облако.
func (o *Orchestrator) Upload(ctx context.Context, chatID int64, token string, att Attachment, statusMessageID int) (*cloud.UploadResult, error) {
	defer o.removeStatus(chatID, statusMessageID)

	name := safeName(att.Name)

	jobDir, err := os.MkdirTemp(o.tempDir, "transfer-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer o.removeTempDir(jobDir)

	localPath := filepath.Join(jobDir, name)
	if err := o.fetchAttachment(ctx, att.SourceURL, localPath); err != nil {
		return nil, err
	}

	return o.cloud.Upload(ctx, token, localPath)
}

// fetchAttachment стримит вложение с серверов транспорта на диск.
func (o *Orchestrator) fetchAttachment(ctx context.Context, sourceURL, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, attachmentTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch attachment: status %d", resp.StatusCode)
	}

	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dest, err)
	}

	_, err = io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", dest, err)
	}
	return nil
}

// removeTempDir лучше не молчать в лог, но ошибку наружу не отдаём:
// уборка не должна затирать основную ошибку переноса.
func (o *Orchestrator) removeTempDir(dir string) {
	if err := os.RemoveAll(dir); err != nil {
		log.Printf("failed to remove temp dir %s: %v", dir, err)
	}
}

// removeStatus убирает индикатор прогресса. Сообщение могло быть
// уже удалено, это не ошибка.
func (o *Orchestrator) removeStatus(chatID int64, statusMessageID int) {
	if statusMessageID == 0 {
		return
	}
	if err := o.notify.DeleteMessage(chatID, statusMessageID); err != nil {
		log.Printf("failed to delete status message %d: %v", statusMessageID, err)
	}
}

func generatedName() string {
	return fmt.Sprintf("file_%d_%s", time.Now().Unix(), uuid.NewString()[:8])
}

// safeName отрезает путь из объявленного имени файла; без имени
// генерируется уникальное.
func safeName(declared string) string {
	name := filepath.Base(declared)
	if declared == "" || name == "." || name == string(filepath.Separator) {
		return generatedName()
	}
	return name
}
