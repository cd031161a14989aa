package transfer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecloud_bot/internal/pkg/cloud"
)

type sentDocument struct {
	chatID  int64
	name    string
	content string
}

type fakeNotifier struct {
	mu        sync.Mutex
	texts     []string
	documents []sentDocument
	deleted   []int
	deleteErr error
	docErr    error
}

func (f *fakeNotifier) SendText(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeNotifier) SendDocument(chatID int64, localPath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.docErr != nil {
		return f.docErr
	}
	// Файл должен существовать в момент доставки.
	data, err := os.ReadFile(localPath)
	if err != nil {
		return err
	}
	f.documents = append(f.documents, sentDocument{
		chatID:  chatID,
		name:    filepath.Base(localPath),
		content: string(data),
	})
	return nil
}

func (f *fakeNotifier) DeleteMessage(chatID int64, messageID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return f.deleteErr
}

func assertNoLeftovers(t *testing.T, tempDir string) {
	t.Helper()
	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp dir must be clean after the job")
}

func newCloudServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/files":
			w.Write([]byte(`[{"id":"a1","name":"report.pdf","views":1,"unique":1,"owner_key":"k1"}]`))
		case "/file/a1":
			w.Write([]byte("remote-content"))
		case "/upload":
			file, header, err := r.FormFile("file")
			require.NoError(t, err)
			file.Close()
			assert.Equal(t, "report.pdf", header.Filename)
			w.Write([]byte(`{"ok":true,"url":"https://cloud.onlysq.ru/file/abc123"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestDownloadDeliversAndCleansUp(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	notify := &fakeNotifier{}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	err := o.Download(context.Background(), 5, "secret", "a1", 99)
	require.NoError(t, err)

	require.Len(t, notify.documents, 1)
	assert.Equal(t, int64(5), notify.documents[0].chatID)
	assert.Equal(t, "report.pdf", notify.documents[0].name)
	assert.Equal(t, "remote-content", notify.documents[0].content)
	assert.Equal(t, []int{99}, notify.deleted)
	assertNoLeftovers(t, tempDir)
}

func TestDownloadUnknownFile(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	notify := &fakeNotifier{}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	err := o.Download(context.Background(), 5, "secret", "zzz", 99)
	assert.ErrorIs(t, err, cloud.ErrNotFound)
	assert.Empty(t, notify.documents)
	// Индикатор убирается и на ошибочном пути.
	assert.Equal(t, []int{99}, notify.deleted)
	assertNoLeftovers(t, tempDir)
}

func TestDownloadDeliveryFailureCleansUp(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	notify := &fakeNotifier{docErr: errors.New("chat transport down")}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	err := o.Download(context.Background(), 5, "secret", "a1", 99)
	assert.Error(t, err)
	assert.Equal(t, []int{99}, notify.deleted)
	assertNoLeftovers(t, tempDir)
}

func TestDownloadToleratesDeletedStatusMessage(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	notify := &fakeNotifier{deleteErr: errors.New("message to delete not found")}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	err := o.Download(context.Background(), 5, "secret", "a1", 99)
	assert.NoError(t, err)
	assertNoLeftovers(t, tempDir)
}

func TestUploadRoundTrip(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	transport := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("attachment-bytes"))
	}))
	defer transport.Close()

	notify := &fakeNotifier{}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	att := Attachment{Name: "report.pdf", SourceURL: transport.URL + "/file/tg-handle"}
	result, err := o.Upload(context.Background(), 5, "secret", att, 99)
	require.NoError(t, err)
	assert.Equal(t, "abc123", cloud.FileIDFromURL(result.URL))
	assert.Equal(t, []int{99}, notify.deleted)
	assertNoLeftovers(t, tempDir)
}

func TestUploadRejectedCleansUp(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":false}`))
	}))
	defer server.Close()

	transport := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("attachment-bytes"))
	}))
	defer transport.Close()

	notify := &fakeNotifier{}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	att := Attachment{Name: "report.pdf", SourceURL: transport.URL + "/file/tg-handle"}
	_, err := o.Upload(context.Background(), 5, "secret", att, 99)
	assert.Error(t, err)
	assert.Equal(t, []int{99}, notify.deleted)
	assertNoLeftovers(t, tempDir)
}

func TestUploadTransportFetchFailure(t *testing.T) {
	server := newCloudServer(t)
	defer server.Close()

	transport := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer transport.Close()

	notify := &fakeNotifier{}
	tempDir := t.TempDir()
	o := NewOrchestrator(cloud.NewClient(server.URL), notify, tempDir)

	att := Attachment{Name: "report.pdf", SourceURL: transport.URL + "/file/tg-handle"}
	_, err := o.Upload(context.Background(), 5, "secret", att, 99)
	assert.Error(t, err)
	assertNoLeftovers(t, tempDir)
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "report.pdf", safeName("report.pdf"))
	assert.Equal(t, "evil", safeName("../../evil"))
	assert.NotEmpty(t, safeName(""))
	assert.NotEqual(t, ".", safeName("."))
}

func TestGeneratedName(t *testing.T) {
	first := generatedName()
	second := generatedName()
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
