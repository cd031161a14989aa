package cloud

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultBaseURL = "https://cloud.onlysq.ru"

const userAgent = "TeleCloud-Bot/1.0"

// Независимые бюджеты времени на каждый тип вызова.
const (
	metadataTimeout = 30 * time.Second
	transferTimeout = 300 * time.Second
	validateTimeout = 60 * time.Second
	mintTimeout     = 10 * time.Second
)

const tokenCookie = "user_token"

// File — метаданные файла из каталога облака.
type File struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Views    int    `json:"views"`
	Unique   int    `json:"unique"`
	OwnerKey string `json:"owner_key,omitempty"`
}

type UploadResult struct {
	OK  bool   `json:"ok"`
	URL string `json:"url"`
}

type deleteResult struct {
	OK bool `json:"ok"`
}

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

// ListFiles запрашивает каталог файлов пользователя.
func (c *Client) ListFiles(ctx context.Context, token string) ([]File, error) {
	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/files", nil)
	if err != nil {
		return nil, err
	}
	c.attachToken(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
	}

	var files []File
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	return files, nil
}

// GetFile ищет файл по id в свежем каталоге. Отдельной ручки
// у облака нет, поэтому всегда полный список и линейный поиск.
func (c *Client) GetFile(ctx context.Context, token, fileID string) (*File, error) {
	files, err := c.ListFiles(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range files {
		if files[i].ID == fileID {
			return &files[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, fileID)
}

// DeleteFile удаляет файл. Без owner_key в метаданных запрос
// на удаление не отправляется вовсе.
func (c *Client) DeleteFile(ctx context.Context, token, fileID string) error {
	file, err := c.GetFile(ctx, token, fileID)
	if err != nil {
		return err
	}
	if file.OwnerKey == "" {
		return fmt.Errorf("%w: %s", ErrOwnerKeyMissing, fileID)
	}

	ctx, cancel := context.WithTimeout(ctx, metadataTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodDelete, c.FileURL(fileID), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", file.OwnerKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	var result deleteResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if !result.OK {
		return fmt.Errorf("%w: %s: status %d", ErrDeleteFailed, fileID, resp.StatusCode)
	}
	return nil
}

// Download скачивает файл в локальный путь dest.
func (c *Client) Download(ctx context.Context, token, fileID, dest string) error {
	ctx, cancel := context.WithTimeout(ctx, transferTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.DownloadURL(fileID), nil)
	if err != nil {
		return err
	}
	c.attachToken(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrNetwork, resp.StatusCode)
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

// Upload отправляет локальный файл multipart-формой в облако.
func (c *Client) Upload(ctx context.Context, token, localPath string) (*UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, transferTimeout)
	defer cancel()

	file, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer file.Close()

	pr, pw := io.Pipe()
	form := multipart.NewWriter(pw)

	go func() {
		part, err := form.CreateFormFile("file", filepath.Base(localPath))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(form.Close())
	}()

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/upload", pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	c.attachToken(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	var result UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFormat, truncate(string(body), 200))
	}
	if !result.OK {
		return nil, fmt.Errorf("upload rejected: %s", truncate(string(body), 200))
	}
	return &result, nil
}

// MintToken получает свежий анонимный токен из сессионной куки
// корневой страницы облака.
func (c *Client) MintToken(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, mintTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	for _, cookie := range resp.Cookies() {
		if cookie.Name == tokenCookie && cookie.Value != "" {
			return cookie.Value, nil
		}
	}
	return "", ErrNoSessionCookie
}

// Validate проверяет токен-кандидат запросом каталога.
func (c *Client) Validate(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, validateTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/api/files", nil)
	if err != nil {
		return err
	}
	c.attachToken(req, token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	}
	return nil
}

// FileURL — каноническая ссылка на файл.
func (c *Client) FileURL(fileID string) string {
	return fmt.Sprintf("%s/file/%s", c.baseURL, fileID)
}

// DownloadURL — ссылка принудительного скачивания.
func (c *Client) DownloadURL(fileID string) string {
	return c.FileURL(fileID) + "?mode=dl"
}

// ViewURL — ссылка принудительного просмотра.
func (c *Client) ViewURL(fileID string) string {
	return c.FileURL(fileID) + "?mode=view"
}

// FileIDFromURL достаёт id файла из последнего сегмента ссылки,
// которую вернул аплоад.
func FileIDFromURL(rawURL string) string {
	trimmed := strings.TrimRight(rawURL, "/")
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		return trimmed[idx+1:]
	}
	return trimmed
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func (c *Client) attachToken(req *http.Request, token string) {
	req.AddCookie(&http.Cookie{Name: tokenCookie, Value: token})
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
