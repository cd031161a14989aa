package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
)

// Мок облака для локальной отладки бота без боевого сервиса.

type storedFile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Views    int    `json:"views"`
	Unique   int    `json:"unique"`
	OwnerKey string `json:"owner_key,omitempty"`
}

type fileStore struct {
	mu    sync.Mutex
	files map[string][]storedFile // токен -> файлы
}

var store = &fileStore{files: make(map[string][]storedFile)}

func main() {
	http.HandleFunc("/", rootHandler)
	http.HandleFunc("/api/files", filesHandler)
	http.HandleFunc("/upload", uploadHandler)
	http.HandleFunc("/file/", fileHandler)

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := ":8082"
	fmt.Printf("Mock cloud запущен на порту %s\n", port)
	fmt.Println("Доступные эндпоинты:")
	fmt.Println("   GET    /                (выдаёт куку user_token)")
	fmt.Println("   GET    /api/files")
	fmt.Println("   POST   /upload")
	fmt.Println("   GET    /file/{id}?mode=dl")
	fmt.Println("   DELETE /file/{id}")

	log.Fatal(http.ListenAndServe(port, nil))
}

func tokenFrom(r *http.Request) string {
	cookie, err := r.Cookie("user_token")
	if err != nil {
		return ""
	}
	return cookie.Value
}

func randomID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if tokenFrom(r) == "" {
		http.SetCookie(w, &http.Cookie{Name: "user_token", Value: randomID()})
	}
	w.Write([]byte("mock cloud"))
}

func filesHandler(w http.ResponseWriter, r *http.Request) {
	token := tokenFrom(r)
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	store.mu.Lock()
	files := store.files[token]
	store.mu.Unlock()

	if files == nil {
		files = []storedFile{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(files)
}

func uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	token := tokenFrom(r)
	if token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}
	defer file.Close()
	io.Copy(io.Discard, file)

	stored := storedFile{
		ID:       randomID(),
		Name:     header.Filename,
		OwnerKey: randomID(),
	}

	store.mu.Lock()
	store.files[token] = append(store.files[token], stored)
	store.mu.Unlock()

	log.Printf("[upload] %s -> %s", header.Filename, stored.ID)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":  true,
		"url": fmt.Sprintf("http://localhost:8082/file/%s", stored.ID),
	})
}

func fileHandler(w http.ResponseWriter, r *http.Request) {
	fileID := strings.TrimPrefix(r.URL.Path, "/file/")
	if fileID == "" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		token := tokenFrom(r)
		store.mu.Lock()
		defer store.mu.Unlock()
		for _, f := range store.files[token] {
			if f.ID == fileID {
				w.Write([]byte("mock file content: " + f.Name))
				return
			}
		}
		http.NotFound(w, r)

	case http.MethodDelete:
		ownerKey := r.Header.Get("Authorization")
		store.mu.Lock()
		defer store.mu.Unlock()
		for token, files := range store.files {
			for i, f := range files {
				if f.ID == fileID && f.OwnerKey == ownerKey {
					store.files[token] = append(files[:i], files[i+1:]...)
					w.Header().Set("Content-Type", "application/json")
					json.NewEncoder(w).Encode(map[string]bool{"ok": true})
					return
				}
			}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"ok": false})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
