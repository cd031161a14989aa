package token

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telecloud_bot/internal/pkg/cloud"
	"telecloud_bot/internal/pkg/state"
	"telecloud_bot/internal/pkg/user/domain"
)

type fakeUsers struct {
	tokens  map[int64]string
	saveErr error
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{tokens: make(map[int64]string)}
}

func (f *fakeUsers) EnsureUser(telegramID int64) (*domain.User, error) {
	return &domain.User{TelegramID: telegramID, UserToken: f.tokens[telegramID]}, nil
}

func (f *fakeUsers) GetUser(telegramID int64) (*domain.User, error) {
	return &domain.User{TelegramID: telegramID, UserToken: f.tokens[telegramID]}, nil
}

func (f *fakeUsers) SaveToken(telegramID int64, token string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.tokens[telegramID] = token
	return nil
}

func TestValidateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	users := newFakeUsers()
	states := state.NewMemoryStore()
	states.Set(7, state.AwaitingToken)

	manager := NewManager(cloud.NewClient(server.URL), users, states)

	err := manager.Validate(context.Background(), 7, "candidate")
	require.NoError(t, err)
	assert.Equal(t, "candidate", users.tokens[7])
	assert.Equal(t, state.Idle, states.Get(7))
}

func TestValidateRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	users := newFakeUsers()
	states := state.NewMemoryStore()
	states.Set(7, state.AwaitingToken)

	manager := NewManager(cloud.NewClient(server.URL), users, states)

	err := manager.Validate(context.Background(), 7, "candidate")
	assert.ErrorIs(t, err, cloud.ErrAuth)
	assert.Empty(t, users.tokens[7])
	assert.Equal(t, state.Idle, states.Get(7))
}

func TestValidateNetworkFailureClearsState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	users := newFakeUsers()
	states := state.NewMemoryStore()
	states.Set(7, state.AwaitingToken)

	manager := NewManager(cloud.NewClient(server.URL), users, states)

	err := manager.Validate(context.Background(), 7, "candidate")
	assert.Error(t, err)
	assert.Equal(t, state.Idle, states.Get(7))
}

func TestValidatePersistFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	users := newFakeUsers()
	users.saveErr = errors.New("db down")
	states := state.NewMemoryStore()
	states.Set(7, state.AwaitingToken)

	manager := NewManager(cloud.NewClient(server.URL), users, states)

	err := manager.Validate(context.Background(), 7, "candidate")
	assert.Error(t, err)
	assert.Equal(t, state.Idle, states.Get(7))
}

func TestGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "user_token", Value: "minted-token"})
	}))
	defer server.Close()

	users := newFakeUsers()
	manager := NewManager(cloud.NewClient(server.URL), users, state.NewMemoryStore())

	minted, err := manager.Generate(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "minted-token", minted)
	assert.Equal(t, "minted-token", users.tokens[7])
}

func TestGenerateNoCookie(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	users := newFakeUsers()
	manager := NewManager(cloud.NewClient(server.URL), users, state.NewMemoryStore())

	_, err := manager.Generate(context.Background(), 7)
	assert.ErrorIs(t, err, cloud.ErrNoSessionCookie)
	assert.Empty(t, users.tokens[7])
}
