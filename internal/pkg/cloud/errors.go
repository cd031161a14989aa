package cloud

import "errors"

// Категории ошибок облачного сервиса. Пользователю показывается
// обобщённое сообщение по категории, детали уходят только в лог.
var (
	ErrAuth            = errors.New("cloud: invalid or missing token")
	ErrNetwork         = errors.New("cloud: network failure")
	ErrFormat          = errors.New("cloud: unexpected response format")
	ErrNotFound        = errors.New("cloud: file not found")
	ErrOwnerKeyMissing = errors.New("cloud: owner key missing")
	ErrDeleteFailed    = errors.New("cloud: delete rejected")
	ErrNoSessionCookie = errors.New("cloud: no session cookie issued")
)
