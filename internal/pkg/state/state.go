package state

// State определяет режим обработки следующего сообщения пользователя.
type State string

const (
	Idle          State = ""
	AwaitingFile  State = "awaiting_file"
	AwaitingToken State = "awaiting_token"
)

type Store interface {
	Set(userID int64, s State)
	Get(userID int64) State
	Clear(userID int64)
}
