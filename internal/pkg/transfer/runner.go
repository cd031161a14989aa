package transfer

import (
	"log"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Не больше восьми переносов одновременно на весь процесс.
const poolSize = 8

// Runner выполняет фоновые задачи переносов. Задачи одного
// пользователя идут строго по очереди: двойной тап по кнопке не
// даёт двух параллельных переносов с дублями ответов. Ошибки
// задач логируются и дальше не идут — результат пользователь
// получает сообщением в чате.
type Runner struct {
	group errgroup.Group
	mu    sync.Mutex
	users map[int64]*sync.Mutex
}

func NewRunner() *Runner {
	r := &Runner{users: make(map[int64]*sync.Mutex)}
	r.group.SetLimit(poolSize)
	return r
}

// Go ставит задачу в фон. При заполненном пуле вызов ждёт
// свободного места; задача, стоящая в очереди за своим
// пользователем, место в пуле занимает.
func (r *Runner) Go(userID int64, job func() error) {
	lock := r.userLock(userID)
	r.group.Go(func() error {
		lock.Lock()
		defer lock.Unlock()
		if err := job(); err != nil {
			log.Printf("background job for user %d failed: %v", userID, err)
		}
		return nil
	})
}

// Wait дожидается всех поставленных задач. Используется в тестах;
// при завершении процесса незаконченные переносы не ждём.
func (r *Runner) Wait() {
	r.group.Wait()
}

func (r *Runner) userLock(userID int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, exists := r.users[userID]
	if !exists {
		lock = &sync.Mutex{}
		r.users[userID] = lock
	}
	return lock
}
