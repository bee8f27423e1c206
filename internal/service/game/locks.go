package game

import "sync"

// uidLocks выдает мьютекс на пользователя. Весь игровой цикл
// (проверка лимита, списание, розыгрыш, начисление, инкремент)
// выполняется под ним, чтобы два параллельных дропа одного
// пользователя не обошли лимит или баланс
type uidLocks struct {
	mtx   sync.Mutex
	locks map[string]*sync.Mutex
}

func newUIDLocks() *uidLocks {
	return &uidLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// lock блокирует мьютекс пользователя и возвращает функцию разблокировки
func (l *uidLocks) lock(key string) func() {
	l.mtx.Lock()
	mu, ok := l.locks[key]
	if !ok {
		mu = &sync.Mutex{}
		l.locks[key] = mu
	}
	l.mtx.Unlock()

	mu.Lock()
	return mu.Unlock
}
