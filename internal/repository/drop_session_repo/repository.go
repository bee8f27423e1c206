package drop_session_repo

import (
	"sync"
	"time"
)

// Сессия дропов одного пользователя
type dropSession struct {
	count       int
	windowStart time.Time
}

// Реализация process-local хранилища счетчиков дропов.
// Состояние живет в памяти и теряется при рестарте процесса -
// это мягкий анти-абьюз счетчик, а не граница безопасности
type SessionRepo struct {
	mtx      sync.Mutex
	sessions map[string]*dropSession
}

// NewDropSessionRepository - конструктор хранилища счетчиков дропов
func NewDropSessionRepository() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*dropSession),
	}
}

// Refresh - сбрасывает сессию, если ее нет или окно истекло
func (r *SessionRepo) Refresh(uid string, now time.Time, window time.Duration) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok || now.Sub(session.windowStart) > window {
		r.sessions[uid] = &dropSession{count: 0, windowStart: now}
	}
}

// Count - текущее количество дропов в окне
func (r *SessionRepo) Count(uid string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok {
		return 0
	}

	return session.count
}

// Increment - засчитывает успешный дроп
func (r *SessionRepo) Increment(uid string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok {
		session = &dropSession{windowStart: time.Now()}
		r.sessions[uid] = session
	}

	session.count++
}
