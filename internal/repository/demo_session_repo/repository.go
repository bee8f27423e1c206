package demo_session_repo

import (
	"sync"
	"time"
)

// Демо-сессия привязана не только к пользователю, но и к socket id
type demoSession struct {
	count      int
	lastPlayed time.Time
	socketID   string
}

// Реализация process-local хранилища демо-счетчиков.
// Смена socket id (новая вкладка или браузер) обнуляет счетчик -
// намеренное продуктовое поведение для анонимной пробной игры
type SessionRepo struct {
	mtx      sync.Mutex
	sessions map[string]*demoSession
}

// NewDemoSessionRepository - конструктор хранилища демо-счетчиков
func NewDemoSessionRepository() *SessionRepo {
	return &SessionRepo{
		sessions: make(map[string]*demoSession),
	}
}

// Touch - регистрирует обращение пользователя с указанным socket id.
// Если socket id сменился, счетчик обнуляется немедленно, независимо от окна
func (r *SessionRepo) Touch(uid string, socketID string, now time.Time) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok || session.socketID != socketID {
		r.sessions[uid] = &demoSession{count: 0, lastPlayed: now, socketID: socketID}
		return
	}

	session.lastPlayed = now
}

// Count - текущее количество демо-дропов
func (r *SessionRepo) Count(uid string) int {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok {
		return 0
	}

	return session.count
}

// Increment - засчитывает демо-дроп
func (r *SessionRepo) Increment(uid string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	session, ok := r.sessions[uid]
	if !ok {
		session = &demoSession{lastPlayed: time.Now()}
		r.sessions[uid] = session
	}

	session.count++
}

// ClearSocket - отвязывает отключившийся socket от всех сессий.
// Счетчики при этом сохраняются до следующего Touch
func (r *SessionRepo) ClearSocket(socketID string) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, session := range r.sessions {
		if session.socketID == socketID {
			session.socketID = ""
		}
	}
}
