package demo_session_repo

import (
	"testing"
	"time"
)

func TestTouchSameSocketKeepsCount(t *testing.T) {
	repo := NewDemoSessionRepository()
	now := time.Now()

	repo.Touch("guest-1", "sock-1", now)
	repo.Increment("guest-1")
	repo.Increment("guest-1")

	repo.Touch("guest-1", "sock-1", now.Add(time.Second))
	if got := repo.Count("guest-1"); got != 2 {
		t.Fatalf("Count() = %d, want 2 after touch with same socket", got)
	}
}

func TestTouchNewSocketResetsCount(t *testing.T) {
	repo := NewDemoSessionRepository()
	now := time.Now()

	repo.Touch("guest-1", "sock-1", now)
	repo.Increment("guest-1")
	repo.Increment("guest-1")

	// Новая вкладка: socket id сменился, счетчик обнуляется сразу
	repo.Touch("guest-1", "sock-2", now.Add(time.Second))
	if got := repo.Count("guest-1"); got != 0 {
		t.Fatalf("Count() = %d, want 0 after socket change", got)
	}
}

func TestClearSocketForcesResetOnNextTouch(t *testing.T) {
	repo := NewDemoSessionRepository()
	now := time.Now()

	repo.Touch("guest-1", "sock-1", now)
	repo.Increment("guest-1")

	// Отключение соединения отвязывает socket, счетчик пока жив
	repo.ClearSocket("sock-1")
	if got := repo.Count("guest-1"); got != 1 {
		t.Fatalf("Count() = %d, want 1 right after disconnect", got)
	}

	// Возврат даже с тем же socket id выглядит как новая сессия
	repo.Touch("guest-1", "sock-1", now.Add(time.Minute))
	if got := repo.Count("guest-1"); got != 0 {
		t.Fatalf("Count() = %d, want 0 after reconnect", got)
	}
}

func TestSessionsIsolatedPerUser(t *testing.T) {
	repo := NewDemoSessionRepository()
	now := time.Now()

	repo.Touch("guest-1", "sock-1", now)
	repo.Touch("guest-2", "sock-2", now)
	repo.Increment("guest-1")

	if got := repo.Count("guest-1"); got != 1 {
		t.Errorf("Count(guest-1) = %d, want 1", got)
	}
	if got := repo.Count("guest-2"); got != 0 {
		t.Errorf("Count(guest-2) = %d, want 0", got)
	}
}
