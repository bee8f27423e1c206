package game

import (
	"context"
	"errors"
	"testing"

	"plinko_backend/internal/model"
)

func TestDemoPlayValidation(t *testing.T) {
	tests := []struct {
		name    string
		play    model.DemoPlay
		wantErr error
	}{
		{
			name:    "empty user id",
			play:    model.DemoPlay{UserID: "", BallPrice: 1},
			wantErr: model.ErrUIDRequired,
		},
		{
			name:    "zero price",
			play:    model.DemoPlay{UserID: "guest-1", BallPrice: 0},
			wantErr: model.ErrInvalidPrice,
		},
		{
			name:    "negative price",
			play:    model.DemoPlay{UserID: "guest-1", BallPrice: -1},
			wantErr: model.ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGameFixture(defaultTestSettings())

			_, err := f.serv.DemoPlay(context.Background(), tt.play)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DemoPlay() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDemoPlayLimit(t *testing.T) {
	// Фикстура дает 3 демо-дропа
	f := newGameFixture(defaultTestSettings())
	play := model.DemoPlay{UserID: "guest-1", BallPrice: 1, SocketID: "sock-1"}

	for i := 0; i < 3; i++ {
		res, err := f.serv.DemoPlay(context.Background(), play)
		if err != nil {
			t.Fatalf("DemoPlay() #%d error = %v", i+1, err)
		}
		if res.RemainingBalls != 3-(i+1) {
			t.Errorf("RemainingBalls after drop #%d = %d, want %d", i+1, res.RemainingBalls, 3-(i+1))
		}
	}

	_, err := f.serv.DemoPlay(context.Background(), play)
	if !errors.Is(err, model.ErrLimitReached) {
		t.Fatalf("DemoPlay() over limit error = %v, want %v", err, model.ErrLimitReached)
	}
}

func TestDemoPlaySocketChangeResetsCounter(t *testing.T) {
	f := newGameFixture(defaultTestSettings())

	for i := 0; i < 3; i++ {
		if _, err := f.serv.DemoPlay(context.Background(), model.DemoPlay{
			UserID: "guest-1", BallPrice: 1, SocketID: "sock-1",
		}); err != nil {
			t.Fatalf("DemoPlay() #%d error = %v", i+1, err)
		}
	}

	// Лимит исчерпан на старом соединении
	_, err := f.serv.DemoPlay(context.Background(), model.DemoPlay{
		UserID: "guest-1", BallPrice: 1, SocketID: "sock-1",
	})
	if !errors.Is(err, model.ErrLimitReached) {
		t.Fatalf("DemoPlay() error = %v, want %v", err, model.ErrLimitReached)
	}

	// Новая вкладка (новый socket id) обнуляет счетчик
	res, err := f.serv.DemoPlay(context.Background(), model.DemoPlay{
		UserID: "guest-1", BallPrice: 1, SocketID: "sock-2",
	})
	if err != nil {
		t.Fatalf("DemoPlay() on new socket error = %v", err)
	}
	if res.RemainingBalls != 2 {
		t.Errorf("RemainingBalls = %d, want 2 after reset", res.RemainingBalls)
	}
}

func TestDemoPlayEmitsToSocket(t *testing.T) {
	f := newGameFixture(defaultTestSettings())

	_, err := f.serv.DemoPlay(context.Background(), model.DemoPlay{
		UserID: "guest-1", BallPrice: 1, SocketID: "sock-1",
	})
	if err != nil {
		t.Fatalf("DemoPlay() error = %v", err)
	}

	if f.broadcaster.count(demoGameResultEvent) != 1 {
		t.Fatalf("demo_game_result events = %d, want 1", f.broadcaster.count(demoGameResultEvent))
	}
	if f.broadcaster.events[0].socketID != "sock-1" {
		t.Errorf("event socket = %q, want sock-1", f.broadcaster.events[0].socketID)
	}
}

func TestRemainingBalls(t *testing.T) {
	f := newGameFixture(defaultTestSettings())

	if got := f.serv.RemainingBalls("guest-1", "sock-1"); got != 3 {
		t.Fatalf("RemainingBalls() = %d, want full limit 3", got)
	}

	for i := 0; i < 2; i++ {
		if _, err := f.serv.DemoPlay(context.Background(), model.DemoPlay{
			UserID: "guest-1", BallPrice: 1, SocketID: "sock-1",
		}); err != nil {
			t.Fatalf("DemoPlay() error = %v", err)
		}
	}

	if got := f.serv.RemainingBalls("guest-1", "sock-1"); got != 1 {
		t.Errorf("RemainingBalls() = %d, want 1", got)
	}

	// Опрос с новым socket id обнуляет счетчик
	if got := f.serv.RemainingBalls("guest-1", "sock-2"); got != 3 {
		t.Errorf("RemainingBalls() on new socket = %d, want 3", got)
	}
}
