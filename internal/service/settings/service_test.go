package settings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"plinko_backend/internal/config"
	"plinko_backend/internal/model"
)

type fakeGameConfig struct {
	defaults config.SettingsDefaults
}

func (c *fakeGameConfig) DefaultBallPrice() float64                { return 1 }
func (c *fakeGameConfig) DemoBallLimit() int                       { return 10 }
func (c *fakeGameConfig) DefaultSettings() config.SettingsDefaults { return c.defaults }

// fakeSettingsRepo хранит singleton-строку в памяти
type fakeSettingsRepo struct {
	mtx      sync.Mutex
	settings *model.GameSettings
	getErr   error
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*model.GameSettings, error) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.getErr != nil {
		return nil, r.getErr
	}
	if r.settings == nil {
		return nil, model.ErrSettingsNotFound
	}
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) Create(_ context.Context, settings *model.GameSettings) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if r.settings != nil {
		return nil
	}
	copied := *settings
	r.settings = &copied
	return nil
}

func (r *fakeSettingsRepo) Update(_ context.Context, settings *model.GameSettings) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	copied := *settings
	r.settings = &copied
	return nil
}

type fakeBroadcaster struct {
	mtx    sync.Mutex
	events []string
}

func (b *fakeBroadcaster) Emit(event string, _ any) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.events = append(b.events, event)
}

func (b *fakeBroadcaster) EmitTo(_ string, event string, _ any) error {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.events = append(b.events, event)
	return nil
}

func testDefaults() config.SettingsDefaults {
	return config.SettingsDefaults{
		BallLimit:        100,
		InitialBalance:   200,
		MaxBallPrice:     20,
		DropResetTimeMs:  60000,
		TotalCycleTimeMs: 600000,
	}
}

func TestGetCreatesDefaults(t *testing.T) {
	repo := &fakeSettingsRepo{}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, &fakeBroadcaster{})

	settings, err := serv.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if settings.BallLimit != 100 {
		t.Errorf("BallLimit = %d, want 100", settings.BallLimit)
	}
	if settings.InitialBalance != 200 {
		t.Errorf("InitialBalance = %v, want 200", settings.InitialBalance)
	}
	if settings.LastSignedInBy != "system" {
		t.Errorf("LastSignedInBy = %q, want system", settings.LastSignedInBy)
	}
}

func TestGetReturnsExisting(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.GameSettings{
		BallLimit:      50,
		LastSignedInBy: "admin@test.local",
	}}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, &fakeBroadcaster{})

	settings, err := serv.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if settings.BallLimit != 50 {
		t.Errorf("BallLimit = %d, want stored 50", settings.BallLimit)
	}
}

func TestGetPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &fakeSettingsRepo{getErr: repoErr}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, &fakeBroadcaster{})

	_, err := serv.Get(context.Background())
	if !errors.Is(err, repoErr) {
		t.Fatalf("Get() error = %v, want %v", err, repoErr)
	}
}

func TestUpdateRequiresEditor(t *testing.T) {
	repo := &fakeSettingsRepo{}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, &fakeBroadcaster{})

	_, err := serv.Update(context.Background(), model.SettingsUpdate{})
	if !errors.Is(err, model.ErrEditorRequired) {
		t.Fatalf("Update() error = %v, want %v", err, model.ErrEditorRequired)
	}
}

func TestUpdatePartial(t *testing.T) {
	repo := &fakeSettingsRepo{settings: &model.GameSettings{
		BallLimit:        100,
		InitialBalance:   200,
		MaxBallPrice:     20,
		DropResetTimeMs:  60000,
		TotalCycleTimeMs: 600000,
		LastSignedInBy:   "system",
	}}
	broadcaster := &fakeBroadcaster{}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, broadcaster)

	newLimit := 42
	settings, err := serv.Update(context.Background(), model.SettingsUpdate{
		BallLimit:      &newLimit,
		LastSignedInBy: "admin@test.local",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if settings.BallLimit != 42 {
		t.Errorf("BallLimit = %d, want 42", settings.BallLimit)
	}
	// Непереданные поля не тронуты
	if settings.InitialBalance != 200 {
		t.Errorf("InitialBalance = %v, want untouched 200", settings.InitialBalance)
	}
	if settings.MaxBallPrice != 20 {
		t.Errorf("MaxBallPrice = %v, want untouched 20", settings.MaxBallPrice)
	}
	if settings.LastSignedInBy != "admin@test.local" {
		t.Errorf("LastSignedInBy = %q, want admin@test.local", settings.LastSignedInBy)
	}

	if len(broadcaster.events) != 1 || broadcaster.events[0] != settingsUpdatedEvent {
		t.Errorf("events = %v, want single %q", broadcaster.events, settingsUpdatedEvent)
	}
}

func TestUpdateCreatesRowWhenMissing(t *testing.T) {
	repo := &fakeSettingsRepo{}
	serv := NewSettingsService(repo, &fakeGameConfig{defaults: testDefaults()}, &fakeBroadcaster{})

	newMax := 30.0
	settings, err := serv.Update(context.Background(), model.SettingsUpdate{
		MaxBallPrice:   &newMax,
		LastSignedInBy: "admin@test.local",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Дефолты с наложенным обновлением
	if settings.BallLimit != 100 {
		t.Errorf("BallLimit = %d, want default 100", settings.BallLimit)
	}
	if settings.MaxBallPrice != 30 {
		t.Errorf("MaxBallPrice = %v, want 30", settings.MaxBallPrice)
	}
}
