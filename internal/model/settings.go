package model

type GameSettings struct {
	BallLimit        int
	InitialBalance   float64
	MaxBallPrice     float64
	DropResetTimeMs  int64
	TotalCycleTimeMs int64
	LastSignedInBy   string
}

// SettingsUpdate - частичное обновление настроек.
// nil-поле означает "оставить как есть"
type SettingsUpdate struct {
	BallLimit        *int
	InitialBalance   *float64
	MaxBallPrice     *float64
	DropResetTimeMs  *int64
	TotalCycleTimeMs *int64
	LastSignedInBy   string
}
