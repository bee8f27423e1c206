package settings

type SettingsResponse struct {
	BallLimit      int     `json:"ballLimit"`      // Лимит дропов в окне
	InitialBalance float64 `json:"initialBalance"` // Стартовый баланс кошелька
	MaxBallPrice   float64 `json:"maxBallPrice"`   // Максимальная цена шарика
	DropResetTime  int64   `json:"dropResetTime"`  // Окно сброса счетчика, мс
	TotalCycleTime int64   `json:"totalCycleTime"` // Полный игровой цикл, мс
	LastSignedInBy string  `json:"lastSignedInBy"` // Кто последним менял настройки
}

type UpdateSettingsRequest struct {
	BallLimit      *int     `json:"ballLimit"`      // nil = не менять
	InitialBalance *float64 `json:"initialBalance"` // nil = не менять
	MaxBallPrice   *float64 `json:"maxBallPrice"`   // nil = не менять
	DropResetTime  *int64   `json:"dropResetTime"`  // nil = не менять
	TotalCycleTime *int64   `json:"totalCycleTime"` // nil = не менять
	LastSignedInBy string   `json:"lastSignedInBy"` // Обязательное поле
}

type UpdateSettingsResponse struct {
	Message  string           `json:"message"`
	Settings SettingsResponse `json:"settings"`
}
