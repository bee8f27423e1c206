package game

type PlayRequest struct {
	UID       string  `json:"uid"`       // UID пользователя
	BallPrice float64 `json:"ballPrice"` // Цена шарика (0 = дефолтная)
}

type PlayResponse struct {
	UID            string   `json:"uid"`            // UID пользователя
	Point          int      `json:"point"`          // Выпавшие очки
	BallPrice      float64  `json:"ballPrice"`      // Фактически списанная цена
	Winnings       float64  `json:"winnings"`       // Начисленный выигрыш
	Multiplier     float64  `json:"multiplier"`     // Множитель корзины
	Pattern        []string `json:"pattern"`        // Траектория L/R для анимации
	RemainingZixos float64  `json:"remainingZixos"` // Баланс после дропа
	RemainingBalls int      `json:"remainingBalls"` // Остаток дропов в окне
}

type DemoPlayRequest struct {
	UserID    string  `json:"userId"`    // Идентификатор демо-игрока
	BallPrice float64 `json:"ballPrice"` // Цена шарика (>0)
	SocketID  string  `json:"socketId"`  // Socket id текущей вкладки
}

type DemoPlayResponse struct {
	Point          int      `json:"point"`          // Выпавшие очки
	Multiplier     float64  `json:"multiplier"`     // Множитель корзины
	Pattern        []string `json:"pattern"`        // Траектория L/R
	RemainingBalls int      `json:"remainingBalls"` // Остаток демо-дропов
}

type RemainingBallsResponse struct {
	RemainingBalls int `json:"remainingBalls"` // Остаток демо-дропов
}
