package model

type Play struct {
	UID       string
	BallPrice float64
}

type DemoPlay struct {
	UserID    string
	BallPrice float64
	SocketID  string
}

// DropOutcome - результат падения шарика:
// номер корзины, траектория, множитель и очки из таблицы корзины
type DropOutcome struct {
	Bucket     int
	Pattern    []string
	Multiplier float64
	Points     int
}

type PlayResult struct {
	UID            string
	Point          int
	Pattern        []string
	Multiplier     float64
	BallPrice      float64
	Winnings       float64
	RemainingZixos float64
	RemainingBalls int
}

type DemoPlayResult struct {
	Point          int
	Pattern        []string
	Multiplier     float64
	RemainingBalls int
}
