package model

// Количество рядов колышков. Шарик делает 16 независимых отскоков,
// номер корзины равен числу отскоков вправо
const TotalDrops = 16

// Multipliers - фиксированная таблица множителей по корзинам.
// Симметрична относительно центра: крайние корзины платят больше всего,
// центральные - меньше всего (биномиальная кривая риска)
var Multipliers = [TotalDrops + 1]float64{
	16, 9, 2, 1.4, 1.4, 1.2, 1.1, 1, 0.5, 1, 1.1, 1.2, 1.4, 1.4, 2, 9, 16,
}

// PointsTable - варианты отображаемых очков по корзинам.
// Конкретное значение выбирается равномерно из списка корзины
var PointsTable = [TotalDrops + 1][]int{
	{160, 161, 163, 166},
	{90, 92, 95},
	{20, 21, 23},
	{14, 15, 16},
	{14, 15, 16},
	{12, 13},
	{11, 12},
	{10, 11},
	{5, 6},
	{10, 11},
	{11, 12},
	{12, 13},
	{14, 15, 16},
	{14, 15, 16},
	{20, 21, 23},
	{90, 92, 95},
	{160, 161, 163, 166},
}
