package game

import (
	"math/rand"
	"plinko_backend/internal/model"
	servModel "plinko_backend/internal/service/game/model"
)

// simulateDrop разыгрывает падение шарика: 16 независимых отскоков
// влево/вправо, номер корзины равен числу отскоков вправо.
// Случайность двухступенчатая: траектория определяет корзину,
// затем очки выбираются равномерно из списка корзины
func simulateDrop() model.DropOutcome {
	bucket := 0
	pattern := make([]string, 0, servModel.TotalDrops)

	for i := 0; i < servModel.TotalDrops; i++ {
		if rand.Float64() > 0.5 {
			pattern = append(pattern, "R")
			bucket++
		} else {
			pattern = append(pattern, "L")
		}
	}

	points := servModel.PointsTable[bucket]

	return model.DropOutcome{
		Bucket:     bucket,
		Pattern:    pattern,
		Multiplier: servModel.Multipliers[bucket],
		Points:     points[rand.Intn(len(points))],
	}
}
