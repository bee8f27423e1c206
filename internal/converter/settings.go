package converter

import (
	dto "plinko_backend/internal/api/dto/settings"
	"plinko_backend/internal/model"
)

func ToSettingsUpdate(req dto.UpdateSettingsRequest) model.SettingsUpdate {
	return model.SettingsUpdate{
		BallLimit:        req.BallLimit,
		InitialBalance:   req.InitialBalance,
		MaxBallPrice:     req.MaxBallPrice,
		DropResetTimeMs:  req.DropResetTime,
		TotalCycleTimeMs: req.TotalCycleTime,
		LastSignedInBy:   req.LastSignedInBy,
	}
}

func ToSettingsResponse(settings model.GameSettings) dto.SettingsResponse {
	return dto.SettingsResponse{
		BallLimit:      settings.BallLimit,
		InitialBalance: settings.InitialBalance,
		MaxBallPrice:   settings.MaxBallPrice,
		DropResetTime:  settings.DropResetTimeMs,
		TotalCycleTime: settings.TotalCycleTimeMs,
		LastSignedInBy: settings.LastSignedInBy,
	}
}
