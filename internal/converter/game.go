package converter

import (
	dto "plinko_backend/internal/api/dto/game"
	"plinko_backend/internal/model"
)

func ToPlay(req dto.PlayRequest) model.Play {
	return model.Play{
		UID:       req.UID,
		BallPrice: req.BallPrice,
	}
}

func ToPlayResponse(res model.PlayResult) dto.PlayResponse {
	return dto.PlayResponse{
		UID:            res.UID,
		Point:          res.Point,
		BallPrice:      res.BallPrice,
		Winnings:       res.Winnings,
		Multiplier:     res.Multiplier,
		Pattern:        res.Pattern,
		RemainingZixos: res.RemainingZixos,
		RemainingBalls: res.RemainingBalls,
	}
}

func ToDemoPlay(req dto.DemoPlayRequest) model.DemoPlay {
	return model.DemoPlay{
		UserID:    req.UserID,
		BallPrice: req.BallPrice,
		SocketID:  req.SocketID,
	}
}

func ToDemoPlayResponse(res model.DemoPlayResult) dto.DemoPlayResponse {
	return dto.DemoPlayResponse{
		Point:          res.Point,
		Multiplier:     res.Multiplier,
		Pattern:        res.Pattern,
		RemainingBalls: res.RemainingBalls,
	}
}
