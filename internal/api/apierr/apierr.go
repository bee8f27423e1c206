package apierr

import (
	"errors"
	"net/http"
	"plinko_backend/internal/model"
	"plinko_backend/pkg/resp"
)

// Write отображает ошибку игрового цикла в HTTP-статус.
// Неизвестные ошибки не раскрываются клиенту и уходят как 500
func Write(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrUIDRequired),
		errors.Is(err, model.ErrInvalidPrice),
		errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrEditorRequired),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrRequestProcessed):
		resp.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrWalletNotFound),
		errors.Is(err, model.ErrRequestNotFound):
		resp.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrLimitReached):
		resp.WriteJSONError(w, http.StatusTooManyRequests, err.Error())
	default:
		resp.WriteJSONError(w, http.StatusInternalServerError, "server error")
	}
}
