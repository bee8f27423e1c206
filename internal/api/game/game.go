package game

import (
	"net/http"
	"plinko_backend/internal/api/apierr"
	dto "plinko_backend/internal/api/dto/game"
	"plinko_backend/internal/converter"
	"plinko_backend/internal/service"
	"plinko_backend/pkg/req"
	"plinko_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.GameService
}

type Handler struct {
	serv service.GameService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Play - POST /game: платный дроп шарика
func (h *Handler) Play(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.PlayRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.Play(r.Context(), converter.ToPlay(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToPlayResponse(*result))
}

// DemoPlay - POST /demo-game: дроп без кошелька
func (h *Handler) DemoPlay(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.DemoPlayRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	result, err := h.serv.DemoPlay(r.Context(), converter.ToDemoPlay(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToDemoPlayResponse(*result))
}

// RemainingBalls - GET /remaining-balls/{userId}: опрос остатка демо-дропов
func (h *Handler) RemainingBalls(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	socketID := r.URL.Query().Get("socketId")

	remaining := h.serv.RemainingBalls(userID, socketID)

	resp.WriteJSONResponse(w, http.StatusOK, dto.RemainingBallsResponse{
		RemainingBalls: remaining,
	})
}
