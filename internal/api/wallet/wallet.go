package wallet

import (
	"net/http"
	"plinko_backend/internal/api/apierr"
	dto "plinko_backend/internal/api/dto/wallet"
	"plinko_backend/internal/converter"
	"plinko_backend/internal/service"
	"plinko_backend/pkg/req"
	"plinko_backend/pkg/resp"

	"github.com/go-chi/chi/v5"
)

type HandlerDeps struct {
	Serv service.WalletService
}

type Handler struct {
	serv service.WalletService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// UserWallet - GET /user-wallet?uid=: пользователь и баланс кошелька
func (h *Handler) UserWallet(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	user, wallet, err := h.serv.UserWallet(r.Context(), uid)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToUserWalletResponse(*user, *wallet))
}

// SubmitRequest - POST /wallet/request: заявка на пополнение
func (h *Handler) SubmitRequest(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SubmitRequestRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	_, err = h.serv.SubmitRequest(r.Context(), payload.UID, payload.RequestedAmount)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusCreated, map[string]string{
		"message": "Request submitted successfully",
	})
}

// ListRequests - GET /wallet/requests: все заявки на пополнение
func (h *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.serv.ListRequests(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWalletRequestResponses(requests))
}

// Approve - PATCH /wallet/request/{id}/approve: одобрить заявку и начислить сумму
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := req.Decode[dto.RequestActionRequest](r.Body)
	if err != nil || payload.AdminEmail == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "admin email is required")
		return
	}

	newBalance, err := h.serv.Approve(r.Context(), id, payload.AdminEmail)
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.ApproveResponse{
		Message:    "Request approved and wallet updated",
		NewBalance: newBalance,
		SignedBy:   payload.AdminEmail,
	})
}

// Reject - PATCH /wallet/request/{id}/reject: отклонить заявку
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload, err := req.Decode[dto.RequestActionRequest](r.Body)
	if err != nil || payload.AdminEmail == "" {
		resp.WriteJSONError(w, http.StatusBadRequest, "admin email is required")
		return
	}

	if err := h.serv.Reject(r.Context(), id, payload.AdminEmail); err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, map[string]string{
		"message":  "Request rejected",
		"signedBy": payload.AdminEmail,
	})
}
