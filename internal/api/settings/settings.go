package settings

import (
	"net/http"
	"plinko_backend/internal/api/apierr"
	dto "plinko_backend/internal/api/dto/settings"
	"plinko_backend/internal/converter"
	"plinko_backend/internal/service"
	"plinko_backend/pkg/req"
	"plinko_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.SettingsService
}

type Handler struct {
	serv service.SettingsService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Get - GET /settings: текущие настройки игры
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.serv.Get(r.Context())
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSettingsResponse(*settings))
}

// Update - POST /settings: частичное обновление настроек
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateSettingsRequest](r.Body)
	if err != nil {
		resp.WriteJSONError(w, http.StatusBadRequest, "invalid request")
		return
	}

	settings, err := h.serv.Update(r.Context(), converter.ToSettingsUpdate(payload))
	if err != nil {
		apierr.Write(w, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.UpdateSettingsResponse{
		Message:  "Settings updated successfully",
		Settings: converter.ToSettingsResponse(*settings),
	})
}
