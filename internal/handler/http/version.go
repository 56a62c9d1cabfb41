package http

import (
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": app.MsgHelloWorld}, http.StatusOK)
}
