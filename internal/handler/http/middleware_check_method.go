// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

// notFound and methodNotAllowed replace chi's plain-text defaults so every
// API answer, including routing failures, uses the JSON error envelope.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NewErrorResponse(app.MsgNotFound), http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.NewErrorResponse(app.MsgMethodNotAllowed), http.StatusMethodNotAllowed)
}
