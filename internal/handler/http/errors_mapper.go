package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/service"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

// errorResponse is the status and the client-visible detail of an error. An
// empty detail means the error text itself is shown.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidCredential:    {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrIncorrectCredentials: {http.StatusUnauthorized, app.MsgIncorrectCredentials},
	service.ErrUnauthorizedAction:   {http.StatusUnauthorized, app.MsgNotAuthorized},
	service.ErrInvalidImage:         {http.StatusBadRequest, ""},
	service.ErrAlreadyVerified:      {http.StatusBadRequest, ""},
	service.ErrNotificationFailed:   {http.StatusBadGateway, ""},

	validators.ErrValidation:           {http.StatusBadRequest, ""},
	validators.ErrInvalidFileExtension: {http.StatusBadRequest, app.MsgFileExtensionNotAllowed},

	store.ErrUserAlreadyExists:     {http.StatusConflict, app.MsgUserAlreadyExists},
	store.ErrBusinessAlreadyExists: {http.StatusConflict, ""},
	store.ErrUserNotFound:          {http.StatusNotFound, app.MsgUserNotFound},
	store.ErrBusinessNotFound:      {http.StatusNotFound, app.MsgBusinessNotFound},
	store.ErrProductNotFound:       {http.StatusNotFound, app.MsgProductNotFound},

	ErrInvalidJSON:        {http.StatusBadRequest, ""},
	ErrInvalidID:          {http.StatusBadRequest, ""},
	ErrInvalidPagination:  {http.StatusBadRequest, ""},
	ErrMissingCredentials: {http.StatusBadRequest, ""},
	ErrMissingFile:        {http.StatusBadRequest, ""},
	ErrUploadTooLarge:     {http.StatusRequestEntityTooLarge, ""},
	ErrMissingToken:       {http.StatusBadRequest, ""},
}

// statusFromError resolves err against errorStatusMap. Unknown errors are
// 500 with a generic detail so storage internals never leak to clients.
func statusFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.detail == "" {
				resp.detail = err.Error()
			}
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError logs err and answers with the error envelope. 401 responses
// carry a bearer challenge.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := statusFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.NewErrorResponse(resp.detail), resp.status)
}
