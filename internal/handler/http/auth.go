package http

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/buy-from-me/internal/app"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

//go:embed templates/verification.html
var templatesFS embed.FS

var verificationPage = template.Must(template.ParseFS(templatesFS, "templates/verification.html"))

// token is the OAuth2 password flow endpoint: form fields username and
// password in, bearer token out.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMissingCredentials, err))
		return
	}

	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if username == "" || password == "" {
		writeError(w, r, ErrMissingCredentials)
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), username, password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.NewAccessTokenResponse(token), http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegistrationRequest
	if err := utils.DecodeJSON(r.Body, &request); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.ID).Msg("user registered")

	welcome := fmt.Sprintf(app.MsgWelcomeFormat, user.Username)
	utils.WriteSuccess(w, welcome)
}

// verifyEmail is the target of the link in the verification mail. It renders
// an HTML page on success, also when the address was verified before.
func (h *Handler) verifyEmail(w http.ResponseWriter, r *http.Request) {
	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		writeError(w, r, ErrMissingToken)
		return
	}

	user, _, err := h.services.AuthService.VerifyEmail(r.Context(), tokenString)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page := struct{ AppName, Username string }{app.Name, user.Username}
	if _, err = utils.WriteHTML(w, verificationPage, page, http.StatusOK); err != nil {
		writeError(w, r, err)
	}
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := h.services.AuthService.Profile(r.Context(), user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, profile)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.services.AuthService.ResendVerification(r.Context(), user); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteSuccess(w, "Verification mail sent to "+user.Email)
}
