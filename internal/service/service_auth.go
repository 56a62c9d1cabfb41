package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/adapter"
	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/metrics"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/internal/validators"
	"github.com/MKhiriev/buy-from-me/models"
)

// ImagesPath is the URL path uploaded images are served under.
const ImagesPath = "/static/images/"

// authService is the concrete implementation of AuthService.
// It handles registration (user, business and verification mail), password
// checks and email verification.
type authService struct {
	transactor         store.Transactor
	userRepository     store.UserRepository
	businessRepository store.BusinessRepository

	tokens    TokenService
	notifier  adapter.Notifier
	validator validators.Validator

	// passwordHashCost is the bcrypt cost of new digests.
	passwordHashCost int

	// dummyDigest is compared against when the username is unknown so both
	// login failure paths cost one bcrypt comparison.
	dummyDigest string

	// mailTimeout bounds a single verification mail dispatch.
	mailTimeout time.Duration

	baseURL string

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(
	storages *store.Storages,
	tokens TokenService,
	notifier adapter.Notifier,
	validator validators.Validator,
	cfg config.StructuredConfig,
	logger *logger.Logger,
) (AuthService, error) {
	dummyDigest, err := utils.HashPassword("buy-from-me-dummy-password", cfg.App.PasswordHashCost)
	if err != nil {
		return nil, err
	}

	return &authService{
		transactor:         storages.Transactor,
		userRepository:     storages.UserRepository,
		businessRepository: storages.BusinessRepository,
		tokens:             tokens,
		notifier:           notifier,
		validator:          validator,
		passwordHashCost:   cfg.App.PasswordHashCost,
		dummyDigest:        dummyDigest,
		mailTimeout:        cfg.Mail.Timeout,
		baseURL:            strings.TrimRight(cfg.App.BaseURL, "/"),
		logger:             logger,
	}, nil
}

// RegisterUser creates a user together with its default business in one
// transaction, so a user never exists without a business. Only after the
// commit a verification token is issued and mailed. A failed dispatch is
// logged and counted but does not fail the registration; the user can ask
// for a new mail via ResendVerification.
//
// Returns the persisted user or:
//   - an error wrapping validators.ErrValidation for invalid input.
//   - store.ErrUserAlreadyExists for a taken username or email.
func (a *authService) RegisterUser(ctx context.Context, request models.RegistrationRequest) (user models.User, err error) {
	log := logger.FromContext(ctx)

	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(metrics.Result(err)).Inc()
	}()

	if err = a.validator.Validate(ctx, request); err != nil {
		return models.User{}, err
	}

	user = request.ToUser()
	if user.Password, err = utils.HashPassword(request.Password, a.passwordHashCost); err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, err
	}

	err = a.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		created, txErr := a.userRepository.CreateUser(ctx, user)
		if txErr != nil {
			return txErr
		}

		_, txErr = a.businessRepository.CreateBusiness(ctx, models.Business{
			Name:    created.Username,
			City:    models.DefaultBusinessLocation,
			Region:  models.DefaultBusinessLocation,
			Logo:    models.DefaultBusinessLogo,
			OwnerID: created.ID,
		})
		if txErr != nil {
			return fmt.Errorf("error creating default business: %w", txErr)
		}

		user = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrUserAlreadyExists) {
			log.Err(err).Str("func", "*authService.RegisterUser").Str("username", request.Username).Msg("user registration failed")
		}
		return models.User{}, err
	}

	if mailErr := a.sendVerification(ctx, user); mailErr != nil {
		log.Warn().Err(mailErr).Int64("user_id", user.ID).Msg("user registered without verification mail")
	}

	return user, nil
}

// Authenticate looks the user up by username and checks password against
// the stored digest.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, bool, error) {
	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		utils.CheckPassword(password, a.dummyDigest)
		return models.User{}, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.Authenticate").Msg("user search by username failed")
		return models.User{}, false, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(password, user.Password) {
		return models.User{}, false, nil
	}

	return user, true, nil
}

// Login authenticates the user and issues an access token. Unknown
// usernames and wrong passwords both yield ErrIncorrectCredentials.
func (a *authService) Login(ctx context.Context, username, password string) (token models.Token, err error) {
	defer func() {
		metrics.LoginsTotal.WithLabelValues(metrics.Result(err)).Inc()
	}()

	user, ok, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return models.Token{}, err
	}
	if !ok {
		return models.Token{}, ErrIncorrectCredentials
	}

	return a.tokens.Issue(ctx, user, models.AccessPurpose)
}

// VerifyEmail marks the token's user verified. Following the link again is a
// no-op that returns the already verified user.
func (a *authService) VerifyEmail(ctx context.Context, tokenString string) (models.User, bool, error) {
	user, err := a.tokens.Verify(ctx, tokenString, models.VerificationPurpose)
	if err != nil {
		return models.User{}, false, err
	}

	if user.IsVerified {
		return user, false, nil
	}

	changed, err := a.userRepository.MarkUserVerified(ctx, user.ID)
	if err != nil {
		return models.User{}, false, err
	}
	user.IsVerified = true

	if changed {
		logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("email verified")
	}

	return user, changed, nil
}

// ResendVerification mails a fresh verification link to an unverified user.
func (a *authService) ResendVerification(ctx context.Context, current models.User) error {
	if current.IsVerified {
		return ErrAlreadyVerified
	}

	if err := a.sendVerification(ctx, current); err != nil {
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

// Profile returns the public view of current including the absolute URL of
// its business logo.
func (a *authService) Profile(ctx context.Context, current models.User) (models.Profile, error) {
	business, err := a.businessRepository.FindBusinessByOwnerID(ctx, current.ID)
	if err != nil {
		return models.Profile{}, err
	}

	return models.Profile{
		Username: current.Username,
		Email:    current.Email,
		Verified: current.IsVerified,
		JoinDate: current.JoinDate.Format(models.JoinDateLayout),
		Logo:     a.baseURL + ImagesPath + business.Logo,
	}, nil
}

// sendVerification issues a verification token and hands it to the
// notifier. The dispatch survives cancellation of ctx but is bounded by
// mailTimeout.
func (a *authService) sendVerification(ctx context.Context, user models.User) (err error) {
	defer func() {
		metrics.VerificationMailsTotal.WithLabelValues(metrics.Result(err)).Inc()
	}()

	token, err := a.tokens.Issue(ctx, user, models.VerificationPurpose)
	if err != nil {
		return err
	}

	mailCtx := context.WithoutCancel(ctx)
	if a.mailTimeout > 0 {
		var cancel context.CancelFunc
		mailCtx, cancel = context.WithTimeout(mailCtx, a.mailTimeout)
		defer cancel()
	}

	return a.notifier.SendVerification(mailCtx, user, token)
}
