package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/buy-from-me/internal/config"
	"github.com/MKhiriev/buy-from-me/internal/logger"
	"github.com/MKhiriev/buy-from-me/internal/metrics"
	"github.com/MKhiriev/buy-from-me/internal/store"
	"github.com/MKhiriev/buy-from-me/internal/utils"
	"github.com/MKhiriev/buy-from-me/models"
)

// tokenService signs HS256 tokens with the configured secret and resolves
// verified tokens against the user store.
type tokenService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected.
	tokenIssuer string

	durations map[models.TokenPurpose]time.Duration

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] from the immutable app config.
func NewTokenService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		durations: map[models.TokenPurpose]time.Duration{
			models.AccessPurpose:       cfg.TokenDuration,
			models.VerificationPurpose: cfg.VerificationTokenDuration,
		},
		logger: logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, user models.User, purpose models.TokenPurpose) (models.Token, error) {
	token, err := utils.GenerateJWTToken(user, utils.JWTParams{
		Issuer:   s.tokenIssuer,
		Purpose:  purpose,
		Duration: s.durations[purpose],
		SignKey:  s.tokenSignKey,
	})
	metrics.TokensIssuedTotal.WithLabelValues(string(purpose), metrics.Result(err)).Inc()
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Int64("user_id", user.ID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string, purpose models.TokenPurpose) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.tokenSignKey, s.tokenIssuer, purpose)
	if err != nil {
		log.Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
		return models.User{}, ErrInvalidCredential
	}

	user, err := s.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Str("func", "*tokenService.Verify").Int64("user_id", token.UserID).Msg("error resolving token user")
		}
		return models.User{}, ErrInvalidCredential
	}

	// a verification link only confirms the address it was mailed to
	if purpose == models.VerificationPurpose && token.Email != user.Email {
		return models.User{}, ErrInvalidCredential
	}

	return user, nil
}
