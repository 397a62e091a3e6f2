package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/credit-risk-gateway/internal/config"
	"github.com/MKhiriev/credit-risk-gateway/internal/crypto"
	"github.com/MKhiriev/credit-risk-gateway/internal/logger"
	"github.com/MKhiriev/credit-risk-gateway/internal/store"
	"github.com/MKhiriev/credit-risk-gateway/internal/utils"
	"github.com/MKhiriev/credit-risk-gateway/internal/validators"
	"github.com/MKhiriev/credit-risk-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher
// for password storage.
type authService struct {
	// userRepository is the credential store.
	userRepository store.UserRepository

	// hasher hashes and verifies passwords.
	hasher crypto.PasswordHasher

	// validator checks registration payloads.
	validator validators.Validator

	// signingMethod and secretKey sign and verify tokens.
	signingMethod jwt.SigningMethod
	secretKey     string

	// tokenTTL is used when IssueToken is called without a ttl.
	tokenTTL time.Duration

	// leeway is the clock skew tolerated on "exp".
	leeway time.Duration

	now func() time.Time

	// dummyHash is verified against for unknown users so that both login
	// failure paths cost one hash verification.
	dummyHash string

	logger *logger.Logger
}

// dummyPassword is hashed once at construction to produce dummyHash.
const dummyPassword = "dummy-password-for-timing"

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher and populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecretKey
	}

	method, err := utils.HMACSigningMethod(cfg.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedSigningAlgorithm, err)
	}

	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDummyHashFailed, err)
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewUserValidator(),
		signingMethod:  method,
		secretKey:      cfg.SecretKey,
		tokenTTL:       cfg.TokenTTL(),
		leeway:         cfg.TokenLeeway,
		now:            time.Now,
		dummyHash:      dummyHash,
		logger:         logger,
	}, nil
}

// Register creates a new active user account.
//
// Returns the persisted user (with a store-assigned ID) or:
//   - ErrInvalidDataProvided wrapping the validation error.
//   - ErrDuplicateUsername if the username is taken.
//   - ErrStoreUnavailable if the store can not be reached.
func (a *authService) Register(ctx context.Context, user models.UserCreate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PasswordHash: hash,
		IsActive:     true,
	})
	if err != nil {
		log.Warn().Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	log.Info().Int64("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created, nil
}

// Authenticate checks username and password.
//
// Returns the stored user or:
//   - ErrInvalidCredentials if the user is unknown or the password is wrong.
//   - ErrInactiveUser if the password matches a deactivated account.
//   - ErrStoreUnavailable if the store can not be reached.
func (a *authService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, found, err := a.userRepository.GetUser(ctx, username)
	if err != nil {
		log.Err(err).Str("username", username).Msg("user lookup failed")
		return models.User{}, mapStoreError(err)
	}

	if !found {
		a.hasher.Verify(password, a.dummyHash)
		log.Warn().Str("username", username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		log.Warn().Str("username", username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		log.Warn().Str("username", username).Msg("login for inactive user")
		return models.User{}, ErrInactiveUser
	}

	log.Info().Int64("user_id", user.ID).Str("username", username).Msg("user authenticated")
	return user, nil
}

// IssueToken signs a token for username expiring ttl from now.
func (a *authService) IssueToken(ctx context.Context, username string, ttl time.Duration) (models.Token, error) {
	if username == "" {
		return models.Token{}, fmt.Errorf("%w: empty username", ErrInvalidDataProvided)
	}
	if ttl <= 0 {
		ttl = a.tokenTTL
	}

	token, err := utils.GenerateJWTToken(username, a.now().Add(ttl), a.signingMethod, a.secretKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ValidateToken verifies the token and resolves its subject.
//
// Errors:
//   - ErrMalformedToken: unparsable, bad signature, wrong algorithm or no exp.
//   - ErrExpiredToken: exp is at or before now (minus leeway).
//   - ErrMissingSubject: no "sub" claim.
//   - ErrUnknownUser: subject is not stored.
//   - ErrInactiveUser: subject is deactivated.
//   - ErrStoreUnavailable: the lookup failed.
func (a *authService) ValidateToken(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, utils.JWTValidation{
		Method:  a.signingMethod,
		SignKey: a.secretKey,
		Leeway:  a.leeway,
		Now:     a.now,
	})
	if err != nil {
		err = mapTokenError(err)
		log.Warn().Err(err).Msg("token rejected")
		return models.User{}, err
	}

	user, found, err := a.userRepository.GetUser(ctx, token.Username)
	if err != nil {
		log.Err(err).Str("username", token.Username).Msg("user lookup failed")
		return models.User{}, mapStoreError(err)
	}
	if !found {
		log.Warn().Str("username", token.Username).Msg("token subject does not exist")
		return models.User{}, ErrUnknownUser
	}
	if !user.IsActive {
		log.Warn().Str("username", token.Username).Msg("token subject is inactive")
		return models.User{}, ErrInactiveUser
	}

	return user, nil
}

// SetUserActive changes the active flag of username.
func (a *authService) SetUserActive(ctx context.Context, username string, active bool) (models.User, error) {
	user, err := a.userRepository.SetUserActive(ctx, username, active)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("username", username).Msg("changing user activity failed")
		return models.User{}, mapStoreError(err)
	}

	logger.FromContext(ctx).Info().Str("username", username).Bool("active", active).Msg("user activity changed")
	return user, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, utils.ErrJWTSubjectMissing):
		return ErrMissingSubject
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrExpiredToken, err)
	default:
		return fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}
}

func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrDuplicateUsername
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUnknownUser
	default:
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
}
