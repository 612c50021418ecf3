package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/itemkeeper/itemkeeper/internal/config"
	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/internal/utils"
	"github.com/itemkeeper/itemkeeper/models"
)

// minPasswordLength is the smallest password accepted at registration and
// login. Enforced on login too so that a malformed request is rejected
// before any store access.
const minPasswordLength = 6

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// Read-only after construction; safe to share across requests.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the credential shape, hashes the password with bcrypt, and
// delegates persistence to the UserRepository. The plaintext password and
// the stored digest never leave this method: the returned summary carries
// id and username only.
//
// Returns:
//   - *ValidationError if the username is empty or the password is shorter
//     than six characters.
//   - store.ErrUsernameAlreadyExists if the username is taken; the store's
//     unique constraint decides races between concurrent registrations.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.UserSummary, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(creds); err != nil {
		log.Debug().Str("username", creds.Username).Msg("invalid registration data provided")
		return models.UserSummary{}, err
	}

	passwordHash, err := utils.HashPassword(creds.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.UserSummary{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return models.UserSummary{}, err
		}

		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		return models.UserSummary{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Summary(), nil
}

// Login authenticates an existing user and issues a session token.
//
// It validates the credential shape, looks up the account by username, and
// verifies the supplied password against the stored bcrypt digest. A
// nonexistent username and a wrong password both collapse into
// ErrInvalidCredentials so that the two cases are indistinguishable to the
// caller.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := validateCredentials(creds); err != nil {
		log.Debug().Str("username", creds.Username).Msg("invalid login data provided")
		return models.Token{}, err
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", creds.Username).Msg("login rejected")
			return models.Token{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(creds.Password, foundUser.PasswordHash) {
		log.Debug().Str("username", creds.Username).Msg("login rejected")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(foundUser)
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// before any claim is trusted. An elapsed validity window surfaces as
// ErrTokenIsExpired; every other defect is normalised to ErrTokenIsInvalid
// so that callers do not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsInvalid
	}

	return token, nil
}

// createToken issues a signed JWT bound to the given user.
func (a *authService) createToken(user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// validateCredentials checks the request shape shared by Register and Login:
// a non-empty username and a password of at least minPasswordLength
// characters.
func validateCredentials(creds models.Credentials) error {
	var messages []string

	if strings.TrimSpace(creds.Username) == "" {
		messages = append(messages, "username must not be empty")
	}
	if len(creds.Password) < minPasswordLength {
		messages = append(messages, fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}

	if len(messages) > 0 {
		return NewValidationError(messages...)
	}

	return nil
}
