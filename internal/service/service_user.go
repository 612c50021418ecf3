package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/itemkeeper/itemkeeper/internal/logger"
	"github.com/itemkeeper/itemkeeper/internal/store"
	"github.com/itemkeeper/itemkeeper/models"
)

// userService is the concrete implementation of UserService. It projects
// user records to non-sensitive summaries before they leave the service
// layer, so password hashes never travel upstream.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService backed by the given repository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// GetAllUsers returns id+username summaries for every registered account,
// ordered by id ascending.
func (s *userService) GetAllUsers(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.GetAllUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	summaries := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}

	return summaries, nil
}

// Profile resolves the account behind an authenticated user id. The id comes
// from a verified token, so a missing row means the account vanished after
// issuance; the store sentinel is passed through for the handler to map.
func (s *userService) Profile(ctx context.Context, userID int64) (models.UserSummary, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.UserSummary{}, err
		}

		logger.FromContext(ctx).Err(err).Int64("id", userID).Msg("profile lookup failed")
		return models.UserSummary{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user.Summary(), nil
}
