package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carelane/staffbot/internal/domain"
	"github.com/carelane/staffbot/internal/repository"
)

type UserService struct {
	queries *repository.Queries
}

func NewUserService(queries *repository.Queries) *UserService {
	return &UserService{queries: queries}
}

func (s *UserService) FindOrCreate(ctx context.Context, telegramID int64, firstName, username string, isAdmin bool) (*domain.User, bool, error) {
	user, err := s.queries.GetUserByTelegramID(ctx, telegramID)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	user, err = s.queries.CreateUser(ctx, telegramID, firstName, username, isAdmin)
	if err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return user, true, nil
}

func (s *UserService) SetRole(ctx context.Context, user *domain.User, role string) error {
	if err := s.queries.UpdateUserRole(ctx, user.ID, role); err != nil {
		return err
	}
	user.Role = role
	return nil
}

func (s *UserService) SetProfession(ctx context.Context, user *domain.User, profession string) error {
	if err := s.queries.UpdateUserProfession(ctx, user.ID, profession); err != nil {
		return err
	}
	user.Profession = profession
	return nil
}

func (s *UserService) UpdateLastInteraction(ctx context.Context, user *domain.User) error {
	now := time.Now()
	if err := s.queries.UpdateLastInteraction(ctx, user.ID, now); err != nil {
		return err
	}
	user.LastInteraction = now
	return nil
}
