package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/ab-planner/internal/models"
	"github.com/pribylovaa/ab-planner/internal/storage"
)

// RegisterDeviceToken привязывает токен устройства к актору.
// Повторная регистрация обновляет платформу; токен, принадлежавший другому
// пользователю, переходит к актору.
func (s *Service) RegisterDeviceToken(ctx context.Context, actor Actor, token, platform string) (*models.DeviceToken, error) {
	const op = "service.devices.RegisterDeviceToken"

	token = strings.TrimSpace(token)
	platform = strings.TrimSpace(platform)
	if token == "" || platform == "" {
		return nil, fmt.Errorf("%s: %w: token and platform are required", op, ErrValidation)
	}

	var out *models.DeviceToken
	err := s.storage.WithTx(ctx, func(tx storage.Tx) error {
		if _, err := tx.UserByID(ctx, actor.User.ID); err != nil {
			return err
		}

		existing, err := tx.DeviceTokenByUserAndToken(ctx, actor.User.ID, token)
		switch {
		case err == nil:
			out, err = tx.UpdateDeviceTokenPlatform(ctx, existing.ID, platform)
			return err
		case !errors.Is(err, storage.ErrNotFound):
			return err
		}

		if _, err := tx.DeleteDeviceTokenFromOthers(ctx, token, actor.User.ID); err != nil {
			return err
		}

		out = &models.DeviceToken{
			UserID:    actor.User.ID,
			Token:     token,
			Platform:  platform,
			CreatedAt: s.now(),
		}
		return tx.CreateDeviceToken(ctx, out)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return out, nil
}

// ListDeviceTokens возвращает токены устройств актора.
func (s *Service) ListDeviceTokens(ctx context.Context, actor Actor) ([]models.DeviceToken, error) {
	const op = "service.devices.ListDeviceTokens"

	out, err := s.storage.DeviceTokensByUser(ctx, actor.User.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if out == nil {
		out = []models.DeviceToken{}
	}

	return out, nil
}

// DeleteDeviceToken удаляет токен. Чужой токен может удалить только администратор.
func (s *Service) DeleteDeviceToken(ctx context.Context, actor Actor, id int64) error {
	const op = "service.devices.DeleteDeviceToken"

	token, err := s.storage.DeviceTokenByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}
	if token.UserID != actor.User.ID && !actor.IsAdmin() {
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := s.storage.DeleteDeviceToken(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return nil
}

// mapStorageErr переводит ошибки хранилища в ошибки сервиса;
// прочие ошибки возвращаются как есть (500).
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, storage.ErrAlreadyExists), errors.Is(err, storage.ErrConflict):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return err
	}
}
