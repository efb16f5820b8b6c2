package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/storage"

	"github.com/pribylovaa/readflow/pkg/log"
)

// Unsubscribe удаляет подписку пользователя; записи удаляются каскадно.
//
// Ошибки:
// - ErrInvalidArgument — нулевой userID или feedID;
// - ErrNotFound — подписки нет или она чужая.
func (s *Service) Unsubscribe(ctx context.Context, userID, feedID uuid.UUID) error {
	const op = "service.manage.Unsubscribe"

	lg := log.From(ctx)
	lg.Info("unsubscribe_request",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("feed_id", feedID.String()),
	)

	if userID == uuid.Nil || feedID == uuid.Nil {
		return fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteFeed(ctx, userID, feedID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkItemSeen выставляет флаг «прочитано» записи пользователя.
func (s *Service) MarkItemSeen(ctx context.Context, userID, itemID uuid.UUID, seen bool) error {
	const op = "service.manage.MarkItemSeen"

	if userID == uuid.Nil || itemID == uuid.Nil {
		return fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.MarkItemSeen(ctx, userID, itemID, seen); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// MarkItemSaved выставляет флаг «сохранено» записи пользователя.
func (s *Service) MarkItemSaved(ctx context.Context, userID, itemID uuid.UUID, saved bool) error {
	const op = "service.manage.MarkItemSaved"

	if userID == uuid.Nil || itemID == uuid.Nil {
		return fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.MarkItemSaved(ctx, userID, itemID, saved); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
