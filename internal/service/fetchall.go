package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/models"

	"github.com/pribylovaa/readflow/pkg/log"
)

// FetchAll последовательно синхронизирует все активные подписки пользователя.
//
// Частичный сбой — норма: ошибка одной подписки попадает в сводку и не
// прерывает обход остальных. Приостановленные подписки пропускаются ещё
// на уровне выборки. Отмена контекста прерывает обход между подписками.
//
// Ошибки:
// - ErrInvalidArgument — нулевой userID;
// - ошибка выборки подписок или отмена контекста — прокинуты наверх.
func (s *Service) FetchAll(ctx context.Context, userID uuid.UUID) (*models.RefreshSummary, error) {
	const op = "service.fetchall.FetchAll"

	lg := log.From(ctx)
	lg.Info("fetch_all_request",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
	)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: empty user_id: %w", op, ErrInvalidArgument)
	}

	feeds, err := s.storage.ActiveFeedsByUser(ctx, userID)
	if err != nil {
		lg.Error("fetch_all_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := &models.RefreshSummary{}
	for _, fd := range feeds {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		inserted, err := s.syncFeed(ctx, fd)
		if err != nil {
			summary.Errors = append(summary.Errors, models.FeedError{
				FeedID: fd.ID,
				Error:  err.Error(),
			})

			continue
		}

		summary.FeedsRefreshed++
		summary.NewItems += inserted
	}

	lg.Info("fetch_all_done",
		slog.String("op", op),
		slog.Int("feeds", len(feeds)),
		slog.Int("refreshed", summary.FeedsRefreshed),
		slog.Int("new_items", summary.NewItems),
		slog.Int("errors", len(summary.Errors)),
	)

	return summary, nil
}
