package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/feed"
	"github.com/pribylovaa/readflow/internal/metrics"
	"github.com/pribylovaa/readflow/internal/models"
	"github.com/pribylovaa/readflow/internal/storage"

	"github.com/pribylovaa/readflow/pkg/log"
)

// Fetch синхронизирует одну подписку пользователя и возвращает число
// вставленных записей. Синхронизация идемпотентна: повтор без изменений
// в ленте вставляет ноль записей.
//
// Ошибки:
// - ErrInvalidArgument — нулевой userID или feedID;
// - ErrNotFound — подписки нет или она чужая;
// - ошибка загрузки/разбора — прокинута наверх; метаданные подписки
//   при этом уже зафиксировали неудачную попытку.
func (s *Service) Fetch(ctx context.Context, userID, feedID uuid.UUID) (int, error) {
	const op = "service.sync.Fetch"

	lg := log.From(ctx)
	lg.Info("fetch_request",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("feed_id", feedID.String()),
	)

	if userID == uuid.Nil || feedID == uuid.Nil {
		return 0, fmt.Errorf("%s: empty id: %w", op, ErrInvalidArgument)
	}

	fd, err := s.storage.FeedByID(ctx, userID, feedID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	inserted, err := s.syncFeed(ctx, fd)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return inserted, nil
}

// syncFeed — один проход инкрементальной синхронизации подписки.
//
// Порядок шагов фиксирован: загрузка -> разбор -> diff по GUID -> вставка
// только новых -> обновление метаданных. Метаданные подписки обновляются
// и при успехе, и при сбое: last_fetched_at всегда отражает последнюю
// попытку, fetch_error при успехе сбрасывается в NULL.
func (s *Service) syncFeed(ctx context.Context, fd models.Feed) (int, error) {
	const op = "service.sync.syncFeed"

	lg := log.From(ctx)
	started := time.Now()

	body, err := s.fetcher.Fetch(ctx, fd.FeedURL)
	if err != nil {
		return 0, s.failSync(ctx, fd, fmt.Errorf("%s: %w", op, err))
	}

	parsed, err := feed.Parse(body, fd.FeedURL)
	if err != nil {
		return 0, s.failSync(ctx, fd, fmt.Errorf("%s: %w", op, err))
	}

	known, err := s.storage.GUIDsByFeed(ctx, fd.ID)
	if err != nil {
		return 0, s.failSync(ctx, fd, fmt.Errorf("%s: %w", op, err))
	}

	fresh := make([]models.ParsedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if _, ok := known[item.GUID]; ok {
			continue
		}

		fresh = append(fresh, item)
	}

	now := time.Now().UTC()
	items := itemsFromParsed(fresh, fd.ID, fd.UserID, now)

	inserted, err := s.storage.SaveItems(ctx, items)
	if err != nil {
		return 0, s.failSync(ctx, fd, fmt.Errorf("%s: %w", op, err))
	}

	// Метаданные пишутся даже после отмены запроса: вставленные записи
	// не должны оставаться без зафиксированной попытки.
	if err := s.storage.UpdateFeedAfterSync(context.WithoutCancel(ctx), fd.ID, now, "", inserted); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	metrics.SyncTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	metrics.ItemsInserted.Add(float64(inserted))
	metrics.SyncDuration.Observe(time.Since(started).Seconds())

	lg.Info("feed_sync_ok",
		slog.String("op", op),
		slog.String("feed_id", fd.ID.String()),
		slog.Int("parsed", len(parsed.Items)),
		slog.Int("inserted", inserted),
	)

	return inserted, nil
}

// failSync фиксирует неудачную попытку в метаданных подписки и возвращает
// исходную ошибку. Запись идёт вне отмены исходного контекста; сбой самой
// фиксации логируется, но не подменяет причину.
func (s *Service) failSync(ctx context.Context, fd models.Feed, cause error) error {
	lg := log.From(ctx)

	metrics.SyncTotal.WithLabelValues(metrics.OutcomeError).Inc()

	lg.Warn("feed_sync_failed",
		slog.String("feed_id", fd.ID.String()),
		slog.String("feed_url", fd.FeedURL),
		slog.String("err", cause.Error()),
	)

	if err := s.storage.UpdateFeedAfterSync(context.WithoutCancel(ctx), fd.ID, time.Now().UTC(), cause.Error(), 0); err != nil {
		lg.Error("feed_sync_mark_error_failed",
			slog.String("feed_id", fd.ID.String()),
			slog.String("err", err.Error()),
		)
	}

	return cause
}
