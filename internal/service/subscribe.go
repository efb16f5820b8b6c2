package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/feed"
	"github.com/pribylovaa/readflow/internal/models"
	"github.com/pribylovaa/readflow/internal/storage"

	"github.com/pribylovaa/readflow/pkg/log"
)

// Subscribe оформляет подписку пользователя на ленту по её адресу.
//
// Дискавери здесь не выполняется: клиент передаёт уже найденный адрес
// ленты (результат Discover), он загружается и разбирается как есть и
// сохраняется в feed_url без изменений. Подписка создаётся уже с
// метаданными ленты, item_count равен числу записей первого разбора,
// last_fetched_at — временем подписки. Все записи первого разбора
// сохраняются непрочитанными.
//
// Ошибки:
// - ErrInvalidArgument — пустой адрес или нулевой userID;
// - ErrNoFeed — адрес не загрузился либо тело не разобралось ни одним диалектом;
// - ErrAlreadyExists — пара (пользователь, адрес ленты) уже существует;
// - прочие ошибки — обёрнутые и прокинуты наверх.
func (s *Service) Subscribe(ctx context.Context, userID uuid.UUID, rawURL string, categoryIDs []uuid.UUID) (*models.Feed, error) {
	const op = "service.subscribe.Subscribe"

	lg := log.From(ctx)
	lg.Info("subscribe_request",
		slog.String("op", op),
		slog.String("user_id", userID.String()),
		slog.String("url", rawURL),
	)

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: empty user_id: %w", op, ErrInvalidArgument)
	}
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%s: empty url: %w", op, ErrInvalidArgument)
	}

	body, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		lg.Warn("subscribe_fetch_failed",
			slog.String("op", op),
			slog.String("feed_url", rawURL),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrNoFeed)
	}

	parsed, err := feed.Parse(body, rawURL)
	if err != nil {
		lg.Warn("subscribe_parse_failed",
			slog.String("op", op),
			slog.String("feed_url", rawURL),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrNoFeed)
	}

	now := time.Now().UTC()
	newFeed := models.Feed{
		ID:            uuid.New(),
		UserID:        userID,
		FeedURL:       rawURL,
		Title:         parsed.Title,
		Description:   parsed.Description,
		SiteURL:       parsed.SiteURL,
		LastFetchedAt: now,
		ItemCount:     int64(len(parsed.Items)),
		CreatedAt:     now,
	}

	if _, err := s.storage.SaveFeed(ctx, newFeed); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("subscribe_already_exists",
				slog.String("op", op),
				slog.String("feed_url", rawURL),
			)

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		}

		lg.Error("subscribe_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := itemsFromParsed(parsed.Items, newFeed.ID, userID, now)
	if _, err := s.storage.SaveItems(ctx, items); err != nil {
		lg.Error("subscribe_save_items_error",
			slog.String("op", op),
			slog.String("feed_id", newFeed.ID.String()),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(categoryIDs) > 0 {
		if err := s.storage.LinkCategories(ctx, newFeed.ID, categoryIDs); err != nil {
			lg.Error("subscribe_link_categories_error",
				slog.String("op", op),
				slog.String("feed_id", newFeed.ID.String()),
				slog.String("err", err.Error()),
			)

			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	lg.Info("subscribe_ok",
		slog.String("op", op),
		slog.String("feed_id", newFeed.ID.String()),
		slog.Int("items", len(items)),
	)

	return &newFeed, nil
}
