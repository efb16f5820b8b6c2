package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/readflow/internal/models"
	"github.com/pribylovaa/readflow/internal/storage"
)

// SaveFeed сохраняет новую подписку в БД.
func (s *Storage) SaveFeed(ctx context.Context, feed models.Feed) (uuid.UUID, error) {
	const op = "storage.postgres.SaveFeed"

	query := `
		INSERT INTO feeds(id, user_id, feed_url, title, description, site_url,
			last_fetched_at, fetch_error, item_count, is_paused, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.Exec(ctx, query,
		feed.ID,
		feed.UserID,
		feed.FeedURL,
		feed.Title,
		feed.Description,
		feed.SiteURL,
		nullTime(feed.LastFetchedAt),
		nullString(feed.FetchError),
		feed.ItemCount,
		feed.IsPaused,
		feed.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return uuid.Nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	return feed.ID, nil
}

// FeedByID находит подписку пользователя по ID.
func (s *Storage) FeedByID(ctx context.Context, userID, feedID uuid.UUID) (models.Feed, error) {
	const op = "storage.postgres.FeedByID"

	query := `
		SELECT id, user_id, feed_url, title, description, site_url,
			last_fetched_at, fetch_error, item_count, is_paused, created_at
		FROM feeds
		WHERE id = $1 AND user_id = $2
	`

	feed, err := scanFeed(s.db.QueryRow(ctx, query, feedID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Feed{}, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return models.Feed{}, fmt.Errorf("%s: %w", op, err)
	}

	return feed, nil
}

// ActiveFeedsByUser возвращает не приостановленные подписки пользователя.
func (s *Storage) ActiveFeedsByUser(ctx context.Context, userID uuid.UUID) ([]models.Feed, error) {
	const op = "storage.postgres.ActiveFeedsByUser"

	query := `
		SELECT id, user_id, feed_url, title, description, site_url,
			last_fetched_at, fetch_error, item_count, is_paused, created_at
		FROM feeds
		WHERE user_id = $1 AND is_paused = FALSE
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var feeds []models.Feed
	for rows.Next() {
		feed, err := scanFeed(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		feeds = append(feeds, feed)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feeds, nil
}

// UpdateFeedAfterSync фиксирует итог попытки синхронизации подписки.
// Вызывается и при успехе, и при ошибке: метаданные подписки отражают
// последнюю попытку в любом случае.
func (s *Storage) UpdateFeedAfterSync(ctx context.Context, feedID uuid.UUID, fetchedAt time.Time, fetchErr string, newItems int) error {
	const op = "storage.postgres.UpdateFeedAfterSync"

	query := `
		UPDATE feeds
		SET last_fetched_at = $2,
			fetch_error = $3,
			item_count = item_count + $4
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, feedID, fetchedAt, nullString(fetchErr), newItems)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteFeed удаляет подписку пользователя; записи удаляются каскадом.
func (s *Storage) DeleteFeed(ctx context.Context, userID, feedID uuid.UUID) error {
	const op = "storage.postgres.DeleteFeed"

	query := `DELETE FROM feeds WHERE id = $1 AND user_id = $2`

	tag, err := s.db.Exec(ctx, query, feedID, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// LinkCategories привязывает подписку к категориям пакетно.
func (s *Storage) LinkCategories(ctx context.Context, feedID uuid.UUID, categoryIDs []uuid.UUID) error {
	const op = "storage.postgres.LinkCategories"

	if len(categoryIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO feed_category_feeds(feed_id, category_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, categoryID := range categoryIDs {
		batch.Queue(query, feedID, categoryID)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range categoryIDs {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

// scanFeed разбирает одну строку feeds с учётом NULL-колонок.
func scanFeed(row pgx.Row) (models.Feed, error) {
	var (
		feed        models.Feed
		lastFetched *time.Time
		fetchError  *string
	)

	err := row.Scan(
		&feed.ID,
		&feed.UserID,
		&feed.FeedURL,
		&feed.Title,
		&feed.Description,
		&feed.SiteURL,
		&lastFetched,
		&fetchError,
		&feed.ItemCount,
		&feed.IsPaused,
		&feed.CreatedAt,
	)
	if err != nil {
		return models.Feed{}, err
	}

	feed.LastFetchedAt = fromNullTime(lastFetched)
	feed.FetchError = fromNullString(fetchError)
	feed.CreatedAt = feed.CreatedAt.UTC()

	return feed, nil
}
