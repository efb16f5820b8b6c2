package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/readflow/internal/models"
	"github.com/pribylovaa/readflow/internal/storage"
)

// GUIDsByFeed возвращает множество GUID'ов уже сохранённых записей подписки.
// Множество сравнивается с результатом свежего разбора ленты при синхронизации.
func (s *Storage) GUIDsByFeed(ctx context.Context, feedID uuid.UUID) (map[string]struct{}, error) {
	const op = "storage.postgres.GUIDsByFeed"

	query := `SELECT guid FROM feed_items WHERE feed_id = $1`

	rows, err := s.db.Query(ctx, query, feedID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	guids := make(map[string]struct{})
	for rows.Next() {
		var guid string
		if err := rows.Scan(&guid); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		guids[guid] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return guids, nil
}

// SaveItems пакетно вставляет записи ленты.
//
// ON CONFLICT DO NOTHING закрывает гонку двух синхронизаций одной ленты:
// проигравшая вставка молча пропускается, счётчик отражает только реально
// вставленные строки. Уже сохранённые записи никогда не перезаписываются.
func (s *Storage) SaveItems(ctx context.Context, items []models.FeedItem) (int, error) {
	const op = "storage.postgres.SaveItems"

	if len(items) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO feed_items(id, feed_id, user_id, guid, url, title, excerpt,
			content, author, image_url, published_at, is_seen, is_saved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (feed_id, guid) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query,
			item.ID,
			item.FeedID,
			item.UserID,
			item.GUID,
			item.URL,
			item.Title,
			item.Excerpt,
			item.Content,
			item.Author,
			nullString(item.ImageURL),
			nullTime(item.PublishedAt),
			item.IsSeen,
			item.IsSaved,
			item.CreatedAt,
		)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range items {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("%s: %w", op, err)
		}

		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// MarkItemSeen выставляет флаг «прочитано» записи пользователя.
func (s *Storage) MarkItemSeen(ctx context.Context, userID, itemID uuid.UUID, seen bool) error {
	const op = "storage.postgres.MarkItemSeen"

	return s.markItem(ctx, op, `UPDATE feed_items SET is_seen = $3 WHERE id = $1 AND user_id = $2`, userID, itemID, seen)
}

// MarkItemSaved выставляет флаг «сохранено» записи пользователя.
func (s *Storage) MarkItemSaved(ctx context.Context, userID, itemID uuid.UUID, saved bool) error {
	const op = "storage.postgres.MarkItemSaved"

	return s.markItem(ctx, op, `UPDATE feed_items SET is_saved = $3 WHERE id = $1 AND user_id = $2`, userID, itemID, saved)
}

func (s *Storage) markItem(ctx context.Context, op, query string, userID, itemID uuid.UUID, value bool) error {
	tag, err := s.db.Exec(ctx, query, itemID, userID, value)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
