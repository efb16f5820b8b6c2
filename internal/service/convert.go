package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/models"
)

// itemsFromParsed превращает разобранные записи в доменные,
// привязывая их к подписке. Дубликаты GUID внутри одного разбора
// схлопываются: побеждает первая встреченная версия.
func itemsFromParsed(parsed []models.ParsedItem, feedID, userID uuid.UUID, now time.Time) []models.FeedItem {
	items := make([]models.FeedItem, 0, len(parsed))
	seen := make(map[string]struct{}, len(parsed))

	for _, p := range parsed {
		if _, ok := seen[p.GUID]; ok {
			continue
		}
		seen[p.GUID] = struct{}{}

		items = append(items, models.FeedItem{
			ID:          uuid.New(),
			FeedID:      feedID,
			UserID:      userID,
			GUID:        p.GUID,
			URL:         p.URL,
			Title:       p.Title,
			Excerpt:     p.Excerpt,
			Content:     p.Content,
			Author:      p.Author,
			ImageURL:    p.ImageURL,
			PublishedAt: p.PublishedAt,
			IsSeen:      false,
			IsSaved:     false,
			CreatedAt:   now,
		})
	}

	return items
}
