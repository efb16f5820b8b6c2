// storage описывает контракт хранилища feeds-сервиса.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/models"
)

var (
	// ErrNotFound — подписка или запись не найдена (или принадлежит другому пользователю).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (user_id, feed_url).
	ErrAlreadyExists = errors.New("already exists")
)

// Storage - интерфейс хранилища данных.
//
// Контракты реализации:
//   - все выборки и мутации подписок ограничены владельцем (userID);
//   - SaveItems вставляет только новые GUID'ы и возвращает число реально
//     вставленных строк — гонка по GUID не является ошибкой;
//   - нулевые time.Time и пустые строки маппятся в SQL NULL и обратно.
type Storage interface {
	// SaveFeed сохраняет новую подписку.
	// Возвращает ErrAlreadyExists при повторе пары (user_id, feed_url).
	SaveFeed(ctx context.Context, feed models.Feed) (uuid.UUID, error)

	// FeedByID возвращает подписку пользователя по идентификатору.
	// Возвращает ErrNotFound, если подписки нет или она чужая.
	FeedByID(ctx context.Context, userID, feedID uuid.UUID) (models.Feed, error)

	// ActiveFeedsByUser возвращает все не приостановленные подписки пользователя.
	ActiveFeedsByUser(ctx context.Context, userID uuid.UUID) ([]models.Feed, error)

	// UpdateFeedAfterSync фиксирует итог попытки синхронизации:
	// время попытки, текст ошибки ("" при успехе) и прирост счётчика записей.
	UpdateFeedAfterSync(ctx context.Context, feedID uuid.UUID, fetchedAt time.Time, fetchErr string, newItems int) error

	// DeleteFeed удаляет подписку пользователя; записи удаляются каскадно.
	// Возвращает ErrNotFound, если подписки нет или она чужая.
	DeleteFeed(ctx context.Context, userID, feedID uuid.UUID) error

	// LinkCategories привязывает подписку к категориям пользователя.
	// Повторная привязка к той же категории — no-op.
	LinkCategories(ctx context.Context, feedID uuid.UUID, categoryIDs []uuid.UUID) error

	// GUIDsByFeed возвращает множество GUID'ов уже сохранённых записей подписки.
	GUIDsByFeed(ctx context.Context, feedID uuid.UUID) (map[string]struct{}, error)

	// SaveItems пакетно вставляет записи и возвращает число вставленных.
	// Записи с уже известным GUID молча пропускаются.
	SaveItems(ctx context.Context, items []models.FeedItem) (int, error)

	// MarkItemSeen выставляет флаг «прочитано» записи пользователя.
	MarkItemSeen(ctx context.Context, userID, itemID uuid.UUID, seen bool) error

	// MarkItemSaved выставляет флаг «сохранено» записи пользователя.
	MarkItemSaved(ctx context.Context, userID, itemID uuid.UUID, saved bool) error

	// Close закрывает соединения с хранилищем.
	Close()
}
