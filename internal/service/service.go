// service содержит бизнес-логику feeds-сервиса: дискавери лент,
// подписку, инкрементальную синхронизацию и пакетное обновление.
package service

import (
	"context"
	"errors"

	"github.com/pribylovaa/readflow/internal/config"
	"github.com/pribylovaa/readflow/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует или принадлежит другому пользователю.
	// Транспорт: 404 Not Found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — подписка на этот адрес уже существует.
	// Транспорт: 409 Conflict.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidArgument - некорректные входные аргументы.
	// Транспорт: 400 Bad Request.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoFeed — по данному адресу не удалось найти ленту.
	// Транспорт: 404 Not Found.
	ErrNoFeed = errors.New("no feed found")
)

// Fetcher — загрузчик сырого тела ленты (см. internal/fetch).
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Discoverer — поиск адреса ленты по адресу сайта (см. internal/discovery).
// Возвращает адрес ленты и её уже загруженное тело.
type Discoverer interface {
	Discover(ctx context.Context, url string) (string, []byte, error)
}

// Service — описывает бизнес-логику feeds-service.
type Service struct {
	storage    storage.Storage
	fetcher    Fetcher
	discoverer Discoverer
	cfg        config.Config
}

// New создает новый экземпляр Service.
func New(storage storage.Storage, fetcher Fetcher, discoverer Discoverer, cfg config.Config) *Service {
	return &Service{
		storage:    storage,
		fetcher:    fetcher,
		discoverer: discoverer,
		cfg:        cfg,
	}
}
