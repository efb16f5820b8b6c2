// models содержит доменные сущности feeds-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Feed — подписка пользователя на одну RSS/Atom-ленту.
//
// Особенности:
//   - ID — UUIDv4;
//   - пара (UserID, FeedURL) уникальна — повторная подписка отклоняется;
//   - временные метки — в UTC; нулевой LastFetchedAt означает
//     «ещё ни разу не опрашивалась»;
//   - FetchError == "" означает, что последний опрос прошёл без ошибки.
type Feed struct {
	// ID — уникальный идентификатор подписки.
	ID uuid.UUID
	// UserID — владелец подписки.
	UserID uuid.UUID
	// FeedURL — машинный адрес ленты (не адрес сайта).
	FeedURL string
	// Title — человекочитаемое название ленты.
	Title string
	// Description — описание ленты из её метаданных.
	Description string
	// SiteURL — адрес сайта-источника. Никогда не пустой:
	// при отсутствии в ленте подставляется FeedURL.
	SiteURL string
	// LastFetchedAt — время последней попытки синхронизации (успешной или нет).
	LastFetchedAt time.Time
	// FetchError — текст ошибки последней синхронизации, "" при успехе.
	FetchError string
	// ItemCount — накопительный счётчик сохранённых записей.
	// Увеличивается только на число реально вставленных (дубликаты не считаются).
	ItemCount int64
	// IsPaused — приостановленные подписки пропускаются при fetch_all.
	IsPaused bool
	// CreatedAt — время создания подписки (UTC).
	CreatedAt time.Time
}

// FeedItem — одна нормализованная запись ленты. Сохраняется ровно один раз:
// при повторных синхронизациях запись с уже известным GUID не вставляется
// и не обновляется («первая увиденная версия побеждает»).
type FeedItem struct {
	// ID — уникальный идентификатор записи.
	ID uuid.UUID
	// FeedID — подписка-владелец. Удаление подписки каскадно удаляет записи.
	FeedID uuid.UUID
	// UserID — владелец записи (денормализация для выборок клиента).
	UserID uuid.UUID
	// GUID — стабильный идентификатор записи в рамках ленты.
	GUID string
	// URL — каноническая ссылка на материал.
	URL string
	// Title — заголовок. Пустой заголовок заменяется на "Untitled".
	Title string
	// Excerpt — плейн-текстовый тизер, не длиннее 300 символов
	// (+ многоточие, если исходный текст был длиннее).
	Excerpt string
	// Content — текст записи без HTML-тегов, не длиннее 50 000 символов.
	Content string
	// Author — автор записи, "" если источник его не сообщает.
	Author string
	// ImageURL — обложка записи, "" если не найдена.
	ImageURL string
	// PublishedAt — время публикации у источника (UTC).
	// Нулевое значение означает «дата неизвестна/не распарсилась».
	PublishedAt time.Time
	// IsSeen — пользователь открывал запись.
	IsSeen bool
	// IsSaved — пользователь отложил запись в сохранённые.
	IsSaved bool
	// CreatedAt — время вставки записи в БД (UTC).
	CreatedAt time.Time
}

// ParsedFeed — транзиентный результат разбора одной загрузки ленты.
// Не персистится: синхронизатор сравнивает Items с уже сохранёнными GUID.
type ParsedFeed struct {
	// Title — название ленты ("Unknown Feed", если источник не сообщил).
	Title string
	// Description — описание/подзаголовок ленты.
	Description string
	// SiteURL — ссылка на сайт; при отсутствии — URL самой ленты.
	SiteURL string
	// Items — записи в порядке следования в ленте (обычно новые первыми).
	Items []ParsedItem
}

// ParsedItem — нормализованная запись-кандидат (FeedItem без ID и флагов).
type ParsedItem struct {
	GUID        string
	URL         string
	Title       string
	Excerpt     string
	Content     string
	Author      string
	ImageURL    string
	PublishedAt time.Time
}

// Discovery — превью ленты, найденной по адресу сайта.
// Ничего не персистит: discover отделён от subscribe, чтобы клиент
// мог показать превью до подтверждения подписки.
type Discovery struct {
	FeedURL     string
	Title       string
	Description string
	SiteURL     string
	ItemCount   int
}

// FeedError — ошибка синхронизации одной подписки внутри пакетного прохода.
type FeedError struct {
	FeedID uuid.UUID
	Error  string
}

// RefreshSummary — итог fetch_all: частичный сбой — норма, а не исключение.
type RefreshSummary struct {
	// FeedsRefreshed — число успешно синхронизированных подписок.
	FeedsRefreshed int
	// NewItems — суммарное число вставленных записей.
	NewItems int
	// Errors — по одной записи на каждую упавшую подписку.
	Errors []FeedError
}
