// fetch загружает сырое тело ленты по HTTP.
//
// Слой сознательно не ретраит: политика повторов принадлежит вызывающему
// (discovery перебирает кандидатов, fetch_all обходит ленты независимо).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// browserUA — «браузерный» User-Agent: часть издателей отдаёт 403
// на запросы с дефолтным Go-агентом.
const browserUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// acceptHeader перечисляет фидовые типы, но допускает любой ответ:
// дискавери читает и обычный HTML.
const acceptHeader = "application/rss+xml, application/atom+xml, application/xml, text/xml, */*"

// Error — типизированная ошибка загрузки URL.
type Error struct {
	// URL — адрес, который не удалось загрузить.
	URL string
	// Status — HTTP-статус ответа; 0 при сетевом сбое/таймауте.
	Status int
	// Err — исходная ошибка транспорта (nil при не-2xx статусе).
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status=%d", e.URL, e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

// Fetcher выполняет HTTP GET с браузерной идентичностью.
// HTTP-клиент настраивается извне (таймауты, прокси и т.д.).
type Fetcher struct {
	client *http.Client
}

// New создаёт новый Fetcher.
func New(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	return &Fetcher{client: client}
}

// Fetch загружает тело по URL.
//
// Успех — статус в [200, 300): возвращается тело как есть.
// Не-2xx статус, сетевой сбой или таймаут — *Error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	const op = "fetch.Fetch"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w", op, err)
	}

	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &Error{URL: url, Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%s: %w", op, &Error{URL: url, Status: resp.StatusCode})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, &Error{URL: url, Err: err})
	}

	return body, nil
}
