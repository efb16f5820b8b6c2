// discovery находит машинный адрес ленты по произвольному адресу сайта.
//
// Цепочка стратегий, от дешёвых к дорогим:
//  1. платформенный рерайт известных хостингов (Substack);
//  2. прямая загрузка адреса и проверка кандидата;
//  3. скан <link rel="alternate"> в HTML исходной страницы;
//  4. перебор общепринятых путей (/feed, /rss, ...).
//
// Кандидат побеждает, только если его тело разбирается как лента:
// фид-маркеры при битом XML не останавливают цепочку, она идёт дальше.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/pribylovaa/readflow/internal/feed"
)

// ErrNoFeed — ни одна стратегия не нашла ленту по данному адресу.
var ErrNoFeed = errors.New("no feed found at url")

// NoFeedError уточняет ErrNoFeed последним сбоем кандидата: диагностика
// доходит до клиента в теле 404.
type NoFeedError struct {
	URL  string
	Last error
}

func (e *NoFeedError) Error() string {
	if e.Last != nil {
		return fmt.Sprintf("no feed found at %q: %v", e.URL, e.Last)
	}

	return fmt.Sprintf("no feed found at %q", e.URL)
}

func (e *NoFeedError) Unwrap() error { return ErrNoFeed }

// Diagnostic — сообщение последнего сбоя; пустая строка, если сбоев не было.
func (e *NoFeedError) Diagnostic() string {
	if e.Last == nil {
		return ""
	}

	return e.Last.Error()
}

// probePaths — общепринятые пути лент; перебираются в этом порядке
// относительно origin исходного адреса.
var probePaths = []string{"/feed", "/rss", "/feed.xml", "/rss.xml", "/atom.xml", "/index.xml"}

var (
	// Фидовый type напрямую либо rel="alternate" с любым xml-подобным type.
	reFeedLink = regexp.MustCompile(`(?is)<link[^>]+(?:type=["']application/(?:rss|atom)\+xml["']|rel=["']alternate["'][^>]+type=["'][^"']*xml[^"']*["'])[^>]*>`)
	reHref     = regexp.MustCompile(`(?is)href=["']([^"']+)["']`)
)

// Fetcher — загрузчик тела по URL (см. internal/fetch).
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Discoverer перебирает кандидатов через Fetcher.
type Discoverer struct {
	fetcher Fetcher
}

// New создаёт новый Discoverer.
func New(fetcher Fetcher) *Discoverer {
	return &Discoverer{fetcher: fetcher}
}

// Discover возвращает адрес найденной ленты и её уже загруженное тело,
// чтобы вызывающий мог распарсить превью без повторной загрузки.
//
// Ошибки отдельных кандидатов не эскалируются — цепочка идёт дальше,
// запоминается лишь последний сбой. После исчерпания стратегий
// возвращается NoFeedError (раскрывается в ErrNoFeed).
func (d *Discoverer) Discover(ctx context.Context, rawURL string) (string, []byte, error) {
	const op = "discovery.Discover"

	normalized, err := normalizeURL(rawURL)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	base, err := url.Parse(normalized)
	if err != nil {
		return "", nil, fmt.Errorf("%s: parse_url: %w", op, err)
	}

	candidate := rewritePlatformURL(base)

	var lastErr error

	// Прямая проверка: адрес уже может быть лентой.
	directBody, directErr := d.fetcher.Fetch(ctx, candidate)
	if directErr == nil {
		body, err := validateFeed(directBody, candidate)
		if err == nil {
			return candidate, body, nil
		}
		lastErr = err
	} else {
		lastErr = directErr
	}

	// Скан HTML исходного адреса: <link rel="alternate"> объявляет ленту.
	// При платформенном рерайте исходная страница ещё не загружалась.
	htmlBody := directBody
	if candidate != normalized {
		htmlBody, _ = d.fetcher.Fetch(ctx, normalized)
	} else if directErr != nil {
		htmlBody = nil
	}

	if htmlBody != nil {
		if linked := scanFeedLink(htmlBody, base); linked != "" && linked != candidate {
			body, err := d.tryCandidate(ctx, linked)
			if err == nil {
				return linked, body, nil
			}
			lastErr = err
		}
	}

	// Последний рубеж: общепринятые пути относительно origin.
	origin := base.Scheme + "://" + base.Host
	for _, p := range probePaths {
		probe := origin + p
		if probe == candidate {
			continue
		}

		body, err := d.tryCandidate(ctx, probe)
		if err == nil {
			return probe, body, nil
		}
		lastErr = err
	}

	if err := ctx.Err(); err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return "", nil, fmt.Errorf("%s: %w", op, &NoFeedError{URL: rawURL, Last: lastErr})
}

// tryCandidate загружает кандидата и подтверждает, что тело — лента.
func (d *Discoverer) tryCandidate(ctx context.Context, candidate string) ([]byte, error) {
	body, err := d.fetcher.Fetch(ctx, candidate)
	if err != nil {
		return nil, err
	}

	return validateFeed(body, candidate)
}

// validateFeed принимает кандидата только по разбираемому телу: маркеров
// недостаточно, битый XML отклоняется.
func validateFeed(body []byte, candidate string) ([]byte, error) {
	if !feed.LooksLikeFeed(body) {
		return nil, fmt.Errorf("no feed markers at %q", candidate)
	}

	if _, err := feed.Parse(body, candidate); err != nil {
		return nil, fmt.Errorf("parse %q: %w", candidate, err)
	}

	return body, nil
}

// normalizeURL дополняет адрес схемой, если пользователь её опустил.
func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty url")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	return raw, nil
}

// rewritePlatformURL переписывает адреса известных платформ сразу
// в адрес ленты. Substack: любой адрес публикации или поста ведёт
// к origin + "/feed".
func rewritePlatformURL(u *url.URL) string {
	if strings.HasSuffix(u.Hostname(), ".substack.com") || strings.Contains(u.Path, "/p/") {
		return u.Scheme + "://" + u.Host + "/feed"
	}

	return u.String()
}

// scanFeedLink ищет в HTML первый <link> c фидовым type и возвращает
// его href, разрешённый относительно адреса страницы. Пустая строка —
// объявленной ленты нет.
func scanFeedLink(body []byte, base *url.URL) string {
	tag := reFeedLink.Find(body)
	if tag == nil {
		return ""
	}

	m := reHref.FindSubmatch(tag)
	if len(m) < 2 {
		return ""
	}

	href := strings.TrimSpace(string(m[1]))
	if href == "" {
		return ""
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}

	return base.ResolveReference(ref).String()
}
