package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/readflow/internal/discovery"
	"github.com/pribylovaa/readflow/internal/feed"
	"github.com/pribylovaa/readflow/internal/models"

	"github.com/pribylovaa/readflow/pkg/log"
)

// Discover находит ленту по произвольному адресу сайта и возвращает её превью.
// Ничего не персистит: клиент показывает превью до подтверждения подписки.
//
// Ошибки:
// - ErrInvalidArgument — пустой адрес;
// - ErrNoFeed — лента не найдена ни одной стратегией, либо найденное тело
//   не разобралось ни одним диалектом;
// - прочие ошибки — обёрнутые и прокинуты наверх.
func (s *Service) Discover(ctx context.Context, rawURL string) (*models.Discovery, error) {
	const op = "service.discover.Discover"

	lg := log.From(ctx)
	lg.Info("discover_request",
		slog.String("op", op),
		slog.String("url", rawURL),
	)

	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%s: empty url: %w", op, ErrInvalidArgument)
	}

	feedURL, body, err := s.discoverer.Discover(ctx, rawURL)
	if err != nil {
		if errors.Is(err, discovery.ErrNoFeed) {
			lg.Info("discover_no_feed",
				slog.String("op", op),
				slog.String("url", rawURL),
				slog.String("err", err.Error()),
			)

			// Оба %w: сентинел для маппинга статуса и исходная цепочка,
			// из которой транспорт достаёт диагностику последнего сбоя.
			return nil, fmt.Errorf("%s: %w: %w", op, ErrNoFeed, err)
		}

		lg.Error("discover_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parsed, err := feed.Parse(body, feedURL)
	if err != nil {
		lg.Warn("discover_parse_failed",
			slog.String("op", op),
			slog.String("feed_url", feedURL),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrNoFeed)
	}

	lg.Info("discover_ok",
		slog.String("op", op),
		slog.String("feed_url", feedURL),
		slog.Int("items", len(parsed.Items)),
	)

	return &models.Discovery{
		FeedURL:     feedURL,
		Title:       parsed.Title,
		Description: parsed.Description,
		SiteURL:     parsed.SiteURL,
		ItemCount:   len(parsed.Items),
	}, nil
}
