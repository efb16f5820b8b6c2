package feed

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/readflow/internal/models"
)

// ErrUnknownFormat — тело загрузилось, но не является ни одним из
// поддерживаемых диалектов. С тем же входом повторять бессмысленно;
// в цепочке дискавери это сигнал перейти к следующей стратегии.
var ErrUnknownFormat = errors.New("unknown feed format: no rss, feed or rdf:RDF root element")

// Фолбэки для пустых заголовков: запись никогда не отбрасывается
// из-за отсутствия названия.
const (
	unknownFeedTitle = "Unknown Feed"
	untitledItem     = "Untitled"
)

// Parse разбирает сырой XML ленты в канонический models.ParsedFeed.
//
// Диалект классифицируется один раз по корневому элементу, затем работает
// маппинг полей конкретного диалекта. Все три маппинга сводятся к одной
// форме записи; разрешение каждого поля — «первый непустой источник
// побеждает». Пустой список записей — валидный успешный разбор.
//
// feedURL используется как фолбэк для SiteURL, поэтому SiteURL в результате
// никогда не пуст.
func Parse(raw []byte, feedURL string) (*models.ParsedFeed, error) {
	const op = "feed.Parse"

	switch classify(raw) {
	case dialectRSS:
		var doc rssRoot
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: rss: %w", op, err)
		}
		return parseRSS(doc.Channel, feedURL), nil

	case dialectAtom:
		var doc atomRoot
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: atom: %w", op, err)
		}
		return parseAtom(doc, feedURL), nil

	case dialectRDF:
		var doc rdfRoot
		if err := xml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("%s: rdf: %w", op, err)
		}
		return parseRDF(doc, feedURL), nil
	}

	return nil, fmt.Errorf("%s: %w", op, ErrUnknownFormat)
}

// LooksLikeFeed — дешёвая проверка по маркерам до полноценного разбора.
// Используется дискавери, чтобы не парсить заведомо не-фидовые тела.
func LooksLikeFeed(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "<rss") ||
		strings.Contains(s, "<feed") ||
		strings.Contains(s, "<channel") ||
		strings.Contains(s, "rdf:RDF")
}

// classify находит первый открывающий элемент документа и определяет
// диалект по его локальному имени. Мусор до корневого элемента
// (BOM, комментарии, processing instructions) пропускается.
func classify(raw []byte) dialect {
	dec := xml.NewDecoder(bytes.NewReader(raw))

	for {
		tok, err := dec.Token()
		if err != nil {
			return dialectUnknown
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch start.Name.Local {
		case "rss":
			return dialectRSS
		case "feed":
			return dialectAtom
		case "RDF":
			return dialectRDF
		default:
			return dialectUnknown
		}
	}
}

// parseRSS — маппинг RSS 2.0 (rss.channel.item).
func parseRSS(ch rssChannel, feedURL string) *models.ParsedFeed {
	out := &models.ParsedFeed{
		Title:       firstNonEmpty(ch.Title, unknownFeedTitle),
		Description: strings.TrimSpace(ch.Description),
		SiteURL:     firstNonEmpty(ch.Link, feedURL),
		Items:       make([]models.ParsedItem, 0, len(ch.Items)),
	}

	for _, item := range ch.Items {
		rawContent := firstNonEmpty(item.ContentEncoded, item.Description)
		plain := stripHTML(rawContent)

		out.Items = append(out.Items, models.ParsedItem{
			GUID:        firstNonEmpty(item.GUID, item.Link, synthesizeGUID()),
			URL:         strings.TrimSpace(item.Link),
			Title:       firstNonEmpty(item.Title, untitledItem),
			Excerpt:     makeExcerpt(plain),
			Content:     truncateContent(plain),
			Author:      firstNonEmpty(item.Author, item.Creator),
			ImageURL:    pickImage(item.MediaContent, item.MediaThumbs, item.Enclosures, rawContent),
			PublishedAt: itemDate(item.PubDate),
		})
	}

	return out
}

// parseAtom — маппинг Atom (feed.entry).
func parseAtom(doc atomRoot, feedURL string) *models.ParsedFeed {
	out := &models.ParsedFeed{
		Title:       firstNonEmpty(doc.Title, unknownFeedTitle),
		Description: strings.TrimSpace(doc.Subtitle),
		SiteURL:     firstNonEmpty(altLink(doc.Links), feedURL),
		Items:       make([]models.ParsedItem, 0, len(doc.Entries)),
	}

	for _, entry := range doc.Entries {
		rawContent := firstNonEmpty(entry.Content, entry.Summary)
		plain := stripHTML(rawContent)
		url := altLink(entry.Links)

		out.Items = append(out.Items, models.ParsedItem{
			GUID:        firstNonEmpty(entry.ID, url, synthesizeGUID()),
			URL:         url,
			Title:       firstNonEmpty(entry.Title, untitledItem),
			Excerpt:     makeExcerpt(plain),
			Content:     truncateContent(plain),
			Author:      strings.TrimSpace(entry.AuthorName),
			ImageURL:    pickImage(entry.MediaContent, entry.MediaThumbs, nil, rawContent),
			PublishedAt: itemDate(firstNonEmpty(entry.Published, entry.Updated)),
		})
	}

	return out
}

// parseRDF — маппинг RDF/RSS 1.0 (rdf:RDF: channel + item-сиблинги).
func parseRDF(doc rdfRoot, feedURL string) *models.ParsedFeed {
	out := &models.ParsedFeed{
		Title:       firstNonEmpty(doc.Channel.Title, unknownFeedTitle),
		Description: strings.TrimSpace(doc.Channel.Description),
		SiteURL:     firstNonEmpty(doc.Channel.Link, feedURL),
		Items:       make([]models.ParsedItem, 0, len(doc.Items)),
	}

	for _, item := range doc.Items {
		// В RDF-диалекте description приоритетнее content:encoded.
		rawContent := firstNonEmpty(item.Description, item.ContentEncoded)
		plain := stripHTML(rawContent)

		out.Items = append(out.Items, models.ParsedItem{
			GUID:        firstNonEmpty(item.About, item.Link, synthesizeGUID()),
			URL:         strings.TrimSpace(item.Link),
			Title:       firstNonEmpty(item.Title, untitledItem),
			Excerpt:     makeExcerpt(plain),
			Content:     truncateContent(plain),
			Author:      strings.TrimSpace(item.Creator),
			ImageURL:    firstImgSrc(rawContent),
			PublishedAt: itemDate(item.Date),
		})
	}

	return out
}

// itemDate — разбор даты записи с деградацией до нулевого значения.
// Ошибка разбора не эскалируется: соседние записи и лента в целом
// не должны страдать от одной кривой даты.
func itemDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	t, err := parseDate(value)
	if err != nil {
		return time.Time{}
	}

	return t
}

// pickImage выбирает обложку записи в порядке приоритетов:
// media:content → media:thumbnail → enclosure image/* → первый <img src>.
func pickImage(media, thumbs []mediaEntry, encls []enclosure, rawContent string) string {
	for _, m := range media {
		if m.URL != "" {
			return m.URL
		}
	}

	for _, m := range thumbs {
		if m.URL != "" {
			return m.URL
		}
	}

	for _, e := range encls {
		if e.URL != "" && strings.HasPrefix(strings.ToLower(e.Type), "image") {
			return e.URL
		}
	}

	return firstImgSrc(rawContent)
}

// altLink — первая ссылка с rel="alternate" или без rel.
func altLink(links []atomLink) string {
	for _, l := range links {
		if l.Rel == "" || l.Rel == "alternate" {
			return strings.TrimSpace(l.Href)
		}
	}

	return ""
}

// synthesizeGUID — фолбэк-идентификатор для записей без guid и link.
// Время + UUID гарантируют уникальность в рамках ленты.
func synthesizeGUID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.NewString())
}
