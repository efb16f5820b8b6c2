// feed — разбор RSS 2.0 / Atom / RDF (RSS 1.0) в канонический models.ParsedFeed.
package feed

import "encoding/xml"

// dialect — явная классификация формата ленты по корневому элементу.
// Диалект определяется один раз, дальше работает свой маппинг полей.
type dialect int

const (
	dialectUnknown dialect = iota
	// dialectRSS — RSS 2.0: <rss><channel><item>...
	dialectRSS
	// dialectAtom — Atom: <feed><entry>...
	dialectAtom
	// dialectRDF — RSS 1.0: <rdf:RDF><channel/><item>...
	dialectRDF
)

// rssRoot — корневая структура RSS 2.0.
type rssRoot struct {
	XMLName xml.Name   `xml:"rss"`
	Channel rssChannel `xml:"channel"`
}

// rssChannel — RSS-канал с метаданными ленты и списком записей.
type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

// rssItem описывает одну запись RSS-ленты.
type rssItem struct {
	// Title — заголовок записи.
	Title string `xml:"title"`
	// Link — ссылка на материал.
	Link string `xml:"link"`
	// GUID — «перманентный» идентификатор записи. При его отсутствии
	// идентификатором становится Link, затем — синтетический фолбэк.
	GUID string `xml:"guid"`
	// PubDate — дата публикации в строковом виде.
	PubDate string `xml:"pubDate"`
	// Description — краткое описание/тизер. Часто приходит внутри CDATA и с HTML.
	Description string `xml:"description"`
	// ContentEncoded — расширение content:encoded с полным HTML-телом.
	// Имеет приоритет над Description при выборе контента.
	ContentEncoded string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	// Author/Creator — автор записи; author приоритетнее dc:creator.
	Author  string `xml:"author"`
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	// Enclosures — вложения; для обложки интересны только image/*.
	Enclosures []enclosure `xml:"enclosure"`
	// MediaContent/MediaThumbs — приоритетные источники обложки (Media RSS).
	MediaContent []mediaEntry `xml:"http://search.yahoo.com/mrss/ content"`
	MediaThumbs  []mediaEntry `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

// enclosure — описание вложения RSS.
type enclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// mediaEntry — элемент Media RSS (media:content или media:thumbnail).
type mediaEntry struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

// atomRoot — корневая структура Atom-ленты.
type atomRoot struct {
	XMLName  xml.Name    `xml:"feed"`
	Title    string      `xml:"title"`
	Subtitle string      `xml:"subtitle"`
	Links    []atomLink  `xml:"link"`
	Entries  []atomEntry `xml:"entry"`
}

// atomLink — <link href=... rel=...>; ссылкой на сайт считается
// первая с rel="alternate" или без rel вовсе.
type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
}

// atomEntry — одна запись Atom-ленты.
type atomEntry struct {
	// ID — стабильный идентификатор записи.
	ID    string     `xml:"id"`
	Title string     `xml:"title"`
	Links []atomLink `xml:"link"`
	// Content/Summary — полный текст и тизер; content приоритетнее.
	Content string `xml:"content"`
	Summary string `xml:"summary"`
	// AuthorName — вложенный <author><name>.
	AuthorName string `xml:"author>name"`
	// Published/Updated — published приоритетнее, updated — фолбэк.
	Published    string       `xml:"published"`
	Updated      string       `xml:"updated"`
	MediaContent []mediaEntry `xml:"http://search.yahoo.com/mrss/ content"`
	MediaThumbs  []mediaEntry `xml:"http://search.yahoo.com/mrss/ thumbnail"`
}

// rdfRoot — корневая структура RDF/RSS 1.0.
// В отличие от RSS 2.0 записи лежат рядом с <channel>, а не внутри него.
type rdfRoot struct {
	XMLName xml.Name   `xml:"RDF"`
	Channel rdfChannel `xml:"channel"`
	Items   []rdfItem  `xml:"item"`
}

// rdfChannel — метаданные RDF-ленты.
type rdfChannel struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
}

// rdfItem — одна запись RDF-ленты.
type rdfItem struct {
	// About — атрибут rdf:about, основной идентификатор записи.
	About       string `xml:"http://www.w3.org/1999/02/22-rdf-syntax-ns# about,attr"`
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	// ContentEncoded — в RDF-диалекте фолбэк после description.
	ContentEncoded string `xml:"http://purl.org/rss/1.0/modules/content/ encoded"`
	// Creator — dc:creator, единственный источник автора в RDF.
	Creator string `xml:"http://purl.org/dc/elements/1.1/ creator"`
	// Date — dc:date, обычно ISO-8601.
	Date string `xml:"http://purl.org/dc/elements/1.1/ date"`
}
