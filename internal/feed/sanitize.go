package feed

import (
	"regexp"
	"strings"
)

// Пределы нормализации контента записи.
const (
	// maxExcerptLen — длина тизера в символах (рунах), без учёта многоточия.
	maxExcerptLen = 300
	// maxContentLen — потолок сохраняемого текста; остаток молча отбрасывается.
	maxContentLen = 50000
)

var (
	reTag = regexp.MustCompile(`<[^>]+>`)
	reWS  = regexp.MustCompile(`\s+`)
	reImg = regexp.MustCompile(`(?is)<img[^>]+src=["']([^"']+)["']`)
)

// entityReplacer декодирует фиксированный набор сущностей, встречающихся
// в реальных лентах. Набор и порядок намеренно ограничены: терпимость
// к «грязной» разметке важнее полноты декодирования.
var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// stripHTML убирает теги (заменой на пробел), декодирует сущности
// и схлопывает пробельные последовательности.
func stripHTML(html string) string {
	if html == "" {
		return ""
	}

	s := reTag.ReplaceAllString(html, " ")
	s = entityReplacer.Replace(s)
	s = reWS.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

// makeExcerpt строит тизер: плейн-текстовый префикс не длиннее maxExcerptLen
// рун, с многоточием только если исходный текст был длиннее среза.
func makeExcerpt(plain string) string {
	runes := []rune(plain)
	if len(runes) <= maxExcerptLen {
		return plain
	}

	return strings.TrimSpace(string(runes[:maxExcerptLen])) + "..."
}

// truncateContent обрезает текст до maxContentLen рун. Без ошибки:
// усечение контента — штатная деградация, а не сбой разбора.
func truncateContent(plain string) string {
	runes := []rune(plain)
	if len(runes) <= maxContentLen {
		return plain
	}

	return string(runes[:maxContentLen])
}

// firstImgSrc возвращает src первого <img> в сырой HTML-строке.
// Сканирование регуляркой сохраняет семантику «первое совпадение по порядку»
// и терпит кривую разметку, на которой строгий парсер бы споткнулся.
func firstImgSrc(html string) string {
	m := reImg.FindStringSubmatch(html)

	if len(m) >= 2 {
		return strings.TrimSpace(m[1])
	}

	return ""
}

// firstNonEmpty реализует политику «первый непустой источник побеждает»,
// общую для всех маппингов полей.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}
