package feed

import (
	"errors"
	"strings"
	"time"
)

// parseDate пробует набор популярных форматов и возвращает UTC-время.
//
// Покрывает RFC822/RFC1123-семейство (RSS pubDate), RFC3339 (Atom, dc:date)
// и пару распространённых нестандартов. Вызывающий трактует ошибку как
// «дата неизвестна»: одна кривая дата не должна валить разбор ленты.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errors.New("empty date")
	}

	layouts := []string{
		time.RFC1123Z,                   // Mon, 02 Jan 2006 15:04:05 -0700
		time.RFC1123,                    // Mon, 02 Jan 2006 15:04:05 MST
		"Mon, 02 Jan 06 15:04:05 -0700", // 2-значный год
		"Mon, 02 Jan 06 15:04:05 MST",   // 2-значный год
		time.RFC822Z,                    // 02 Jan 06 15:04 -0700
		time.RFC822,                     // 02 Jan 06 15:04 MST
		time.RFC3339,                    // 2006-01-02T15:04:05Z07:00 (+доли секунды)
		"2006-01-02T15:04:05",           // ISO без зоны
		"2006-01-02 15:04:05",           // ISO с пробелом
		"2006-01-02",                    // только дата (встречается в dc:date)
		"Mon, 02 Jan 2006 15:04:05 MST", // нестандарт: аббревиатура без смещения
	}

	var lastErr error
	for _, l := range layouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.UTC(), nil
		} else {
			lastErr = err
		}
	}

	return time.Time{}, lastErr
}
