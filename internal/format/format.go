// Package format holds the pure presentation helpers: price and date
// rendering, working-hours summaries, and the label lookup tables. Nothing
// here has state; the view layer composes these over engine output.
package format

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mosgid/gid/internal/models"
)

// Price renders an integer amount with a thin space every three digits:
// 125000 → "125 000". No decimals, no currency.
func Price(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// PriceSymbol repeats the ruble glyph level times, minimum one.
func PriceSymbol(level int) string {
	if level < 1 {
		level = 1
	}
	return strings.Repeat("₽", level)
}

var weekdayKeys = []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}

// hoursUnknown is shown when no day has a value.
const hoursUnknown = "Уточняйте"

// WorkingHours summarizes a weekday→range mapping. All present days sharing
// one value collapse to "Ежедневно <v>"; otherwise a weekday/weekend split is
// built from Monday's and Saturday's values with a dash placeholder for
// absent ones.
func WorkingHours(hours models.WorkingHours) string {
	if len(hours) == 0 {
		return hoursUnknown
	}
	var values []string
	for _, d := range weekdayKeys {
		if v := hours[d]; v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return hoursUnknown
	}
	uniform := true
	for _, v := range values[1:] {
		if v != values[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return "Ежедневно " + values[0]
	}
	return fmt.Sprintf("Пн-Пт: %s, Сб-Вс: %s", orDash(hours["mon"]), orDash(hours["sat"]))
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}

var monthsShort = [12]string{
	"янв", "фев", "мар", "апр", "мая", "июн",
	"июл", "авг", "сен", "окт", "ноя", "дек",
}

var monthsGenitive = [12]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// EventDate renders a short badge date: "2 янв". Unparseable input is
// returned unchanged.
func EventDate(dateStr string) string {
	d, ok := parseDate(dateStr)
	if !ok {
		return dateStr
	}
	return fmt.Sprintf("%d %s", d.Day(), monthsShort[d.Month()-1])
}

// EventDateFull renders "2 января 2026", appending "— <end>" when the end
// falls on a different calendar day.
func EventDateFull(start, end string) string {
	d, ok := parseDate(start)
	if !ok {
		return start
	}
	out := fmt.Sprintf("%d %s %d", d.Day(), monthsGenitive[d.Month()-1], d.Year())
	if end != "" {
		if de, ok := parseDate(end); ok && !sameDay(d, de) {
			out += fmt.Sprintf(" — %d %s", de.Day(), monthsGenitive[de.Month()-1])
		}
	}
	return out
}

// BookingDate renders a ledger date ("YYYY-MM-DD") the long way:
// "2 января 2026 г.".
func BookingDate(dateStr string) string {
	d, ok := parseDate(dateStr)
	if !ok {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d г.", d.Day(), monthsGenitive[d.Month()-1], d.Year())
}

// EventPrice renders the ticket price line for an event.
func EventPrice(e models.Event) string {
	switch {
	case e.IsFree:
		return "Бесплатно"
	case e.PriceFrom > 0 && e.PriceTo > 0:
		return fmt.Sprintf("%s — %s ₽", Price(e.PriceFrom), Price(e.PriceTo))
	case e.PriceFrom > 0:
		return fmt.Sprintf("от %s ₽", Price(e.PriceFrom))
	default:
		return "Цена уточняется"
	}
}

// PhotoURL returns the restaurant photo, falling back to a generated
// placeholder carrying the restaurant name.
func PhotoURL(r models.Restaurant) string {
	if r.PhotoURL != "" {
		return r.PhotoURL
	}
	return "https://via.placeholder.com/800x500/0a0a1a/00f0ff?text=" + url.QueryEscape(r.Name)
}

// EventPlaceholder returns the type-colored placeholder image for an event
// without a photo.
func EventPlaceholder(eventType string) string {
	color, ok := eventPlaceholderColors[eventType]
	if !ok {
		color = "8b5cf6"
	}
	return fmt.Sprintf("https://via.placeholder.com/800x500/%s/ffffff?text=%s",
		color, url.QueryEscape(EventTypeLabel(eventType)))
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
