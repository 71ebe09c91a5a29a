package format

// The label tables map enum keys to Russian display strings. Lookups fall
// back to the raw key, so an unknown key degrades to itself instead of
// erroring.

var categoryLabels = map[string]string{
	"romantic":       "Свидание",
	"celebration":    "Праздник",
	"business":       "Бизнес",
	"family":         "Семейный",
	"rooftop":        "Панорама",
	"author_cuisine": "Авторская кухня",
	"asian":          "Азиатская кухня",
	"italian":        "Итальянская",
	"georgian":       "Грузинская",
	"seafood":        "Морепродукты",
	"bar":            "Бар",
	"budget":         "Бюджетный",
}

var eventTypeLabels = map[string]string{
	"concert":    "Концерт",
	"theatre":    "Театр",
	"exhibition": "Выставка",
	"festival":   "Фестиваль",
	"standup":    "Стендап",
	"party":      "Вечеринка",
	"sport":      "Спорт",
	"cinema":     "Кино",
}

var featureLabels = map[string]string{
	"terrace":      "Терраса",
	"parking":      "Парковка",
	"kids_room":    "Детская комната",
	"live_music":   "Живая музыка",
	"hookah":       "Кальян",
	"private_room": "VIP-зал",
	"wifi":         "Wi-Fi",
	"delivery":     "Доставка",
	"breakfast":    "Завтраки",
	"brunch":       "Бранч",
	"banquet":      "Банкеты",
	"bar":          "Бар",
}

var tagLabels = map[string]string{
	"date":           "Свидание",
	"birthday":       "День рождения",
	"corporate":      "Корпоратив",
	"terrace":        "Терраса",
	"live_music":     "Живая музыка",
	"michelin":       "Michelin",
	"rooftop":        "Крыша",
	"view":           "Вид",
	"cocktails":      "Коктейли",
	"wine":           "Винная карта",
	"brunch":         "Бранч",
	"kids":           "С детьми",
	"group":          "Для компании",
	"quiet":          "Тихий",
	"late_night":     "Допоздна",
	"instagrammable": "Инстаграмный",
}

var eventPlaceholderColors = map[string]string{
	"concert":    "8b5cf6",
	"theatre":    "ec4899",
	"exhibition": "3b82f6",
	"festival":   "f59e0b",
	"standup":    "10b981",
	"party":      "ef4444",
	"sport":      "06b6d4",
	"cinema":     "6366f1",
}

func labelOrKey(table map[string]string, key string) string {
	if v, ok := table[key]; ok {
		return v
	}
	return key
}

// CategoryLabel returns the display label for a restaurant category.
func CategoryLabel(key string) string { return labelOrKey(categoryLabels, key) }

// EventTypeLabel returns the display label for an event type.
func EventTypeLabel(key string) string { return labelOrKey(eventTypeLabels, key) }

// FeatureLabel returns the display label for a feature flag.
func FeatureLabel(key string) string { return labelOrKey(featureLabels, key) }

// TagLabel returns the display label for a tag.
func TagLabel(key string) string { return labelOrKey(tagLabels, key) }

// Labels bundles all tables for consumers that render chips client-side.
func Labels() map[string]map[string]string {
	return map[string]map[string]string{
		"categories":  categoryLabels,
		"event_types": eventTypeLabels,
		"features":    featureLabels,
		"tags":        tagLabels,
	}
}
