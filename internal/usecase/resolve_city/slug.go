package resolve_city

import (
	"fmt"
	"strings"
	"unicode"
)

// maxSlugAttempts предел перебора кандидатов slug-а.
// Оригинальный перебор был неограниченным; на нашем масштабе 50
// коллизий на одно имя означает некорректные данные, а не живой кейс.
const maxSlugAttempts = 50

// SlugFromName выводит базовый slug из имени города:
// нижний регистр, все символы кроме ASCII букв/цифр и пробелов
// отбрасываются (без транслитерации: "São Paulo!" -> "so-paulo"),
// последовательности пробелов схлопываются в один дефис,
// крайние дефисы обрезаются
func SlugFromName(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), "-")
	return strings.Trim(collapsed, "-")
}

// slugCandidate возвращает n-й кандидат slug-а:
// base, base-iso, base-iso-2, base-iso-3, ...
func slugCandidate(base, isoCode string, attempt int) string {
	switch {
	case attempt == 0:
		return base
	case attempt == 1:
		return fmt.Sprintf("%s-%s", base, strings.ToLower(isoCode))
	default:
		return fmt.Sprintf("%s-%s-%d", base, strings.ToLower(isoCode), attempt)
	}
}
