package resolve_city

import (
	"regexp"
	"strings"
)

// blockedCountryCodes страны, в которых онбординг гидов закрыт.
// Статический список; пересматривается вручную вместе с юристами.
var blockedCountryCodes = map[string]struct{}{
	"RU": {},
	"BY": {},
	"IR": {},
	"KP": {},
	"SY": {},
}

// blockedCityPattern имена городов на спорных территориях,
// онбординг под которыми закрыт независимо от заявленной страны
var blockedCityPattern = regexp.MustCompile(`(?i)\b(crimea|sevastopol|donetsk|luhansk)\b`)

// isCountryBlocked проверяет ISO код по блок-листу
func isCountryBlocked(isoCode string) bool {
	_, blocked := blockedCountryCodes[strings.ToUpper(isoCode)]
	return blocked
}

// isCityNameBlocked проверяет имя города по блок-листу ключевых слов
func isCityNameBlocked(name string) bool {
	return blockedCityPattern.MatchString(name)
}
