package resolve_city

// Request запрос на резолв города
type Request struct {
	CityName    string
	CountryCode string // двухбуквенный ISO код
	CountryName string
}

// Response результат резолва
type Response struct {
	CityID  int64
	Slug    string
	Created bool // true, если город был создан этим запросом
}
