package astroApi

// BirthData момент и место расчёта. Время передаётся уже в UTC.
type BirthData struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Person представляет субъекта натальной карты
type Person struct {
	Name      string    `json:"name"`
	BirthData BirthData `json:"birth_data"`
}

// ChartOptions представляет опции для расчета карты
type ChartOptions struct {
	HouseSystem  string   `json:"house_system"`  // "P" для Плацидуса
	ZodiacType   string   `json:"zodiac_type"`   // "Tropic" для тропического
	ActivePoints []string `json:"active_points"` // ["Sun", "Moon", ...]
	Precision    int      `json:"precision"`
}

// NatalChartRequest представляет запрос на расчет натальной карты
type NatalChartRequest struct {
	Subject Person       `json:"subject"`
	Options ChartOptions `json:"options"`
}

// NatalChartResponse представляет ответ API
type NatalChartResponse struct {
	Status    string          `json:"status"`
	Code      int             `json:"code,omitempty"`
	Message   string          `json:"message,omitempty"`
	RequestID string          `json:"request_id,omitempty"`
	Data      *NatalChartData `json:"data,omitempty"`
	RawJSON   string          `json:"-"` // Оригинальный JSON ответ для логов
}

// NatalChartData представляет данные натальной карты
type NatalChartData struct {
	Planets []PlanetPosition `json:"planets,omitempty"`
	Houses  []HousePosition  `json:"houses,omitempty"`
}

// PlanetPosition позиция точки. Degree - градус внутри знака,
// AbsPos - эклиптическая долгота, если API её прислал.
type PlanetPosition struct {
	Name   string   `json:"name"`
	Sign   string   `json:"sign"`
	Degree float64  `json:"degree"`
	AbsPos *float64 `json:"abs_pos,omitempty"`
	House  int      `json:"house,omitempty"`
}

// HousePosition куспид дома
type HousePosition struct {
	House  int     `json:"house"`
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}
