package domain

// GeoPoint географические координаты (WGS 84)
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodeResult лучший результат геокодера
type GeocodeResult struct {
	GeoPoint
	Address string `json:"address"`
}

// ResolvedPlace место рождения после геокодинга и определения часового пояса.
// Хранится в кеше мест, поэтому сериализуется в JSON.
type ResolvedPlace struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Address  string  `json:"address"`
	Timezone string  `json:"timezone"` // IANA, например Europe/Paris
}

// Point координаты места
func (p ResolvedPlace) Point() GeoPoint {
	return GeoPoint{Lat: p.Lat, Lon: p.Lon}
}
