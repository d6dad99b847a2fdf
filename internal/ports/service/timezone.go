package service

// ITimezoneFinder определяет IANA зону по координатам.
// Сначала по полигонам зон, затем ближайшая зона. Пустая строка - зона не найдена.
type ITimezoneFinder interface {
	TimezoneAt(lat, lon float64) string
}
