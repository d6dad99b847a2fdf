package nominatim

// SearchResult элемент ответа /search?format=jsonv2.
// lat/lon Nominatim отдаёт строками.
type SearchResult struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category,omitempty"`
	Type        string `json:"type,omitempty"`
}
