package domain

// Point небесное тело или чувствительная точка карты
type Point string

const (
	PointSun       Point = "Sun"
	PointMoon      Point = "Moon"
	PointMercury   Point = "Mercury"
	PointVenus     Point = "Venus"
	PointMars      Point = "Mars"
	PointJupiter   Point = "Jupiter"
	PointSaturn    Point = "Saturn"
	PointUranus    Point = "Uranus"
	PointNeptune   Point = "Neptune"
	PointPluto     Point = "Pluto"
	PointAscendant Point = "Ascendant"
	PointMidheaven Point = "Midheaven"
)

// Bodies десять тел, между которыми считаются аспекты. Порядок фиксирован.
var Bodies = []Point{
	PointSun, PointMoon, PointMercury, PointVenus, PointMars,
	PointJupiter, PointSaturn, PointUranus, PointNeptune, PointPluto,
}

// ChartPoints все точки карты в порядке вывода
var ChartPoints = append(append([]Point{}, Bodies...), PointAscendant, PointMidheaven)

func (p Point) String() string {
	return string(p)
}

// IsAngle Ascendant и Midheaven задают куспиды и не стоят в домах
func (p Point) IsAngle() bool {
	return p == PointAscendant || p == PointMidheaven
}

// HouseSystem система домов
type HouseSystem string

const HouseSystemPlacidus HouseSystem = "P"

// Sign знак зодиака
type Sign string

// Signs по порядку от 0° эклиптики
var Signs = []Sign{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

func (s Sign) String() string {
	return string(s)
}

// AspectKind тип мажорного аспекта
type AspectKind string

const (
	AspectConjunction AspectKind = "Conjunction"
	AspectSextile     AspectKind = "Sextile"
	AspectSquare      AspectKind = "Square"
	AspectTrine       AspectKind = "Trine"
	AspectOpposition  AspectKind = "Opposition"
)

// MajorAspect точный угол аспекта
type MajorAspect struct {
	Kind  AspectKind
	Angle float64
}

var MajorAspects = []MajorAspect{
	{Kind: AspectConjunction, Angle: 0},
	{Kind: AspectSextile, Angle: 60},
	{Kind: AspectSquare, Angle: 90},
	{Kind: AspectTrine, Angle: 120},
	{Kind: AspectOpposition, Angle: 180},
}

// MaxAspectOrb максимальный орбис, включительно
const MaxAspectOrb = 6.0

// PointPosition ответ эфемерид по одной точке
type PointPosition struct {
	Point     Point
	Longitude float64 // эклиптическая долгота [0, 360)
	House     int     // 1-12, 0 если точка не стоит в доме
}

// ChartPoint точка рассчитанной карты
type ChartPoint struct {
	Point     Point
	Longitude float64
	Sign      Sign
	SignLon   float64 // долгота внутри знака [0, 30)
	House     int
}

// Chart натальная карта. Points всегда содержит все ChartPoints.
type Chart struct {
	Instant UTCInstant
	Lat     float64
	Lon     float64
	Points  map[Point]ChartPoint
}

// PointSummary строка таблицы точек
type PointSummary struct {
	Point  Point
	Sign   Sign
	Degree string // D°MM'
	House  int    // 0 для Ascendant/Midheaven
}

// AspectSummary аспект между двумя телами
type AspectSummary struct {
	A    Point
	Kind AspectKind
	B    Point
	Orb  float64 // округлён до 2 знаков
}
