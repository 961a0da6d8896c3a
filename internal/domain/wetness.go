package domain

const (
	// DefaultDistance is the distance to shelter in feet.
	DefaultDistance = 500.0
	// DefaultRainDensity is raindrops per square foot per second.
	DefaultRainDensity = 1000.0
)

// Trial is one evaluation of the model: its inputs and every derived quantity.
// It has no identity beyond its inputs and is recomputed on every call.
type Trial struct {
	Speed       float64 `json:"speed_ft_s"`
	Distance    float64 `json:"distance_ft"`
	RainDensity float64 `json:"rain_density"`

	TopArea    float64 `json:"top_area_sqft"`
	FrontArea  float64 `json:"front_area_sqft"`
	TimeInRain float64 `json:"time_in_rain_s"`
	FromAbove  float64 `json:"rain_from_above"`
	FromFront  float64 `json:"rain_from_front"`
	Total      float64 `json:"wetness"`
}

// NewTrial evaluates the model for DefaultBody. Operations run in a fixed
// order so Total is reproducible bit for bit.
func NewTrial(speed, distance, density float64) Trial {
	b := DefaultBody

	timeInRain := distance / speed
	topArea := b.TopArea()
	frontArea := b.FrontArea()

	fromAbove := density * topArea * timeInRain
	fromFront := density * frontArea * distance

	return Trial{
		Speed:       speed,
		Distance:    distance,
		RainDensity: density,
		TopArea:     topArea,
		FrontArea:   frontArea,
		TimeInRain:  timeInRain,
		FromAbove:   fromAbove,
		FromFront:   fromFront,
		Total:       fromAbove + fromFront,
	}
}

// Wetness returns the total raindrops that hit the body over distance feet at
// speed feet per second in rain of the given density.
func Wetness(speed, distance, density float64) float64 {
	return NewTrial(speed, distance, density).Total
}

// SimulateWetness is Wetness with DefaultDistance and DefaultRainDensity.
func SimulateWetness(speed float64) float64 {
	return Wetness(speed, DefaultDistance, DefaultRainDensity)
}
