package domain

// ExampleSpeeds are the reference walking-to-sprinting speeds in feet per second.
var ExampleSpeeds = []float64{3.3, 5.5, 8.8, 13.2, 30.0}

// Series pairs speeds with their computed trials, in input order.
type Series struct {
	Trials []Trial `json:"trials"`
}

// Sweep evaluates SimulateWetness for each speed.
func Sweep(speeds []float64) Series {
	return SweepWith(speeds, DefaultDistance, DefaultRainDensity)
}

// SweepWith evaluates the model for each speed at a fixed distance and density.
// Order is preserved; speeds are not sorted or deduplicated.
func SweepWith(speeds []float64, distance, density float64) Series {
	trials := make([]Trial, len(speeds))
	for i, s := range speeds {
		trials[i] = NewTrial(s, distance, density)
	}
	return Series{Trials: trials}
}

// Speeds returns the x values of the series.
func (s Series) Speeds() []float64 {
	out := make([]float64, len(s.Trials))
	for i, t := range s.Trials {
		out[i] = t.Speed
	}
	return out
}

// Wetness returns the y values of the series.
func (s Series) Wetness() []float64 {
	out := make([]float64, len(s.Trials))
	for i, t := range s.Trials {
		out[i] = t.Total
	}
	return out
}

// Len reports the number of trials.
func (s Series) Len() int { return len(s.Trials) }
