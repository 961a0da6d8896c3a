// Package domain models how wet a person gets walking or running through rain.
//
// # Model
//
// The body is an idealized rectangular box (see [DefaultBody]):
//
//	height 70/12 ft (~5'10"), width 20/12 ft (shoulders), depth 12/12 ft
//
// Rain is a uniform field of density drops per square foot per second. For a
// traversal of distance feet at speed feet per second:
//
//	time_in_rain    = distance / speed
//	top_area        = width * depth
//	front_area      = height * width
//	rain_from_above = density * top_area * time_in_rain
//	rain_from_front = density * front_area * distance
//	wetness         = rain_from_above + rain_from_front
//
// The front term scales with distance only and has no speed dependence, so
// going faster only reduces the rain from above. The model keeps this
// asymmetry as-is; do not "fix" it here.
//
// # Inputs
//
// Speed is not validated. A speed of zero divides to +Inf and a negative speed
// yields a negative exposure time; both propagate into the result unchanged.
// Callers are expected to pass positive speeds. Downstream, the report prints
// +Inf as-is and the chart rejects it.
package domain
