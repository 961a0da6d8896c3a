// Package report prints the per-speed wetness lines.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/couchcryptid/rain-paradox/internal/domain"
)

// Line formats one trial as "Speed: 3.3 ft/s -> Wetness: 5113636 drops".
// Wetness is truncated toward zero, not rounded. Non-finite values print as
// +Inf, -Inf or NaN rather than as a wrapped integer.
func Line(speed, wetness float64) string {
	// Adding zero turns the -0 from truncating (-1, 0) into 0.
	return fmt.Sprintf("Speed: %.1f ft/s -> Wetness: %.0f drops", speed, math.Trunc(wetness)+0)
}

// Write prints one line per trial, in series order.
func Write(w io.Writer, s domain.Series) error {
	for _, t := range s.Trials {
		if _, err := fmt.Fprintln(w, Line(t.Speed, t.Total)); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
