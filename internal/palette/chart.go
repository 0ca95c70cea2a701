package palette

import "github.com/renato0307/shade/internal/color"

// chartStep adjusts saturation and lightness of the primary. A negative delta
// is bounded below by its limit, a positive one above.
type chartStep struct {
	dS, limS int
	dL, limL int
}

var (
	lightChartSteps = [4]chartStep{
		{dS: -15, limS: 30, dL: +15, limL: 75},
		{dS: -30, limS: 20, dL: +25, limL: 85},
		{dS: +10, limS: 90, dL: -15, limL: 25},
		{dS: +5, limS: 85, dL: -25, limL: 20},
	}
	darkChartSteps = [4]chartStep{
		{dS: +5, limS: 90, dL: +15, limL: 70},
		{dS: +10, limS: 95, dL: +25, limL: 80},
		{dS: -10, limS: 40, dL: -15, limL: 30},
		{dS: -20, limS: 30, dL: -25, limL: 20},
	}
)

// ChartSeries derives a five step monochromatic ramp around primary's hue.
// chart1 is primary itself. secondary and accent do not influence the ramp.
func ChartSeries(primary, secondary, accent color.HSL, dark bool) [5]color.HSL {
	steps := lightChartSteps
	if dark {
		steps = darkChartSteps
	}

	out := [5]color.HSL{primary}
	for i, st := range steps {
		out[i+1] = color.New(primary.H, bounded(primary.S, st.dS, st.limS), bounded(primary.L, st.dL, st.limL))
	}
	return out
}

func bounded(v, delta, limit int) int {
	if delta < 0 {
		return max(v+delta, limit)
	}
	return min(v+delta, limit)
}
