package style

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// colorStop anchors the fluid background gradient at an hour of day.
type colorStop struct {
	hour  float64
	color colorful.Color
}

func mustHex(h string) colorful.Color {
	c, err := colorful.Hex(h)
	if err != nil {
		panic(err)
	}
	return c
}

// The fluid background cycles through these stops over 24 hours.
var fluidStops = []colorStop{
	{0, mustHex("#2f244b")},
	{6, mustHex("#ff7777")},
	{9, mustHex("#fffd70")},
	{15, mustHex("#78f6ff")},
	{17, mustHex("#9f95ff")},
	{19, mustHex("#f695ff")},
	{22, mustHex("#6244b0")},
	{24, mustHex("#2f244b")},
}

// FluidColorAt interpolates the time-of-day background colour for t.
func FluidColorAt(t time.Time) colorful.Color {
	hours := float64(t.Hour()) + float64(t.Minute())/60

	stop1 := fluidStops[0]
	stop2 := fluidStops[1]
	for i := 0; i < len(fluidStops)-1; i++ {
		if hours >= fluidStops[i].hour && hours < fluidStops[i+1].hour {
			stop1 = fluidStops[i]
			stop2 = fluidStops[i+1]
			break
		}
	}

	ratio := (hours - stop1.hour) / (stop2.hour - stop1.hour)
	return stop1.color.BlendRgb(stop2.color, ratio).Clamped()
}

// FluidHexAt is FluidColorAt rendered as a hex string for terminals.
func FluidHexAt(t time.Time) string {
	return FluidColorAt(t).Hex()
}
