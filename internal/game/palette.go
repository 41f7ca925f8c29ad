package game

import (
	"image/color"
	"math"
)

const (
	labelSaturation = 0.65
	labelValue      = 0.8
)

// labelColor spreads the track list evenly around the hue wheel so every
// track without label art still gets its own record label.
func labelColor(index, count int) color.RGBA {
	if count < 1 {
		count = 1
	}
	hue := math.Mod(float64(index)/float64(count), 1) * 6
	if hue < 0 {
		hue += 6
	}
	channel := func(n float64) uint8 {
		k := math.Mod(n+hue, 6)
		lift := math.Max(0, math.Min(math.Min(k, 4-k), 1))
		return uint8(math.Round((labelValue - labelValue*labelSaturation*lift) * 255))
	}
	return color.RGBA{R: channel(5), G: channel(3), B: channel(1), A: 255}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
