package stage

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	RgbBackground  = tcell.NewRGBColor(18, 16, 14)    // Near black
	RgbOrcSkin     = tcell.NewRGBColor(96, 128, 56)   // Olive green
	RgbOrcEyes     = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbSauronEye   = tcell.NewRGBColor(255, 80, 0)    // Burning orange
	RgbBlood       = tcell.NewRGBColor(170, 20, 20)   // Dark red
	RgbPrecious    = tcell.NewRGBColor(255, 215, 0)   // Ring gold
	RgbGollum      = tcell.NewRGBColor(150, 220, 255) // Pale cyan
	RgbMellon      = tcell.NewRGBColor(200, 220, 255) // Moonlit silver
	RgbHelmsDeep   = tcell.NewRGBColor(60, 70, 110)   // Storm blue
	RgbHornFlash   = tcell.NewRGBColor(255, 240, 200) // Warm white
	RgbIsildur     = tcell.NewRGBColor(255, 120, 40)  // Mount Doom
	RgbNoticeText  = tcell.NewRGBColor(255, 255, 255) // White
	RgbNoticeFade  = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbQuoteText   = tcell.NewRGBColor(255, 230, 170) // Parchment
	RgbHudText     = tcell.NewRGBColor(180, 180, 180) // Gray
	RgbHudValue    = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbButton      = tcell.NewRGBColor(60, 45, 30)    // Leather brown
	RgbButtonText  = tcell.NewRGBColor(230, 220, 200) // Bone
	RgbButtonChaos = tcell.NewRGBColor(120, 20, 20)   // Red while chaos runs
	RgbGrondText   = tcell.NewRGBColor(255, 60, 30)   // Fire
	RgbConfetti    = tcell.NewRGBColor(255, 105, 180) // Pink fallback
)

// partyCycle is the period of one full hue rotation
const partyCycle = 2 * time.Second

// PartyHue returns the party color at elapsed, shifted by phase in [0, 1)
func PartyHue(elapsed time.Duration, phase float64) tcell.Color {
	turn := math.Mod(float64(elapsed)/float64(partyCycle)+phase, 1)
	return toTcell(colorful.Hsv(turn*360, 0.85, 1))
}

// Pulse blends from base to peak and back over period
func Pulse(base, peak tcell.Color, elapsed, period time.Duration) tcell.Color {
	if period <= 0 {
		return base
	}
	phase := float64(elapsed%period) / float64(period)
	t := 0.5 - 0.5*math.Cos(2*math.Pi*phase)
	return Blend(base, peak, t)
}

// Blend interpolates two colors in Lab space; t is clamped to [0, 1]
func Blend(a, b tcell.Color, t float64) tcell.Color {
	t = math.Max(0, math.Min(1, t))
	return toTcell(fromTcell(a).BlendLab(fromTcell(b), t).Clamped())
}

// Dim scales a color's lightness by factor
func Dim(c tcell.Color, factor float64) tcell.Color {
	h, s, l := fromTcell(c).Hsl()
	return toTcell(colorful.Hsl(h, s, math.Max(0, math.Min(1, l*factor))))
}

func fromTcell(c tcell.Color) colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
