package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/mazechase/sim"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)
	RgbWall       = tcell.NewRGBColor(33, 33, 255)
	RgbDoor       = tcell.NewRGBColor(255, 184, 255)
	RgbPellet     = tcell.NewRGBColor(255, 184, 151)
	RgbPlayer     = tcell.NewRGBColor(255, 255, 0)
	RgbText       = tcell.NewRGBColor(255, 255, 255)

	RgbShadow  = tcell.NewRGBColor(255, 0, 0)
	RgbSpeedy  = tcell.NewRGBColor(255, 184, 255)
	RgbBashful = tcell.NewRGBColor(0, 255, 255)
	RgbPokey   = tcell.NewRGBColor(255, 184, 82)

	RgbFrightened = tcell.NewRGBColor(33, 33, 255)
	RgbFlashing   = tcell.NewRGBColor(255, 255, 255)
	RgbEyes       = tcell.NewRGBColor(200, 200, 255)
)

// ghostColors by ghost name
var ghostColors = map[string]tcell.Color{
	"shadow":  RgbShadow,
	"speedy":  RgbSpeedy,
	"bashful": RgbBashful,
	"pokey":   RgbPokey,
}

// bannerColors follow the arcade attract screens
var bannerColors = map[sim.Banner]tcell.Color{
	sim.BannerPressConfirm: tcell.ColorYellow,
	sim.BannerWaitOrPlay:   tcell.ColorGreen,
	sim.BannerReady:        tcell.ColorYellow,
	sim.BannerGameOver:     tcell.ColorRed,
	sim.BannerDone:         tcell.ColorYellow,
	sim.BannerNewBest:      tcell.ColorAqua,
}

// ghostColor returns the body color for a ghost shape
func ghostColor(g sim.GhostView) tcell.Color {
	switch g.Shape {
	case sim.ShapeFrightened:
		return RgbFrightened
	case sim.ShapeFlashing:
		return RgbFlashing
	case sim.ShapeEyes:
		return RgbEyes
	}
	if c, ok := ghostColors[g.Name]; ok {
		return c
	}
	return RgbText
}
