package core

import "image/color"

// Color is a palette entry shared by every frontend.
// The terminal maps it to an ANSI 256-color code, windowed frontends to RGBA.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorSnow        // start prompt text
	ColorInk         // HUD text, game-over panel
	ColorSlate       // button outline
	ColorSky         // playing background
	ColorRed
	ColorGreen
	ColorYellow
	ColorOrange
	ColorGray
	ColorDebugFill   // translucent hitbox fill
	ColorDebugStroke // translucent hitbox outline
)

type paletteEntry struct {
	ansi string
	rgba color.RGBA
}

// palette stores premultiplied RGBA values.
var palette = [...]paletteEntry{
	ColorDefault:     {"", color.RGBA{}},
	ColorBlack:       {"16", color.RGBA{0x00, 0x00, 0x00, 0xff}},
	ColorWhite:       {"231", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	ColorSnow:        {"255", color.RGBA{0xfc, 0xfc, 0xfc, 0xff}},
	ColorInk:         {"236", color.RGBA{0x2c, 0x2c, 0x2c, 0xff}},
	ColorSlate:       {"239", color.RGBA{0x4c, 0x4c, 0x4c, 0xff}},
	ColorSky:         {"61", color.RGBA{0x44, 0x64, 0xa0, 0xff}},
	ColorRed:         {"1", color.RGBA{0xcc, 0x22, 0x22, 0xff}},
	ColorGreen:       {"2", color.RGBA{0x2e, 0x8b, 0x3a, 0xff}},
	ColorYellow:      {"3", color.RGBA{0xe0, 0xc0, 0x30, 0xff}},
	ColorOrange:      {"208", color.RGBA{0xff, 0x87, 0x00, 0xff}},
	ColorGray:        {"245", color.RGBA{0x8a, 0x8a, 0x8a, 0xff}},
	ColorDebugFill:   {"9", color.RGBA{0x88, 0x00, 0x00, 0x88}},
	ColorDebugStroke: {"12", color.RGBA{0x00, 0x00, 0x88, 0x88}},
}

// ANSI returns the ANSI 256-color code, or "" for ColorDefault.
func (c Color) ANSI() string {
	if int(c) >= len(palette) {
		return ""
	}
	return palette[c].ansi
}

// RGBA returns the color for raster frontends.
// ColorDefault is fully transparent.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(palette) {
		return color.RGBA{}
	}
	return palette[c].rgba
}
