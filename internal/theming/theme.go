package theming

import (
	"image/color"

	"codeberg.org/snonux/lexicarte/internal/card"
)

// Theme is one entry of the fixed card color palette.
type Theme struct {
	Name       string
	Background color.NRGBA
	Accent     color.NRGBA
	Text       color.NRGBA
}

// palette holds the fixed set of card themes. Order matters: ThemeFor indexes
// into it deterministically.
var palette = []Theme{
	{
		Name:       "lavande",
		Background: color.NRGBA{R: 0xEA, G: 0xE4, B: 0xF2, A: 0xFF},
		Accent:     color.NRGBA{R: 0x7B, G: 0x61, B: 0xA6, A: 0xFF},
		Text:       color.NRGBA{R: 0x2E, G: 0x26, B: 0x3D, A: 0xFF},
	},
	{
		Name:       "céladon",
		Background: color.NRGBA{R: 0xE2, G: 0xF0, B: 0xE6, A: 0xFF},
		Accent:     color.NRGBA{R: 0x4E, G: 0x8A, B: 0x63, A: 0xFF},
		Text:       color.NRGBA{R: 0x1F, G: 0x33, B: 0x26, A: 0xFF},
	},
	{
		Name:       "terracotta",
		Background: color.NRGBA{R: 0xF6, G: 0xE4, B: 0xDC, A: 0xFF},
		Accent:     color.NRGBA{R: 0xB4, G: 0x5B, B: 0x3E, A: 0xFF},
		Text:       color.NRGBA{R: 0x3E, G: 0x22, B: 0x18, A: 0xFF},
	},
	{
		Name:       "bleuet",
		Background: color.NRGBA{R: 0xDF, G: 0xE9, B: 0xF5, A: 0xFF},
		Accent:     color.NRGBA{R: 0x3C, G: 0x66, B: 0xA3, A: 0xFF},
		Text:       color.NRGBA{R: 0x18, G: 0x28, B: 0x40, A: 0xFF},
	},
	{
		Name:       "moutarde",
		Background: color.NRGBA{R: 0xF6, G: 0xEE, B: 0xD8, A: 0xFF},
		Accent:     color.NRGBA{R: 0xA8, G: 0x85, B: 0x2C, A: 0xFF},
		Text:       color.NRGBA{R: 0x3A, G: 0x2F, B: 0x10, A: 0xFF},
	},
	{
		Name:       "rosé",
		Background: color.NRGBA{R: 0xF5, G: 0xE1, B: 0xE8, A: 0xFF},
		Accent:     color.NRGBA{R: 0xA6, G: 0x4A, B: 0x6D, A: 0xFF},
		Text:       color.NRGBA{R: 0x3D, G: 0x1B, B: 0x28, A: 0xFF},
	},
	{
		Name:       "ardoise",
		Background: color.NRGBA{R: 0xE5, G: 0xE8, B: 0xEB, A: 0xFF},
		Accent:     color.NRGBA{R: 0x54, G: 0x60, B: 0x6E, A: 0xFF},
		Text:       color.NRGBA{R: 0x20, G: 0x26, B: 0x2C, A: 0xFF},
	},
}

// ThemeFor maps a card ID to its visual theme: the sum of the ID's character
// codes modulo the palette size. Same ID always yields the same theme, so
// nothing needs to be persisted.
func ThemeFor(id string) Theme {
	sum := 0
	for _, r := range id {
		sum += int(r)
	}
	if sum < 0 {
		sum = -sum
	}
	return palette[sum%len(palette)]
}

// PaletteSize returns the number of available themes.
func PaletteSize() int {
	return len(palette)
}

// Pattern computes the pixel color of a procedural background motif. It takes
// the pixel coordinates and the theme's background and accent colors.
type Pattern func(x, y int, background, accent color.NRGBA) color.NRGBA

// patterns maps each texture tag to its motif.
var patterns = map[card.Texture]Pattern{
	card.TexturePaper:      paperPattern,
	card.TextureLinen:      linenPattern,
	card.TextureWatercolor: watercolorPattern,
	card.TextureMarble:     marblePattern,
	card.TextureWood:       woodPattern,
	card.TextureClay:       clayPattern,
	card.TextureVelvet:     velvetPattern,
}

// PatternFor looks up the background pattern for a texture tag. Unknown or
// absent tags fall back to the default texture's pattern.
func PatternFor(tag card.Texture) Pattern {
	if p, ok := patterns[tag]; ok {
		return p
	}
	return patterns[card.DefaultTexture]
}

// FontSizeFor maps text length to a size class: a monotonically non-increasing
// step function over four length bands.
func FontSizeFor(text string) float32 {
	n := len([]rune(text))
	switch {
	case n <= 4:
		return 32
	case n <= 8:
		return 26
	case n <= 12:
		return 21
	default:
		return 16
	}
}

// mix blends accent into background by num/den.
func mix(background, accent color.NRGBA, num, den int) color.NRGBA {
	blend := func(b, a uint8) uint8 {
		return uint8((int(b)*(den-num) + int(a)*num) / den)
	}
	return color.NRGBA{
		R: blend(background.R, accent.R),
		G: blend(background.G, accent.G),
		B: blend(background.B, accent.B),
		A: 0xFF,
	}
}

// hash2 is a small deterministic integer hash of a coordinate pair, used to
// fake grain without any random state.
func hash2(x, y int) int {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	if h < 0 {
		h = -h
	}
	return h
}

func paperPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Fine speckled grain
	if hash2(x, y)%23 == 0 {
		return mix(bg, ac, 1, 8)
	}
	return bg
}

func linenPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Crosshatch weave
	if x%4 == 0 || y%4 == 0 {
		return mix(bg, ac, 1, 10)
	}
	return bg
}

func watercolorPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Soft diagonal washes
	band := (x + y) / 24 % 3
	return mix(bg, ac, band, 14)
}

func marblePattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Thin veins
	if (x+y*3)%37 < 2 {
		return mix(bg, ac, 1, 5)
	}
	return bg
}

func woodPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Horizontal grain bands
	if y%9 < 2 {
		return mix(bg, ac, 1, 7)
	}
	return bg
}

func clayPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Coarse speckle
	if hash2(x, y)%11 == 0 {
		return mix(bg, ac, 1, 6)
	}
	return bg
}

func velvetPattern(x, y int, bg, ac color.NRGBA) color.NRGBA {
	// Vertical sheen stripes
	if x%12 < 3 {
		return mix(bg, ac, 1, 9)
	}
	return bg
}
