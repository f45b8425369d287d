/*
Package palette implements the color model used by Minecraft map items.

Each map pixel is a single byte. The upper six bits select one of 64 base
colors and the lower two bits select one of four shading multipliers which
darken the red, green and blue channels. Alpha is taken from the base color
unchanged, so only base colors 0, 62 and 63 are transparent.

See https://minecraft.wiki/w/Map_item_format#Map_colors
*/
package palette

import "image/color"

const (
	numBaseColors  = 64
	numMultipliers = 4

	// Size is the number of distinct color indices
	Size = numBaseColors * numMultipliers
)

// BaseColors holds the 64 canonical base colors, indexed by base color ID
var BaseColors = [numBaseColors]color.RGBA{
	{0, 0, 0, 0},         // none
	{127, 178, 56, 255},  // grass
	{247, 233, 163, 255}, // sand
	{199, 199, 199, 255}, // wool
	{255, 0, 0, 255},     // fire
	{160, 160, 255, 255}, // ice
	{167, 167, 167, 255}, // metal
	{0, 124, 0, 255},     // plant
	{255, 255, 255, 255}, // snow
	{164, 168, 184, 255}, // clay
	{151, 109, 77, 255},  // dirt
	{112, 112, 112, 255}, // stone
	{64, 64, 255, 255},   // water
	{143, 119, 72, 255},  // wood
	{255, 252, 245, 255}, // quartz
	{216, 127, 51, 255},  // orange
	{178, 76, 216, 255},  // magenta
	{102, 153, 216, 255}, // light blue
	{229, 229, 51, 255},  // yellow
	{127, 204, 25, 255},  // lime
	{242, 127, 165, 255}, // pink
	{76, 76, 76, 255},    // gray
	{153, 153, 153, 255}, // light gray
	{76, 127, 153, 255},  // cyan
	{127, 63, 178, 255},  // purple
	{51, 76, 178, 255},   // blue
	{102, 76, 51, 255},   // brown
	{102, 127, 51, 255},  // green
	{153, 51, 51, 255},   // red
	{25, 25, 25, 255},    // black
	{250, 238, 77, 255},  // gold
	{92, 219, 213, 255},  // diamond
	{74, 128, 255, 255},  // lapis
	{0, 217, 58, 255},    // emerald
	{129, 86, 49, 255},   // podzol
	{112, 2, 0, 255},     // nether
	{209, 177, 161, 255}, // terracotta white
	{159, 82, 36, 255},   // terracotta orange
	{149, 87, 108, 255},  // terracotta magenta
	{112, 108, 138, 255}, // terracotta light blue
	{186, 133, 36, 255},  // terracotta yellow
	{103, 117, 53, 255},  // terracotta lime
	{160, 77, 78, 255},   // terracotta pink
	{57, 41, 35, 255},    // terracotta gray
	{135, 107, 98, 255},  // terracotta light gray
	{87, 92, 92, 255},    // terracotta cyan
	{122, 73, 88, 255},   // terracotta purple
	{76, 62, 92, 255},    // terracotta blue
	{76, 50, 35, 255},    // terracotta brown
	{76, 82, 42, 255},    // terracotta green
	{142, 60, 46, 255},   // terracotta red
	{37, 22, 16, 255},    // terracotta black
	{189, 48, 49, 255},   // crimson nylium
	{148, 63, 97, 255},   // crimson stem
	{92, 25, 29, 255},    // crimson hyphae
	{22, 126, 134, 255},  // warped nylium
	{58, 142, 140, 255},  // warped stem
	{86, 44, 62, 255},    // warped hyphae
	{20, 180, 133, 255},  // warped wart block
	{100, 100, 100, 255}, // deepslate
	{216, 175, 147, 255}, // raw iron
	{127, 167, 150, 255}, // glow lichen
	{0, 0, 0, 0},         // unused
	{0, 0, 0, 0},         // unused
}

// Multipliers holds the four shading levels, indexed by the lower two bits
// of a color index
var Multipliers = [numMultipliers]uint8{180, 220, 255, 135}

// Palette is every color index resolved in order, so Palette[i] is the same
// as Resolve(uint8(i)). It can be used directly as the palette of an
// image.Paletted.
var Palette = makePalette()

func makePalette() color.Palette {
	p := make(color.Palette, Size)
	for i := range p {
		p[i] = Resolve(uint8(i))
	}
	return p
}

// Shade scales a single 8-bit channel by multiplier m, truncating
func shade(c, m uint8) uint8 {
	return uint8(uint16(c) * uint16(m) / 0xff)
}

// Split returns the base color ID and multiplier ID encoded in a color index
func Split(index uint8) (uint8, uint8) {
	return index >> 2, index & 0x03
}

// Resolve returns the color for the given map color index. Every byte value
// is a valid index.
func Resolve(index uint8) color.RGBA {
	base, mult := Split(index)
	c, m := BaseColors[base], Multipliers[mult]
	return color.RGBA{
		R: shade(c.R, m),
		G: shade(c.G, m),
		B: shade(c.B, m),
		A: c.A,
	}
}

// Apply resolves each color index in src and writes it to dst as four bytes
// of R, G, B and A. It returns the number of pixels written which is the
// smaller of len(src) and len(dst)/4.
func Apply(dst, src []byte) int {
	n := len(src)
	if len(dst)>>2 < n {
		n = len(dst) >> 2
	}
	for i, b := range src[:n] {
		c := Palette[b].(color.RGBA)
		j := i << 2
		dst[j+0] = c.R
		dst[j+1] = c.G
		dst[j+2] = c.B
		dst[j+3] = c.A
	}
	return n
}
