/*
Package image implements a decoder for Minecraft map files and a PNG encoder
suitable for writing out the decoded maps.

A map is a square grid of color indices, almost always 128 by 128, which is
decoded into an *image.NRGBA using the shaded palette from the palette
package. Importing this package registers the decoder with the standard
image package under the name "mapdat" so image.Decode will also accept map
files.

The encoder writes a standard 8-bit PNG which additionally carries gAMA and
cHRM chunks describing sRGB, matching what other map tools produce.
*/
package image

const (
	formatName  = "mapdat"
	formatMagic = "\x1f\x8b" // gzip

	pngHeaderLength = 8 + 4 + 4 + 13 + 4 // signature and IHDR chunk

	// 1/2.2 scaled by 100000
	gamma = 45455
)

// White point followed by red, green and blue primaries as x, y pairs scaled
// by 100000
var chromaticities = [8]uint32{
	31270, 32900,
	64000, 33000,
	30000, 60000,
	15000, 6000,
}
