package image

import (
	"image"
	"io"

	"github.com/bodgit/mcmap/mapfile"
	"github.com/bodgit/mcmap/palette"
)

func init() {
	image.RegisterFormat(formatName, formatMagic, Decode, DecodeConfig)
}

// New returns an image built from a square grid of map color indices
func New(colors []byte) (*image.NRGBA, error) {
	side, err := mapfile.Side(len(colors))
	if err != nil {
		return nil, err
	}

	m := image.NewNRGBA(image.Rect(0, 0, side, side))
	palette.Apply(m.Pix, colors)

	return m, nil
}

// Decode reads a map file from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	m, err := mapfile.Decode(r)
	if err != nil {
		return nil, err
	}
	return New(m.Colors)
}

// DecodeConfig returns the color model and dimensions of a map file without
// resolving any of the pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	m, err := mapfile.Decode(r)
	if err != nil {
		return image.Config{}, err
	}

	side, err := m.Side()
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		ColorModel: palette.Palette,
		Width:      side,
		Height:     side,
	}, nil
}
