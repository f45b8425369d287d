/*
Package mapfile implements the map_<n>.dat file written for each map item.

The file is a gzip-compressed named binary tag (NBT) compound. The map pixels
live in the "colors" byte array of the "data" compound as one color index per
pixel, row by row. Vanilla maps are always 128 by 128 but nothing in the
format enforces that, only that the grid is square.
*/
package mapfile

import (
	"fmt"
	"io"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Extension is the file extension used for map files
const Extension = ".dat"

var (
	// ErrDecompress is returned when the gzip container is unreadable
	ErrDecompress = errors.New("mapfile: failed to decompress")
	// ErrDecode is returned when the tag data is malformed
	ErrDecode = errors.New("mapfile: failed to decode map data")
	// ErrNoColors is returned when the map holds no color data
	ErrNoColors = errors.New("mapfile: no color data")
	// ErrNotSquare is returned when the number of pixels is not a square
	ErrNotSquare = errors.New("mapfile: not a square map")
)

// Map is the decoded contents of a map file
type Map struct {
	DataVersion int32
	Scale       int8
	XCenter     int32
	ZCenter     int32
	Locked      bool
	Colors      []byte
}

type fileRoot struct {
	DataVersion int32    `nbt:"DataVersion"`
	Data        fileData `nbt:"data"`
}

type fileData struct {
	Scale   int8   `nbt:"scale"`
	XCenter int32  `nbt:"xCenter"`
	ZCenter int32  `nbt:"zCenter"`
	Locked  int8   `nbt:"locked"`
	Colors  []byte `nbt:"colors"`
}

// Decode reads a gzip-compressed map file from r
func Decode(r io.Reader) (*Map, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}
	defer zr.Close()

	b, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecompress, err)
	}

	var root fileRoot
	if err := nbt.Unmarshal(b, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if len(root.Data.Colors) == 0 {
		return nil, ErrNoColors
	}

	return &Map{
		DataVersion: root.DataVersion,
		Scale:       root.Data.Scale,
		XCenter:     root.Data.XCenter,
		ZCenter:     root.Data.ZCenter,
		Locked:      root.Data.Locked != 0,
		Colors:      root.Data.Colors,
	}, nil
}

// ReadFile opens and decodes the named map file
func ReadFile(file string) (*Map, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes m to w as a gzip-compressed map file
func Encode(w io.Writer, m *Map) error {
	root := fileRoot{
		DataVersion: m.DataVersion,
		Data: fileData{
			Scale:   m.Scale,
			XCenter: m.XCenter,
			ZCenter: m.ZCenter,
			Colors:  m.Colors,
		},
	}
	if m.Locked {
		root.Data.Locked = 1
	}

	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoder(zw).Encode(root, ""); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

// Side returns the width (and height) of the map
func (m *Map) Side() (int, error) {
	return Side(len(m.Colors))
}

// Side returns the length of the side of a square grid of n pixels, or
// ErrNotSquare if n is not a perfect square
func Side(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNotSquare
	}

	// Integer Newton's method, x converges on floor(sqrt(n)) from above
	x := n
	for y := (x + 1) >> 1; y < x; y = (x + n/x) >> 1 {
		x = y
	}

	if x*x != n {
		return 0, ErrNotSquare
	}
	return x, nil
}
