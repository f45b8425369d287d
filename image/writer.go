package image

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/png"
	"io"
)

var errBadHeader = errors.New("image: unexpected PNG header")

type encoder struct {
	w   io.Writer
	tmp [4]byte
}

func (e *encoder) writeChunk(name string, b []byte) error {
	binary.BigEndian.PutUint32(e.tmp[:], uint32(len(b)))
	if _, err := e.w.Write(e.tmp[:]); err != nil {
		return err
	}

	h := crc32.NewIEEE()
	if _, err := io.MultiWriter(e.w, h).Write([]byte(name)); err != nil {
		return err
	}
	if _, err := io.MultiWriter(e.w, h).Write(b); err != nil {
		return err
	}

	binary.BigEndian.PutUint32(e.tmp[:], h.Sum32())
	_, err := e.w.Write(e.tmp[:])
	return err
}

func (e *encoder) writeGAMA() error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], gamma)
	return e.writeChunk("gAMA", b[:])
}

func (e *encoder) writeCHRM() error {
	var b [len(chromaticities) * 4]byte
	for i, v := range chromaticities {
		binary.BigEndian.PutUint32(b[i*4:], v)
	}
	return e.writeChunk("cHRM", b[:])
}

// Both chunks must come before PLTE and IDAT so they go straight after IHDR
func (e *encoder) encode(b []byte) error {
	if len(b) < pngHeaderLength || string(b[12:16]) != "IHDR" {
		return errBadHeader
	}

	if _, err := e.w.Write(b[:pngHeaderLength]); err != nil {
		return err
	}

	if err := e.writeGAMA(); err != nil {
		return err
	}

	if err := e.writeCHRM(); err != nil {
		return err
	}

	_, err := e.w.Write(b[pngHeaderLength:])
	return err
}

// Encode writes the Image m to w in PNG format with sRGB gamma and
// chromaticity information.
func Encode(w io.Writer, m image.Image) error {
	b := new(bytes.Buffer)
	if err := png.Encode(b, m); err != nil {
		return err
	}

	e := encoder{w: w}

	return e.encode(b.Bytes())
}
