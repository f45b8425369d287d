package mcmap

import (
	"bytes"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bodgit/mcmap/mapfile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConverter() (*Converter, *bytes.Buffer) {
	b := new(bytes.Buffer)
	logger := logrus.New()
	logger.SetOutput(b)
	logger.SetLevel(logrus.DebugLevel)
	return New(logger), b
}

func writeMap(t *testing.T, file string, side int) {
	colors := make([]byte, side*side)
	for i := range colors {
		colors[i] = byte(i)
	}

	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, mapfile.Encode(f, &mapfile.Map{Colors: colors}))
}

func writeFile(t *testing.T, file string, b []byte) {
	require.NoError(t, os.WriteFile(file, b, 0644))
}

func TestOutput(t *testing.T) {
	assert.Equal(t, "map_0.png", Output("map_0.dat"))
	assert.Equal(t, filepath.Join("a.b", "map_12.png"), Output(filepath.Join("a.b", "map_12.dat")))
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "map_0.dat")
	writeMap(t, file, 128)

	c, _ := testConverter()
	require.NoError(t, c.Convert(file))

	f, err := os.Open(filepath.Join(dir, "map_0.png"))
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 128, cfg.Width)
	assert.Equal(t, 128, cfg.Height)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestConvertFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "map_1.dat")
	writeMap(t, file, 0)

	c, _ := testConverter()
	assert.Equal(t, mapfile.ErrNoColors, errors.Cause(c.Convert(file)))

	file = filepath.Join(dir, "map_2.dat")
	writeFile(t, file, []byte("garbage"))
	assert.True(t, errors.Is(c.Convert(file), mapfile.ErrDecompress))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestConvertNotSquare(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "map_3.dat")

	f, err := os.Create(file)
	require.NoError(t, err)
	require.NoError(t, mapfile.Encode(f, &mapfile.Map{Colors: make([]byte, 128*127)}))
	require.NoError(t, f.Close())

	c, _ := testConverter()
	assert.Equal(t, mapfile.ErrNotSquare, c.Convert(file))

	_, err = os.Stat(filepath.Join(dir, "map_3.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, filepath.Join(dir, "map_0.dat"), 128)
	writeMap(t, filepath.Join(dir, "map_1.dat"), 64)
	writeFile(t, filepath.Join(dir, "map_2.dat"), []byte("garbage"))
	writeFile(t, filepath.Join(dir, "idcounts.txt"), []byte("ignored"))

	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	writeMap(t, filepath.Join(sub, "map_3.dat"), 32)
	writeMap(t, filepath.Join(sub, ".map_4.dat"), 32)

	c, logs := testConverter()

	err := c.Run([]string{
		filepath.Join(dir, "map_0.dat"),
		filepath.Join(dir, "map_1.dat"),
		filepath.Join(dir, "map_2.dat"),
		filepath.Join(dir, "idcounts.txt"),
		filepath.Join(dir, "missing.dat"),
		sub,
	})
	require.Error(t, err)

	failed, ok := err.(*FailedError)
	require.True(t, ok)
	assert.Equal(t, []string{
		filepath.Join(dir, "map_2.dat"),
		filepath.Join(dir, "missing.dat"),
	}, failed.Files)

	for _, file := range []string{
		filepath.Join(dir, "map_0.png"),
		filepath.Join(dir, "map_1.png"),
		filepath.Join(sub, "map_3.png"),
	} {
		_, err := os.Stat(file)
		assert.NoError(t, err, file)
	}

	for _, file := range []string{
		filepath.Join(dir, "map_2.png"),
		filepath.Join(dir, "idcounts.png"),
		filepath.Join(sub, ".map_4.png"),
	} {
		_, err := os.Stat(file)
		assert.True(t, os.IsNotExist(err), file)
	}

	assert.Contains(t, logs.String(), "Failed to convert")
}

func TestRunAllGood(t *testing.T) {
	dir := t.TempDir()
	writeMap(t, filepath.Join(dir, "map_0.dat"), 128)

	c, _ := testConverter()
	c.logger.SetOutput(io.Discard)

	assert.NoError(t, c.Run([]string{filepath.Join(dir, "map_0.dat"), "mcmap"}))
}
