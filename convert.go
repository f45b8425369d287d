package mcmap

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bodgit/mcmap/image"
	"github.com/bodgit/mcmap/mapfile"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const pngExtension = ".png"

// FailedError is returned by Run when one or more files could not be
// converted
type FailedError struct {
	Files []string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("failed to convert %d file(s): %s", len(e.Files), strings.Join(e.Files, ", "))
}

// Output returns the path of the PNG image written for the given map file
func Output(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + pngExtension
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// Map files directly inside dir, sorted
func findFiles(dir string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(0)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var files []string
	for _, name := range names {
		// Ignore any hidden files, otherwise we end up fighting with things like Spotlight, etc.
		if isHidden(name) || filepath.Ext(name) != mapfile.Extension {
			continue
		}

		file := filepath.Join(dir, name)

		info, err := os.Stat(file)
		if err != nil {
			return nil, err
		}

		// Ignore anything that isn't a normal file
		if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, file)
	}

	return files, nil
}

// Convert decodes the map file and writes it out as a PNG image alongside
// it. The image is written to a temporary file first so a failure never
// leaves a partial image behind.
func (c *Converter) Convert(file string) error {
	m, err := mapfile.ReadFile(file)
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"file":        file,
		"dataVersion": m.DataVersion,
		"scale":       m.Scale,
		"xCenter":     m.XCenter,
		"zCenter":     m.ZCenter,
		"locked":      m.Locked,
	}).Debug("Decoded map")

	img, err := image.New(m.Colors)
	if err != nil {
		return err
	}

	out := Output(file)

	f, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*")
	if err != nil {
		return errors.Wrap(err, "failed to create file")
	}
	tmp := f.Name()

	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "failed to create file")
	}

	if err := image.Encode(f, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.Wrap(err, "failed to write image")
	}

	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "failed to write image")
	}

	if err := os.Rename(tmp, out); err != nil {
		os.Remove(tmp)
		return errors.Wrap(err, "failed to create file")
	}

	c.logger.WithFields(logrus.Fields{
		"file":   file,
		"output": out,
		"side":   img.Bounds().Dx(),
	}).Info("Converted map")

	return nil
}

func (c *Converter) expand(paths []string) ([]string, []string) {
	var files, failed []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			found, err := findFiles(path)
			if err != nil {
				c.logger.WithError(err).WithField("file", path).Error("Failed to read directory")
				failed = append(failed, path)
				continue
			}
			files = append(files, found...)
			continue
		}

		// Missing files are still passed through so they get reported
		if filepath.Ext(path) != mapfile.Extension {
			c.logger.WithField("file", path).Debug("Skipping")
			continue
		}
		files = append(files, path)
	}
	return files, failed
}

// Run converts each map file in turn. Directories are searched for map files
// and anything else without a .dat extension is ignored. A failure is logged
// and the remaining files are still converted; if any failed a *FailedError
// listing them is returned.
func (c *Converter) Run(paths []string) error {
	files, failed := c.expand(paths)

	for _, file := range files {
		if err := c.Convert(file); err != nil {
			c.logger.WithError(err).WithField("file", file).Error("Failed to convert")
			failed = append(failed, file)
		}
	}

	if len(failed) > 0 {
		return &FailedError{Files: failed}
	}

	return nil
}
