package background

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// OutputPrefix is prepended to every saved file name.
const OutputPrefix = "pbc-"

var (
	saveMu  sync.RWMutex
	saveDir string
)

// SaveTo sets the directory every later Save writes to, for all backgrounds
// in the process. The elements are joined; no elements clears it.
func SaveTo(elem ...string) string {
	dir := filepath.Join(elem...)

	saveMu.Lock()
	saveDir = dir
	saveMu.Unlock()
	return dir
}

// SaveDir returns the directory set by SaveTo.
func SaveDir() string {
	saveMu.RLock()
	defer saveMu.RUnlock()
	return saveDir
}

// Save writes the working buffer and returns the path written.
//
// The file is named "pbc-" followed by the base of name, or of the source
// image when name is empty. The format follows the extension. The directory is
// taken from, in order: the joined location elements, the SaveTo directory,
// the directory part of name, the current working directory.
//
// A location combined with a SaveTo directory or a directory in name is
// ambiguous, and a directory that does not exist is invalid. Both are reported
// and the save is skipped, returning an empty path and a nil error. Encoding
// and write failures are returned.
func (b *Background) Save(name string, location ...string) (string, error) {
	if b.closed {
		return "", ErrClosed
	}

	dirInName, base := filepath.Split(name)
	implicit := SaveDir()
	if implicit == "" && dirInName != "" {
		implicit = filepath.Clean(dirInName)
	}

	var dir string
	switch {
	case len(location) > 0 && implicit != "":
		b.warn("save", "too many paths were given, skipping save",
			"path", implicit, "location", filepath.Join(location...))
		return "", nil
	case len(location) > 0:
		dir = filepath.Join(location...)
	case implicit != "":
		dir = implicit
	default:
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		b.warn("save", "invalid location, skipping save", "path", dir)
		return "", nil
	}

	if base == "" {
		base = b.name
	}
	out := filepath.Join(dir, OutputPrefix+base)
	if err := imaging.Save(b.im, out, imaging.JPEGQuality(95)); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", out, err)
	}

	b.info("save", "saved", "as", OutputPrefix+base, "path", dir)
	return out, nil
}
