package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// inputExtension is the only extension the converter accepts, matched
// case-insensitively.
const inputExtension = ".mp4"

// Discover resolves path into the list of files to convert. A single .mp4
// file yields itself; a directory is walked recursively and every .mp4 file
// is collected, sorted lexicographically for deterministic processing
// order. Any other path returns an error the caller reports as a
// diagnostic; an empty directory is not an error.
func Discover(path string) ([]string, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%s is neither a valid file nor a directory", path)
	}

	if !fi.IsDir() {
		if !hasInputExtension(path) {
			return nil, fmt.Errorf("%s is neither a %s file nor a directory", path, inputExtension)
		}
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if hasInputExtension(p) {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

func hasInputExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), inputExtension)
}
