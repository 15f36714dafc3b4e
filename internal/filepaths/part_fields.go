package filepaths

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

const (
	partSeparator = "_part"
	partExtension = ".csv"
)

var ErrNotPartFile = errors.New("not a part file")

// PartFields represents the components of a part file name
type PartFields struct {
	BaseName string
	Index    int
}

// PartFileName returns the name of the part with the given 1-based index, e.g. ratings_part3.csv
func PartFileName(baseName string, index int) string {
	return fmt.Sprintf("%s%s%d%s", baseName, partSeparator, index, partExtension)
}

// ExtractPartFields parses a part file path and returns its components.
// Expected file name format:
//
//	/path/to/dir/<base_name>_part<index>.csv
//
// Rules:
//   - Only the file name is considered, the directory is ignored
//   - The base name may itself contain "_part"; the last occurrence separates the index
//   - The index must be a positive integer with no sign or leading zeros
func ExtractPartFields(path string) (PartFields, error) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, partExtension) {
		return PartFields{}, fmt.Errorf("%w: %s", ErrNotPartFile, name)
	}
	stem := strings.TrimSuffix(name, partExtension)

	sep := strings.LastIndex(stem, partSeparator)
	if sep == -1 {
		return PartFields{}, fmt.Errorf("%w: %s", ErrNotPartFile, name)
	}

	indexStr := stem[sep+len(partSeparator):]
	if indexStr == "" || indexStr[0] < '1' || indexStr[0] > '9' {
		return PartFields{}, fmt.Errorf("%w: %s", ErrNotPartFile, name)
	}
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		return PartFields{}, fmt.Errorf("%w: %s", ErrNotPartFile, name)
	}

	return PartFields{
		BaseName: stem[:sep],
		Index:    index,
	}, nil
}

// FindStaleParts returns the paths of part files in dir for baseName whose index is
// greater than parts, ordered by index. These are left over from an earlier split
// into more parts and are not overwritten by a new one.
func FindStaleParts(dir, baseName string, parts int) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var stale []PartFields
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fields, err := ExtractPartFields(entry.Name())
		if err != nil {
			continue
		}
		if fields.BaseName == baseName && fields.Index > parts {
			stale = append(stale, fields)
		}
	}

	// order numerically, so part10 follows part9
	slices.SortFunc(stale, func(a, b PartFields) int {
		return a.Index - b.Index
	})

	res := make([]string, 0, len(stale))
	for _, f := range stale {
		res = append(res, filepath.Join(dir, PartFileName(f.BaseName, f.Index)))
	}
	return res, nil
}
