package splitter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/turbot/csvsplit/internal/filepaths"
	"github.com/turbot/go-kit/files"
)

// Config holds the parameters of a single split run
type Config struct {
	// InputPath is the CSV file to split
	InputPath string
	// Parts is the number of output files to produce
	Parts int
	// OutputDir is the directory output files are written to.
	// Defaults to the directory containing the input.
	OutputDir string
	// BaseName is the prefix of each output file name.
	// Defaults to the input file name without its extension.
	BaseName string
	// CRLF terminates output records with \r\n rather than \n
	CRLF bool
}

// Resolve validates the config and fills in defaults derived from the input path.
// InputPath and OutputDir are made absolute, with a leading ~ expanded to the home directory.
func (c *Config) Resolve() error {
	if strings.TrimSpace(c.InputPath) == "" {
		return ErrNoInput
	}
	if c.Parts < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPartCount, c.Parts)
	}

	inputPath, err := files.Tildefy(c.InputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve input path %s: %w", c.InputPath, err)
	}
	c.InputPath = inputPath

	if c.OutputDir == "" {
		c.OutputDir = filepath.Dir(c.InputPath)
	} else {
		outputDir, err := files.Tildefy(c.OutputDir)
		if err != nil {
			return fmt.Errorf("failed to resolve output directory %s: %w", c.OutputDir, err)
		}
		c.OutputDir = outputDir
	}

	if c.BaseName == "" {
		base := filepath.Base(c.InputPath)
		c.BaseName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return nil
}

// PartFileName returns the file name for the 1-based part index, e.g. ratings_part3.csv
func (c *Config) PartFileName(index int) string {
	return filepaths.PartFileName(c.BaseName, index)
}

// PartFilePath returns the full output path for the 1-based part index
func (c *Config) PartFilePath(index int) string {
	return filepath.Join(c.OutputDir, c.PartFileName(index))
}
