package splitter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

// writePartition creates (or truncates) path and writes the header followed by rows.
// The file is flushed, synced and closed before returning.
func writePartition(path string, header []string, rows [][]string, crlf bool) (int64, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}
	// close explicitly on the success path so the error is not lost
	closed := false
	defer func() {
		if !closed {
			_ = file.Close()
		}
	}()

	writer := csv.NewWriter(file)
	writer.UseCRLF = crlf

	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return 0, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush %s: %w", path, err)
	}

	if err := file.Sync(); err != nil {
		return 0, fmt.Errorf("failed to sync %s: %w", path, err)
	}
	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	closed = true
	if err := file.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return info.Size(), nil
}
