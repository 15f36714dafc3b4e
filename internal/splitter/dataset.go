package splitter

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/turbot/pipe-fittings/v2/statushooks"
)

// how many records are read between cancellation checks and status updates
const cancelCheckInterval = 10000

const utf8BOM = "\ufeff"

// Dataset is the header and data rows of a CSV file, held in memory.
// It is not modified after it is loaded.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// RowCount returns the number of data rows, excluding the header
func (d *Dataset) RowCount() int {
	return len(d.Rows)
}

// LoadDataset reads the whole of the CSV file at path into memory.
// The file is read once; the row count is the number of records after the header.
func LoadDataset(ctx context.Context, path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	ds, err := ReadDataset(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("Loaded dataset", "path", path, "columns", len(ds.Header), "rows", ds.RowCount())
	return ds, nil
}

// ReadDataset parses CSV records from r. The first record is the header.
// Rows with a different field count to the header are kept as they are.
// Progress is reported to any status hooks in ctx.
func ReadDataset(ctx context.Context, r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	ds := &Dataset{Header: header}
	for {
		if len(ds.Rows)%cancelCheckInterval == 0 {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if len(ds.Rows) > 0 {
				statushooks.SetStatus(ctx, fmt.Sprintf("Loading rows... %s", humanize.Comma(int64(len(ds.Rows)))))
			}
		}

		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
