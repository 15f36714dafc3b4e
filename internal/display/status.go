package display

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/turbot/csvsplit/internal/constants"
	"github.com/turbot/csvsplit/internal/splitter"
)

// RenderSplitStatus writes the summary of a split in the given output format
func RenderSplitStatus(w io.Writer, status *splitter.SplitStatus, format string) error {
	switch format {
	case constants.OutputFormatJSON:
		return renderJSON(w, status)
	case constants.OutputFormatTable:
		t := newTable(w)
		t.AppendHeader(table.Row{"Part", "File", "Rows", "Size"})
		for _, p := range status.Partitions {
			t.AppendRow(table.Row{p.Index, p.FileName, p.RowsString(), p.SizeString()})
		}
		t.AppendFooter(table.Row{"", "Total", humanizeCount(status.RowsWritten()), humanizeBytes(status.BytesWritten())})
		t.Render()
		return nil
	default:
		_, err := fmt.Fprintln(w, status.String())
		return err
	}
}

// RenderPlan writes the partition plan for config in the given output format
func RenderPlan(w io.Writer, config splitter.Config, plan *splitter.PartitionPlan, format string) error {
	switch format {
	case constants.OutputFormatJSON:
		return renderJSON(w, plan)
	case constants.OutputFormatTable:
		t := newTable(w)
		t.AppendHeader(table.Row{"Part", "File", "Start", "End", "Rows"})
		for _, p := range plan.Partitions {
			t.AppendRow(table.Row{p.Index, config.PartFileName(p.Index), p.Start, p.End, humanizeCount(p.RowCount())})
		}
		t.AppendFooter(table.Row{"", "Total", "", "", humanizeCount(plan.TotalRows)})
		t.Render()
		return nil
	default:
		if _, err := fmt.Fprintf(w, "Total rows (excluding header): %d\nRows per part: %d\n", plan.TotalRows, plan.ChunkSize); err != nil {
			return err
		}
		for _, p := range plan.Partitions {
			if _, err := fmt.Fprintf(w, "%s: [%d, %d) %d rows\n", config.PartFileName(p.Index), p.Start, p.End, p.RowCount()); err != nil {
				return err
			}
		}
		return nil
	}
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
