package splitter

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// PartitionResult is the outcome of writing a single part
type PartitionResult struct {
	Index    int    `json:"index"`
	FileName string `json:"file_name"`
	Path     string `json:"path"`
	Rows     int    `json:"rows"`
	Bytes    int64  `json:"bytes"`
}

func (r *PartitionResult) RowsString() string {
	return humanize.Comma(int64(r.Rows))
}

func (r *PartitionResult) SizeString() string {
	return humanize.Bytes(uint64(max(r.Bytes, 0)))
}

// SplitStatus summarises a completed (or interrupted) split
type SplitStatus struct {
	InputPath  string            `json:"input_path"`
	TotalRows  int               `json:"total_rows"`
	Parts      int               `json:"parts"`
	ChunkSize  int               `json:"chunk_size"`
	Partitions []PartitionResult `json:"partitions"`
	Duration   time.Duration     `json:"duration"`
}

func NewSplitStatus(inputPath string, plan *PartitionPlan) *SplitStatus {
	return &SplitStatus{
		InputPath:  inputPath,
		TotalRows:  plan.TotalRows,
		Parts:      plan.Parts,
		ChunkSize:  plan.ChunkSize,
		Partitions: make([]PartitionResult, 0, plan.Parts),
	}
}

// RowsWritten returns the number of data rows written across all completed parts
func (s *SplitStatus) RowsWritten() int {
	total := 0
	for _, p := range s.Partitions {
		total += p.Rows
	}
	return total
}

// BytesWritten returns the combined size of all completed parts
func (s *SplitStatus) BytesWritten() int64 {
	var total int64
	for _, p := range s.Partitions {
		total += p.Bytes
	}
	return total
}

func (s *SplitStatus) TotalRowsString() string {
	return humanize.Comma(int64(s.TotalRows))
}

func (s *SplitStatus) ChunkSizeString() string {
	return humanize.Comma(int64(s.ChunkSize))
}

func (s *SplitStatus) DurationString() string {
	return s.Duration.Round(time.Millisecond).String()
}

func (s *SplitStatus) String() string {
	if s.TotalRows == 0 {
		return fmt.Sprintf("Wrote %d header-only files in %s.", len(s.Partitions), s.DurationString())
	}
	return fmt.Sprintf("Split %s rows into %d files (%s) in %s.",
		humanize.Comma(int64(s.RowsWritten())),
		len(s.Partitions),
		humanize.Bytes(uint64(s.BytesWritten())),
		s.DurationString())
}
