package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/turbot/pipe-fittings/v2/statushooks"
)

// Splitter loads a CSV file and writes it out as a fixed number of parts,
// each starting with the input's header row.
type Splitter struct {
	config Config

	// called once the plan has been computed, before any part is written
	onPlan func(*PartitionPlan)
	// called after each part is written and closed
	onPartition func(*PartitionResult)
}

type SplitterOption func(*Splitter)

// WithPlanHook registers a function called with the partition plan before any file is written
func WithPlanHook(f func(*PartitionPlan)) SplitterOption {
	return func(s *Splitter) {
		s.onPlan = f
	}
}

// WithProgress registers a function called after each part has been written
func WithProgress(f func(*PartitionResult)) SplitterOption {
	return func(s *Splitter) {
		s.onPartition = f
	}
}

// NewSplitter resolves and validates config and returns a Splitter for it
func NewSplitter(config Config, opts ...SplitterOption) (*Splitter, error) {
	if err := config.Resolve(); err != nil {
		return nil, err
	}
	s := &Splitter{
		config:      config,
		onPlan:      func(*PartitionPlan) {},
		onPartition: func(*PartitionResult) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Config returns the resolved config
func (s *Splitter) Config() Config {
	return s.config
}

// Plan loads the input and computes the partition plan without writing anything.
// Any status spinner in ctx is hidden once loading completes.
func (s *Splitter) Plan(ctx context.Context) (*Dataset, *PartitionPlan, error) {
	ds, err := LoadDataset(ctx, s.config.InputPath)
	statushooks.Done(ctx)
	if err != nil {
		return nil, nil, err
	}

	plan, err := NewPartitionPlan(ds.RowCount(), s.config.Parts)
	if err != nil {
		return nil, nil, err
	}
	slog.Info("Computed partition plan", "total_rows", plan.TotalRows, "parts", plan.Parts, "chunk_size", plan.ChunkSize, "remainder", plan.Remainder())
	return ds, plan, nil
}

// Split loads the input, then writes each part in order.
// If ctx is cancelled, parts already written are left on disk and the status
// returned describes them.
func (s *Splitter) Split(ctx context.Context) (*SplitStatus, error) {
	startTime := time.Now()

	ds, plan, err := s.Plan(ctx)
	if err != nil {
		return nil, err
	}
	s.onPlan(plan)

	status := NewSplitStatus(s.config.InputPath, plan)
	defer func() {
		status.Duration = time.Since(startTime)
	}()

	for _, p := range plan.Partitions {
		if err := ctx.Err(); err != nil {
			return status, err
		}

		result, err := s.emit(ds, p)
		if err != nil {
			return status, fmt.Errorf("failed to write part %d: %w", p.Index, err)
		}
		status.Partitions = append(status.Partitions, *result)
		s.onPartition(result)
	}

	return status, nil
}

func (s *Splitter) emit(ds *Dataset, p Partition) (*PartitionResult, error) {
	path := s.config.PartFilePath(p.Index)

	size, err := writePartition(path, ds.Header, ds.Rows[p.Start:p.End], s.config.CRLF)
	if err != nil {
		return nil, err
	}
	slog.Debug("Wrote part", "index", p.Index, "path", path, "rows", p.RowCount(), "bytes", size)

	return &PartitionResult{
		Index:    p.Index,
		FileName: s.config.PartFileName(p.Index),
		Path:     path,
		Rows:     p.RowCount(),
		Bytes:    size,
	}, nil
}
