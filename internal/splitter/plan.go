package splitter

import "fmt"

// Partition is a contiguous range of data rows, [Start, End)
type Partition struct {
	// Index is 1-based
	Index int `json:"index"`
	Start int `json:"start"`
	End   int `json:"end"`
}

func (p Partition) RowCount() int {
	return p.End - p.Start
}

// PartitionPlan describes how the data rows are divided between parts.
// Every part except the last gets ChunkSize rows; the last part takes
// everything from its start to TotalRows.
type PartitionPlan struct {
	TotalRows  int         `json:"total_rows"`
	Parts      int         `json:"parts"`
	ChunkSize  int         `json:"chunk_size"`
	Partitions []Partition `json:"partitions"`
}

// NewPartitionPlan computes the partition boundaries for totalRows rows split into parts parts.
//
// When totalRows < parts the chunk size is 0, so every part but the last is empty
// (header only) and the last part holds every row.
func NewPartitionPlan(totalRows, parts int) (*PartitionPlan, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPartCount, parts)
	}
	if totalRows < 0 {
		return nil, fmt.Errorf("invalid row count %d", totalRows)
	}

	chunk := totalRows / parts
	plan := &PartitionPlan{
		TotalRows:  totalRows,
		Parts:      parts,
		ChunkSize:  chunk,
		Partitions: make([]Partition, 0, parts),
	}

	start := 0
	for i := 1; i <= parts; i++ {
		end := start + chunk
		// the last part takes the remainder
		if i == parts {
			end = totalRows
		}
		plan.Partitions = append(plan.Partitions, Partition{Index: i, Start: start, End: end})
		start = end
	}
	return plan, nil
}

// Remainder returns the number of rows the last part holds beyond ChunkSize
func (p *PartitionPlan) Remainder() int {
	return p.TotalRows - p.Parts*p.ChunkSize
}
