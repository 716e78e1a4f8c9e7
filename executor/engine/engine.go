// Package engine is the executor's boundary to the compute engine. The
// engine runs one opaque plan fragment against one partition; everything
// else (scheduling, shuffle placement, reporting) stays outside it.
package engine

import (
	"io"

	"golang.org/x/net/context"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// TaskSpec describes one fragment execution.
type TaskSpec struct {
	TaskID    string
	JobID     string
	StageID   string
	Partition uint32

	// Fragment is the engine-specific plan encoding; opaque here.
	Fragment []byte

	// OutputPartitions is the declared output partitioning of the stage.
	OutputPartitions uint32

	// Inputs locate the shuffle partitions this fragment reads.
	Inputs []domain.PartitionLocation
}

// Result is the produced partition stream plus its statistics. The caller
// owns closing Data.
type Result struct {
	Data  io.ReadCloser
	Stats domain.PartitionStats
}

// Engine executes plan fragments. Execute blocks until the fragment
// finishes or ctx is canceled; implementations must be safe for concurrent
// calls up to the executor's slot count.
type Engine interface {
	Execute(ctx context.Context, spec TaskSpec) (*Result, error)
}
