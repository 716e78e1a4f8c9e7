// Package domain defines the scheduling state records and the status
// machines that govern them. Every record carries a Version that the store
// bumps on each accepted update; writers that lose a race get
// ErrStaleTransition and retry from a fresh read.
package domain

import (
	"fmt"
	"time"
)

// Job is one submitted physical plan and its execution state.
type Job struct {
	ID          string
	Plan        *PhysicalPlan
	SubmittedAt time.Time
	Status      JobStatus

	// Result holds the sink stage's output locations once the job completes.
	Result []PartitionLocation

	// Error summarizes the first fatal failure for Failed/Canceled jobs.
	Error *ErrorSummary

	// CompletedAt is set when the job reaches a terminal status; retention
	// GC is measured from it.
	CompletedAt time.Time

	Version uint64
}

func (j *Job) String() string {
	return fmt.Sprintf("job %s [%s] v%d", j.ID, j.Status, j.Version)
}

// Stage is a maximal pipeline of plan nodes bounded by shuffle edges. Its
// Fragment is the contracted plan encoding handed to executors; the control
// plane never interprets it.
type Stage struct {
	ID    string
	JobID string

	// Producers are the stage IDs whose shuffle output this stage consumes.
	// The stage stays Pending until every producer completes.
	Producers []string

	// Partitions is the stage's output partition count; one task per
	// partition.
	Partitions uint32

	Fragment []byte
	Status   StageStatus
	Version  uint64
}

func (s *Stage) String() string {
	return fmt.Sprintf("stage %s [%s] v%d", s.ID, s.Status, s.Version)
}

// Task is one partition of one stage, the unit of assignment.
type Task struct {
	ID        string
	JobID     string
	StageID   string
	Partition uint32
	Status    TaskStatus

	// ExecutorID is set while the task is Assigned or Running and cleared
	// on requeue.
	ExecutorID string

	// Attempts counts failed or evicted attempts. It is incremented on each
	// requeue; when it reaches the attempt budget the task goes Failed
	// instead of Queued.
	Attempts int

	// Output is set when the task completes.
	Output *PartitionLocation

	// Error records the most recent attempt failure.
	Error *ErrorSummary

	Version uint64
}

func (t *Task) String() string {
	return fmt.Sprintf("task %s [%s] attempt %d v%d", t.ID, t.Status, t.Attempts, t.Version)
}

// ExecutorMetadata is one registered executor as the scheduler sees it.
type ExecutorMetadata struct {
	ID string

	// Addr is the host:port of the executor's task service.
	Addr string

	// Slots is the number of tasks the executor runs concurrently.
	Slots uint32

	LastHeartbeat time.Time
	Status        ExecutorStatus
	Version       uint64
}

func (e *ExecutorMetadata) String() string {
	return fmt.Sprintf("executor %s@%s slots=%d [%s]", e.ID, e.Addr, e.Slots, e.Status)
}

// PartitionLocation says where one completed output partition lives. It is
// a reference only; partition bytes move through the shuffle layer.
type PartitionLocation struct {
	JobID      string
	StageID    string
	Partition  uint32
	ExecutorID string

	// Addr is the executor's shuffle address, Path its local partition path.
	Addr string
	Path string

	Stats PartitionStats
}

func (l PartitionLocation) String() string {
	return fmt.Sprintf("%s/%s/p%d@%s", l.JobID, l.StageID, l.Partition, l.ExecutorID)
}

// PartitionStats summarizes one written partition.
type PartitionStats struct {
	NumRows    uint64
	NumBatches uint64
	NumBytes   uint64
}

// ErrorSummary is the client-facing description of a failure.
type ErrorSummary struct {
	// Kind is one of the ErrKind constants.
	Kind    string
	Message string
}

func (e *ErrorSummary) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}
