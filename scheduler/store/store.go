// Package store is the durable, versioned source of truth for scheduling
// state. Every record (job, stage, task, executor, lease) is keyed by its
// identifier and carries a version; updates are compare-and-set on that
// version so concurrent writers cannot clobber each other. All operations
// are linearizable per key.
package store

import (
	"errors"
	"time"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

var (
	// ErrNotFound indicates the record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyExists indicates a create for an existing key.
	ErrAlreadyExists = errors.New("record already exists")

	// ErrLeaseHeld indicates the lease is held by another instance.
	ErrLeaseHeld = errors.New("lease held by another holder")
)

// Lease is a time-bounded exclusive grant keyed by cluster name, used for
// leader election.
type Lease struct {
	Key     string
	Holder  string
	Expires time.Time

	Version uint64
}

// Store persists scheduling state. Implementations must guarantee that any
// mutation that returned success survives a process crash (the in-memory
// implementation is for tests only). Returned records are private copies;
// callers mutate them freely and write back with the Update methods.
type Store interface {
	// CreateJob persists a new job. Fails with ErrAlreadyExists on id reuse.
	CreateJob(j *domain.Job) error

	// UpdateJob writes j back if j.Version matches the stored version and
	// the status change (if any) is legal per the domain transition table.
	// Returns domain.ErrStaleTransition on a version mismatch.
	UpdateJob(j *domain.Job) error

	GetJob(id string) (*domain.Job, error)
	ListJobs() ([]*domain.Job, error)

	// RemoveJob deletes a job and all of its stages and tasks. Used only by
	// retention GC on terminal jobs.
	RemoveJob(id string) error

	// AppendStages persists the stages of a newly created job.
	AppendStages(stages []*domain.Stage) error
	UpdateStage(s *domain.Stage) error
	GetStage(id string) (*domain.Stage, error)
	ListStages(jobID string) ([]*domain.Stage, error)

	CreateTasks(tasks []*domain.Task) error
	UpdateTask(t *domain.Task) error
	GetTask(id string) (*domain.Task, error)
	ListTasks(jobID string) ([]*domain.Task, error)

	// CASTaskStatus atomically moves a task from status `from` to `to`,
	// applying `apply` (may be nil) to the record inside the same critical
	// section. Returns domain.ErrStaleTransition if the stored status is
	// not `from`. This is the primitive every scheduling race resolves
	// through.
	CASTaskStatus(id string, from, to domain.TaskStatus, apply func(*domain.Task)) (*domain.Task, error)

	// ListReadyTasks returns Queued tasks whose stage is Ready or Running,
	// ordered by (job submission time, stage id, partition index).
	ListReadyTasks() ([]*domain.Task, error)

	CreateExecutor(e *domain.ExecutorMetadata) error
	UpdateExecutor(e *domain.ExecutorMetadata) error
	GetExecutor(id string) (*domain.ExecutorMetadata, error)
	ListExecutors() ([]*domain.ExecutorMetadata, error)
	RemoveExecutor(id string) error

	// AcquireLease grants the lease to holder if it is unheld, expired, or
	// already held by the same holder. Returns ErrLeaseHeld otherwise.
	AcquireLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error)

	// RenewLease extends the lease iff holder still owns it.
	RenewLease(key, holder string, ttl time.Duration, now time.Time) (*Lease, error)

	// ReleaseLease drops the lease iff holder owns it. Releasing an unheld
	// lease is a no-op.
	ReleaseLease(key, holder string) error

	GetLease(key string) (*Lease, error)

	Close() error
}
