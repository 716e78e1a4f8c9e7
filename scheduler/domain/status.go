package domain

// JobStatus is the lifecycle status of a Job.
type JobStatus int

const (
	// Accepted but no task has been assigned yet.
	JobQueued JobStatus = iota

	// At least one task has been assigned to an executor.
	JobRunning

	// Every stage completed. Terminal.
	JobCompleted

	// A task exhausted its retry budget, or the plan cannot make progress.
	// Terminal.
	JobFailed

	// Canceled by the client or by cascading failure. Terminal.
	JobCanceled
)

func (s JobStatus) String() string {
	return [...]string{"Queued", "Running", "Completed", "Failed", "Canceled"}[s]
}

// Terminal reports whether the status is final. Terminal statuses are set
// once and never change.
func (s JobStatus) Terminal() bool {
	return s == JobCompleted || s == JobFailed || s == JobCanceled
}

// StageStatus is the lifecycle status of a Stage.
type StageStatus int

const (
	// Waiting on producer stages to complete.
	StagePending StageStatus = iota

	// All producers completed; tasks are eligible for assignment.
	StageReady

	// At least one task assigned.
	StageRunning

	// Every task completed. Terminal.
	StageCompleted

	// A task exhausted its retry budget. Terminal.
	StageFailed
)

func (s StageStatus) String() string {
	return [...]string{"Pending", "Ready", "Running", "Completed", "Failed"}[s]
}

func (s StageStatus) Terminal() bool {
	return s == StageCompleted || s == StageFailed
}

// TaskStatus is the lifecycle status of a Task.
type TaskStatus int

const (
	// Waiting for an executor slot.
	TaskQueued TaskStatus = iota

	// Claimed for an executor; the launch message may still be in flight.
	TaskAssigned

	// The executor acknowledged the launch.
	TaskRunning

	// Output produced and reported. Terminal.
	TaskCompleted

	// Retry budget exhausted. Terminal.
	TaskFailed

	// Job canceled before the task finished. Terminal.
	TaskCanceled
)

func (s TaskStatus) String() string {
	return [...]string{"Queued", "Assigned", "Running", "Completed", "Failed", "Canceled"}[s]
}

func (s TaskStatus) Terminal() bool {
	return s == TaskCompleted || s == TaskFailed || s == TaskCanceled
}

// ExecutorStatus is the liveness status of a registered executor.
type ExecutorStatus int

const (
	ExecutorActive ExecutorStatus = iota

	// Heartbeat timed out; the record is evicted shortly after.
	ExecutorDead
)

func (s ExecutorStatus) String() string {
	return [...]string{"Active", "Dead"}[s]
}

// The closed transition tables below are the single authority on legal
// status transitions. The store rejects any update whose status change is
// not listed here.

var jobTransitions = map[JobStatus][]JobStatus{
	JobQueued:  {JobRunning, JobCompleted, JobFailed, JobCanceled},
	JobRunning: {JobCompleted, JobFailed, JobCanceled},
}

var stageTransitions = map[StageStatus][]StageStatus{
	StagePending: {StageReady, StageFailed},
	StageReady:   {StageRunning, StageCompleted, StageFailed},
	// Running can fall back to Ready when an eviction requeues every
	// in-flight task of the stage.
	StageRunning: {StageReady, StageCompleted, StageFailed},
}

var taskTransitions = map[TaskStatus][]TaskStatus{
	TaskQueued:   {TaskAssigned, TaskCanceled},
	TaskAssigned: {TaskRunning, TaskCompleted, TaskFailed, TaskQueued, TaskCanceled},
	TaskRunning:  {TaskCompleted, TaskFailed, TaskQueued, TaskCanceled},
}

// ValidJobTransition reports whether from -> to is a legal job status change.
func ValidJobTransition(from, to JobStatus) bool {
	for _, s := range jobTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStageTransition reports whether from -> to is a legal stage status change.
func ValidStageTransition(from, to StageStatus) bool {
	for _, s := range stageTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidTaskTransition reports whether from -> to is a legal task status
// change. A task never leaves a terminal status; the single backward edge
// is Assigned/Running -> Queued on requeue.
func ValidTaskTransition(from, to TaskStatus) bool {
	for _, s := range taskTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
