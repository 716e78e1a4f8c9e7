// Package executor is the worker-side task runtime: it accepts launches up
// to its slot capacity, runs them against the local compute engine, writes
// output through the shuffle store, and reports status back to the
// scheduler. Heartbeats run on their own schedule so a blocked engine
// never makes the executor look dead.
package executor

import (
	"io"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/exchange"
	"github.com/trebuchetdev/trebuchet/executor/engine"
	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// SchedulerClient is the slice of the scheduler surface the runtime needs.
// Satisfied by client.Client; tests plug an in-process implementation.
type SchedulerClient interface {
	RegisterExecutor(meta *domain.ExecutorMetadata) error
	Heartbeat(executorID string) (reregister bool, err error)
	DeregisterExecutor(executorID string) error
	ReportTaskStatus(req *protocol.ReportTaskStatusRequest) error
}

// Executor runs tasks for one registered worker identity.
type Executor struct {
	id    string
	addr  string
	slots uint32

	engine  engine.Engine
	shuffle exchange.ShuffleStore
	sched   SchedulerClient
	stat    stats.StatsReceiver

	mu      sync.Mutex
	running map[string]context.CancelFunc
}

// New returns an executor; call Register before serving launches.
func New(id, addr string, slots uint32, eng engine.Engine, shuffle exchange.ShuffleStore, sched SchedulerClient, stat stats.StatsReceiver) *Executor {
	return &Executor{
		id:      id,
		addr:    addr,
		slots:   slots,
		engine:  eng,
		shuffle: shuffle,
		sched:   sched,
		stat:    stat.Scope("exec"),
		running: map[string]context.CancelFunc{},
	}
}

// Register announces this executor to the scheduler.
func (e *Executor) Register() error {
	return e.sched.RegisterExecutor(&domain.ExecutorMetadata{ID: e.id, Addr: e.addr, Slots: e.slots})
}

// Deregister announces a graceful shutdown and cancels running tasks.
func (e *Executor) Deregister() error {
	e.mu.Lock()
	for _, cancel := range e.running {
		cancel()
	}
	e.mu.Unlock()
	return e.sched.DeregisterExecutor(e.id)
}

// LaunchTask accepts or rejects one assignment. A duplicate task id or a
// full slot table rejects immediately; the scheduler requeues rejected
// tasks, it never expects queuing here.
func (e *Executor) LaunchTask(req *protocol.LaunchTaskRequest) (accepted bool, reason string) {
	taskID := req.GetTaskId()
	e.mu.Lock()
	if _, dup := e.running[taskID]; dup {
		e.mu.Unlock()
		e.stat.Counter(stats.ExecTasksRejectedCounter).Inc(1)
		return false, "task already running"
	}
	if uint32(len(e.running)) >= e.slots {
		e.mu.Unlock()
		e.stat.Counter(stats.ExecTasksRejectedCounter).Inc(1)
		return false, "no free slots"
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.running[taskID] = cancel
	e.stat.Gauge(stats.ExecRunningTasksGauge).Update(int64(len(e.running)))
	e.mu.Unlock()

	e.stat.Counter(stats.ExecTasksLaunchedCounter).Inc(1)
	go e.runTask(ctx, req)
	return true, ""
}

// CancelTask stops a running task if it is still here; unknown ids are a
// no-op since the task may have finished already.
func (e *Executor) CancelTask(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if cancel, ok := e.running[taskID]; ok {
		cancel()
	}
}

func (e *Executor) runTask(ctx context.Context, req *protocol.LaunchTaskRequest) {
	defer e.stat.Latency(stats.ExecTaskLatency_ms).Time().Stop()
	taskID := req.GetTaskId()
	defer func() {
		e.mu.Lock()
		delete(e.running, taskID)
		e.stat.Gauge(stats.ExecRunningTasksGauge).Update(int64(len(e.running)))
		e.mu.Unlock()
	}()

	e.report(&protocol.ReportTaskStatusRequest{
		TaskId:     taskID,
		ExecutorId: e.id,
		Status:     protocol.TaskStatus_TASK_RUNNING,
	})

	spec := engine.TaskSpec{
		TaskID:           taskID,
		JobID:            req.GetJobId(),
		StageID:          req.GetStageId(),
		Partition:        req.GetPartition(),
		Fragment:         req.GetFragment(),
		OutputPartitions: req.GetOutputPartitions(),
	}
	for _, in := range req.Inputs {
		spec.Inputs = append(spec.Inputs, *protocol.LocationFromWire(in))
	}

	result, err := e.engine.Execute(ctx, spec)
	if ctx.Err() != nil {
		// Canceled; the scheduler no longer accepts reports for this task.
		log.WithFields(log.Fields{"task": taskID}).Info("Task canceled")
		return
	}
	if err == nil {
		var loc *domain.PartitionLocation
		loc, err = e.writeOutput(spec, result)
		if err == nil {
			e.report(&protocol.ReportTaskStatusRequest{
				TaskId:     taskID,
				ExecutorId: e.id,
				Status:     protocol.TaskStatus_TASK_COMPLETED,
				Output:     protocol.LocationToWire(loc),
			})
			return
		}
	}

	e.stat.Counter(stats.ExecTasksFailedCounter).Inc(1)
	log.WithFields(log.Fields{"task": taskID, "err": err}).Warn("Task failed")
	e.report(&protocol.ReportTaskStatusRequest{
		TaskId:     taskID,
		ExecutorId: e.id,
		Status:     protocol.TaskStatus_TASK_FAILED,
		Error:      &protocol.ErrorSummary{Kind: domain.ErrKindTaskExecution, Message: err.Error()},
	})
}

// writeOutput streams the result into the shuffle store and returns its
// location.
func (e *Executor) writeOutput(spec engine.TaskSpec, result *engine.Result) (*domain.PartitionLocation, error) {
	defer result.Data.Close()
	w, err := e.shuffle.Create(spec.JobID, spec.StageID, spec.Partition)
	if err != nil {
		return nil, errors.Wrap(err, "creating output partition")
	}
	if _, err := io.Copy(w, result.Data); err != nil {
		w.Close()
		return nil, errors.Wrap(err, "writing output partition")
	}
	if err := w.Close(); err != nil {
		return nil, errors.Wrap(err, "sealing output partition")
	}
	return &domain.PartitionLocation{
		JobID:      spec.JobID,
		StageID:    spec.StageID,
		Partition:  spec.Partition,
		ExecutorID: e.id,
		Addr:       e.addr,
		Path:       w.Path(),
		Stats:      result.Stats,
	}, nil
}

// report pushes a status update; the client retries transients, and the
// scheduler drops stale reports, so failures here are logged and dropped.
func (e *Executor) report(req *protocol.ReportTaskStatusRequest) {
	if err := e.sched.ReportTaskStatus(req); err != nil {
		log.WithFields(log.Fields{"task": req.GetTaskId(), "err": err}).Error("Status report failed")
	}
}
