// Package server drives task scheduling: a single loop goroutine advances
// jobs, sweeps executor liveness, and assigns ready tasks, while RPC
// goroutines mutate state through the store's compare-and-set primitives.
// The loop never blocks on the network; launches and cancels fan out
// through an async.Runner and report back as loop callbacks.
package server

import (
	"time"

	lru "github.com/hashicorp/golang-lru"
	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/async"
	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/planner"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

const (
	loopTickInterval = 250 * time.Millisecond
	gcInterval       = time.Minute

	// terminalCacheSize bounds the statuses kept answerable after GC.
	terminalCacheSize = 10000
)

// terminalJobRecord is what GetJobStatus can still answer after the job
// record itself was garbage collected.
type terminalJobRecord struct {
	status      domain.JobStatus
	err         *domain.ErrorSummary
	completedAt time.Time
}

// StatefulScheduler is one scheduler instance. Construct with
// NewStatefulScheduler; in DebugMode the owner drives it by calling step.
type StatefulScheduler struct {
	cfg        SchedulerConfiguration
	store      store.Store
	stat       stats.StatsReceiver
	dispatcher executorDispatcher
	registry   *executorRegistry
	leader     *leaseCoordinator
	runner     async.Runner
	terminal   *lru.Cache

	// nowFn is swapped in tests to drive timeouts deterministically.
	nowFn func() time.Time

	triggerCh chan struct{}
	stopCh    chan struct{}

	lastSweep time.Time
	lastGC    time.Time
}

// NewStatefulScheduler returns a scheduler over the given store and
// executor transport and, unless cfg.DebugMode is set, starts its loop.
// The instance immediately contends for the leader lease.
func NewStatefulScheduler(cfg SchedulerConfiguration, s store.Store, d executorDispatcher, stat stats.StatsReceiver) *StatefulScheduler {
	cfg = cfg.withDefaults()
	cache, err := lru.New(terminalCacheSize)
	if err != nil {
		panic(err)
	}
	sc := &StatefulScheduler{
		cfg:        cfg,
		store:      s,
		stat:       stat.Scope("sched"),
		dispatcher: d,
		registry:   newExecutorRegistry(s, cfg, stat.Scope("sched")),
		leader:     newLeaseCoordinator(s, cfg, newID()),
		runner:     async.NewRunner(),
		terminal:   cache,
		nowFn:      time.Now,
		triggerCh:  make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
	log.WithFields(log.Fields{"config": cfg}).Info("Starting scheduler")
	if sc.leader.tick(sc.nowFn()) {
		sc.recoverOrphanedTasks()
	}
	if !cfg.DebugMode {
		go sc.loop()
	}
	return sc
}

// Stop halts the loop and releases the lease.
func (sc *StatefulScheduler) Stop() {
	close(sc.stopCh)
	sc.leader.release()
}

func (sc *StatefulScheduler) loop() {
	ticker := time.NewTicker(loopTickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-sc.stopCh:
			return
		case <-ticker.C:
		case <-sc.triggerCh:
		}
		sc.step()
	}
}

// trigger nudges the loop without waiting for the next tick.
func (sc *StatefulScheduler) trigger() {
	select {
	case sc.triggerCh <- struct{}{}:
	default:
	}
}

// step runs one full pass: election, liveness sweep, job advancement, task
// assignment, GC. Everything it decides is re-derived from the store, so a
// step after failover picks up exactly where the old leader stopped.
func (sc *StatefulScheduler) step() {
	defer sc.stat.Latency(stats.SchedStepLatency_ms).Time().Stop()
	now := sc.nowFn()

	if elected := sc.leader.tick(now); elected {
		sc.recoverOrphanedTasks()
	}
	if !sc.leader.isLeader() {
		sc.stat.Gauge(stats.SchedLeaderGauge).Update(0)
		return
	}
	sc.stat.Gauge(stats.SchedLeaderGauge).Update(1)

	sc.runner.ProcessMessages()

	if now.Sub(sc.lastSweep) >= sc.cfg.SweepInterval {
		sc.lastSweep = now
		if _, err := sc.registry.sweep(now); err != nil {
			log.WithFields(log.Fields{"err": err}).Error("Liveness sweep failed")
		}
	}

	sc.advanceJobs(now)
	sc.assignTasks()

	if ready, err := sc.store.ListReadyTasks(); err == nil {
		sc.stat.Gauge(stats.SchedReadyTasksGauge).Update(int64(len(ready)))
	}
	if execs, err := sc.store.ListExecutors(); err == nil {
		sc.stat.Gauge(stats.SchedActiveExecutorsGauge).Update(int64(len(execs)))
	}

	if now.Sub(sc.lastGC) >= gcInterval {
		sc.lastGC = now
		sc.gcTerminalJobs(now)
	}
}

// ScheduleJob validates and persists a new job with its stage graph and
// queued tasks, returning the job id. The job is durable before the id is
// returned.
func (sc *StatefulScheduler) ScheduleJob(plan *domain.PhysicalPlan) (string, error) {
	sc.stat.Counter(stats.SchedJobRequestsCounter).Inc(1)
	if !sc.leader.isLeader() {
		return "", domain.ErrNotLeader
	}

	jobID := newID()
	stages, err := planner.BuildStages(jobID, plan)
	if err != nil {
		return "", err
	}

	job := &domain.Job{
		ID:          jobID,
		Plan:        plan,
		SubmittedAt: sc.nowFn(),
		Status:      domain.JobQueued,
	}
	if err := sc.store.CreateJob(job); err != nil {
		return "", errors.Wrap(err, "persisting job")
	}
	if err := sc.store.AppendStages(stages); err != nil {
		return "", errors.Wrap(err, "persisting stages")
	}
	var tasks []*domain.Task
	for _, st := range stages {
		for p := uint32(0); p < st.Partitions; p++ {
			tasks = append(tasks, &domain.Task{
				ID:        planner.TaskID(st.ID, p),
				JobID:     jobID,
				StageID:   st.ID,
				Partition: p,
				Status:    domain.TaskQueued,
			})
		}
	}
	if err := sc.store.CreateTasks(tasks); err != nil {
		return "", errors.Wrap(err, "persisting tasks")
	}

	sc.stat.Counter(stats.SchedJobsAcceptedCounter).Inc(1)
	log.WithFields(log.Fields{"job": jobID, "stages": len(stages), "tasks": len(tasks)}).Info("Job accepted")
	sc.trigger()
	return jobID, nil
}

// GetJobStatus returns the job record, falling back to the terminal-status
// cache for jobs already garbage collected.
func (sc *StatefulScheduler) GetJobStatus(jobID string) (*domain.Job, error) {
	job, err := sc.store.GetJob(jobID)
	if err == nil {
		return job, nil
	}
	if err != store.ErrNotFound {
		return nil, err
	}
	if v, ok := sc.terminal.Get(jobID); ok {
		rec := v.(terminalJobRecord)
		return &domain.Job{
			ID:          jobID,
			Status:      rec.status,
			Error:       rec.err,
			CompletedAt: rec.completedAt,
		}, nil
	}
	return nil, store.ErrNotFound
}

// CancelJob cancels a non-terminal job: the job goes Canceled, every
// non-terminal task goes Canceled, and executors running its tasks get a
// best-effort cancel notice. Canceling a terminal job is a no-op.
func (sc *StatefulScheduler) CancelJob(jobID string) error {
	if !sc.leader.isLeader() {
		return domain.ErrNotLeader
	}
	job, err := sc.store.GetJob(jobID)
	if err != nil {
		return err
	}
	if job.Status.Terminal() {
		return nil
	}
	job.Status = domain.JobCanceled
	job.CompletedAt = sc.nowFn()
	job.Error = &domain.ErrorSummary{Kind: domain.ErrKindCanceled, Message: "canceled by client"}
	if err := sc.store.UpdateJob(job); err != nil {
		if err == domain.ErrStaleTransition {
			return sc.CancelJob(jobID) // raced with another transition, retry from a fresh read
		}
		return err
	}
	tasks, err := sc.store.ListTasks(jobID)
	if err != nil {
		return err
	}
	cancels, err := cancelJobTasks(sc.store, tasks)
	if err != nil {
		return err
	}
	sc.dispatchCancels(cancels)
	sc.stat.Counter(stats.SchedJobsCanceledCounter).Inc(1)
	log.WithFields(log.Fields{"job": jobID}).Info("Job canceled")
	sc.trigger()
	return nil
}

// RegisterExecutor admits (or re-admits) an executor.
func (sc *StatefulScheduler) RegisterExecutor(meta *domain.ExecutorMetadata) error {
	if err := sc.registry.register(meta, sc.nowFn()); err != nil {
		return err
	}
	sc.trigger()
	return nil
}

// Heartbeat refreshes an executor's liveness. known=false tells the
// executor to re-register.
func (sc *StatefulScheduler) Heartbeat(executorID string) (known bool, err error) {
	return sc.registry.heartbeat(executorID, sc.nowFn())
}

// DeregisterExecutor removes an executor gracefully, requeuing its tasks.
func (sc *StatefulScheduler) DeregisterExecutor(executorID string) error {
	if err := sc.registry.deregister(executorID); err != nil {
		return err
	}
	sc.trigger()
	return nil
}

// HandleTaskReport applies an executor's status report. Reports for
// terminal tasks, unknown tasks, or tasks the reporter no longer owns are
// accepted and dropped; retransmits are therefore always safe.
//
// A terminal report that loses a CAS race retries from a fresh read: the
// executor got its ack and will never resend, so dropping the outcome here
// would strand the task with no recovery path.
func (sc *StatefulScheduler) HandleTaskReport(taskID, executorID string, status domain.TaskStatus, output *domain.PartitionLocation, cause *domain.ErrorSummary) error {
	for {
		task, err := sc.store.GetTask(taskID)
		if err == store.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if task.Status.Terminal() || task.ExecutorID != executorID {
			return nil
		}

		switch status {
		case domain.TaskRunning:
			_, err = sc.store.CASTaskStatus(taskID, domain.TaskAssigned, domain.TaskRunning, nil)
			if err == domain.ErrStaleTransition {
				// The launch callback already moved the task to Running;
				// nothing left to apply.
				sc.stat.Counter(stats.SchedStaleTransitionCounter).Inc(1)
				return nil
			}
		case domain.TaskCompleted:
			_, err = sc.store.CASTaskStatus(taskID, task.Status, domain.TaskCompleted, func(t *domain.Task) {
				t.Output = output
				t.Error = nil
			})
			if err == domain.ErrStaleTransition {
				sc.stat.Counter(stats.SchedStaleTransitionCounter).Inc(1)
				continue
			}
			if err == nil {
				log.WithFields(log.Fields{"task": taskID, "executor": executorID}).Info("Task completed")
			}
		case domain.TaskFailed:
			if cause == nil {
				cause = &domain.ErrorSummary{Kind: domain.ErrKindTaskExecution, Message: "task failed"}
			}
			_, err = requeueOrFailTask(sc.store, taskID, task.Status, cause, sc.cfg.MaxTaskAttempts)
			if err == domain.ErrStaleTransition {
				sc.stat.Counter(stats.SchedStaleTransitionCounter).Inc(1)
				continue
			}
		default:
			return nil
		}
		if err != nil {
			return err
		}
		sc.trigger()
		return nil
	}
}

// advanceJobs recomputes every active job and fires cancel notices the
// failure cascade produced.
func (sc *StatefulScheduler) advanceJobs(now time.Time) {
	jobs, err := sc.store.ListJobs()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Listing jobs failed")
		return
	}
	for _, j := range jobs {
		if j.Status.Terminal() {
			continue
		}
		progress, err := advanceJob(sc.store, j.ID, now)
		if err != nil {
			log.WithFields(log.Fields{"job": j.ID, "err": err}).Error("Advancing job failed")
			continue
		}
		if progress.completed {
			sc.stat.Counter(stats.SchedJobsCompletedCounter).Inc(1)
		}
		if progress.failed {
			sc.stat.Counter(stats.SchedJobsFailedCounter).Inc(1)
		}
		sc.dispatchCancels(progress.cancels)
	}
}

// assignTasks claims ready tasks for free slots and fans out the launches.
func (sc *StatefulScheduler) assignTasks() {
	defer sc.stat.Latency(stats.SchedAssignLatency_ms).Time().Stop()
	assignments, err := getTaskAssignments(sc.store)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Computing assignments failed")
		return
	}
	for _, a := range assignments {
		task, err := sc.store.CASTaskStatus(a.task.ID, domain.TaskQueued, domain.TaskAssigned, func(t *domain.Task) {
			t.ExecutorID = a.executor.ID
		})
		if err != nil {
			if err == domain.ErrStaleTransition {
				sc.stat.Counter(stats.SchedStaleTransitionCounter).Inc(1)
				continue
			}
			log.WithFields(log.Fields{"task": a.task.ID, "err": err}).Error("Claiming task failed")
			continue
		}
		sc.stat.Counter(stats.SchedTasksAssignedCounter).Inc(1)
		log.WithFields(log.Fields{
			"task":     task.ID,
			"executor": a.executor.ID,
			"attempts": task.Attempts,
		}).Info("Task assigned")
		sc.launch(task, a.executor)
	}
}

// launch sends one LaunchTask without blocking the loop. The callback runs
// in a later step: acceptance moves the task to Running, anything else
// requeues it through the normal retry path.
func (sc *StatefulScheduler) launch(task *domain.Task, executor *domain.ExecutorMetadata) {
	stage, err := sc.store.GetStage(task.StageID)
	if err != nil {
		log.WithFields(log.Fields{"task": task.ID, "err": err}).Error("Loading stage for launch failed")
		return
	}
	inputs, err := gatherStageInputs(sc.store, stage)
	if err != nil {
		log.WithFields(log.Fields{"task": task.ID, "err": err}).Error("Gathering stage inputs failed")
		return
	}
	req := &protocol.LaunchTaskRequest{
		TaskId:           task.ID,
		JobId:            task.JobID,
		StageId:          task.StageID,
		Partition:        task.Partition,
		Fragment:         stage.Fragment,
		OutputPartitions: stage.Partitions,
		Inputs:           protocol.LocationsToWire(inputs),
		Attempt:          int32(task.Attempts),
	}
	taskID, addr := task.ID, executor.Addr
	sc.runner.RunAsync(func() error {
		accepted, reason, err := sc.dispatcher.LaunchTask(addr, req)
		if err != nil {
			return err
		}
		if !accepted {
			return errors.Errorf("launch rejected: %s", reason)
		}
		return nil
	}, func(err error) {
		if err == nil {
			// The executor may already have reported completion; a stale
			// CAS here is fine.
			if _, casErr := sc.store.CASTaskStatus(taskID, domain.TaskAssigned, domain.TaskRunning, nil); casErr == nil {
				log.WithFields(log.Fields{"task": taskID, "executor": addr}).Info("Task launched")
			}
			return
		}
		cause := &domain.ErrorSummary{Kind: domain.ErrKindExecutorLost, Message: err.Error()}
		if _, rqErr := requeueOrFailTask(sc.store, taskID, domain.TaskAssigned, cause, sc.cfg.MaxTaskAttempts); rqErr != nil && rqErr != domain.ErrStaleTransition {
			log.WithFields(log.Fields{"task": taskID, "err": rqErr}).Error("Requeue after failed launch failed")
		}
		sc.stat.Counter(stats.SchedTasksRequeuedCounter).Inc(1)
	})
}

func (sc *StatefulScheduler) dispatchCancels(cancels []*domain.Task) {
	for _, t := range cancels {
		executor, err := sc.store.GetExecutor(t.ExecutorID)
		if err != nil {
			continue
		}
		taskID, addr := t.ID, executor.Addr
		sc.runner.RunAsync(func() error {
			return sc.dispatcher.CancelTask(addr, taskID)
		}, func(err error) {
			if err != nil {
				// Best effort; the task no longer accepts reports anyway.
				log.WithFields(log.Fields{"task": taskID, "err": err}).Debug("Cancel notice failed")
			}
		})
	}
}

// recoverOrphanedTasks runs on election: tasks recorded Assigned/Running
// on executors this store no longer knows are requeued, so work stranded
// by a leader crash resumes without waiting for any timeout.
func (sc *StatefulScheduler) recoverOrphanedTasks() {
	executors, err := sc.store.ListExecutors()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Recovery: listing executors failed")
		return
	}
	alive := map[string]bool{}
	for _, e := range executors {
		alive[e.ID] = e.Status == domain.ExecutorActive
	}
	jobs, err := sc.store.ListJobs()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Recovery: listing jobs failed")
		return
	}
	recovered := 0
	for _, j := range jobs {
		if j.Status.Terminal() {
			continue
		}
		tasks, err := sc.store.ListTasks(j.ID)
		if err != nil {
			continue
		}
		for _, t := range tasks {
			if t.Status != domain.TaskAssigned && t.Status != domain.TaskRunning {
				continue
			}
			if alive[t.ExecutorID] {
				continue
			}
			cause := &domain.ErrorSummary{Kind: domain.ErrKindExecutorLost, Message: "executor lost across failover"}
			if _, err := requeueOrFailTask(sc.store, t.ID, t.Status, cause, sc.cfg.MaxTaskAttempts); err != nil && err != domain.ErrStaleTransition {
				log.WithFields(log.Fields{"task": t.ID, "err": err}).Error("Recovery requeue failed")
				continue
			}
			recovered++
		}
	}
	log.WithFields(log.Fields{"requeued": recovered}).Info("Rebuilt scheduling state from store")
}

// gcTerminalJobs purges jobs whose retention window lapsed, keeping their
// terminal status answerable from the LRU.
func (sc *StatefulScheduler) gcTerminalJobs(now time.Time) {
	jobs, err := sc.store.ListJobs()
	if err != nil {
		return
	}
	for _, j := range jobs {
		if !j.Status.Terminal() || now.Sub(j.CompletedAt) < sc.cfg.Retention {
			continue
		}
		sc.terminal.Add(j.ID, terminalJobRecord{status: j.Status, err: j.Error, completedAt: j.CompletedAt})
		if err := sc.store.RemoveJob(j.ID); err != nil {
			log.WithFields(log.Fields{"job": j.ID, "err": err}).Error("Job GC failed")
			continue
		}
		log.WithFields(log.Fields{"job": j.ID, "status": j.Status}).Info("Job garbage collected")
	}
}

// newID returns a fresh uuid, retrying the entropy read until it succeeds.
func newID() string {
	for {
		if u, err := uuid.NewV4(); err == nil {
			return u.String()
		}
	}
}
