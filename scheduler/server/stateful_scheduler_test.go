package server

import (
	"os"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

func TestMain(m *testing.M) {
	log.SetLevel(log.ErrorLevel)
	os.Exit(m.Run())
}

func Test_Scheduler_SubmitPersistsJobGraph(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})

	jobID, err := f.sc.ScheduleJob(twoStagePlan())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	job, err := f.store.GetJob(jobID)
	if err != nil {
		t.Fatalf("job not persisted: %v", err)
	}
	if job.Status != domain.JobQueued {
		t.Errorf("fresh job status = %v, want Queued", job.Status)
	}
	stages, _ := f.store.ListStages(jobID)
	if len(stages) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(stages))
	}
	tasks, _ := f.store.ListTasks(jobID)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks (2+1), got %d", len(tasks))
	}
	for _, task := range tasks {
		if task.Status != domain.TaskQueued {
			t.Errorf("task %s status = %v, want Queued", task.ID, task.Status)
		}
	}
}

func Test_Scheduler_InvalidPlanRejected(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})

	cyclic := &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1, Inputs: []domain.PlanInput{{NodeID: "b", Shuffle: true}}},
		{ID: "b", Fragment: []byte("y"), Partitions: 1, Inputs: []domain.PlanInput{{NodeID: "a", Shuffle: true}}},
	}}
	if _, err := f.sc.ScheduleJob(cyclic); !domain.IsInvalidPlan(err) {
		t.Fatalf("expected InvalidPlanError, got %v", err)
	}
	jobs, _ := f.store.ListJobs()
	if len(jobs) != 0 {
		t.Errorf("rejected plan left %d jobs behind", len(jobs))
	}
}

func Test_Scheduler_EndToEnd_TwoStageJob(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)
	f.registerExecutor(t, "e2", 1)

	jobID, err := f.sc.ScheduleJob(twoStagePlan())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	aP0, aP1, bP0 := jobID+"-s0-p0", jobID+"-s0-p1", jobID+"-s1-p0"

	// Both stage-A tasks land, one per executor.
	f.stepUntil(t, "both A tasks launched", func() bool {
		return len(f.disp.launchedTasks()) == 2
	})
	f.disp.mu.Lock()
	perExecutor := map[string]int{}
	for addr, reqs := range f.disp.byAddr {
		perExecutor[addr] = len(reqs)
	}
	f.disp.mu.Unlock()
	if perExecutor["e1-addr"] != 1 || perExecutor["e2-addr"] != 1 {
		t.Fatalf("expected one launch per executor, got %v", perExecutor)
	}

	// B is blocked until every producer task completes.
	if got := f.taskStatus(t, bP0); got != domain.TaskQueued {
		t.Fatalf("B task status = %v before producers complete, want Queued", got)
	}
	f.completeTask(t, aP0, f.assignedExecutor(t, aP0))
	f.sc.step()
	if got := f.taskStatus(t, bP0); got != domain.TaskQueued {
		t.Fatalf("B task status = %v with one producer pending, want Queued", got)
	}
	f.completeTask(t, aP1, f.assignedExecutor(t, aP1))

	f.stepUntil(t, "B task launched", func() bool {
		return len(f.disp.launchedTasks()) == 3
	})

	// The B launch carries both producer partitions as inputs.
	f.disp.mu.Lock()
	bReq := f.disp.launches[2]
	f.disp.mu.Unlock()
	if bReq.GetTaskId() != bP0 {
		t.Fatalf("third launch = %s, want %s", bReq.GetTaskId(), bP0)
	}
	if len(bReq.GetInputs()) != 2 {
		t.Errorf("B launch has %d inputs, want 2", len(bReq.GetInputs()))
	}

	f.completeTask(t, bP0, f.assignedExecutor(t, bP0))
	f.stepUntil(t, "job completed", func() bool {
		job, err := f.sc.GetJobStatus(jobID)
		return err == nil && job.Status == domain.JobCompleted
	})

	job, _ := f.sc.GetJobStatus(jobID)
	if len(job.Result) != 1 {
		t.Fatalf("completed job has %d result locations, want 1 (sink stage)", len(job.Result))
	}
	if job.Result[0].Stats.NumRows != 10 {
		t.Errorf("result stats not carried: %+v", job.Result[0].Stats)
	}
}

func Test_Scheduler_NoDoubleAssignment(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	jobID, err := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 3},
	}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	f.stepUntil(t, "the single slot filled", func() bool {
		return len(f.disp.launchedTasks()) == 1
	})

	// Many more passes with the slot occupied: never more than one task in
	// flight, and nothing else launches.
	for i := 0; i < 20; i++ {
		f.sc.step()
		tasks, _ := f.store.ListTasks(jobID)
		inFlight := 0
		for _, task := range tasks {
			if task.Status == domain.TaskAssigned || task.Status == domain.TaskRunning {
				inFlight++
			}
		}
		if inFlight > 1 {
			t.Fatalf("pass %d: %d tasks in flight on a single slot", i, inFlight)
		}
	}
	if launched := len(f.disp.launchedTasks()); launched != 1 {
		t.Errorf("launched %d tasks on one slot, want 1", launched)
	}
}

// raceStore lets a test splice a concurrent transition between a read and
// the CAS that follows it.
type raceStore struct {
	store.Store
	afterGetTask func()
}

func (s *raceStore) GetTask(id string) (*domain.Task, error) {
	task, err := s.Store.GetTask(id)
	if s.afterGetTask != nil {
		hook := s.afterGetTask
		s.afterGetTask = nil
		hook()
	}
	return task, err
}

func Test_Scheduler_CompletionReportSurvivesLostRace(t *testing.T) {
	st := &raceStore{Store: store.NewMemory()}
	f := newFixtureWithStore(t, SchedulerConfiguration{}, st)
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	if _, err := st.CASTaskStatus(taskID, domain.TaskQueued, domain.TaskAssigned, func(task *domain.Task) {
		task.ExecutorID = "e1"
	}); err != nil {
		t.Fatalf("claiming task: %v", err)
	}

	// The launch callback's Assigned→Running lands between the report
	// handler's read and its CAS. The completion must win anyway: the
	// executor was acked and will never resend it.
	st.afterGetTask = func() {
		if _, err := st.Store.CASTaskStatus(taskID, domain.TaskAssigned, domain.TaskRunning, nil); err != nil {
			t.Fatalf("racing transition: %v", err)
		}
	}
	if err := f.sc.HandleTaskReport(taskID, "e1", domain.TaskCompleted,
		&domain.PartitionLocation{JobID: jobID, ExecutorID: "e1", Path: "/shuffle/" + taskID}, nil); err != nil {
		t.Fatalf("completion report: %v", err)
	}

	task, _ := f.store.GetTask(taskID)
	if task.Status != domain.TaskCompleted {
		t.Fatalf("task status after raced report = %v, want Completed", task.Status)
	}
	f.stepUntil(t, "job completed", func() bool {
		job, err := f.sc.GetJobStatus(jobID)
		return err == nil && job.Status == domain.JobCompleted
	})
}

func Test_Scheduler_EvictionOutrunsLateReport(t *testing.T) {
	st := &raceStore{Store: store.NewMemory()}
	f := newFixtureWithStore(t, SchedulerConfiguration{}, st)
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	if _, err := st.CASTaskStatus(taskID, domain.TaskQueued, domain.TaskAssigned, func(task *domain.Task) {
		task.ExecutorID = "e1"
	}); err != nil {
		t.Fatalf("claiming task: %v", err)
	}

	// An eviction requeue racing the same window wins instead: the retried
	// read fails the ownership check and the late report is dropped.
	st.afterGetTask = func() {
		if _, err := st.Store.CASTaskStatus(taskID, domain.TaskAssigned, domain.TaskQueued, func(task *domain.Task) {
			task.ExecutorID = ""
			task.Attempts++
		}); err != nil {
			t.Fatalf("racing requeue: %v", err)
		}
	}
	if err := f.sc.HandleTaskReport(taskID, "e1", domain.TaskCompleted,
		&domain.PartitionLocation{}, nil); err != nil {
		t.Fatalf("late report: %v", err)
	}

	task, _ := f.store.GetTask(taskID)
	if task.Status != domain.TaskQueued || task.Attempts != 1 {
		t.Errorf("task after dropped report = %v attempts=%d, want Queued/1", task.Status, task.Attempts)
	}
}

func Test_Scheduler_JobWithoutStagesNotCompleted(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})

	// A crash between persisting the job and its stages leaves a bare job
	// record; it must not come back Completed.
	if err := f.store.CreateJob(&domain.Job{ID: "bare", SubmittedAt: f.clock.Now(), Status: domain.JobQueued}); err != nil {
		t.Fatalf("seeding job: %v", err)
	}
	for i := 0; i < 3; i++ {
		f.sc.step()
	}
	job, err := f.store.GetJob("bare")
	if err != nil {
		t.Fatalf("job gone: %v", err)
	}
	if job.Status == domain.JobCompleted {
		t.Errorf("stageless job marked Completed")
	}
}

func Test_Scheduler_DuplicateTerminalReportIdempotent(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 2)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	f.stepUntil(t, "task launched", func() bool { return len(f.disp.launchedTasks()) == 1 })

	executorID := f.assignedExecutor(t, taskID)
	f.completeTask(t, taskID, executorID)
	first, _ := f.store.GetTask(taskID)

	// Retransmits of either outcome change nothing and return success.
	f.completeTask(t, taskID, executorID)
	if err := f.sc.HandleTaskReport(taskID, executorID, domain.TaskFailed, nil,
		&domain.ErrorSummary{Kind: domain.ErrKindTaskExecution, Message: "late failure"}); err != nil {
		t.Fatalf("duplicate failed report errored: %v", err)
	}
	after, _ := f.store.GetTask(taskID)
	if after.Version != first.Version || after.Status != domain.TaskCompleted {
		t.Errorf("duplicate report mutated task: %v -> %v", first, after)
	}
}

func Test_Scheduler_StaleOwnerReportDropped(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	f.stepUntil(t, "task launched", func() bool { return len(f.disp.launchedTasks()) == 1 })

	// A report from an executor that does not own the task is dropped.
	if err := f.sc.HandleTaskReport(taskID, "impostor", domain.TaskCompleted,
		&domain.PartitionLocation{}, nil); err != nil {
		t.Fatalf("stale-owner report errored: %v", err)
	}
	if got := f.taskStatus(t, taskID); got == domain.TaskCompleted {
		t.Errorf("stale-owner report completed the task")
	}
}

func Test_Scheduler_MaxAttemptsFailureCascade(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{MaxTaskAttempts: 2})
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 2},
	}})
	p0 := jobID + "-s0-p0"

	cause := &domain.ErrorSummary{Kind: domain.ErrKindTaskExecution, Message: "fragment blew up"}
	for attempt := 0; attempt < 2; attempt++ {
		f.stepUntil(t, "p0 assigned", func() bool {
			task, _ := f.store.GetTask(p0)
			return task.Status == domain.TaskAssigned || task.Status == domain.TaskRunning
		})
		if err := f.sc.HandleTaskReport(p0, f.assignedExecutor(t, p0), domain.TaskFailed, nil, cause); err != nil {
			t.Fatalf("failure report: %v", err)
		}
	}

	f.stepUntil(t, "job failed", func() bool {
		job, _ := f.sc.GetJobStatus(jobID)
		return job != nil && job.Status == domain.JobFailed
	})

	task, _ := f.store.GetTask(p0)
	if task.Status != domain.TaskFailed || task.Attempts != 2 {
		t.Errorf("exhausted task = %v attempts=%d, want Failed/2", task.Status, task.Attempts)
	}
	stage, _ := f.store.GetStage(jobID + "-s0")
	if stage.Status != domain.StageFailed {
		t.Errorf("stage status = %v, want Failed", stage.Status)
	}
	sibling, _ := f.store.GetTask(jobID + "-s0-p1")
	if sibling.Status != domain.TaskCanceled {
		t.Errorf("sibling status = %v, want Canceled", sibling.Status)
	}
	job, _ := f.sc.GetJobStatus(jobID)
	if job.Error == nil || job.Error.Kind != domain.ErrKindJobFailed {
		t.Errorf("job error = %v, want JobFailed with task cause", job.Error)
	}
}

func Test_Scheduler_CancelJob(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 2},
	}})
	p0 := jobID + "-s0-p0"
	f.stepUntil(t, "first task launched", func() bool { return len(f.disp.launchedTasks()) == 1 })

	if err := f.sc.CancelJob(jobID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	job, _ := f.sc.GetJobStatus(jobID)
	if job.Status != domain.JobCanceled {
		t.Fatalf("job status = %v, want Canceled", job.Status)
	}
	tasks, _ := f.store.ListTasks(jobID)
	for _, task := range tasks {
		if task.Status != domain.TaskCanceled {
			t.Errorf("task %s status = %v, want Canceled", task.ID, task.Status)
		}
	}

	// The in-flight task got a best-effort cancel notice.
	f.stepUntil(t, "cancel dispatched", func() bool {
		for _, id := range f.disp.canceledTasks() {
			if id == p0 {
				return true
			}
		}
		return false
	})

	// Canceling a terminal job is a no-op.
	if err := f.sc.CancelJob(jobID); err != nil {
		t.Errorf("second cancel errored: %v", err)
	}
}

func Test_Scheduler_StandbyRejectsSubmissions(t *testing.T) {
	st := store.NewMemory()
	leader := newFixtureWithStore(t, SchedulerConfiguration{}, st)
	standby := newFixtureWithStore(t, SchedulerConfiguration{}, st)

	if _, err := leader.sc.ScheduleJob(twoStagePlan()); err != nil {
		t.Fatalf("leader submit: %v", err)
	}
	if _, err := standby.sc.ScheduleJob(twoStagePlan()); err != domain.ErrNotLeader {
		t.Fatalf("standby submit: expected ErrNotLeader, got %v", err)
	}
	if err := standby.sc.CancelJob("whatever"); err != domain.ErrNotLeader {
		t.Fatalf("standby cancel: expected ErrNotLeader, got %v", err)
	}
}

func Test_Scheduler_FailoverResumesFromStore(t *testing.T) {
	st := store.NewMemory()
	leader := newFixtureWithStore(t, SchedulerConfiguration{}, st)
	standby := newFixtureWithStore(t, SchedulerConfiguration{}, st)

	leader.registerExecutor(t, "e1", 2)
	jobID, err := leader.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	taskID := jobID + "-s0-p0"
	leader.stepUntil(t, "task launched", func() bool { return len(leader.disp.launchedTasks()) == 1 })
	executorID := leader.assignedExecutor(t, taskID)

	// Leader dies; its release lets the standby win the next tick.
	leader.sc.Stop()
	standby.stepUntil(t, "standby elected", func() bool { return standby.sc.leader.isLeader() })

	// The executor is still alive in the store, the task still assigned to
	// it: nothing was lost, nothing relaunched.
	if got := standby.taskStatus(t, taskID); got != domain.TaskAssigned && got != domain.TaskRunning {
		t.Fatalf("task status after failover = %v, want Assigned/Running", got)
	}
	if launched := len(standby.disp.launchedTasks()); launched != 0 {
		t.Fatalf("standby relaunched %d tasks for a live executor", launched)
	}

	// Completion reported to the new leader finishes the job.
	standby.completeTask(t, taskID, executorID)
	standby.stepUntil(t, "job completed on standby", func() bool {
		job, err := standby.sc.GetJobStatus(jobID)
		return err == nil && job.Status == domain.JobCompleted
	})
}

func Test_Scheduler_GCKeepsTerminalStatusAnswerable(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{Retention: time.Minute})
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	f.stepUntil(t, "task launched", func() bool { return len(f.disp.launchedTasks()) == 1 })
	f.completeTask(t, taskID, f.assignedExecutor(t, taskID))
	f.stepUntil(t, "job completed", func() bool {
		job, err := f.sc.GetJobStatus(jobID)
		return err == nil && job.Status == domain.JobCompleted
	})

	f.clock.advance(2 * time.Minute)
	f.stepUntil(t, "job purged", func() bool {
		_, err := f.store.GetJob(jobID)
		return err == store.ErrNotFound
	})

	// Status stays answerable from the retention cache.
	job, err := f.sc.GetJobStatus(jobID)
	if err != nil {
		t.Fatalf("status after GC: %v", err)
	}
	if job.Status != domain.JobCompleted {
		t.Errorf("cached status = %v, want Completed", job.Status)
	}
}

// assignedExecutor returns the executor a task is currently recorded on.
func (f *fixture) assignedExecutor(t *testing.T, taskID string) string {
	t.Helper()
	task, err := f.store.GetTask(taskID)
	if err != nil {
		t.Fatalf("get task %s: %v", taskID, err)
	}
	if task.ExecutorID == "" {
		t.Fatalf("task %s has no executor", taskID)
	}
	return task.ExecutorID
}
