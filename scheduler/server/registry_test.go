package server

import (
	"testing"
	"time"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

func Test_Registry_EvictionRequeuesExactlyOnce(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 2)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 2},
	}})
	f.stepUntil(t, "both tasks launched", func() bool { return len(f.disp.launchedTasks()) == 2 })

	// Heartbeat goes stale past k * heartbeat_interval.
	f.clock.advance(10 * time.Second)
	f.sc.step()

	if _, err := f.store.GetExecutor("e1"); err != store.ErrNotFound {
		t.Fatalf("evicted executor still registered: %v", err)
	}
	tasks, _ := f.store.ListTasks(jobID)
	for _, task := range tasks {
		if task.Status != domain.TaskQueued {
			t.Errorf("task %s status = %v after eviction, want Queued", task.ID, task.Status)
		}
		if task.Attempts != 1 {
			t.Errorf("task %s attempts = %d after eviction, want exactly 1", task.ID, task.Attempts)
		}
		if task.ExecutorID != "" {
			t.Errorf("task %s still bound to %s", task.ID, task.ExecutorID)
		}
	}

	// Further sweeps must not count the same eviction again.
	f.clock.advance(10 * time.Second)
	f.sc.step()
	f.sc.step()
	tasks, _ = f.store.ListTasks(jobID)
	for _, task := range tasks {
		if task.Attempts != 1 {
			t.Errorf("task %s attempts = %d after extra sweeps, want 1", task.ID, task.Attempts)
		}
	}
}

func Test_Registry_HeartbeatPreventsEviction(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	for i := 0; i < 5; i++ {
		f.clock.advance(5 * time.Second)
		known, err := f.sc.Heartbeat("e1")
		if err != nil || !known {
			t.Fatalf("heartbeat %d: known=%v err=%v", i, known, err)
		}
		f.sc.step()
	}
	if _, err := f.store.GetExecutor("e1"); err != nil {
		t.Errorf("heartbeating executor evicted: %v", err)
	}
}

func Test_Registry_EvictedExecutorMustReregister(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	f.clock.advance(10 * time.Second)
	f.sc.step()

	known, err := f.sc.Heartbeat("e1")
	if err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	if known {
		t.Fatalf("evicted executor's heartbeat accepted without re-registration")
	}

	// Re-registration comes back as a brand-new executor.
	f.registerExecutor(t, "e1", 1)
	e, err := f.store.GetExecutor("e1")
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if e.Status != domain.ExecutorActive {
		t.Errorf("re-registered executor status = %v, want Active", e.Status)
	}
}

func Test_Registry_DeregisterRequeuesImmediately(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)

	jobID, _ := f.sc.ScheduleJob(&domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("x"), Partitions: 1},
	}})
	taskID := jobID + "-s0-p0"
	f.stepUntil(t, "task launched", func() bool { return len(f.disp.launchedTasks()) == 1 })

	if err := f.sc.DeregisterExecutor("e1"); err != nil {
		t.Fatalf("deregister: %v", err)
	}
	task, _ := f.store.GetTask(taskID)
	if task.Status != domain.TaskQueued || task.Attempts != 1 {
		t.Errorf("task after deregister = %v attempts=%d, want Queued/1", task.Status, task.Attempts)
	}
	if _, err := f.store.GetExecutor("e1"); err != store.ErrNotFound {
		t.Errorf("deregistered executor still present: %v", err)
	}
}

func Test_Scheduler_EvictionMidFlight_JobStillCompletes(t *testing.T) {
	f := newFixture(t, SchedulerConfiguration{})
	f.registerExecutor(t, "e1", 1)
	f.registerExecutor(t, "e2", 1)

	jobID, _ := f.sc.ScheduleJob(twoStagePlan())
	f.stepUntil(t, "both A tasks launched", func() bool { return len(f.disp.launchedTasks()) == 2 })

	// e2 finishes its partition; e1 goes dark before finishing.
	p0, p1 := jobID+"-s0-p0", jobID+"-s0-p1"
	e2Task := p1
	if f.assignedExecutor(t, p0) == "e2" {
		e2Task = p0
	}
	e1Task := p0
	if e2Task == p0 {
		e1Task = p1
	}
	f.completeTask(t, e2Task, "e2")

	f.clock.advance(10 * time.Second)
	if _, err := f.sc.Heartbeat("e2"); err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	f.sc.step()

	// The sweep requeued the orphan with one attempt counted and cut it
	// loose from e1; the very same pass may already have handed it to the
	// survivor, so Queued itself is transient.
	task, _ := f.store.GetTask(e1Task)
	if task.Attempts != 1 {
		t.Fatalf("orphaned task attempts = %d, want exactly 1", task.Attempts)
	}
	if task.ExecutorID == "e1" {
		t.Fatalf("orphaned task still bound to the evicted executor")
	}

	// The surviving executor picks the orphan up and the job finishes
	// without any intervention.
	f.stepUntil(t, "orphan reassigned to e2", func() bool {
		cur, _ := f.store.GetTask(e1Task)
		return cur.ExecutorID == "e2" && (cur.Status == domain.TaskAssigned || cur.Status == domain.TaskRunning)
	})
	f.completeTask(t, e1Task, "e2")

	bP0 := jobID + "-s1-p0"
	f.stepUntil(t, "B assigned", func() bool {
		cur, _ := f.store.GetTask(bP0)
		return cur.Status == domain.TaskAssigned || cur.Status == domain.TaskRunning
	})
	f.completeTask(t, bP0, "e2")
	f.stepUntil(t, "job completed", func() bool {
		job, err := f.sc.GetJobStatus(jobID)
		return err == nil && job.Status == domain.JobCompleted
	})
}
