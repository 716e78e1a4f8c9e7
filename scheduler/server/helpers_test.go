package server

import (
	"sync"
	"testing"
	"time"

	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// fakeClock drives all scheduler timing in tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Now()}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeDispatcher is an in-process executor transport. Launches are
// recorded and accepted unless the test configured a rejection or error
// for the task.
type fakeDispatcher struct {
	mu       sync.Mutex
	launches []*protocol.LaunchTaskRequest
	byAddr   map[string][]*protocol.LaunchTaskRequest
	cancels  []string
	rejects  map[string]string
	errs     map[string]error
}

func newFakeDispatcher() *fakeDispatcher {
	return &fakeDispatcher{
		byAddr:  map[string][]*protocol.LaunchTaskRequest{},
		rejects: map[string]string{},
		errs:    map[string]error{},
	}
}

func (d *fakeDispatcher) LaunchTask(addr string, req *protocol.LaunchTaskRequest) (bool, string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err, ok := d.errs[req.GetTaskId()]; ok {
		return false, "", err
	}
	if reason, ok := d.rejects[req.GetTaskId()]; ok {
		return false, reason, nil
	}
	d.launches = append(d.launches, req)
	d.byAddr[addr] = append(d.byAddr[addr], req)
	return true, "", nil
}

func (d *fakeDispatcher) CancelTask(addr string, taskID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancels = append(d.cancels, taskID)
	return nil
}

func (d *fakeDispatcher) launchedTasks() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var ids []string
	for _, req := range d.launches {
		ids = append(ids, req.GetTaskId())
	}
	return ids
}

func (d *fakeDispatcher) canceledTasks() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.cancels...)
}

type fixture struct {
	sc    *StatefulScheduler
	store store.Store
	disp  *fakeDispatcher
	clock *fakeClock
}

func newFixture(t *testing.T, cfg SchedulerConfiguration) *fixture {
	t.Helper()
	return newFixtureWithStore(t, cfg, store.NewMemory())
}

func newFixtureWithStore(t *testing.T, cfg SchedulerConfiguration, st store.Store) *fixture {
	t.Helper()
	cfg.DebugMode = true
	disp := newFakeDispatcher()
	sc := NewStatefulScheduler(cfg, st, disp, stats.NilStatsReceiver())
	clock := newFakeClock()
	sc.nowFn = clock.Now
	return &fixture{sc: sc, store: st, disp: disp, clock: clock}
}

// stepUntil steps the scheduler until cond holds, giving async dispatch
// callbacks time to land between steps.
func (f *fixture) stepUntil(t *testing.T, msg string, cond func() bool) {
	t.Helper()
	for i := 0; i < 200; i++ {
		f.sc.step()
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("never reached: %s", msg)
}

func (f *fixture) registerExecutor(t *testing.T, id string, slots uint32) {
	t.Helper()
	if err := f.sc.RegisterExecutor(&domain.ExecutorMetadata{ID: id, Addr: id + "-addr", Slots: slots}); err != nil {
		t.Fatalf("registering %s: %v", id, err)
	}
}

// twoStagePlan is the canonical test graph: stage A (2 partitions, no
// producers) feeding stage B (1 partition) over a shuffle.
func twoStagePlan() *domain.PhysicalPlan {
	return &domain.PhysicalPlan{Nodes: []*domain.PlanNode{
		{ID: "a", Fragment: []byte("frag-a"), Partitions: 2},
		{ID: "b", Fragment: []byte("frag-b"), Partitions: 1,
			Inputs: []domain.PlanInput{{NodeID: "a", Shuffle: true}}},
	}}
}

func (f *fixture) taskStatus(t *testing.T, taskID string) domain.TaskStatus {
	t.Helper()
	task, err := f.store.GetTask(taskID)
	if err != nil {
		t.Fatalf("get task %s: %v", taskID, err)
	}
	return task.Status
}

func (f *fixture) completeTask(t *testing.T, taskID, executorID string) {
	t.Helper()
	task, err := f.store.GetTask(taskID)
	if err != nil {
		t.Fatalf("get task %s: %v", taskID, err)
	}
	loc := &domain.PartitionLocation{
		JobID:      task.JobID,
		StageID:    task.StageID,
		Partition:  task.Partition,
		ExecutorID: executorID,
		Addr:       executorID + "-addr",
		Path:       "/shuffle/" + taskID,
		Stats:      domain.PartitionStats{NumRows: 10, NumBatches: 1, NumBytes: 100},
	}
	if err := f.sc.HandleTaskReport(taskID, executorID, domain.TaskCompleted, loc, nil); err != nil {
		t.Fatalf("completing %s: %v", taskID, err)
	}
}
