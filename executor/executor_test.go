package executor

import (
	"errors"
	"io/ioutil"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/trebuchetdev/trebuchet/common/stats"
	"github.com/trebuchetdev/trebuchet/exchange"
	"github.com/trebuchetdev/trebuchet/executor/engine"
	"github.com/trebuchetdev/trebuchet/protocol"
	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// fakeSchedClient records everything the runtime reports.
type fakeSchedClient struct {
	mu       sync.Mutex
	reports  []*protocol.ReportTaskStatusRequest
	reportCh chan *protocol.ReportTaskStatusRequest
}

func newFakeSchedClient() *fakeSchedClient {
	return &fakeSchedClient{reportCh: make(chan *protocol.ReportTaskStatusRequest, 16)}
}

func (c *fakeSchedClient) RegisterExecutor(meta *domain.ExecutorMetadata) error { return nil }
func (c *fakeSchedClient) Heartbeat(executorID string) (bool, error)           { return false, nil }
func (c *fakeSchedClient) DeregisterExecutor(executorID string) error          { return nil }

func (c *fakeSchedClient) ReportTaskStatus(req *protocol.ReportTaskStatusRequest) error {
	c.mu.Lock()
	c.reports = append(c.reports, req)
	c.mu.Unlock()
	c.reportCh <- req
	return nil
}

func (c *fakeSchedClient) nextReport(t *testing.T) *protocol.ReportTaskStatusRequest {
	t.Helper()
	select {
	case r := <-c.reportCh:
		return r
	case <-time.After(2 * time.Second):
		t.Fatalf("no report arrived")
		return nil
	}
}

type executorFixture struct {
	exec   *Executor
	eng    *engine.FakeEngine
	sched  *fakeSchedClient
	tmpDir string
}

func newExecutorFixture(t *testing.T, slots uint32) *executorFixture {
	t.Helper()
	dir, err := ioutil.TempDir("", "trebuchet-executor-test")
	if err != nil {
		t.Fatalf("tempdir: %v", err)
	}
	shuffle, err := exchange.NewLocalStore(dir)
	if err != nil {
		t.Fatalf("shuffle store: %v", err)
	}
	eng := engine.NewFakeEngine()
	sched := newFakeSchedClient()
	exec := New("e1", "e1-addr", slots, eng, shuffle, sched, stats.NilStatsReceiver())
	return &executorFixture{exec: exec, eng: eng, sched: sched, tmpDir: dir}
}

func (f *executorFixture) cleanup() {
	os.RemoveAll(f.tmpDir)
}

func launchReq(taskID string) *protocol.LaunchTaskRequest {
	return &protocol.LaunchTaskRequest{
		TaskId:           taskID,
		JobId:            "j1",
		StageId:          "j1-s0",
		Partition:        0,
		Fragment:         []byte("frag"),
		OutputPartitions: 1,
	}
}

func Test_Executor_RunsTaskAndReportsCompletion(t *testing.T) {
	f := newExecutorFixture(t, 1)
	defer f.cleanup()

	accepted, reason := f.exec.LaunchTask(launchReq("t1"))
	if !accepted {
		t.Fatalf("launch rejected: %s", reason)
	}

	running := f.sched.nextReport(t)
	if running.GetStatus() != protocol.TaskStatus_TASK_RUNNING {
		t.Fatalf("first report = %v, want RUNNING", running.GetStatus())
	}
	completed := f.sched.nextReport(t)
	if completed.GetStatus() != protocol.TaskStatus_TASK_COMPLETED {
		t.Fatalf("second report = %v, want COMPLETED", completed.GetStatus())
	}
	out := completed.GetOutput()
	if out.GetExecutorId() != "e1" || out.GetAddr() != "e1-addr" {
		t.Errorf("output location owner = %s@%s, want e1@e1-addr", out.GetExecutorId(), out.GetAddr())
	}
	if out.GetStats().GetNumRows() == 0 || out.GetStats().GetNumBytes() == 0 {
		t.Errorf("output stats missing: %v", out.GetStats())
	}
	data, err := ioutil.ReadFile(out.GetPath())
	if err != nil {
		t.Fatalf("reading output partition: %v", err)
	}
	if uint64(len(data)) != out.GetStats().GetNumBytes() {
		t.Errorf("partition size %d != reported bytes %d", len(data), out.GetStats().GetNumBytes())
	}
}

func Test_Executor_RejectsDuplicateLaunch(t *testing.T) {
	f := newExecutorFixture(t, 2)
	defer f.cleanup()
	f.eng.Delay = time.Second

	if accepted, _ := f.exec.LaunchTask(launchReq("t1")); !accepted {
		t.Fatalf("first launch rejected")
	}
	accepted, reason := f.exec.LaunchTask(launchReq("t1"))
	if accepted {
		t.Fatalf("duplicate launch accepted")
	}
	if reason != "task already running" {
		t.Errorf("rejection reason = %q", reason)
	}
}

func Test_Executor_RejectsWhenSlotsFull(t *testing.T) {
	f := newExecutorFixture(t, 1)
	defer f.cleanup()
	f.eng.Delay = time.Second

	if accepted, _ := f.exec.LaunchTask(launchReq("t1")); !accepted {
		t.Fatalf("first launch rejected")
	}
	accepted, reason := f.exec.LaunchTask(launchReq("t2"))
	if accepted {
		t.Fatalf("launch beyond slot capacity accepted")
	}
	if reason != "no free slots" {
		t.Errorf("rejection reason = %q", reason)
	}
}

func Test_Executor_ReportsFailure(t *testing.T) {
	f := newExecutorFixture(t, 1)
	defer f.cleanup()
	f.eng.FailTask("t1", errors.New("divide by zero"))

	if accepted, _ := f.exec.LaunchTask(launchReq("t1")); !accepted {
		t.Fatalf("launch rejected")
	}
	f.sched.nextReport(t) // RUNNING
	failed := f.sched.nextReport(t)
	if failed.GetStatus() != protocol.TaskStatus_TASK_FAILED {
		t.Fatalf("report = %v, want FAILED", failed.GetStatus())
	}
	if failed.GetError().GetKind() != domain.ErrKindTaskExecution {
		t.Errorf("error kind = %q, want %q", failed.GetError().GetKind(), domain.ErrKindTaskExecution)
	}
}

func Test_Executor_CancelSuppressesReport(t *testing.T) {
	f := newExecutorFixture(t, 1)
	defer f.cleanup()
	f.eng.Delay = 5 * time.Second

	if accepted, _ := f.exec.LaunchTask(launchReq("t1")); !accepted {
		t.Fatalf("launch rejected")
	}
	f.sched.nextReport(t) // RUNNING
	f.exec.CancelTask("t1")

	// The canceled task reports neither completion nor failure, and its
	// slot frees up.
	select {
	case r := <-f.sched.reportCh:
		t.Fatalf("canceled task reported %v", r.GetStatus())
	case <-time.After(200 * time.Millisecond):
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		if accepted, _ := f.exec.LaunchTask(launchReq("t2")); accepted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("slot never freed after cancel")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
