package engine

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"sync"
	"time"

	"golang.org/x/net/context"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
)

// FakeEngine is a deterministic engine for tests and local clusters: its
// output is a function of the fragment and partition only, so repeated
// attempts of the same task produce identical partitions.
type FakeEngine struct {
	// Delay stalls every execution, letting tests hold tasks in Running.
	Delay time.Duration

	mu       sync.Mutex
	failures map[string]error
}

func NewFakeEngine() *FakeEngine {
	return &FakeEngine{failures: map[string]error{}}
}

// FailTask makes the next executions of taskID return err.
func (e *FakeEngine) FailTask(taskID string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[taskID] = err
}

func (e *FakeEngine) Execute(ctx context.Context, spec TaskSpec) (*Result, error) {
	if e.Delay > 0 {
		select {
		case <-time.After(e.Delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	e.mu.Lock()
	failure := e.failures[spec.TaskID]
	e.mu.Unlock()
	if failure != nil {
		return nil, failure
	}

	payload := []byte(fmt.Sprintf("fragment=%x partition=%d\n", spec.Fragment, spec.Partition))
	return &Result{
		Data: ioutil.NopCloser(bytes.NewReader(payload)),
		Stats: domain.PartitionStats{
			NumRows:    1,
			NumBatches: 1,
			NumBytes:   uint64(len(payload)),
		},
	}, nil
}
