package domain

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func Test_TaskTransitions_ForwardPath(t *testing.T) {
	path := []TaskStatus{TaskQueued, TaskAssigned, TaskRunning, TaskCompleted}
	for i := 0; i+1 < len(path); i++ {
		if !ValidTaskTransition(path[i], path[i+1]) {
			t.Errorf("expected %v -> %v to be legal", path[i], path[i+1])
		}
	}
}

func Test_TaskTransitions_RequeueIsOnlyBackwardEdge(t *testing.T) {
	if !ValidTaskTransition(TaskAssigned, TaskQueued) {
		t.Errorf("expected Assigned -> Queued (requeue) to be legal")
	}
	if !ValidTaskTransition(TaskRunning, TaskQueued) {
		t.Errorf("expected Running -> Queued (requeue) to be legal")
	}
	if ValidTaskTransition(TaskCompleted, TaskQueued) {
		t.Errorf("Completed -> Queued must be illegal")
	}
	if ValidTaskTransition(TaskQueued, TaskRunning) {
		t.Errorf("Queued -> Running must go through Assigned")
	}
}

func Test_JobTransitions_TerminalIsFinal(t *testing.T) {
	for _, from := range []JobStatus{JobCompleted, JobFailed, JobCanceled} {
		for _, to := range []JobStatus{JobQueued, JobRunning, JobCompleted, JobFailed, JobCanceled} {
			if ValidJobTransition(from, to) {
				t.Errorf("terminal job status %v must not transition to %v", from, to)
			}
		}
	}
}

func Test_StageTransitions_RunningFallsBackToReadyOnly(t *testing.T) {
	if !ValidStageTransition(StageRunning, StageReady) {
		t.Errorf("expected Running -> Ready (requeue fallback) to be legal")
	}
	if ValidStageTransition(StageCompleted, StageReady) {
		t.Errorf("Completed -> Ready must be illegal")
	}
	if ValidStageTransition(StageRunning, StagePending) {
		t.Errorf("Running -> Pending must be illegal")
	}
}

func Test_TaskTransitions_Properties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	statuses := gen.IntRange(int(TaskQueued), int(TaskCanceled))

	properties.Property("terminal task statuses never transition", prop.ForAll(
		func(from, to int) bool {
			f, s := TaskStatus(from), TaskStatus(to)
			if !f.Terminal() {
				return true
			}
			return !ValidTaskTransition(f, s)
		}, statuses, statuses))

	properties.Property("only Queued is reachable backwards", prop.ForAll(
		func(from, to int) bool {
			f, s := TaskStatus(from), TaskStatus(to)
			if !ValidTaskTransition(f, s) || s >= f {
				return true
			}
			return s == TaskQueued
		}, statuses, statuses))

	properties.Property("every legal transition target is reachable from Queued", prop.ForAll(
		func(from, to int) bool {
			f, s := TaskStatus(from), TaskStatus(to)
			if !ValidTaskTransition(f, s) {
				return true
			}
			// Walking legal edges from Queued must be able to reach `from`.
			reachable := map[TaskStatus]bool{TaskQueued: true}
			for changed := true; changed; {
				changed = false
				for a := TaskQueued; a <= TaskCanceled; a++ {
					if !reachable[a] {
						continue
					}
					for b := TaskQueued; b <= TaskCanceled; b++ {
						if ValidTaskTransition(a, b) && !reachable[b] {
							reachable[b] = true
							changed = true
						}
					}
				}
			}
			return reachable[f]
		}, statuses, statuses))

	properties.TestingRun(t)
}
