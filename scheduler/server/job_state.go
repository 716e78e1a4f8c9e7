package server

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/trebuchetdev/trebuchet/scheduler/domain"
	"github.com/trebuchetdev/trebuchet/scheduler/store"
)

// jobProgress reports what advancing a job changed.
type jobProgress struct {
	completed bool
	failed    bool

	// cancels are tasks moved to Canceled that were on an executor and
	// deserve a best-effort cancel notice.
	cancels []*domain.Task
}

// advanceJob recomputes one job's derived state from its tasks: stage
// readiness, stage completion, job running/completed/failed, and the
// failure cascade. It runs to a fixpoint so that a task completion
// observed now also unblocks downstream stages now.
//
// All writes go through versioned updates; a lost race means another
// actor advanced the same record and the next pass will observe it.
func advanceJob(s store.Store, jobID string, now time.Time) (*jobProgress, error) {
	progress := &jobProgress{}
	job, err := s.GetJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.Status.Terminal() {
		return progress, nil
	}

	for {
		changed, err := advanceStages(s, jobID)
		if err != nil {
			return nil, err
		}
		if !changed {
			break
		}
	}

	stages, err := s.ListStages(jobID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.ListTasks(jobID)
	if err != nil {
		return nil, err
	}

	for _, t := range tasks {
		if t.Status == domain.TaskFailed {
			return failJob(s, job, stages, tasks, t, now)
		}
	}

	if job.Status == domain.JobQueued {
		for _, t := range tasks {
			if t.Status != domain.TaskQueued {
				job.Status = domain.JobRunning
				if err := s.UpdateJob(job); err != nil && err != domain.ErrStaleTransition {
					return nil, err
				}
				break
			}
		}
	}

	// A bare job record with no stages yet (crash between persisting the
	// job and its graph) is not vacuously done.
	allDone := len(stages) > 0
	for _, st := range stages {
		if st.Status != domain.StageCompleted {
			allDone = false
			break
		}
	}
	if !allDone {
		return progress, nil
	}

	job.Status = domain.JobCompleted
	job.CompletedAt = now
	job.Result = sinkOutputs(stages, tasks)
	if err := s.UpdateJob(job); err != nil {
		if err == domain.ErrStaleTransition {
			return progress, nil
		}
		return nil, err
	}
	progress.completed = true
	log.WithFields(log.Fields{"job": job.ID, "results": len(job.Result)}).Info("Job completed")
	return progress, nil
}

// advanceStages makes one pass of stage-level recomputation. Returns true
// if any stage moved.
func advanceStages(s store.Store, jobID string) (bool, error) {
	stages, err := s.ListStages(jobID)
	if err != nil {
		return false, err
	}
	tasks, err := s.ListTasks(jobID)
	if err != nil {
		return false, err
	}
	byStage := map[string][]*domain.Task{}
	for _, t := range tasks {
		byStage[t.StageID] = append(byStage[t.StageID], t)
	}
	completed := map[string]bool{}
	for _, st := range stages {
		completed[st.ID] = st.Status == domain.StageCompleted
	}

	changed := false
	for _, st := range stages {
		next := st.Status
		switch st.Status {
		case domain.StagePending:
			ready := true
			for _, p := range st.Producers {
				if !completed[p] {
					ready = false
					break
				}
			}
			if ready {
				next = domain.StageReady
			}
		case domain.StageReady, domain.StageRunning:
			if allTasksCompleted(byStage[st.ID]) {
				next = domain.StageCompleted
			} else if st.Status == domain.StageReady && anyTaskActive(byStage[st.ID]) {
				next = domain.StageRunning
			}
		}
		if next == st.Status {
			continue
		}
		st.Status = next
		if err := s.UpdateStage(st); err != nil {
			if err == domain.ErrStaleTransition {
				continue
			}
			return changed, err
		}
		changed = true
		log.WithFields(log.Fields{"stage": st.ID, "status": st.Status}).Info("Stage advanced")
	}
	return changed, nil
}

// failJob runs the failure cascade for a task that spent its retry budget:
// stage Failed, job Failed with the task's error as cause, every other
// non-terminal task Canceled.
func failJob(s store.Store, job *domain.Job, stages []*domain.Stage, tasks []*domain.Task, failed *domain.Task, now time.Time) (*jobProgress, error) {
	progress := &jobProgress{failed: true}

	for _, st := range stages {
		if st.ID != failed.StageID || st.Status.Terminal() {
			continue
		}
		st.Status = domain.StageFailed
		if err := s.UpdateStage(st); err != nil && err != domain.ErrStaleTransition {
			return nil, err
		}
	}

	cause := failed.Error
	if cause == nil {
		cause = &domain.ErrorSummary{Kind: domain.ErrKindJobFailed, Message: "task " + failed.ID + " failed"}
	}
	job.Status = domain.JobFailed
	job.CompletedAt = now
	job.Error = &domain.ErrorSummary{Kind: domain.ErrKindJobFailed, Message: cause.Error()}
	if err := s.UpdateJob(job); err != nil && err != domain.ErrStaleTransition {
		return nil, err
	}

	cancels, err := cancelJobTasks(s, tasks)
	if err != nil {
		return nil, err
	}
	progress.cancels = cancels
	log.WithFields(log.Fields{"job": job.ID, "cause": job.Error.Message}).Warn("Job failed")
	return progress, nil
}

// cancelJobTasks moves every non-terminal task to Canceled and returns the
// ones that were on an executor.
func cancelJobTasks(s store.Store, tasks []*domain.Task) ([]*domain.Task, error) {
	var cancels []*domain.Task
	summary := &domain.ErrorSummary{Kind: domain.ErrKindCanceled, Message: "job canceled"}
	for _, t := range tasks {
		if t.Status.Terminal() {
			continue
		}
		onExecutor := t.Status == domain.TaskAssigned || t.Status == domain.TaskRunning
		updated, err := s.CASTaskStatus(t.ID, t.Status, domain.TaskCanceled, func(t *domain.Task) {
			t.Error = summary
		})
		if err != nil {
			if err == domain.ErrStaleTransition {
				continue
			}
			return nil, err
		}
		if onExecutor {
			cancels = append(cancels, updated)
		}
	}
	return cancels, nil
}

// sinkOutputs collects the result locations of the job's sink stage, the
// stage no other stage consumes.
func sinkOutputs(stages []*domain.Stage, tasks []*domain.Task) []domain.PartitionLocation {
	consumed := map[string]bool{}
	for _, st := range stages {
		for _, p := range st.Producers {
			consumed[p] = true
		}
	}
	var out []domain.PartitionLocation
	for _, st := range stages {
		if consumed[st.ID] {
			continue
		}
		for _, t := range tasks {
			if t.StageID == st.ID && t.Output != nil {
				out = append(out, *t.Output)
			}
		}
	}
	return out
}

func allTasksCompleted(tasks []*domain.Task) bool {
	if len(tasks) == 0 {
		return false
	}
	for _, t := range tasks {
		if t.Status != domain.TaskCompleted {
			return false
		}
	}
	return true
}

func anyTaskActive(tasks []*domain.Task) bool {
	for _, t := range tasks {
		if t.Status == domain.TaskAssigned || t.Status == domain.TaskRunning {
			return true
		}
	}
	return false
}
